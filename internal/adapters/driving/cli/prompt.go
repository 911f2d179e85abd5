package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// lineReader reads normalised lines from a command's input and prints
// prompts only when that input is a terminal.
type lineReader struct {
	scanner     *bufio.Scanner
	out         io.Writer
	interactive bool
}

func newLineReader(in io.Reader, out io.Writer) *lineReader {
	return &lineReader{
		scanner:     bufio.NewScanner(in),
		out:         out,
		interactive: isTerminal(in),
	}
}

// readLine prints prompt (interactive only) and returns the next line,
// trimmed and lower-cased. ok is false at end of input.
func (r *lineReader) readLine(prompt string) (line string, ok bool) {
	if r.interactive && prompt != "" {
		fmt.Fprint(r.out, prompt)
	}
	if !r.scanner.Scan() {
		return "", false
	}
	return strings.ToLower(strings.TrimSpace(r.scanner.Text())), true
}

// isTerminal reports whether in is an interactive terminal.
func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// isExit reports whether line asks to leave a loop.
func isExit(line string) bool {
	return line == "exit" || line == "quit"
}
