package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vecalc/internal/core/domain"
)

var quizCmd = &cobra.Command{
	Use:   "quiz [kind]",
	Short: "Practise vector arithmetic",
	Long: `Runs a practice quiz reading answers from standard input.

Kinds (name or number):
  1. cross     Cross Product
  2. dot       Dot Product
  3. subtract  Subtract Vectors
  4. add       Add Vectors
  5. angle     Find angle between Vectors
  6. mixed     Mix of add, subtract, scalar multiple, and Cross Product

Without a kind, a menu is shown. Type "answer" to reveal the solution and
"exit" to leave.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuiz,
}

func init() {
	rootCmd.AddCommand(quizCmd)
}

// quizScore tallies one quiz session.
type quizScore struct {
	correct  int
	revealed int
}

func runQuiz(cmd *cobra.Command, args []string) error {
	if quizService == nil {
		return errNotConfigured("quiz")
	}
	reader := newLineReader(cmd.InOrStdin(), cmd.OutOrStdout())

	if len(args) == 1 {
		kind, err := domain.ParseQuestionKind(args[0])
		if err != nil {
			return err
		}
		_, err = runQuizSession(cmd, reader, kind)
		return err
	}

	for {
		kind, ok := pickQuizKind(cmd, reader)
		if !ok {
			return nil
		}
		eof, err := runQuizSession(cmd, reader, kind)
		if err != nil || eof {
			return err
		}
	}
}

// pickQuizKind shows the menu until a valid kind is chosen. ok is false
// when the user leaves or input ends.
func pickQuizKind(cmd *cobra.Command, reader *lineReader) (domain.QuestionKind, bool) {
	kinds := domain.QuestionKinds()
	cmd.Println()
	cmd.Println("===== Quiz =====")
	cmd.Println("Pick a question to practise:")
	for i, k := range kinds {
		cmd.Printf("  %d. %s\n", i+1, k.Description())
	}
	cmd.Printf("  %d. Exit\n", len(kinds)+1)

	for {
		line, ok := reader.readLine("Enter: ")
		if !ok || isExit(line) || line == fmt.Sprint(len(kinds)+1) {
			return "", false
		}
		kind, err := domain.ParseQuestionKind(line)
		if err == nil {
			return kind, true
		}
		cmd.Println("Wrong input. Try again.")
	}
}

// runQuizSession asks questions of one kind until the user exits.
// eof reports that input ended.
func runQuizSession(cmd *cobra.Command, reader *lineReader, kind domain.QuestionKind) (eof bool, err error) {
	ctx := commandContext(cmd)
	cmd.Println()
	cmd.Println(domain.QuizInstructions)

	var score quizScore
	defer func() {
		cmd.Printf("\nCorrect: %d, revealed: %d\n", score.correct, score.revealed)
	}()

	number := 1
	question, err := quizService.NewQuestion(ctx, kind)
	if err != nil {
		return false, fmt.Errorf("failed to create question: %w", err)
	}

	for {
		cmd.Printf("\n%d. Solve for: %s\n", number, question.Prompt())
		line, ok := reader.readLine("Enter answer: ")
		if !ok {
			return true, nil
		}
		if isExit(line) {
			return false, nil
		}

		if line == "answer" {
			solution, err := quizService.Solve(ctx, question)
			if err != nil {
				cmd.Printf("Could not work out the answer: %v\n", err)
				continue
			}
			cmd.Printf("Correct answer to question %d was %s\n", number, solution)
			score.revealed++
		} else {
			correct, err := quizService.Check(ctx, question, line)
			if err != nil {
				cmd.Printf("Error: %v. Try again.\n", err)
				continue
			}
			if !correct {
				cmd.Println("Incorrect solution. Try again.")
				continue
			}
			cmd.Println("Correct!")
			score.correct++
		}

		number++
		if question, err = quizService.NewQuestion(ctx, kind); err != nil {
			return false, fmt.Errorf("failed to create question: %w", err)
		}
	}
}
