package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vecalc/internal/core/domain"
)

var evalJSON bool

var evalCmd = &cobra.Command{
	Use:   "eval [expression]",
	Short: "Evaluate a vector expression",
	Long: `Evaluates a vector expression over exact fractions.

Without an argument, expressions are read one per line from standard input
until "exit" or end of input.

Operators, lowest precedence first:
  + -   addition and subtraction
  *     dot product
  x     cross product
A number before a vector or a parenthesised group scales it: 5([6, 4] + [4, 4])`,
	Example: `  vecalc eval "[1, 2, 3] x [4, 5, 6]"
  vecalc eval "-2[5, 7 5/6, 2/8]"
  vecalc eval "7/2[-30/4, 4]" --json`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().BoolVar(&evalJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	if calculatorService == nil {
		return errNotConfigured("calculator")
	}
	if len(args) == 0 {
		return runEvalLoop(cmd)
	}

	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = strings.TrimSpace(arg)
	}
	calc, err := calculatorService.Evaluate(commandContext(cmd), strings.Join(parts, " "))
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}
	return printCalculation(cmd, calc)
}

// shieldExpressions prefixes a space to arguments such as "-2[5, 7]" or
// "-[1, 2]" so the flag parser reads them as positional. Arguments are
// trimmed again before evaluation.
func shieldExpressions(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = arg
		if looksLikeExpression(arg) {
			out[i] = " " + arg
		}
	}
	return out
}

// looksLikeExpression reports whether arg starts with a minus sign and
// carries a bracket or parenthesis. No vecalc flag value has either.
func looksLikeExpression(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' || arg[1] == '-' {
		return false
	}
	switch c := arg[1]; {
	case c >= '0' && c <= '9', c == '[', c == '(', c == ' ':
	default:
		return false
	}
	return strings.ContainsAny(arg, "[]()")
}

func runEvalLoop(cmd *cobra.Command) error {
	reader := newLineReader(cmd.InOrStdin(), cmd.OutOrStdout())
	if reader.interactive {
		cmd.Println("======= Vector Calculator =======")
		cmd.Println()
		cmd.Println(domain.CalculatorInstructions)
		cmd.Println()
		cmd.Println(`Type "help" to see these instructions again, "exit" to leave.`)
	}

	ctx := commandContext(cmd)
	for {
		line, ok := reader.readLine("\nvecalc> ")
		if !ok || isExit(line) {
			return nil
		}
		switch line {
		case "":
			continue
		case "help":
			cmd.Println(domain.CalculatorInstructions)
			continue
		}

		calc, err := calculatorService.Evaluate(ctx, line)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			continue
		}
		if err := printCalculation(cmd, calc); err != nil {
			return err
		}
	}
}

type calculationJSON struct {
	ID         string    `json:"id"`
	Expression string    `json:"expression"`
	Result     string    `json:"result"`
	CreatedAt  time.Time `json:"created_at"`
}

func toCalculationJSON(calc *domain.Calculation) calculationJSON {
	return calculationJSON{
		ID:         calc.ID,
		Expression: calc.Expression,
		Result:     calc.Result,
		CreatedAt:  calc.CreatedAt,
	}
}

func printCalculation(cmd *cobra.Command, calc *domain.Calculation) error {
	if !evalJSON {
		cmd.Println(calc.Result)
		return nil
	}
	data, err := json.Marshal(toCalculationJSON(calc))
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
