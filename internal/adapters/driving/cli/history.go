package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vecalc/internal/core/domain"
)

var (
	historyLimit int
	historyClear bool
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent calculations",
	Long: `Lists recorded calculations, newest first.

The default number shown is the history.limit setting. Use --clear to
delete every recorded calculation.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "maximum number of calculations (0 = history.limit)")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all recorded calculations")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output calculations as JSON")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errNotConfigured("history")
	}
	ctx := commandContext(cmd)

	if historyClear {
		if err := historyService.Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		cmd.Println("History cleared.")
		return nil
	}

	calcs, err := historyService.List(ctx, historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if historyJSON {
		return outputHistoryJSON(cmd, calcs)
	}
	return outputHistoryTable(cmd, calcs)
}

func outputHistoryJSON(cmd *cobra.Command, calcs []domain.Calculation) error {
	out := make([]calculationJSON, len(calcs))
	for i := range calcs {
		out[i] = toCalculationJSON(&calcs[i])
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputHistoryTable(cmd *cobra.Command, calcs []domain.Calculation) error {
	if len(calcs) == 0 {
		cmd.Println("No calculations recorded.")
		return nil
	}

	for i := range calcs {
		cmd.Printf("  [%d] %s = %s\n", i+1, calcs[i].Expression, calcs[i].Result)
		cmd.Printf("      %s\n", calcs[i].CreatedAt.Local().Format("2006-01-02 15:04:05"))
	}
	return nil
}
