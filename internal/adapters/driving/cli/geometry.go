package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var angleCmd = &cobra.Command{
	Use:   "angle [vector] [vector]",
	Short: "Angle between two vectors in degrees",
	Long: `Prints the angle between two vectors of the same dimension,
rounded to the nearest whole degree.`,
	Example: `  vecalc angle "[1, 0]" "[0, 1]"`,
	Args:    cobra.ExactArgs(2),
	RunE:    runAngle,
}

var magnitudeCmd = &cobra.Command{
	Use:     "magnitude [vector]",
	Aliases: []string{"length"},
	Short:   "Length of a vector",
	Example: `  vecalc magnitude "[3, 4]"`,
	Args:    cobra.ExactArgs(1),
	RunE:    runMagnitude,
}

var magnitudePrecision int

func init() {
	magnitudeCmd.Flags().IntVarP(&magnitudePrecision, "precision", "p", 4, "decimal places to print")
	rootCmd.AddCommand(angleCmd)
	rootCmd.AddCommand(magnitudeCmd)
}

func runAngle(cmd *cobra.Command, args []string) error {
	if calculatorService == nil {
		return errNotConfigured("calculator")
	}
	degrees, err := calculatorService.Angle(commandContext(cmd), args[0], args[1])
	if err != nil {
		return fmt.Errorf("angle failed: %w", err)
	}
	cmd.Println(degrees)
	return nil
}

func runMagnitude(cmd *cobra.Command, args []string) error {
	if calculatorService == nil {
		return errNotConfigured("calculator")
	}
	if magnitudePrecision < 0 {
		return fmt.Errorf("precision must not be negative, got %d", magnitudePrecision)
	}
	length, err := calculatorService.Magnitude(commandContext(cmd), args[0])
	if err != nil {
		return fmt.Errorf("magnitude failed: %w", err)
	}
	cmd.Println(fmt.Sprintf("%.*f", magnitudePrecision, length))
	return nil
}
