package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vecalc/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure quiz and history settings.

Keys:
  quiz.max_value    largest whole part of generated numbers (1-1000)
  quiz.max_terms    most terms in a mixed question (2-10)
  history.enabled   record evaluated expressions (true/false)
  history.backend   where history is kept (sqlite, memory)
  history.limit     calculations shown by default (>= 1)`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:     "set [key] [value]",
	Short:   "Change a setting",
	Example: `  vecalc settings set quiz.max_value 20`,
	Args:    cobra.ExactArgs(2),
	RunE:    runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	Args:  cobra.NoArgs,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Quiz]")
	cmd.Printf("  Max value: %d\n", settings.Quiz.MaxValue)
	cmd.Printf("  Max terms: %d\n", settings.Quiz.MaxTerms)
	cmd.Println()

	cmd.Println("[History]")
	cmd.Printf("  Enabled: %s\n", yesNo(settings.History.Enabled))
	cmd.Printf("  Backend: %s\n", settings.History.Backend)
	cmd.Printf("  Limit: %d\n", settings.History.Limit)
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsService.Path())
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}
	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s to %s\n", args[0], args[1])
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}
	defaults := settingsService.GetDefaults()
	for _, key := range settingsService.Keys() {
		if err := settingsService.Set(key, settingValue(defaults, key)); err != nil {
			return fmt.Errorf("failed to reset %s: %w", key, err)
		}
	}
	cmd.Println("Settings restored to defaults.")
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errNotConfigured("settings")
	}
	current, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("vecalc Settings Wizard")
	cmd.Println("======================")
	cmd.Println("Press enter to keep the current value.")
	cmd.Println()

	reader := newLineReader(cmd.InOrStdin(), cmd.OutOrStdout())

	prompted := []string{
		domain.KeyQuizMaxValue,
		domain.KeyQuizMaxTerms,
		domain.KeyHistoryEnabled,
		domain.KeyHistoryLimit,
	}
	for _, key := range prompted {
		value := settingValue(*current, key)
		input, ok := reader.readLine(fmt.Sprintf("%s [%s]: ", key, value))
		if !ok {
			return nil
		}
		if input == "" || input == value {
			continue
		}
		if err := settingsService.Set(key, input); err != nil {
			cmd.Printf("Skipping %s: %v\n", key, err)
			continue
		}
		cmd.Printf("Set %s to %s\n", key, input)
	}

	backends := []domain.HistoryBackend{domain.HistorySQLite, domain.HistoryMemory}
	cmd.Println()
	cmd.Println("History backend:")
	defaultChoice := 1
	for i, b := range backends {
		cmd.Printf("  %d. %s\n", i+1, b)
		if b == current.History.Backend {
			defaultChoice = i + 1
		}
	}
	input, ok := reader.readLine(fmt.Sprintf("Enter choice [%d]: ", defaultChoice))
	if !ok {
		return nil
	}
	choice := backends[parseChoice(input, len(backends), defaultChoice)-1]
	if choice != current.History.Backend {
		if err := settingsService.Set(domain.KeyHistoryBackend, string(choice)); err != nil {
			return fmt.Errorf("failed to set history backend: %w", err)
		}
		cmd.Printf("Set %s to %s\n", domain.KeyHistoryBackend, choice)
	}

	cmd.Println()
	cmd.Println("Configuration complete.")
	return nil
}

// settingValue renders the value of key in s as text accepted by Set.
func settingValue(s domain.Settings, key string) string {
	switch key {
	case domain.KeyQuizMaxValue:
		return strconv.Itoa(s.Quiz.MaxValue)
	case domain.KeyQuizMaxTerms:
		return strconv.Itoa(s.Quiz.MaxTerms)
	case domain.KeyHistoryEnabled:
		return strconv.FormatBool(s.History.Enabled)
	case domain.KeyHistoryBackend:
		return string(s.History.Backend)
	case domain.KeyHistoryLimit:
		return strconv.Itoa(s.History.Limit)
	default:
		return ""
	}
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
