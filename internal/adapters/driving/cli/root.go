// Package cli implements the vecalc command line interface using cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/vecalc/internal/core/ports/driving"
	"github.com/custodia-labs/vecalc/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services are the core services the commands drive.
type Services struct {
	Calculator driving.CalculatorService
	Quiz       driving.QuizService
	History    driving.HistoryService
	Settings   driving.SettingsService

	// Watcher reloads configuration for long-running commands. Optional.
	Watcher ConfigWatcher

	// Close releases resources held by the services. Optional.
	Close func() error
}

// ConfigWatcher reloads configuration when its backing file changes.
type ConfigWatcher interface {
	Watch(ctx context.Context, onChange func()) error
}

// Options are the global flag values handed to a Bootstrap.
type Options struct {
	ConfigDir string
	Verbose   bool
}

// Bootstrap builds the services once global flags have been parsed.
type Bootstrap func(opts Options) (*Services, error)

var (
	calculatorService driving.CalculatorService
	quizService       driving.QuizService
	historyService    driving.HistoryService
	settingsService   driving.SettingsService
	configWatcher     ConfigWatcher
	closeServices     func() error
)

var bootstrap Bootstrap

var (
	configDir string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "vecalc",
	Short: "Exact rational vector calculator",
	Long: `vecalc evaluates vector expressions over exact fractions and runs
practice quizzes on vector arithmetic.

Vectors have 1 to 3 components written in square brackets. Components and
scalars are whole numbers, fractions or mixed numbers: [3 1/2, -7/4, 2].

Examples:
  vecalc eval "5[6, 4] + 5[4, 4] - 6[5, 4]"
  vecalc angle "[1, 0]" "[0, 1]"
  vecalc quiz cross
  vecalc tui`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.vecalc)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServices installs the services used by every command.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	calculatorService = s.Calculator
	quizService = s.Quiz
	historyService = s.History
	settingsService = s.Settings
	configWatcher = s.Watcher
	closeServices = s.Close
}

// Execute runs the root command. boot is called once flags are parsed,
// unless services were already installed with SetServices.
func Execute(ctx context.Context, boot Bootstrap) error {
	bootstrap = boot
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetArgs(shieldExpressions(os.Args[1:]))
	defer func() {
		if closeServices == nil {
			return
		}
		if err := closeServices(); err != nil {
			logger.Warn("closing services: %v", err)
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}

func initServices(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if bootstrap == nil || calculatorService != nil {
		return nil
	}

	services, err := bootstrap(Options{ConfigDir: configDir, Verbose: verbose})
	if err != nil {
		return fmt.Errorf("failed to initialise: %w", err)
	}
	SetServices(services)
	return nil
}

// errNotConfigured reports a service that was never installed.
func errNotConfigured(name string) error {
	return errors.New(name + " service not configured")
}

// commandContext returns the command's context, or Background when the
// command is executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// watchConfig starts the configuration watcher for long-running commands.
// Watch failures are logged and never stop the command.
func watchConfig(ctx context.Context) {
	if configWatcher == nil {
		return
	}
	err := configWatcher.Watch(ctx, func() {
		logger.Info("configuration reloaded")
	})
	if err != nil {
		logger.Warn("config watch disabled: %v", err)
	}
}
