package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vecalc/internal/adapters/driven/random"
	"github.com/custodia-labs/vecalc/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/vecalc/internal/core/services"
)

// testServices exposes the stores behind the installed services.
type testServices struct {
	History *memory.HistoryStore
	Config  *memory.ConfigStore
}

// setupTestServices installs real services over in-memory stores and
// resets every package-level flag value.
func setupTestServices(t *testing.T) *testServices {
	t.Helper()

	history := memory.NewHistoryStore()
	config := memory.NewConfigStore()
	settings := services.NewSettingsService(config)

	SetServices(&Services{
		Calculator: services.NewCalculatorService(history, settings),
		Quiz:       services.NewQuizService(random.NewSeeded(7), settings),
		History:    services.NewHistoryService(history, settings),
		Settings:   settings,
	})

	evalJSON = false
	historyLimit = 0
	historyClear = false
	historyJSON = false
	magnitudePrecision = 4
	configDir = ""
	verbose = false
	bootstrap = nil

	t.Cleanup(func() { SetServices(nil) })
	return &testServices{History: history, Config: config}
}

// execute runs the root command with args, feeding stdin, and returns
// everything written to stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(shieldExpressions(args))
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCmd(t *testing.T) {
	assert.Equal(t, "vecalc", rootCmd.Use)
	assert.True(t, rootCmd.SilenceUsage)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config-dir"))

	v := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, v)
	assert.Equal(t, "v", v.Shorthand)
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"eval", "angle", "magnitude", "quiz", "history", "settings", "tui", "mcp", "version"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestInitServices_Bootstrap(t *testing.T) {
	SetServices(nil)
	t.Cleanup(func() {
		SetServices(nil)
		bootstrap = nil
		configDir = ""
	})

	var got Options
	configDir = "/tmp/vecalc-test"
	bootstrap = func(opts Options) (*Services, error) {
		got = opts
		return &Services{
			Calculator: services.NewCalculatorService(nil, nil),
			Close:      func() error { return nil },
		}, nil
	}

	require.NoError(t, initServices(rootCmd, nil))

	assert.Equal(t, "/tmp/vecalc-test", got.ConfigDir)
	assert.NotNil(t, calculatorService)
	assert.NotNil(t, closeServices)
}

func TestInitServices_BootstrapOnce(t *testing.T) {
	setupTestServices(t)
	calls := 0
	bootstrap = func(Options) (*Services, error) {
		calls++
		return &Services{}, nil
	}
	t.Cleanup(func() { bootstrap = nil })

	require.NoError(t, initServices(rootCmd, nil))

	assert.Equal(t, 0, calls)
}

func TestInitServices_BootstrapError(t *testing.T) {
	SetServices(nil)
	bootErr := errors.New("no config dir")
	bootstrap = func(Options) (*Services, error) { return nil, bootErr }
	t.Cleanup(func() { bootstrap = nil })

	err := initServices(rootCmd, nil)

	assert.ErrorIs(t, err, bootErr)
	assert.Contains(t, err.Error(), "failed to initialise")
}

func TestSetServices_Nil(t *testing.T) {
	setupTestServices(t)

	SetServices(nil)

	assert.Nil(t, calculatorService)
	assert.Nil(t, quizService)
	assert.Nil(t, historyService)
	assert.Nil(t, settingsService)
	assert.Nil(t, configWatcher)
	assert.Nil(t, closeServices)
}

type fakeWatcher struct {
	err   error
	calls int
}

func (w *fakeWatcher) Watch(_ context.Context, onChange func()) error {
	w.calls++
	if w.err == nil {
		onChange()
	}
	return w.err
}

func TestWatchConfig(t *testing.T) {
	t.Cleanup(func() { configWatcher = nil })

	configWatcher = nil
	watchConfig(context.Background())

	w := &fakeWatcher{}
	configWatcher = w
	watchConfig(context.Background())
	assert.Equal(t, 1, w.calls)

	// Failures are logged, never fatal.
	configWatcher = &fakeWatcher{err: errors.New("inotify limit")}
	watchConfig(context.Background())
}

func TestErrNotConfigured(t *testing.T) {
	assert.EqualError(t, errNotConfigured("quiz"), "quiz service not configured")
}
