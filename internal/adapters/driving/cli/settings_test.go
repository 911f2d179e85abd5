package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vecalc/internal/core/domain"
)

func TestSettingsCmd_Show(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "settings")
	require.NoError(t, err)

	assert.Contains(t, out, "Current Settings")
	assert.Contains(t, out, "Max value: 10")
	assert.Contains(t, out, "Max terms: 5")
	assert.Contains(t, out, "Enabled: yes")
	assert.Contains(t, out, "Backend: sqlite")
	assert.Contains(t, out, "Limit: 20")
	assert.Contains(t, out, "Config file: :memory:")

	shown, err := execute(t, "", "settings", "show")
	require.NoError(t, err)
	assert.Equal(t, out, shown)
}

func TestSettingsCmd_Set(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "", "settings", "set", "quiz.max_value", "20")
	require.NoError(t, err)
	assert.Equal(t, "Set quiz.max_value to 20\n", out)

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, 20, settings.Quiz.MaxValue)
}

func TestSettingsCmd_SetInvalid(t *testing.T) {
	setupTestServices(t)

	tests := [][]string{
		{"quiz.max_value", "0"},
		{"quiz.max_terms", "many"},
		{"history.backend", "postgres"},
		{"history.colour", "blue"},
	}

	for _, args := range tests {
		t.Run(args[0], func(t *testing.T) {
			_, err := execute(t, "", "settings", "set", args[0], args[1])

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestSettingsCmd_Reset(t *testing.T) {
	setupTestServices(t)
	require.NoError(t, settingsService.Set(domain.KeyQuizMaxTerms, "3"))
	require.NoError(t, settingsService.Set(domain.KeyHistoryBackend, "memory"))

	out, err := execute(t, "", "settings", "reset")
	require.NoError(t, err)
	assert.Equal(t, "Settings restored to defaults.\n", out)

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(), *settings)
}

func TestSettingsCmd_Wizard(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, script("15", "", "no-thanks", "30", "2"), "settings", "wizard")
	require.NoError(t, err)

	assert.Contains(t, out, "Set quiz.max_value to 15")
	assert.Contains(t, out, "Skipping history.enabled")
	assert.Contains(t, out, "Set history.limit to 30")
	assert.Contains(t, out, "Set history.backend to memory")
	assert.Contains(t, out, "Configuration complete.")

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.Equal(t, 15, settings.Quiz.MaxValue)
	assert.Equal(t, 5, settings.Quiz.MaxTerms)
	assert.True(t, settings.History.Enabled)
	assert.Equal(t, 30, settings.History.Limit)
	assert.Equal(t, domain.HistoryMemory, settings.History.Backend)
}

func TestSettingsCmd_WizardEndOfInput(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, script("15"), "settings", "wizard")

	require.NoError(t, err)
	assert.NotContains(t, out, "Configuration complete.")
}

func TestSettingValue(t *testing.T) {
	s := domain.DefaultSettings()

	assert.Equal(t, "10", settingValue(s, domain.KeyQuizMaxValue))
	assert.Equal(t, "5", settingValue(s, domain.KeyQuizMaxTerms))
	assert.Equal(t, "true", settingValue(s, domain.KeyHistoryEnabled))
	assert.Equal(t, "sqlite", settingValue(s, domain.KeyHistoryBackend))
	assert.Equal(t, "20", settingValue(s, domain.KeyHistoryLimit))
	assert.Empty(t, settingValue(s, "unknown"))
}

func TestParseChoice(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		maxVal     int
		defaultVal int
		expected   int
	}{
		{"Empty input returns default", "", 5, 1, 1},
		{"Valid choice within range", "3", 5, 1, 3},
		{"Choice below minimum returns default", "0", 5, 1, 1},
		{"Choice above maximum returns default", "6", 5, 1, 1},
		{"Invalid input returns default", "abc", 5, 2, 2},
		{"Maximum value is valid", "5", 5, 1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseChoice(tt.input, tt.maxVal, tt.defaultVal))
		})
	}
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "yes", yesNo(true))
	assert.Equal(t, "no", yesNo(false))
}
