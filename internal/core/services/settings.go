package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/vecalc/internal/core/domain"
	"github.com/custodia-labs/vecalc/internal/core/ports/driven"
	"github.com/custodia-labs/vecalc/internal/core/ports/driving"
	"github.com/custodia-labs/vecalc/internal/logger"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// settingKeys lists every settable key in display order.
var settingKeys = []string{
	domain.KeyQuizMaxValue,
	domain.KeyQuizMaxTerms,
	domain.KeyHistoryEnabled,
	domain.KeyHistoryBackend,
	domain.KeyHistoryLimit,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings, with stored values laid
// over the defaults. Out-of-range values fail with ErrInvalidInput.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := s.merged()
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *SettingsService) merged() domain.Settings {
	defaults := domain.DefaultSettings()
	return domain.Settings{
		Quiz: domain.QuizSettings{
			MaxValue: s.getInt(domain.KeyQuizMaxValue, defaults.Quiz.MaxValue),
			MaxTerms: s.getInt(domain.KeyQuizMaxTerms, defaults.Quiz.MaxTerms),
		},
		History: domain.HistorySettings{
			Enabled: s.getBool(domain.KeyHistoryEnabled, defaults.History.Enabled),
			Backend: domain.HistoryBackend(s.getString(domain.KeyHistoryBackend, string(defaults.History.Backend))),
			Limit:   s.getInt(domain.KeyHistoryLimit, defaults.History.Limit),
		},
	}
}

// Set parses value for key, validates the resulting settings and persists.
func (s *SettingsService) Set(key, value string) error {
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)

	settings := s.merged()
	var stored any

	switch key {
	case domain.KeyQuizMaxValue, domain.KeyQuizMaxTerms, domain.KeyHistoryLimit:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be an integer, got %q", domain.ErrInvalidInput, key, value)
		}
		switch key {
		case domain.KeyQuizMaxValue:
			settings.Quiz.MaxValue = n
		case domain.KeyQuizMaxTerms:
			settings.Quiz.MaxTerms = n
		default:
			settings.History.Limit = n
		}
		stored = int64(n)
	case domain.KeyHistoryEnabled:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false, got %q", domain.ErrInvalidInput, key, value)
		}
		settings.History.Enabled = b
		stored = b
	case domain.KeyHistoryBackend:
		settings.History.Backend = domain.HistoryBackend(strings.ToLower(value))
		stored = strings.ToLower(value)
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	logger.Info("Set %s = %v", key, stored)
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Keys lists the settable keys.
func (s *SettingsService) Keys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}

// Path returns the configuration file path.
func (s *SettingsService) Path() string {
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}
