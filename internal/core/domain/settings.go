package domain

import "fmt"

// HistoryBackend selects where calculation history is kept.
type HistoryBackend string

const (
	// HistorySQLite persists history in the local SQLite database.
	HistorySQLite HistoryBackend = "sqlite"
	// HistoryMemory keeps history for the lifetime of the process only.
	HistoryMemory HistoryBackend = "memory"
)

// IsValid reports whether b is a known backend.
func (b HistoryBackend) IsValid() bool {
	return b == HistorySQLite || b == HistoryMemory
}

// Setting keys as stored in the config file.
const (
	KeyQuizMaxValue   = "quiz.max_value"
	KeyQuizMaxTerms   = "quiz.max_terms"
	KeyHistoryEnabled = "history.enabled"
	KeyHistoryBackend = "history.backend"
	KeyHistoryLimit   = "history.limit"
)

// QuizSettings controls generated practice questions.
type QuizSettings struct {
	// MaxValue bounds every generated integer (1..MaxValue).
	MaxValue int

	// MaxTerms bounds the number of terms in a mixed question (2..MaxTerms).
	MaxTerms int
}

// HistorySettings controls the calculation log.
type HistorySettings struct {
	// Enabled turns recording on or off.
	Enabled bool

	// Backend selects the store.
	Backend HistoryBackend

	// Limit is the default number of entries listed.
	Limit int
}

// Settings holds all user configurable behaviour.
type Settings struct {
	Quiz    QuizSettings
	History HistorySettings
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		Quiz: QuizSettings{
			MaxValue: 10,
			MaxTerms: 5,
		},
		History: HistorySettings{
			Enabled: true,
			Backend: HistorySQLite,
			Limit:   20,
		},
	}
}

// Validate checks that every value is in range.
func (s Settings) Validate() error {
	if s.Quiz.MaxValue < 1 || s.Quiz.MaxValue > 1000 {
		return fmt.Errorf("%w: %s must be between 1 and 1000, got %d", ErrInvalidInput, KeyQuizMaxValue, s.Quiz.MaxValue)
	}
	if s.Quiz.MaxTerms < 2 || s.Quiz.MaxTerms > 10 {
		return fmt.Errorf("%w: %s must be between 2 and 10, got %d", ErrInvalidInput, KeyQuizMaxTerms, s.Quiz.MaxTerms)
	}
	if !s.History.Backend.IsValid() {
		return fmt.Errorf("%w: %s must be %q or %q, got %q",
			ErrInvalidInput, KeyHistoryBackend, HistorySQLite, HistoryMemory, s.History.Backend)
	}
	if s.History.Limit < 1 {
		return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidInput, KeyHistoryLimit, s.History.Limit)
	}
	return nil
}
