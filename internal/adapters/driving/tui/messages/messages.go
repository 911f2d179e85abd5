// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/vecalc/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewCalculator is the expression input and results view.
	ViewCalculator
	// ViewQuiz is the practice quiz view.
	ViewQuiz
	// ViewHelp shows expression syntax and keybindings.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewCalculator:
		return "calculator"
	case ViewQuiz:
		return "quiz"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// EvaluationCompleted carries the outcome of evaluating an expression.
type EvaluationCompleted struct {
	Expression  string
	Calculation *domain.Calculation
	Err         error
}

// HistoryLoaded carries recorded calculations.
type HistoryLoaded struct {
	Calculations []domain.Calculation
	Err          error
}

// QuestionGenerated carries a new practice question.
type QuestionGenerated struct {
	Question *domain.Question
	Err      error
}

// AnswerChecked carries the grade of a submitted answer.
type AnswerChecked struct {
	Answer  string
	Correct bool
	Err     error
}

// AnswerRevealed carries the solution of the current question.
type AnswerRevealed struct {
	Solution string
	Err      error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
