package messages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/custodia-labs/vecalc/internal/core/domain"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view     ViewType
		expected string
	}{
		{ViewMenu, "menu"},
		{ViewCalculator, "calculator"},
		{ViewQuiz, "quiz"},
		{ViewHelp, "help"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func TestViewType_Distinct(t *testing.T) {
	views := []ViewType{ViewMenu, ViewCalculator, ViewQuiz, ViewHelp}
	seen := make(map[ViewType]bool)
	for _, v := range views {
		assert.False(t, seen[v], "duplicate view type %d", v)
		seen[v] = true
	}
}

func TestEvaluationCompleted(t *testing.T) {
	t.Run("with calculation", func(t *testing.T) {
		calc := &domain.Calculation{Expression: "[1] + [2]", Result: "3"}
		msg := EvaluationCompleted{Expression: "[1] + [2]", Calculation: calc}

		assert.Equal(t, "3", msg.Calculation.Result)
		assert.NoError(t, msg.Err)
	})

	t.Run("with error", func(t *testing.T) {
		msg := EvaluationCompleted{Expression: "[1", Err: domain.ErrFormat}

		assert.Nil(t, msg.Calculation)
		assert.ErrorIs(t, msg.Err, domain.ErrFormat)
	})
}

func TestAnswerChecked(t *testing.T) {
	msg := AnswerChecked{Answer: "[1, 2]", Correct: true}
	assert.True(t, msg.Correct)

	msg = AnswerChecked{Answer: "x", Err: errors.New("bad")}
	assert.False(t, msg.Correct)
	assert.EqualError(t, msg.Err, "bad")
}
