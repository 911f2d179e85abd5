package quiz

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vecalc/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/vecalc/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/vecalc/internal/core/domain"
)

// MockQuizService implements driving.QuizService for testing.
type MockQuizService struct {
	Solution string
	Correct  bool
	Err      error

	Kinds   []domain.QuestionKind
	Answers []string
}

func (m *MockQuizService) NewQuestion(_ context.Context, kind domain.QuestionKind) (*domain.Question, error) {
	m.Kinds = append(m.Kinds, kind)
	if m.Err != nil {
		return nil, m.Err
	}
	return &domain.Question{Kind: kind, Expression: "[1, 2] + [3, 4]"}, nil
}

func (m *MockQuizService) Solve(_ context.Context, _ *domain.Question) (string, error) {
	return m.Solution, m.Err
}

func (m *MockQuizService) Check(_ context.Context, _ *domain.Question, answer string) (bool, error) {
	m.Answers = append(m.Answers, answer)
	return m.Correct, m.Err
}

func key(r rune) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}} }

// started returns a view answering questions of the given kind, with the
// first question already delivered.
func started(t *testing.T, svc *MockQuizService, kind domain.QuestionKind) *View {
	t.Helper()
	view := NewView(nil, svc)
	view.SetDimensions(100, 40)
	view.start(kind)
	view.Update(view.generate(false)())
	require.NotNil(t, view.Question())
	return view
}

func TestNewView(t *testing.T) {
	view := NewView(nil, &MockQuizService{})

	require.NotNil(t, view)
	assert.Equal(t, ModePick, view.Mode())
	assert.Equal(t, domain.QuestionKinds(), view.kinds)
	assert.Nil(t, view.Question())
	assert.Nil(t, view.Init())
}

func TestView_Picker_Navigate(t *testing.T) {
	view := NewView(nil, &MockQuizService{})

	view.Update(tea.KeyMsg{Type: tea.KeyDown})
	view.Update(key('j'))
	assert.Equal(t, 2, view.selected)

	view.Update(key('k'))
	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	view.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, view.selected)

	for i := 0; i < 10; i++ {
		view.Update(key('j'))
	}
	assert.Equal(t, len(domain.QuestionKinds())-1, view.selected)
}

func TestView_Picker_Enter(t *testing.T) {
	svc := &MockQuizService{}
	view := NewView(nil, svc)
	view.selected = 1

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Equal(t, ModeAnswer, view.Mode())
	assert.Equal(t, status.StateBusy, view.statusBar.State())

	msg := view.generate(false)()
	generated, ok := msg.(messages.QuestionGenerated)
	require.True(t, ok)
	assert.Equal(t, domain.QuestionDot, generated.Question.Kind)
}

func TestView_Picker_Digit(t *testing.T) {
	view := NewView(nil, &MockQuizService{})

	_, cmd := view.Update(key('5'))

	require.NotNil(t, cmd)
	assert.Equal(t, ModeAnswer, view.Mode())
	assert.Equal(t, domain.QuestionAngle, view.kinds[view.selected])
}

func TestView_Picker_Back(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, key('q')} {
		view := NewView(nil, &MockQuizService{})

		_, cmd := view.Update(msg)

		require.NotNil(t, cmd)
		changed, ok := cmd().(messages.ViewChanged)
		require.True(t, ok)
		assert.Equal(t, messages.ViewMenu, changed.View)
	}
}

func TestView_QuestionGenerated(t *testing.T) {
	view := started(t, &MockQuizService{}, domain.QuestionAdd)

	assert.Equal(t, 1, view.Number())
	assert.Equal(t, status.StateReady, view.statusBar.State())
	assert.Contains(t, view.View(), "1. Solve for: ")
	assert.Contains(t, view.View(), "[1, 2] + [3, 4]")
}

func TestView_QuestionGenerated_Error(t *testing.T) {
	view := NewView(nil, &MockQuizService{Err: errors.New("overflow")})
	view.start(domain.QuestionMixed)

	view.Update(view.generate(false)())

	assert.Nil(t, view.Question())
	assert.Equal(t, status.StateError, view.statusBar.State())
	assert.Equal(t, "overflow", view.statusBar.Message())
}

func TestView_Answer_Correct(t *testing.T) {
	svc := &MockQuizService{Correct: true}
	view := started(t, svc, domain.QuestionAdd)
	view.Input().SetValue("  [4, 6] ")

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	checked, ok := cmd().(messages.AnswerChecked)
	require.True(t, ok)
	assert.True(t, checked.Correct)
	assert.Equal(t, []string{"[4, 6]"}, svc.Answers)

	_, next := view.Update(checked)
	require.NotNil(t, next)
	assert.Equal(t, 1, view.Score().Correct)
	assert.Equal(t, status.StateCorrect, view.statusBar.State())

	// The outcome stays visible once the next question arrives.
	view.Update(next())
	assert.Equal(t, 2, view.Number())
	assert.Equal(t, status.StateCorrect, view.statusBar.State())
}

func TestView_Answer_Incorrect(t *testing.T) {
	view := started(t, &MockQuizService{Correct: false}, domain.QuestionAdd)
	view.Input().SetValue("[1, 1]")

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	_, next := view.Update(cmd())

	assert.Nil(t, next)
	assert.Equal(t, 1, view.Number())
	assert.Equal(t, 0, view.Score().Correct)
	assert.Equal(t, status.StateIncorrect, view.statusBar.State())
}

func TestView_Answer_CheckError(t *testing.T) {
	view := started(t, &MockQuizService{}, domain.QuestionAdd)

	view.Update(messages.AnswerChecked{Answer: "[1", Err: domain.ErrInvalidInput})

	assert.Equal(t, status.StateError, view.statusBar.State())
	assert.Contains(t, view.statusBar.Message(), "Try again.")
	assert.Equal(t, 1, view.Number())
}

func TestView_Answer_Empty(t *testing.T) {
	view := started(t, &MockQuizService{}, domain.QuestionAdd)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
}

func TestView_Reveal(t *testing.T) {
	tests := []struct {
		name string
		send func(v *View) tea.Cmd
	}{
		{"typed", func(v *View) tea.Cmd {
			v.Input().SetValue("Answer")
			_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
			return cmd
		}},
		{"ctrl+r", func(v *View) tea.Cmd {
			_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
			return cmd
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockQuizService{Solution: "[4, 6]"}
			view := started(t, svc, domain.QuestionAdd)

			cmd := tt.send(view)
			require.NotNil(t, cmd)
			revealed, ok := cmd().(messages.AnswerRevealed)
			require.True(t, ok)
			assert.Equal(t, "[4, 6]", revealed.Solution)
			assert.Empty(t, svc.Answers)

			_, next := view.Update(revealed)
			require.NotNil(t, next)
			assert.Equal(t, 1, view.Score().Revealed)
			assert.Equal(t, "Correct answer to question 1 was [4, 6]", view.Solution())

			view.Update(next())
			assert.Equal(t, 2, view.Number())
			assert.Contains(t, view.View(), "Correct answer to question 1 was [4, 6]")
		})
	}
}

func TestView_Next(t *testing.T) {
	svc := &MockQuizService{}
	view := started(t, svc, domain.QuestionCross)

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	require.NotNil(t, cmd)

	view.Update(cmd())
	assert.Equal(t, 2, view.Number())
	assert.Equal(t, []domain.QuestionKind{domain.QuestionCross, domain.QuestionCross}, svc.Kinds)
}

func TestView_Answer_EscReturnsToPicker(t *testing.T) {
	view := started(t, &MockQuizService{}, domain.QuestionAdd)
	view.score = Score{Correct: 2, Revealed: 1}

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.Nil(t, cmd)
	assert.Equal(t, ModePick, view.Mode())
	assert.Nil(t, view.Question())
	assert.Equal(t, "Correct: 2, revealed: 1", view.statusBar.Message())
	assert.Contains(t, view.View(), "Cross Product")
}

func TestView_Answer_TypingQDoesNotLeave(t *testing.T) {
	view := started(t, &MockQuizService{}, domain.QuestionAdd)

	view.Update(key('q'))

	assert.Equal(t, ModeAnswer, view.Mode())
	assert.Equal(t, "q", view.Input().Value())
}

func TestView_NilService(t *testing.T) {
	view := NewView(nil, nil)
	view.start(domain.QuestionDot)

	generated, ok := view.generate(false)().(messages.QuestionGenerated)
	require.True(t, ok)
	assert.ErrorIs(t, generated.Err, ErrNoQuizService)

	checked, ok := view.check("1")().(messages.AnswerChecked)
	require.True(t, ok)
	assert.ErrorIs(t, checked.Err, ErrNoQuizService)

	revealed, ok := view.reveal()().(messages.AnswerRevealed)
	require.True(t, ok)
	assert.ErrorIs(t, revealed.Err, ErrNoQuizService)
}

func TestView_View_Picker(t *testing.T) {
	view := NewView(nil, &MockQuizService{})
	assert.Equal(t, "Initialising...", view.View())

	view.SetDimensions(100, 40)
	output := view.View()

	assert.Contains(t, output, "Quiz")
	assert.Contains(t, output, "1. Cross Product")
	assert.Contains(t, output, "6. Mix of add, subtract, scalar multiple, and Cross Product")
}

func TestView_Reset(t *testing.T) {
	view := started(t, &MockQuizService{}, domain.QuestionAdd)
	view.score.Correct = 3

	view.Reset()

	assert.Equal(t, ModePick, view.Mode())
	assert.Nil(t, view.Question())
	assert.Equal(t, Score{}, view.Score())
	assert.Equal(t, 0, view.Number())
}
