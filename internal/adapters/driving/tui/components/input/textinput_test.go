package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/vecalc/internal/adapters/driving/tui/styles"
)

func typeText(l *Line, text string) {
	for _, r := range text {
		l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNewLine(t *testing.T) {
	l := NewLine(styles.DefaultStyles(), "Expression: ", "[1, 2] + [3, 4]")

	require.NotNil(t, l)
	assert.Equal(t, "", l.Value())
	assert.True(t, l.Focused())
}

func TestNewLine_NilStyles(t *testing.T) {
	l := NewLine(nil, "> ", "")

	require.NotNil(t, l)
	assert.NotNil(t, l.styles)
}

func TestLine_Init(t *testing.T) {
	assert.NotNil(t, NewLine(nil, "> ", "").Init())
}

func TestLine_Typing(t *testing.T) {
	l := NewLine(nil, "> ", "")

	typeText(l, "[1]")

	assert.Equal(t, "[1]", l.Value())
}

func TestLine_View(t *testing.T) {
	l := NewLine(nil, "Answer: ", "")

	assert.Contains(t, l.View(), "Answer:")
}

func TestLine_Submit(t *testing.T) {
	l := NewLine(nil, "> ", "")
	typeText(l, "[1] + [2]")

	value := l.Submit()

	assert.Equal(t, "[1] + [2]", value)
	assert.Equal(t, "", l.Value())
	assert.Equal(t, []string{"[1] + [2]"}, l.Recall())
}

func TestLine_SubmitEmptyIsNotRecalled(t *testing.T) {
	l := NewLine(nil, "> ", "")

	assert.Equal(t, "", l.Submit())
	assert.Empty(t, l.Recall())
}

func TestLine_Browse(t *testing.T) {
	l := NewLine(nil, "> ", "")
	l.SetValue("first")
	l.Submit()
	l.SetValue("second")
	l.Submit()

	l.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "second", l.Value())

	l.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "first", l.Value())

	// Stops at the oldest entry.
	l.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "first", l.Value())

	l.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "second", l.Value())

	// Past the newest entry the input is cleared.
	l.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "", l.Value())
}

func TestLine_BrowseWithoutRecall(t *testing.T) {
	l := NewLine(nil, "> ", "")
	l.SetValue("draft")

	l.Update(tea.KeyMsg{Type: tea.KeyUp})

	assert.Equal(t, "draft", l.Value())
}

func TestLine_FocusBlur(t *testing.T) {
	l := NewLine(nil, "> ", "")

	l.Blur()
	assert.False(t, l.Focused())

	l.Focus()
	assert.True(t, l.Focused())
}

func TestLine_SetWidth(t *testing.T) {
	l := NewLine(nil, "> ", "")

	l.SetWidth(100)
	assert.Equal(t, 100, l.Width())

	l.SetWidth(5)
	assert.Equal(t, 5, l.Width())
	assert.Equal(t, 20, l.textinput.Width)
}

func TestLine_Reset(t *testing.T) {
	l := NewLine(nil, "> ", "")
	l.SetValue("text")

	l.Reset()

	assert.Equal(t, "", l.Value())
}
