// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/vecalc/internal/adapters/driving/tui/styles"
)

// Line wraps a bubbles textinput with a label and a recall list of
// submitted values, browsed with the up and down keys.
type Line struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int

	recall []string
	cursor int // len(recall) when not browsing
}

// NewLine creates a focused input with the given label and placeholder.
func NewLine(s *styles.Styles, label, placeholder string) *Line {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &Line{
		textinput: ti,
		styles:    s,
		label:     label,
		width:     50,
	}
}

// Init initialises the input.
func (l *Line) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (l *Line) Update(msg tea.Msg) (*Line, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyUp:
			l.browse(-1)
			return l, nil
		case tea.KeyDown:
			l.browse(1)
			return l, nil
		}
	}

	var cmd tea.Cmd
	l.textinput, cmd = l.textinput.Update(msg)
	return l, cmd
}

func (l *Line) browse(step int) {
	if len(l.recall) == 0 {
		return
	}
	l.cursor += step
	switch {
	case l.cursor < 0:
		l.cursor = 0
	case l.cursor >= len(l.recall):
		l.cursor = len(l.recall)
		l.textinput.SetValue("")
		return
	}
	l.textinput.SetValue(l.recall[l.cursor])
	l.textinput.CursorEnd()
}

// Submit returns the current value, remembers it for recall and clears
// the input. Empty values are not remembered.
func (l *Line) Submit() string {
	value := l.textinput.Value()
	if value != "" {
		l.recall = append(l.recall, value)
	}
	l.cursor = len(l.recall)
	l.textinput.Reset()
	return value
}

// View renders the input.
func (l *Line) View() string {
	label := l.styles.Title.Render(l.label)
	field := l.styles.InputField.Render(l.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, field)
}

// Value returns the current input value.
func (l *Line) Value() string {
	return l.textinput.Value()
}

// SetValue sets the input value.
func (l *Line) SetValue(value string) {
	l.textinput.SetValue(value)
}

// Recall returns the submitted values, oldest first.
func (l *Line) Recall() []string {
	out := make([]string, len(l.recall))
	copy(out, l.recall)
	return out
}

// Focus sets focus on the input.
func (l *Line) Focus() tea.Cmd {
	return l.textinput.Focus()
}

// Blur removes focus from the input.
func (l *Line) Blur() {
	l.textinput.Blur()
}

// Focused returns whether the input is focused.
func (l *Line) Focused() bool {
	return l.textinput.Focused()
}

// SetWidth sets the width of the input.
func (l *Line) SetWidth(width int) {
	l.width = width
	inputWidth := width - lipgloss.Width(l.label) - 6
	if inputWidth < 20 {
		inputWidth = 20
	}
	l.textinput.Width = inputWidth
}

// Width returns the current width.
func (l *Line) Width() int {
	return l.width
}

// Reset clears the input and stops browsing.
func (l *Line) Reset() {
	l.textinput.Reset()
	l.cursor = len(l.recall)
}
