// Package calculator provides the expression evaluation view for the TUI.
package calculator

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/vecalc/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/vecalc/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/vecalc/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/vecalc/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/vecalc/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/vecalc/internal/core/ports/driving"
)

// maxResults is how many evaluated expressions stay on screen.
const maxResults = 10

// Entry is one evaluated expression shown in the results list.
type Entry struct {
	Expression string
	Result     string
}

// View is the calculator: an expression input above recent results.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.Line
	statusBar *status.Bar

	calculator driving.CalculatorService
	history    driving.HistoryService
	ctx        context.Context

	results []Entry // newest first
	err     error
	width   int
	height  int
	ready   bool
}

// NewView creates a calculator view. history may be nil.
func NewView(
	s *styles.Styles,
	calculator driving.CalculatorService,
	history driving.HistoryService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	return &View{
		styles:     s,
		keymap:     km,
		input:      input.NewLine(s, "vecalc> ", "5[6, 4] + [1/2, -3]"),
		statusBar:  status.NewBar(s, km.CalculatorHelp()),
		calculator: calculator,
		history:    history,
		ctx:        context.Background(),
		width:      80,
		height:     24,
	}
}

// WithContext sets the context used for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts the cursor blinking and loads recent history.
func (v *View) Init() tea.Cmd {
	cmds := []tea.Cmd{v.input.Init()}
	if v.history != nil && len(v.results) == 0 {
		cmds = append(cmds, v.loadHistory())
	}
	return tea.Batch(cmds...)
}

// Update handles messages for the calculator view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.EvaluationCompleted:
		v.handleEvaluation(msg)
		return v, nil

	case messages.HistoryLoaded:
		if msg.Err != nil {
			v.setError(msg.Err)
			return v, nil
		}
		v.results = v.results[:0]
		for i := range msg.Calculations {
			if len(v.results) == maxResults {
				break
			}
			v.results = append(v.results, Entry{
				Expression: msg.Calculations[i].Expression,
				Result:     msg.Calculations[i].Result,
			})
		}
		return v, nil

	case messages.ErrorOccurred:
		v.setError(msg.Err)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case keymap.Matches(msg.String(), v.keymap.Submit):
		expr := strings.TrimSpace(v.input.Submit())
		if expr == "" {
			return v, nil
		}
		v.statusBar.Set(status.StateBusy, "")
		return v, v.evaluate(expr)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) evaluate(expr string) tea.Cmd {
	return func() tea.Msg {
		if v.calculator == nil {
			return messages.EvaluationCompleted{Expression: expr, Err: ErrNoCalculatorService}
		}
		calc, err := v.calculator.Evaluate(v.ctx, expr)
		return messages.EvaluationCompleted{Expression: expr, Calculation: calc, Err: err}
	}
}

func (v *View) loadHistory() tea.Cmd {
	return func() tea.Msg {
		calcs, err := v.history.List(v.ctx, maxResults)
		return messages.HistoryLoaded{Calculations: calcs, Err: err}
	}
}

func (v *View) handleEvaluation(msg messages.EvaluationCompleted) {
	if msg.Err != nil {
		v.setError(msg.Err)
		return
	}
	if msg.Calculation == nil {
		return
	}

	v.err = nil
	v.statusBar.Clear()
	v.results = append([]Entry{{
		Expression: msg.Calculation.Expression,
		Result:     msg.Calculation.Result,
	}}, v.results...)
	if len(v.results) > maxResults {
		v.results = v.results[:maxResults]
	}
}

func (v *View) setError(err error) {
	v.err = err
	v.statusBar.Set(status.StateError, err.Error())
}

// View renders the calculator.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	sections := make([]string, 0, len(v.results)+8)
	sections = append(sections,
		v.styles.Title.Render("Vector Calculator"),
		v.styles.Muted.Render("Expression syntax is listed under Help."),
		"",
		v.input.View(),
		"",
	)

	if len(v.results) == 0 {
		sections = append(sections, v.styles.Muted.Render("No results yet."))
	}
	for _, e := range v.results {
		sections = append(sections,
			v.styles.Expression.Render(e.Expression)+
				v.styles.Muted.Render(" = ")+
				v.styles.Result.Render(e.Result))
	}

	sections = append(sections, "", v.statusBar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.statusBar.SetWidth(width)
}

// Results returns the displayed results, newest first.
func (v *View) Results() []Entry {
	return v.results
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// Input returns the expression input.
func (v *View) Input() *input.Line {
	return v.input
}

// Reset clears the input, the error and the status bar.
func (v *View) Reset() {
	v.input.Reset()
	v.err = nil
	v.statusBar.Clear()
}

