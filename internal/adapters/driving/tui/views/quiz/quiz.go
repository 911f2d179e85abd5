// Package quiz provides the practice question view for the TUI.
package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/vecalc/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/vecalc/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/vecalc/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/vecalc/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/vecalc/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/vecalc/internal/core/domain"
	"github.com/custodia-labs/vecalc/internal/core/ports/driving"
)

// Mode is the current step of the quiz view.
type Mode int

const (
	// ModePick shows the question kind picker.
	ModePick Mode = iota
	// ModeAnswer shows a question and the answer input.
	ModeAnswer
)

// revealWord typed as an answer reveals the solution.
const revealWord = "answer"

// Score counts outcomes within one session.
type Score struct {
	Correct  int
	Revealed int
}

// View is the quiz: pick a kind, then answer questions until esc.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.Line
	statusBar *status.Bar

	quiz driving.QuizService
	ctx  context.Context

	mode     Mode
	kinds    []domain.QuestionKind
	selected int

	question *domain.Question
	number   int
	solution string // last revealed solution
	score    Score

	width  int
	height int
	ready  bool
}

// NewView creates a quiz view.
func NewView(s *styles.Styles, quiz driving.QuizService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	km := keymap.DefaultKeyMap()

	return &View{
		styles:    s,
		keymap:    km,
		input:     input.NewLine(s, "Enter answer: ", "[4, 3, 6]"),
		statusBar: status.NewBar(s, km.MenuHelp()),
		quiz:      quiz,
		ctx:       context.Background(),
		kinds:     domain.QuestionKinds(),
		width:     80,
		height:    24,
	}
}

// WithContext sets the context used for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the quiz view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if v.mode == ModePick {
			return v.handlePickKey(msg)
		}
		return v.handleAnswerKey(msg)

	case messages.QuestionGenerated:
		if v.mode != ModeAnswer {
			// Left the session before the question arrived.
			return v, nil
		}
		if msg.Err != nil {
			v.statusBar.Set(status.StateError, msg.Err.Error())
			return v, nil
		}
		v.question = msg.Question
		v.number++
		if v.statusBar.State() == status.StateBusy {
			v.statusBar.Clear()
		}
		return v, nil

	case messages.AnswerChecked:
		switch {
		case msg.Err != nil:
			v.statusBar.Set(status.StateError, msg.Err.Error()+". Try again.")
			return v, nil
		case !msg.Correct:
			v.statusBar.Set(status.StateIncorrect, "")
			return v, nil
		}
		v.score.Correct++
		v.solution = ""
		v.statusBar.Set(status.StateCorrect, "")
		return v, v.generate(false)

	case messages.AnswerRevealed:
		if msg.Err != nil {
			v.statusBar.Set(status.StateError, msg.Err.Error())
			return v, nil
		}
		v.score.Revealed++
		v.solution = fmt.Sprintf("Correct answer to question %d was %s", v.number, msg.Solution)
		return v, v.generate(true)

	case messages.ErrorOccurred:
		v.statusBar.Set(status.StateError, msg.Err.Error())
		return v, nil
	}

	if v.mode == ModeAnswer {
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return v, cmd
	}
	return v, nil
}

func (v *View) handlePickKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back), keymap.Matches(key, v.keymap.Quit):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case keymap.Matches(key, v.keymap.Up):
		if v.selected > 0 {
			v.selected--
		}
	case keymap.Matches(key, v.keymap.Down):
		if v.selected < len(v.kinds)-1 {
			v.selected++
		}
	case keymap.Matches(key, v.keymap.Select):
		return v, v.start(v.kinds[v.selected])
	default:
		// Digits pick a kind directly, as in the menu numbering.
		if kind, err := domain.ParseQuestionKind(key); err == nil && len(key) == 1 {
			return v, v.start(kind)
		}
	}
	return v, nil
}

func (v *View) handleAnswerKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	key := msg.String()
	switch {
	case keymap.Matches(key, v.keymap.Back):
		v.mode = ModePick
		v.question = nil
		v.input.Reset()
		v.statusBar.SetBindings(v.keymap.MenuHelp())
		v.statusBar.Set(status.StateReady, fmt.Sprintf("Correct: %d, revealed: %d", v.score.Correct, v.score.Revealed))
		return v, nil

	case keymap.Matches(key, v.keymap.Reveal):
		v.input.Reset()
		return v, v.reveal()

	case keymap.Matches(key, v.keymap.Next):
		v.input.Reset()
		v.solution = ""
		return v, v.generate(true)

	case keymap.Matches(key, v.keymap.Submit):
		answer := strings.ToLower(strings.TrimSpace(v.input.Submit()))
		switch answer {
		case "":
			return v, nil
		case revealWord:
			return v, v.reveal()
		}
		return v, v.check(answer)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// start begins a session of the given kind.
func (v *View) start(kind domain.QuestionKind) tea.Cmd {
	for i, k := range v.kinds {
		if k == kind {
			v.selected = i
		}
	}
	v.mode = ModeAnswer
	v.number = 0
	v.score = Score{}
	v.question = nil
	v.solution = ""
	v.input.Reset()
	v.statusBar.SetBindings(v.keymap.QuizHelp())
	return tea.Batch(v.input.Focus(), v.generate(true))
}

// generate requests a new question of the selected kind. With busy
// false the status bar keeps showing the previous outcome.
func (v *View) generate(busy bool) tea.Cmd {
	kind := v.kinds[v.selected]
	if busy {
		v.statusBar.Set(status.StateBusy, "")
	}
	return func() tea.Msg {
		if v.quiz == nil {
			return messages.QuestionGenerated{Err: ErrNoQuizService}
		}
		q, err := v.quiz.NewQuestion(v.ctx, kind)
		return messages.QuestionGenerated{Question: q, Err: err}
	}
}

func (v *View) check(answer string) tea.Cmd {
	q := v.question
	return func() tea.Msg {
		if v.quiz == nil {
			return messages.AnswerChecked{Answer: answer, Err: ErrNoQuizService}
		}
		if q == nil {
			return messages.AnswerChecked{Answer: answer, Err: domain.ErrInvalidInput}
		}
		correct, err := v.quiz.Check(v.ctx, q, answer)
		return messages.AnswerChecked{Answer: answer, Correct: correct, Err: err}
	}
}

func (v *View) reveal() tea.Cmd {
	q := v.question
	return func() tea.Msg {
		if v.quiz == nil {
			return messages.AnswerRevealed{Err: ErrNoQuizService}
		}
		if q == nil {
			return messages.AnswerRevealed{Err: domain.ErrInvalidInput}
		}
		solution, err := v.quiz.Solve(v.ctx, q)
		return messages.AnswerRevealed{Solution: solution, Err: err}
	}
}

// View renders the quiz.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}
	if v.mode == ModePick {
		return v.viewPicker()
	}
	return v.viewQuestion()
}

func (v *View) viewPicker() string {
	sections := make([]string, 0, len(v.kinds)+6)
	sections = append(sections, v.styles.Title.Render("Quiz"), "")

	for i, k := range v.kinds {
		cursor := "  "
		style := v.styles.Normal
		if i == v.selected {
			cursor = "> "
			style = v.styles.Selected
		}
		sections = append(sections, cursor+style.Render(fmt.Sprintf("%d. %s", i+1, k.Description())))
	}

	sections = append(sections, "", v.statusBar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (v *View) viewQuestion() string {
	kind := v.kinds[v.selected]
	sections := make([]string, 0, 12)
	sections = append(sections,
		v.styles.Title.Render("Quiz: "+kind.Description()),
		v.styles.Muted.Render(domain.QuizInstructions),
		"",
	)

	if v.solution != "" {
		sections = append(sections, v.styles.Warning.Render(v.solution), "")
	}

	if v.question != nil {
		sections = append(sections,
			v.styles.Subtitle.Render(fmt.Sprintf("%d. Solve for: ", v.number))+
				v.styles.Expression.Render(v.question.Prompt()),
			"",
			v.input.View(),
		)
	}

	sections = append(sections,
		"",
		v.styles.Muted.Render(fmt.Sprintf("Correct: %d, revealed: %d", v.score.Correct, v.score.Revealed)),
		v.statusBar.View(),
	)
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

// Mode returns the current mode.
func (v *View) Mode() Mode {
	return v.mode
}

// Question returns the question being answered, if any.
func (v *View) Question() *domain.Question {
	return v.question
}

// Number returns the 1-based number of the current question.
func (v *View) Number() int {
	return v.number
}

// Score returns the session score.
func (v *View) Score() Score {
	return v.score
}

// Solution returns the last revealed solution line.
func (v *View) Solution() string {
	return v.solution
}

// Input returns the answer input.
func (v *View) Input() *input.Line {
	return v.input
}

// Reset returns to the kind picker.
func (v *View) Reset() {
	v.mode = ModePick
	v.question = nil
	v.number = 0
	v.score = Score{}
	v.solution = ""
	v.input.Reset()
	v.statusBar.SetBindings(v.keymap.MenuHelp())
	v.statusBar.Clear()
}
