package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/vecalc/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/vecalc/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/vecalc/internal/adapters/driving/tui/views/calculator"
	"github.com/custodia-labs/vecalc/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/vecalc/internal/adapters/driving/tui/views/quiz"
	"github.com/custodia-labs/vecalc/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles

	menuView       *menu.View
	calculatorView *calculator.View
	quizView       *quiz.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if ports == nil {
		return nil, fmt.Errorf("creating app: %w", ErrMissingCalculatorService)
	}
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:          ports,
		ctx:            context.Background(),
		styles:         s,
		menuView:       menu.NewView(s),
		calculatorView: calculator.NewView(s, ports.Calculator, ports.History),
		quizView:       quiz.NewView(s, ports.Quiz),
		currentView:    messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.calculatorView.WithContext(ctx)
	a.quizView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("vecalc - Vector Calculator"),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.updateCurrent(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewCalculator:
			a.calculatorView.Reset()
			return a, a.calculatorView.Init()
		case messages.ViewQuiz:
			a.quizView.Reset()
			return a, a.quizView.Init()
		case messages.ViewMenu, messages.ViewHelp:
		}
		return a, nil

	case messages.EvaluationCompleted, messages.HistoryLoaded:
		a.calculatorView, cmd = a.calculatorView.Update(msg)
		return a, cmd

	case messages.QuestionGenerated, messages.AnswerChecked, messages.AnswerRevealed:
		a.quizView, cmd = a.quizView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, a.updateCurrent(msg)

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.updateCurrent(msg)
}

// updateCurrent forwards msg to the active view.
func (a *App) updateCurrent(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewCalculator:
		a.calculatorView, cmd = a.calculatorView.Update(msg)
	case messages.ViewQuiz:
		a.quizView, cmd = a.quizView.Update(msg)
	case messages.ViewHelp:
		if key, ok := msg.(tea.KeyMsg); ok && (key.Type == tea.KeyEsc || key.String() == "q") {
			a.currentView = messages.ViewMenu
		}
	}
	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewCalculator:
		return a.calculatorView.View()
	case messages.ViewQuiz:
		return a.quizView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

func (a *App) viewHelp() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(a.styles.Subtitle.Render("Expressions"))
	b.WriteString("\n")
	b.WriteString(domain.CalculatorInstructions)
	b.WriteString("\n\n")
	b.WriteString(a.styles.Subtitle.Render("Quiz"))
	b.WriteString("\n")
	b.WriteString(domain.QuizInstructions)
	b.WriteString("\n\n")
	b.WriteString(a.styles.Subtitle.Render("Keys"))
	b.WriteString(`
  j/k, ↑/↓    Navigate menus, recall earlier input
  enter       Select, evaluate or submit an answer
  ctrl+r      Reveal the answer
  ctrl+n      Skip to the next question
  esc         Back
  ctrl+c      Quit`)
	b.WriteString("\n\n")
	b.WriteString(a.styles.Help.Render("[esc] back to menu"))

	return b.String()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.calculatorView.SetDimensions(width, height)
	a.quizView.SetDimensions(width, height)
}
