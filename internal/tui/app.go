package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/cryptogram/cryptogram/internal/game"
)

// App is the main Bubble Tea model.
type App struct {
	puzzleView PuzzleView
	width      int
	height     int
}

// NewApp creates the main application model around a running session.
func NewApp(s *game.Session, attribution string, log zerolog.Logger) (*App, error) {
	if s == nil {
		return nil, fmt.Errorf("no session")
	}
	return &App{puzzleView: NewPuzzleView(s, attribution, log)}, nil
}

func (a App) Init() tea.Cmd {
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case tea.KeyMsg:
		// Bubble Tea reads Ctrl+C as a key; treat it as the interrupt it
		// would otherwise be.
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.puzzleView, cmd = a.puzzleView.Update(msg)
	return a, cmd
}

func (a App) View() string {
	return a.puzzleView.View()
}

// Run starts the program on the terminal and blocks until it exits.
func Run(s *game.Session, attribution string, log zerolog.Logger, opts ...tea.ProgramOption) error {
	app, err := NewApp(s, attribution, log)
	if err != nil {
		return err
	}
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(app, opts...).Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
