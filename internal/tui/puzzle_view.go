package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/cryptogram/cryptogram/internal/game"
	"github.com/cryptogram/cryptogram/internal/render"
)

// PuzzleView draws the board and feeds key presses to the session.
type PuzzleView struct {
	session     *game.Session
	attribution string
	styles      map[render.State]lipgloss.Style
	log         zerolog.Logger
	width       int
	height      int
}

// NewPuzzleView creates a view over s. attribution may be empty.
func NewPuzzleView(s *game.Session, attribution string, log zerolog.Logger) PuzzleView {
	return PuzzleView{
		session:     s,
		attribution: attribution,
		styles:      CellStyles(s.Variant()),
		log:         log,
	}
}

func (v PuzzleView) Update(msg tea.Msg) (PuzzleView, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		return v, nil

	case tea.KeyMsg:
		ev := translateKey(msg)
		debugKeyInput(v.log, msg, ev)
		v.session.Handle(ev)
		return v, nil
	}

	return v, nil
}

func (v PuzzleView) View() string {
	width := v.width
	if width <= 0 {
		width = 80
	}
	height := v.height

	contentWidth := width - 4
	if contentWidth < 1 {
		contentWidth = 1
	}
	innerWidth := contentWidth - 4
	if innerWidth < 1 {
		innerWidth = 1
	}

	maxBoardLines := v.session.Board().LineBreaks() + 1
	if height <= 0 {
		return v.renderView(contentWidth, innerWidth, maxBoardLines)
	}

	for boardLines := min(maxBoardLines, height); boardLines >= 1; boardLines-- {
		view := v.renderView(contentWidth, innerWidth, boardLines)
		if lipgloss.Height(view) <= height {
			return view
		}
	}

	return v.renderView(contentWidth, innerWidth, 1)
}

func (v PuzzleView) renderView(contentWidth, innerWidth, boardLines int) string {
	s := v.session
	headerBlock := titleStyle.MaxWidth(contentWidth).Render("Cryptogram")

	info := coverageText(s)
	infoBlock := mutedStyle.MaxWidth(contentWidth).Render(info)

	boardBox := boardBoxStyle.Width(contentWidth).Render(v.renderBoard(innerWidth, boardLines))

	variantBadge := VariantStyle(s.Variant()).Render(fmt.Sprintf(" %s ", strings.ToUpper(s.Variant().String())))
	cur := s.Cursor()
	statusLine := fmt.Sprintf("%s  Row %d, Col %d  %s", variantBadge, cur.Row+1, cur.Col+1, mutedStyle.Render(guessListText(s)))
	statusBlock := statusBarStyle.MaxWidth(contentWidth).Render(statusLine)

	parts := []string{
		headerBlock,
		infoBlock,
		boardBox,
	}
	if v.attribution != "" {
		parts = append(parts, attributionStyle.MaxWidth(contentWidth).Render("-- "+v.attribution))
	}
	parts = append(parts, statusBlock)

	helpLine := "Arrows: move  A-Z: guess  Backspace: clear guess  Ctrl+C: quit"
	parts = append(parts, helpStyle.MaxWidth(contentWidth).Render(helpLine))

	return strings.Join(parts, "\n")
}

// renderBoard draws the rows around the cursor that fit in height.
func (v PuzzleView) renderBoard(width, height int) string {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	s := v.session
	cur := s.Cursor()
	lines := render.Lines(render.Cells(s.Board().Text(), cur, s.Guesses()))

	start, end := windowRange(len(lines), cur.Row, height)
	rendered := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		if i == cur.Row {
			rendered = append(rendered, v.renderLineWithCursor(lines[i], cur.Col, width))
		} else {
			rendered = append(rendered, v.renderCells(truncateCells(lines[i], width)))
		}
	}

	return strings.Join(rendered, "\n")
}

// renderLineWithCursor scrolls a long row so the cursor column stays visible.
func (v PuzzleView) renderLineWithCursor(line []render.Cell, col int, width int) string {
	if len(line) <= width {
		return v.renderCells(line)
	}

	start := col - width/2
	if start < 0 {
		start = 0
	}
	if start+width > len(line) {
		start = len(line) - width
	}
	end := start + width
	visible := append([]render.Cell(nil), line[start:end]...)
	if start > 0 && visible[0].State != render.Highlighted {
		visible[0] = render.Cell{Rune: '~'}
	}
	if end < len(line) && visible[len(visible)-1].State != render.Highlighted {
		visible[len(visible)-1] = render.Cell{Rune: '~'}
	}
	return v.renderCells(visible)
}

func (v PuzzleView) renderCells(cells []render.Cell) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(v.styles[c.State].Render(string(c.Rune)))
	}
	return b.String()
}

func truncateCells(line []render.Cell, width int) []render.Cell {
	if width <= 0 {
		return nil
	}
	if len(line) <= width {
		return line
	}
	out := append([]render.Cell(nil), line[:width-1]...)
	return append(out, render.Cell{Rune: '~'})
}

func windowRange(total, cursor, height int) (int, int) {
	if height <= 0 || total <= height {
		return 0, total
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= total {
		cursor = total - 1
	}
	start := cursor - height/2
	if start < 0 {
		start = 0
	}
	if start+height > total {
		start = total - height
	}
	return start, start + height
}

// translateKey converts Bubble Tea key messages to session events.
func translateKey(msg tea.KeyMsg) game.Event {
	switch msg.Type {
	case tea.KeyUp:
		return game.Event{Kind: game.EventUp}
	case tea.KeyDown:
		return game.Event{Kind: game.EventDown}
	case tea.KeyLeft:
		return game.Event{Kind: game.EventLeft}
	case tea.KeyRight:
		return game.Event{Kind: game.EventRight}
	case tea.KeyBackspace, tea.KeyDelete:
		return game.Event{Kind: game.EventDelete}
	case tea.KeyRunes:
		if len(msg.Runes) == 1 && !msg.Alt {
			return game.LetterEvent(msg.Runes[0])
		}
	}
	return game.Event{}
}

func debugKeyInput(log zerolog.Logger, msg tea.KeyMsg, ev game.Event) {
	log.Debug().
		Str("key", msg.String()).
		Stringer("event", ev.Kind).
		Msg("key")
}
