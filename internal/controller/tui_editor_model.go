package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/reprise/internal/model"
)

// Grid placement inside the editor view. The header takes the first
// gridTop lines and every grid row is indented by gridLeft cells.
const (
	gridTop      = 3
	gridLeft     = 2
	defaultWidth = 80
	minGridCols  = 8
)

type editorKeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Save   key.Binding
	Delete key.Binding
	Cancel key.Binding
}

func (k editorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Save, k.Delete, k.Cancel}
}

func (k editorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.Toggle, k.Save, k.Delete, k.Cancel},
	}
}

func newEditorKeyMap() editorKeyMap {
	return editorKeyMap{
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "toggle bin")),
		Save:   key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter/s", "save")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Cancel: key.NewBinding(key.WithKeys("esc", "q", "ctrl+c"), key.WithHelp("esc/q", "cancel")),
	}
}

// editorModel lays the motif content out as a grid of one-cell bins and maps
// pointer and key events onto the Selection.
type editorModel struct {
	motif     m.Motif
	runes     []rune
	clozeUUID string
	selection Selection
	keys      editorKeyMap
	help      help.Model
	width     int
	height    int
	cursor    int
	lastBin   int
	status    string
	result    EditResult
	done      bool
}

func newEditorModel(req EditRequest) editorModel {
	return editorModel{
		motif:     req.Motif,
		runes:     []rune(req.Motif.Content),
		clozeUUID: req.ClozeUUID,
		selection: req.Selection,
		keys:      newEditorKeyMap(),
		help:      help.New(),
		lastBin:   -1,
		result:    EditResult{Action: EditCancel},
	}
}

func (e editorModel) Init() tea.Cmd {
	return nil
}

func (e editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.height = msg.Height
		e.help.Width = msg.Width

		return e, nil

	case tea.MouseMsg:
		return e.handleMouseMsg(msg), nil

	case tea.KeyMsg:
		return e.handleKeyMsg(msg)
	}

	return e, nil
}

func (e editorModel) cols() int {
	width := e.width
	if width <= 0 {
		width = defaultWidth
	}

	return max(width-2*gridLeft, minGridCols)
}

// binAt returns the bin under the cell (x, y), or -1 outside the grid.
func (e editorModel) binAt(x, y int) int {
	row := y - gridTop
	col := x - gridLeft

	if row < 0 || col < 0 || col >= e.cols() {
		return -1
	}

	index := row*e.cols() + col
	if index >= len(e.runes) {
		return -1
	}

	return index
}

func (e editorModel) handleMouseMsg(msg tea.MouseMsg) editorModel {
	bin := e.binAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || bin < 0 {
			return e
		}

		e.apply(e.selection.Press(bin))
		e.cursor = bin

	case tea.MouseActionMotion:
		if bin < 0 {
			e.selection.Leave()
			break
		}

		if bin != e.lastBin {
			e.apply(e.selection.Enter(bin))
		}

	case tea.MouseActionRelease:
		e.selection.Release()
	}

	e.lastBin = bin

	return e
}

func (e editorModel) handleKeyMsg(msg tea.KeyMsg) (editorModel, tea.Cmd) {
	if len(e.runes) == 0 && !key.Matches(msg, e.keys.Cancel, e.keys.Delete) {
		return e, nil
	}

	switch {
	case key.Matches(msg, e.keys.Cancel):
		e.result = EditResult{Action: EditCancel}
		e.done = true

		return e, tea.Quit

	case key.Matches(msg, e.keys.Save):
		if e.selection.Len() == 0 {
			e.status = "select at least one bin before saving"
			return e, nil
		}

		e.result = EditResult{Action: EditSave, Intervals: e.selection.Intervals()}
		e.done = true

		return e, tea.Quit

	case key.Matches(msg, e.keys.Delete):
		if e.clozeUUID == "" {
			e.status = "nothing to delete, this cloze deletion is not saved yet"
			return e, nil
		}

		e.result = EditResult{Action: EditDelete}
		e.done = true

		return e, tea.Quit

	case key.Matches(msg, e.keys.Toggle):
		e.apply(e.selection.Press(e.cursor))
		e.selection.Release()

	case key.Matches(msg, e.keys.Left):
		e.cursor = max(e.cursor-1, 0)
	case key.Matches(msg, e.keys.Right):
		e.cursor = min(e.cursor+1, len(e.runes)-1)
	case key.Matches(msg, e.keys.Up):
		if e.cursor-e.cols() >= 0 {
			e.cursor -= e.cols()
		}
	case key.Matches(msg, e.keys.Down):
		if e.cursor+e.cols() < len(e.runes) {
			e.cursor += e.cols()
		}
	}

	return e, nil
}

func (e *editorModel) apply(err error) {
	if err != nil {
		e.status = err.Error()
		return
	}

	e.status = ""
}

func (e editorModel) View() string {
	if e.done {
		return ""
	}

	var b strings.Builder

	title := "New cloze deletion"
	if e.clozeUUID != "" {
		title = "Cloze deletion " + e.clozeUUID
	}

	b.WriteString(titleStyle.Render(title) + "\n")
	b.WriteString(mutedStyle.Render(truncateToWidth(e.motif.Citation, e.cols())) + "\n\n")

	indent := strings.Repeat(" ", gridLeft)
	cols := e.cols()

	for rowStart := 0; rowStart < len(e.runes); rowStart += cols {
		b.WriteString(indent)

		for i := rowStart; i < min(rowStart+cols, len(e.runes)); i++ {
			b.WriteString(e.renderBin(i))
		}

		b.WriteString("\n")
	}

	if len(e.runes) == 0 {
		b.WriteString(indent + mutedStyle.Render("(empty motif)") + "\n")
	}

	b.WriteString("\n")
	b.WriteString(indent + mutedStyle.Render(fmt.Sprintf("%d bins  %s", e.selection.Len(), formatTuples(e.selection.Intervals()))) + "\n")

	if e.status != "" {
		b.WriteString(indent + errorStyle.Render(e.status) + "\n")
	}

	b.WriteString(indent + e.help.View(e.keys) + "\n")

	return b.String()
}

func (e editorModel) renderBin(index int) string {
	glyph := string(displayRune(e.runes[index]))

	style := plainStyle
	if e.selection.Has(index) {
		style = binSelectedStyle
	}

	if index == e.cursor {
		style = style.Inherit(binCursorStyle)
	}

	return style.Render(glyph)
}

// displayRune keeps every bin exactly one cell wide.
func displayRune(r rune) rune {
	switch flat := flattenRune(r); {
	case flat < 0:
		return '·'
	case flat != r:
		return flat
	case lipgloss.Width(string(r)) != 1:
		return '□'
	}

	return r
}
