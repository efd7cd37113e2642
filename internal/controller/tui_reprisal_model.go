package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/reprise/internal/model"
)

// reprisalItem is one row of the reprisal list.
type reprisalItem struct {
	reprisal m.Reprisal
	revealed bool
}

func (r reprisalItem) FilterValue() string {
	return r.reprisal.Motif.Content
}

// segments returns what the row shows: the masked text or the revealed spans.
func (r reprisalItem) segments() []m.Segment {
	if r.revealed {
		return r.reprisal.Segments
	}

	return []m.Segment{{Text: r.reprisal.Masked}}
}

type reprisalDelegate struct{}

func (d reprisalDelegate) Height() int  { return 1 }
func (d reprisalDelegate) Spacing() int { return 0 }
func (d reprisalDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d reprisalDelegate) Render(w io.Writer, model list.Model, index int, item list.Item) {
	row, ok := item.(reprisalItem)
	if !ok {
		return
	}

	marker := "  "
	numberStyle := mutedStyle

	if index == model.Index() {
		marker = titleStyle.Render("▸ ")
		numberStyle = titleStyle
	}

	number := fmt.Sprintf("%2d. ", index+1)
	width := model.Width() - lipgloss.Width(marker) - lipgloss.Width(number)

	_, _ = fmt.Fprint(w, marker+numberStyle.Render(number)+renderSegments(truncateSegments(row.segments(), width)))
}

type reprisalKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

func (k reprisalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Quit}
}

func (k reprisalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newReprisalKeyMap() reprisalKeyMap {
	return reprisalKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "mask/unmask")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// reprisalModel lists reprisals masked and reveals the selected one on demand.
type reprisalModel struct {
	list   list.Model
	keys   reprisalKeyMap
	help   help.Model
	width  int
	height int
}

func newReprisalModel(reprisals []m.Reprisal) reprisalModel {
	items := make([]list.Item, 0, len(reprisals))
	for _, reprisal := range reprisals {
		items = append(items, reprisalItem{reprisal: reprisal})
	}

	reprisalList := list.New(items, reprisalDelegate{}, defaultWidth, len(items)+1)
	reprisalList.SetShowPagination(false)
	reprisalList.SetFilteringEnabled(false)
	reprisalList.SetShowHelp(false)
	reprisalList.SetShowTitle(false)
	reprisalList.SetShowStatusBar(false)

	return reprisalModel{
		list: reprisalList,
		keys: newReprisalKeyMap(),
		help: help.New(),
	}
}

func (r reprisalModel) Init() tea.Cmd {
	return nil
}

func (r reprisalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		r.list.SetWidth(msg.Width)
		r.list.SetHeight(max(min(len(r.list.Items())+1, msg.Height-12), 3))
		r.help.Width = msg.Width

		return r, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, r.keys.Quit):
			return r, tea.Quit
		case key.Matches(msg, r.keys.Toggle):
			return r, r.toggleSelected()
		}

	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease {
			return r, r.toggleSelected()
		}

		return r, nil
	}

	r.list, cmd = r.list.Update(msg)

	return r, cmd
}

func (r *reprisalModel) toggleSelected() tea.Cmd {
	row, ok := r.list.SelectedItem().(reprisalItem)
	if !ok {
		return nil
	}

	row.revealed = !row.revealed

	return r.list.SetItem(r.list.Index(), row)
}

func (r reprisalModel) View() string {
	var b strings.Builder

	revealed := 0

	for _, item := range r.list.Items() {
		if row, ok := item.(reprisalItem); ok && row.revealed {
			revealed++
		}
	}

	b.WriteString(titleStyle.Render("Reprise") + " ")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d motifs, %d revealed", len(r.list.Items()), revealed)) + "\n\n")
	b.WriteString(r.list.View() + "\n")

	if row, ok := r.list.SelectedItem().(reprisalItem); ok {
		b.WriteString(r.renderDetail(row) + "\n")
	}

	b.WriteString(r.help.View(r.keys) + "\n")

	return b.String()
}

func (r reprisalModel) renderDetail(row reprisalItem) string {
	width := r.width
	if width <= 0 {
		width = defaultWidth
	}

	body := renderSegments(row.segments())
	if row.reprisal.Motif.Citation != "" {
		body += "\n" + mutedStyle.Render(row.reprisal.Motif.Citation)
	}

	return boxStyle.Width(max(width-4, minGridCols)).Render(body)
}
