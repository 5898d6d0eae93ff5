// Package tui provides an interactive section browser for parsed
// report files. It follows the Elm architecture via Bubbletea: the
// left pane lists sections, the right pane shows the selected
// section's rows.
package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
)

// sectionItem is one entry in the section list.
type sectionItem struct {
	name string
	rows int
}

func (i sectionItem) Title() string       { return i.name }
func (i sectionItem) Description() string { return plural(i.rows, "row") }
func (i sectionItem) FilterValue() string { return i.name }

// App is the TUI application. It implements tea.Model.
type App struct {
	network  *domain.ParsedNetwork
	sections list.Model
	content  viewport.Model
	styles   *Styles
	width    int
	height   int
	ready    bool
}

// NewApp creates the section browser for an already-parsed network.
func NewApp(network *domain.ParsedNetwork) *App {
	items := make([]list.Item, 0)
	for _, name := range network.SectionNames() {
		items = append(items, sectionItem{name: name, rows: network.Section(name).NumRows()})
	}

	styles := DefaultStyles()
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Sections"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(true)

	return &App{
		network:  network,
		sections: l,
		styles:   styles,
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if a.sections.FilterState() != list.Filtering {
				return a, tea.Quit
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		a.ready = true
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	before := a.selectedSection()
	a.sections, cmd = a.sections.Update(msg)
	cmds = append(cmds, cmd)

	if a.selectedSection() != before {
		a.renderSelection()
	}

	a.content, cmd = a.content.Update(msg)
	cmds = append(cmds, cmd)

	return a, tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	left := a.styles.ListPane.Render(a.sections.View())
	right := a.styles.ContentPane.Render(a.content.View())
	panes := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	help := a.styles.Help.Render("↑/↓ select · / filter · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, panes, help)
}

// layout resizes both panes to the current terminal size.
func (a *App) layout() {
	listWidth := a.width / 3
	contentWidth := a.width - listWidth - 4
	height := a.height - 3

	a.sections.SetSize(listWidth, height)
	a.content = viewport.New(contentWidth, height)
	a.renderSelection()
}

// selectedSection returns the currently highlighted section name.
func (a *App) selectedSection() string {
	item, ok := a.sections.SelectedItem().(sectionItem)
	if !ok {
		return ""
	}
	return item.name
}

// renderSelection fills the content pane with the selected section.
func (a *App) renderSelection() {
	name := a.selectedSection()
	if name == "" {
		a.content.SetContent("No sections.")
		return
	}

	t := a.network.Section(name)
	header := a.styles.Title.Render(name)
	a.content.SetContent(header + "\n\n" + RenderTable(t, a.content.Width))
}

// RenderTable renders a table as fixed-width columns, truncated to the
// given width.
func RenderTable(t *domain.Table, width int) string {
	if t.IsEmpty() {
		return "(no rows)"
	}

	keys := t.Keys()
	widths := make([]int, len(keys))
	for i, key := range keys {
		widths[i] = len(key)
	}
	for i := range t.Rows {
		for j, key := range keys {
			if n := len(t.Cell(i, key).String()); n > widths[j] {
				widths[j] = n
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		var parts []string
		for j, cell := range cells {
			parts = append(parts, pad(cell, widths[j]))
		}
		line := strings.Join(parts, "  ")
		if width > 0 && len(line) > width {
			line = line[:width]
		}
		b.WriteString(line + "\n")
	}

	writeRow(keys)
	cells := make([]string, len(keys))
	for i := range t.Rows {
		for j, key := range keys {
			cells[j] = t.Cell(i, key).String()
		}
		writeRow(cells)
	}
	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return strconv.Itoa(n) + " " + unit + "s"
}
