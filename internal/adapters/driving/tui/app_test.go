package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hydraworks-labs/inpsheet-cli/internal/core/domain"
	"github.com/hydraworks-labs/inpsheet-cli/internal/inp"
)

const tuiFixture = `*** Branch Table ***

Branch  Name
30      J84
280     Outlet

*** Pump Table ***

Pump  Name
6     Sullivan
`

func fixtureNetwork(t *testing.T) *domain.ParsedNetwork {
	t.Helper()
	p, err := inp.New(inp.Options{})
	require.NoError(t, err)
	return p.Parse(tuiFixture)
}

func TestNewApp_ListsSections(t *testing.T) {
	app := NewApp(fixtureNetwork(t))

	items := app.sections.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Branch_Table", items[0].(sectionItem).name)
	assert.Equal(t, "2 rows", items[0].(sectionItem).Description())
}

func TestApp_ViewAfterResize(t *testing.T) {
	app := NewApp(fixtureNetwork(t))

	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	view := model.(*App).View()

	assert.Contains(t, view, "Sections")
	assert.Contains(t, view, "Branch_Table")
}

func TestApp_QuitKey(t *testing.T) {
	app := NewApp(fixtureNetwork(t))
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRenderTable(t *testing.T) {
	network := fixtureNetwork(t)
	out := RenderTable(network.Section("Branch_Table"), 0)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Branch")
	assert.Contains(t, lines[1], "J84")
}

func TestRenderTable_Empty(t *testing.T) {
	tbl := domain.NewTable([]domain.ColumnDescriptor{{Name: "A"}})
	assert.Equal(t, "(no rows)", RenderTable(tbl, 80))
}
