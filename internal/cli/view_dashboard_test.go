package cli

import (
	"errors"
	"testing"

	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/teatest"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedView(deals ...*domain.Deal) *dashboardView {
	v := newDashboardView(&App{})
	model, _ := v.Update(dealsLoadedMsg{deals: deals})
	return model.(*dashboardView)
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	}
	return tea.KeyMsg{}
}

func testDeals() []*domain.Deal {
	return []*domain.Deal{
		{ID: "1", Name: "Project Atlas", Client: "Atlas Corp", Stage: domain.StageOrigination, Progress: 17},
		{ID: "2", Name: "Project Helios", Client: "Helios Energy", Stage: domain.StageSigning, Progress: 83},
	}
}

func TestDashboardView_LoadingState(t *testing.T) {
	v := newDashboardView(&App{})
	assert.Contains(t, v.View(), "Loading")
}

func TestDashboardView_LoadError(t *testing.T) {
	v := newDashboardView(&App{})
	model, _ := v.Update(dealsLoadedMsg{err: errors.New("db gone")})
	assert.Contains(t, model.View(), "db gone")
}

func TestDashboardView_ListsDeals(t *testing.T) {
	v := loadedView(testDeals()...)
	out := v.View()
	assert.Contains(t, out, "Project Atlas")
	assert.Contains(t, out, "Project Helios")
}

func TestDashboardView_CursorNavigation(t *testing.T) {
	v := loadedView(testDeals()...)

	assert.Equal(t, 0, v.cursor)

	model, _ := v.Update(keyMsg("j"))
	v = model.(*dashboardView)
	assert.Equal(t, 1, v.cursor)

	// Cursor clamps at the end of the list.
	model, _ = v.Update(keyMsg("j"))
	v = model.(*dashboardView)
	assert.Equal(t, 1, v.cursor)

	model, _ = v.Update(keyMsg("k"))
	v = model.(*dashboardView)
	assert.Equal(t, 0, v.cursor)
}

func TestDashboardView_InspectAndBack(t *testing.T) {
	v := loadedView(testDeals()...)

	model, _ := v.Update(keyMsg("enter"))
	v = model.(*dashboardView)
	require.True(t, v.inspecting)
	assert.Contains(t, v.View(), "Atlas Corp")

	model, _ = v.Update(keyMsg("esc"))
	v = model.(*dashboardView)
	assert.False(t, v.inspecting)
}

func TestDashboardView_Filter(t *testing.T) {
	v := loadedView(testDeals()...)

	model, _ := v.Update(keyMsg("/"))
	v = model.(*dashboardView)
	require.True(t, v.filtering)

	for _, r := range "helios" {
		model, _ = v.Update(keyMsg(string(r)))
		v = model.(*dashboardView)
	}
	model, _ = v.Update(keyMsg("enter"))
	v = model.(*dashboardView)

	visible := v.visibleDeals()
	require.Len(t, visible, 1)
	assert.Equal(t, "Project Helios", visible[0].Name)

	out := v.View()
	assert.Contains(t, out, "Project Helios")
	assert.NotContains(t, out, "Project Atlas")

	// esc clears the filter back to the full list.
	model, _ = v.Update(keyMsg("esc"))
	v = model.(*dashboardView)
	assert.Len(t, v.visibleDeals(), 2)
}

func TestDashboardView_QuitKeys(t *testing.T) {
	v := loadedView(testDeals()...)

	_, cmd := v.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

// Full flow against a real database: Init loads the pipeline, filtering
// and inspecting work on live data, and r reloads after a change.
func TestDashboardView_LoadsFromServices(t *testing.T) {
	app, _ := newTestApp(t)

	require.NoError(t, execute(t, app, "deal", "add",
		"--name", "Project Atlas", "--client", "Atlas Corp", "--value", "250"))
	require.NoError(t, execute(t, app, "deal", "add",
		"--name", "Project Helios", "--client", "Helios Energy"))

	d := teatest.New(t, newDashboardView(app))
	d.DrainInit()

	out := d.View()
	assert.Contains(t, out, "Project Atlas")
	assert.Contains(t, out, "Project Helios")

	d.Press('/')
	d.Type("atlas")
	d.PressEnter()
	assert.NotContains(t, d.View(), "Project Helios")

	d.PressEnter()
	assert.Contains(t, d.View(), "Atlas Corp")
	d.PressEsc()

	// New data shows up after a reload.
	d.PressEsc()
	require.NoError(t, execute(t, app, "deal", "add",
		"--name", "Project Nova", "--client", "Nova Labs"))
	d.Press('r')
	assert.Contains(t, d.View(), "Project Nova")

	d.Press('q')
	assert.True(t, d.Quitting)
}
