package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/dealdesk/internal/cli/formatter"
	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/repository"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// dealsLoadedMsg signals that pipeline data has been loaded.
type dealsLoadedMsg struct {
	deals []*domain.Deal
	err   error
}

// dashboardView is an interactive, navigable pipeline browser: a list of
// deal cards with a filter line and a detail pane.
type dashboardView struct {
	app     *App
	deals   []*domain.Deal
	cursor  int
	loading bool
	err     error

	// Filtering
	filtering bool
	filter    string

	// Detail pane
	inspecting bool
}

func newDashboardView(app *App) *dashboardView {
	return &dashboardView{app: app, loading: true}
}

func (v *dashboardView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "inspect")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

func (v *dashboardView) Init() tea.Cmd {
	return v.loadDeals()
}

func (v *dashboardView) loadDeals() tea.Cmd {
	app := v.app
	return func() tea.Msg {
		deals, err := app.Deals.List(context.Background(), repository.DealFilter{})
		return dealsLoadedMsg{deals: deals, err: err}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dealsLoadedMsg:
		v.loading = false
		if msg.err != nil {
			v.err = msg.err
			return v, nil
		}
		v.deals = msg.deals
		return v, nil

	case tea.KeyMsg:
		if v.filtering {
			return v.updateFilter(msg)
		}
		return v.updateNormal(msg)
	}
	return v, nil
}

func (v *dashboardView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := v.visibleDeals()

	switch msg.String() {
	case "q", "ctrl+c":
		return v, tea.Quit
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(visible)-1 {
			v.cursor++
		}
	case "enter":
		if v.cursor < len(visible) {
			v.inspecting = true
		}
	case "esc":
		if v.inspecting {
			v.inspecting = false
		} else if v.filter != "" {
			v.filter = ""
			v.cursor = 0
		}
	case "/":
		v.filtering = true
		v.inspecting = false
	case "r":
		v.loading = true
		return v, v.loadDeals()
	}
	return v, nil
}

func (v *dashboardView) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", "esc":
		v.filtering = false
	case "backspace":
		if len(v.filter) > 0 {
			v.filter = v.filter[:len(v.filter)-1]
		}
	default:
		if len(msg.Runes) == 1 {
			v.filter += string(msg.Runes)
		}
	}
	v.cursor = 0
	return v, nil
}

// visibleDeals applies the filter against name, client and stage.
func (v *dashboardView) visibleDeals() []*domain.Deal {
	if v.filter == "" {
		return v.deals
	}
	needle := strings.ToLower(v.filter)
	var out []*domain.Deal
	for _, d := range v.deals {
		hay := strings.ToLower(d.Name + " " + d.Client + " " + string(d.Stage) + " " + string(d.DealType))
		if strings.Contains(hay, needle) {
			out = append(out, d)
		}
	}
	return out
}

func (v *dashboardView) View() string {
	if v.loading {
		return formatter.Dim("Loading pipeline...")
	}
	if v.err != nil {
		return formatter.StyleRed.Render("Error: " + v.err.Error())
	}

	visible := v.visibleDeals()

	if v.inspecting && v.cursor < len(visible) {
		return formatter.FormatDealCard(visible[v.cursor]) + "\n" +
			formatter.Dim("esc back · q quit")
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Deal Pipeline") + "\n")

	if v.filtering || v.filter != "" {
		b.WriteString(formatter.Dim("filter: ") + v.filter)
		if v.filtering {
			b.WriteString(formatter.StyleHeader.Render("▌"))
		}
		b.WriteString("\n")
	}

	if len(visible) == 0 {
		b.WriteString(formatter.Dim("No matching deals.") + "\n")
	}

	for i, d := range visible {
		cursor := "  "
		line := fmt.Sprintf("%-28s %-22s %-16s %s %s",
			d.Name, d.Client,
			formatter.StageColor(d.Stage).Render(string(d.Stage)),
			formatter.Millions(d.Value),
			formatter.RenderProgress(float64(d.Progress)/100, 10))
		if i == v.cursor {
			cursor = formatter.StyleHeader.Render("❯ ")
			line = formatter.Bold(d.Name) + line[len(d.Name):]
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n" + formatter.Dim("↑/↓ navigate · enter inspect · / filter · r reload · q quit"))
	return b.String()
}
