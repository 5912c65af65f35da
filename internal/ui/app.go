package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rkeller/levelup/internal/records"
	"github.com/rkeller/levelup/internal/storage"
	"github.com/rkeller/levelup/internal/ui/keys"
	"github.com/rkeller/levelup/internal/ui/styles"
	"github.com/rkeller/levelup/internal/ui/views"
)

const keyActiveTab = "activeTab_v1"

// tabView is the contract every tab implements
type tabView interface {
	SetSize(width, height int)
	Update(msg tea.Msg) tea.Cmd
	View() string
	InputActive() bool
}

var tabNames = []string{"Daily", "Weekly", "Misc", "Finances", "Journal", "Schedule"}

// Stores bundles the per-tab record stores
type Stores struct {
	Daily    *records.TaskStore
	Weekly   *records.WeeklyStore
	Misc     *records.TaskStore
	Finance  *records.FinanceStore
	Journal  *records.JournalStore
	Schedule *records.ScheduleStore
}

// App is the top-level Bubble Tea model. It owns the tab bar and routes
// messages to the active tab.
type App struct {
	kv     storage.KV
	keys   keys.KeyMap
	styles *styles.Styles

	tabs      []tabView
	activeTab int

	width  int
	height int
}

// NewApp creates the application model. The active tab is restored from the
// previous session when possible.
func NewApp(stores Stores, kv storage.KV) *App {
	app := &App{
		kv:     kv,
		keys:   keys.DefaultKeyMap(),
		styles: styles.NewStyles(),
		tabs: []tabView{
			views.NewTodoView("Daily", stores.Daily),
			views.NewWeeklyView(stores.Weekly),
			views.NewTodoView("Misc", stores.Misc),
			views.NewFinanceView(stores.Finance),
			views.NewJournalView(stores.Journal),
			views.NewScheduleView(stores.Schedule),
		},
	}

	if raw, err := kv.GetItem(keyActiveTab); err == nil && raw != "" {
		if idx, err := strconv.Atoi(raw); err == nil && idx >= 0 && idx < len(app.tabs) {
			app.activeTab = idx
		}
	}

	return app
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return nil
}

func (a *App) setActiveTab(idx int) {
	a.activeTab = idx
	// Best effort; the in-memory selection is what matters
	_ = a.kv.SetItem(keyActiveTab, strconv.Itoa(idx))
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		for _, tab := range a.tabs {
			tab.SetSize(msg.Width, msg.Height-2)
		}
		return a, nil

	case tea.KeyMsg:
		// ctrl+c always quits, even mid-form
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

		if !a.tabs[a.activeTab].InputActive() {
			switch {
			case key.Matches(msg, a.keys.Quit):
				return a, tea.Quit

			case key.Matches(msg, a.keys.NextView):
				a.setActiveTab((a.activeTab + 1) % len(a.tabs))
				return a, nil

			case key.Matches(msg, a.keys.PrevView):
				a.setActiveTab((a.activeTab + len(a.tabs) - 1) % len(a.tabs))
				return a, nil
			}

			if len(msg.String()) == 1 {
				if idx := int(msg.String()[0] - '1'); idx >= 0 && idx < len(a.tabs) {
					a.setActiveTab(idx)
					return a, nil
				}
			}
		}
	}

	return a, a.tabs[a.activeTab].Update(msg)
}

func (a *App) renderTabBar() string {
	s := a.styles

	var rendered []string
	for i, name := range tabNames {
		if i == a.activeTab {
			rendered = append(rendered, s.TabActive.Render(name))
		} else {
			rendered = append(rendered, s.Tab.Render(name))
		}
	}

	bar := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return lipgloss.PlaceHorizontal(a.width, lipgloss.Center, bar)
}

// View implements tea.Model
func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(a.renderTabBar())
	b.WriteString("\n\n")
	b.WriteString(a.tabs[a.activeTab].View())
	return b.String()
}
