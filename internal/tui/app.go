package tui

import (
	"ftracker/internal/config"
	"ftracker/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenReports Screen = iota
	ScreenDetail
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	reports ReportsModel
	detail  DetailModel
	help    HelpModel

	data    []service.Report
	display config.DisplayConfig

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App over already computed reports
func NewApp(reports []service.Report, summary service.Summary, display config.DisplayConfig) *App {
	return &App{
		screen:  ScreenReports,
		data:    reports,
		display: display,
		reports: NewReportsModel(reports, summary),
		help:    NewHelpModel(),
	}
}

// Screen returns the screen currently shown
func (a *App) Screen() Screen {
	return a.screen
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.reports.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenReports
			return a, nil
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
			}
			return a, nil
		case "esc":
			switch a.screen {
			case ScreenHelp:
				a.screen = a.prevScreen
			case ScreenDetail:
				a.screen = ScreenReports
			}
			return a, nil
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case OpenDetailMsg:
		if msg.Index < 0 || msg.Index >= len(a.data) {
			return a, nil
		}
		a.detail = NewDetailModel(a.data, msg.Index, a.display.ChartHeight, a.width, a.height)
		a.screen = ScreenDetail
		return a, a.detail.Init()
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenReports:
		var m tea.Model
		m, cmd = a.reports.Update(msg)
		a.reports = m.(ReportsModel)
	case ScreenDetail:
		var m tea.Model
		m, cmd = a.detail.Update(msg)
		a.detail = m.(DetailModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenReports:
		content = a.reports.View()
	case ScreenDetail:
		content = a.detail.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("Fitness Tracker Report")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Workouts", ScreenReports},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

// OpenDetailMsg asks the app to show the report at Index
type OpenDetailMsg struct {
	Index int
}
