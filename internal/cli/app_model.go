package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/presence/internal/cli/formatter"
	"github.com/alexanderramin/presence/internal/domain"
	"github.com/alexanderramin/presence/internal/panel"
	"github.com/alexanderramin/presence/internal/report"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the dashboard.
// It owns one tab per report and routes messages between them.
type appModel struct {
	state    *SharedState
	tabs     []View
	active   int
	quitting bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{App: app}

	defs := report.Definitions()
	tabs := make([]View, 0, len(defs))
	for _, def := range defs {
		tabs = append(tabs, newPanelView(state, def))
	}
	return appModel{state: state, tabs: tabs}
}

// activeView returns the selected tab, or nil.
func (m *appModel) activeView() View {
	if m.active < 0 || m.active >= len(m.tabs) {
		return nil
	}
	return m.tabs[m.active]
}

// tabFor returns the index of the tab showing kind, or -1.
func (m *appModel) tabFor(kind domain.ReportKind) int {
	for i, v := range m.tabs {
		if v.Report() == kind {
			return i
		}
	}
	return -1
}

// updateTab forwards msg to one tab.
func (m *appModel) updateTab(i int, msg tea.Msg) tea.Cmd {
	if i < 0 || i >= len(m.tabs) {
		return nil
	}
	updated, cmd := m.tabs[i].Update(msg)
	m.tabs[i] = updated.(View)
	return cmd
}

// ── bubbletea interface ──────────────────────────────────────────────────────

// Init starts every panel at once so each selector loads independently.
func (m appModel) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(m.tabs))
	for _, v := range m.tabs {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	// Async results go to the panel that asked for them, visible or not.
	case entitiesLoadedMsg:
		return m, m.updateTab(m.tabFor(msg.report), msg)

	case reportLoadedMsg:
		return m, m.updateTab(m.tabFor(msg.report), msg)

	case spinner.TickMsg:
		// Each spinner ignores ticks carrying another spinner's ID.
		var cmds []tea.Cmd
		for i := range m.tabs {
			if cmd := m.updateTab(i, msg); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case switchTabMsg:
		if msg.index >= 0 && msg.index < len(m.tabs) {
			m.active = msg.index
		}
		return m, nil
	}

	return m, m.updateTab(m.active, msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case "tab", "right", "l":
		m.active = (m.active + 1) % len(m.tabs)
		return m, nil

	case "shift+tab", "left", "h":
		m.active = (m.active - 1 + len(m.tabs)) % len(m.tabs)
		return m, nil

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return m, switchTab(int(msg.String()[0] - '1'))
	}

	return m, m.updateTab(m.active, msg)
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())
	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("presence")
	if m.state.App != nil && m.state.App.Config.API.BaseURL != "" {
		title += "  " + formatter.Dim(m.state.App.Config.API.BaseURL)
	}

	tabs := make([]string, 0, len(m.tabs))
	for i, v := range m.tabs {
		label := fmt.Sprintf("%d %s", i+1, v.Title())
		if i == m.active {
			tabs = append(tabs, formatter.StyleHeader.Render(label))
		} else {
			tabs = append(tabs, formatter.Dim(label))
		}
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return title + "\n" + strings.Join(tabs, formatter.Dim("  │  ")) + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if v := m.activeView(); v != nil {
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
	}
	hints = append(hints, formatter.Dim("tab: next report"), formatter.Dim("q: quit"))

	bar := strings.Join(hints, "  ")
	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// selections reports what each panel shows, for remembering between runs.
// Panels whose selector never loaded are left out of both lists.
func (m appModel) selections() (chosen []domain.PanelSelection, cleared []domain.ReportKind) {
	for _, v := range m.tabs {
		pv, ok := v.(*panelView)
		if !ok || pv.panel.Selector() != panel.SelectorReady {
			continue
		}
		e, ok := pv.panel.Selected()
		if !ok {
			cleared = append(cleared, pv.Report())
			continue
		}
		chosen = append(chosen, domain.PanelSelection{
			Report:     pv.Report(),
			EntityID:   e.ID,
			EntityName: e.Name,
		})
	}
	return chosen, cleared
}
