package cli

import (
	"github.com/alexanderramin/presence/internal/chart"
	"github.com/alexanderramin/presence/internal/domain"
	"github.com/alexanderramin/presence/internal/panel"
	tea "github.com/charmbracelet/bubbletea"
)

// Messages exchanged between the panels, their async commands and the
// appModel. Every message names the report it belongs to so the appModel
// can route it to the right tab.

// entitiesLoadedMsg carries the selector list of one panel. restoreID is
// the remembered selection, if any.
type entitiesLoadedMsg struct {
	report    domain.ReportKind
	entities  []domain.Entity
	err       error
	restoreID *int
}

// reportLoadedMsg carries the outcome of one report request.
type reportLoadedMsg struct {
	report domain.ReportKind
	ticket panel.Ticket
	table  *chart.DataTable
	err    error
}

// switchTabMsg activates the tab at index.
type switchTabMsg struct {
	index int
}

// switchTab returns a tea.Cmd that activates a tab.
func switchTab(index int) tea.Cmd {
	return func() tea.Msg { return switchTabMsg{index: index} }
}

