package cli

import (
	"github.com/alexanderramin/presence/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// View is the interface that all dashboard tabs implement.
// It extends tea.Model with routing and help metadata.
type View interface {
	tea.Model
	Report() domain.ReportKind
	ShortHelp() []key.Binding // key hints shown in the bottom bar
	Title() string            // tab label for this view
}
