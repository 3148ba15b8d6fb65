package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/presence/internal/cli/formatter"
	"github.com/alexanderramin/presence/internal/domain"
	"github.com/alexanderramin/presence/internal/panel"
	"github.com/alexanderramin/presence/internal/report"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// selectorRows is how many selector options are listed at once.
const selectorRows = 6

// panelView is one dashboard tab: a selector list above the report area.
// The cursor indexes the options, where 0 is "none" and i is entities[i-1].
type panelView struct {
	state   *SharedState
	panel   *panel.Panel
	cursor  int
	applied int
	spinner spinner.Model
}

func newPanelView(state *SharedState, def *report.Definition) *panelView {
	return &panelView{
		state: state,
		panel: panel.New(def),
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(formatter.StylePurple),
		),
	}
}

func (v *panelView) Report() domain.ReportKind { return v.panel.Definition().Kind }
func (v *panelView) Title() string             { return v.panel.Definition().Title }

func (v *panelView) ShortHelp() []key.Binding {
	if v.panel.Selector() == panel.SelectorFailed {
		return []key.Binding{
			key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry")),
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "choose")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "show")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
	}
}

func (v *panelView) Init() tea.Cmd {
	return tea.Batch(v.spinner.Tick, v.loadEntities())
}

// loadEntities reads the selector list and, when selections are
// remembered, the entity chosen last time.
func (v *panelView) loadEntities() tea.Cmd {
	app := v.state.App
	def := v.panel.Definition()
	return func() tea.Msg {
		ctx := context.Background()
		entities, err := report.Entities(ctx, app.API, def.Source)
		if err != nil {
			return entitiesLoadedMsg{report: def.Kind, err: err}
		}
		msg := entitiesLoadedMsg{report: def.Kind, entities: entities}
		if app.remembers() {
			// A missing or unreadable selection just means nothing to restore.
			if sel, err := app.Selections.Get(ctx, def.Kind); err == nil {
				id := sel.EntityID
				msg.restoreID = &id
			}
		}
		return msg
	}
}

func (v *panelView) fetchReport(t panel.Ticket) tea.Cmd {
	client := v.state.App.API
	def := v.panel.Definition()
	return func() tea.Msg {
		table, err := def.Fetch(context.Background(), client, t.EntityID)
		return reportLoadedMsg{report: def.Kind, ticket: t, table: table, err: err}
	}
}

func (v *panelView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case entitiesLoadedMsg:
		if msg.err != nil {
			v.panel.EntitiesFailed(msg.err)
			return v, nil
		}
		v.panel.EntitiesLoaded(msg.entities)
		if msg.restoreID != nil {
			return v, v.restore(*msg.restoreID)
		}
		return v, nil

	case reportLoadedMsg:
		v.panel.Complete(msg.ticket, msg.table, msg.err)
		return v, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		return v.updateKeys(msg)
	}
	return v, nil
}

// restore selects a remembered entity if it is still offered.
func (v *panelView) restore(id int) tea.Cmd {
	for i, e := range v.panel.Entities() {
		if e.ID == id {
			v.cursor = i + 1
			return v.apply()
		}
	}
	return nil
}

func (v *panelView) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "r" {
		return v, v.retry()
	}
	if v.panel.Selector() != panel.SelectorReady {
		return v, nil
	}

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(v.panel.Entities()) {
			v.cursor++
		}
	case "home", "g":
		v.cursor = 0
	case "end", "G":
		v.cursor = len(v.panel.Entities())
	case "enter", " ":
		return v, v.apply()
	}
	return v, nil
}

// apply makes the option under the cursor the panel's choice.
func (v *panelView) apply() tea.Cmd {
	v.applied = v.cursor
	if v.cursor == 0 {
		v.panel.Clear()
		return nil
	}
	e := v.panel.Entities()[v.cursor-1]
	return v.fetchReport(v.panel.Select(e.ID))
}

// retry reloads a failed selector list, or re-requests the report for the
// applied option. The cursor may have moved since and is left alone.
func (v *panelView) retry() tea.Cmd {
	switch v.panel.Selector() {
	case panel.SelectorFailed:
		v.panel.RetryEntities()
		return v.loadEntities()
	case panel.SelectorReady:
		if v.applied > 0 {
			e := v.panel.Entities()[v.applied-1]
			return v.fetchReport(v.panel.Select(e.ID))
		}
	}
	return nil
}

func (v *panelView) View() string {
	var b strings.Builder
	b.WriteString("\n")

	source := formatter.SourceColor(v.panel.Definition().Source)
	b.WriteString("  " + formatter.Bold(v.Title()) + "  " + source.Render(string(v.panel.Definition().Source)) + "\n\n")

	switch v.panel.Selector() {
	case panel.SelectorFailed:
		b.WriteString("  " + formatter.Error(v.panel.SelectorErr()) + "\n")
		b.WriteString("  " + formatter.Dim("press r to retry") + "\n")
		return b.String()
	case panel.SelectorReady:
		b.WriteString(v.renderSelector())
		b.WriteString("\n")
	}

	vis := v.panel.Visibility()
	if vis.Avatar {
		b.WriteString("  " + formatter.Avatar(v.panel.AvatarURL()) + "\n\n")
	}
	switch {
	case vis.Loading:
		b.WriteString("  " + v.spinner.View() + " " + formatter.Dim("Loading...") + "\n")
	case vis.Chart, vis.Message:
		b.WriteString(indent(v.panel.Container().Render(v.state.ChartWidth()), "  "))
	}
	return b.String()
}

// renderSelector lists a window of options around the cursor. The applied
// choice is marked with a dot.
func (v *panelView) renderSelector() string {
	entities := v.panel.Entities()
	total := len(entities) + 1

	start := 0
	if v.cursor >= selectorRows {
		start = v.cursor - selectorRows + 1
	}
	end := min(start+selectorRows, total)

	var b strings.Builder
	for i := start; i < end; i++ {
		label := "none"
		if i > 0 {
			label = formatter.EntityLabel(entities[i-1])
		}

		cursor := "  "
		switch {
		case i == v.cursor:
			cursor = formatter.StyleGreen.Render("▸ ")
			label = formatter.Bold(label)
		case i == 0:
			label = formatter.Dim(label)
		}
		mark := " "
		if i == v.applied {
			mark = formatter.StyleYellow.Render("●")
		}
		b.WriteString(fmt.Sprintf("  %s%s %s\n", cursor, mark, label))
	}
	if total > selectorRows {
		b.WriteString("  " + formatter.Dim(fmt.Sprintf("%d/%d", v.cursor+1, total)) + "\n")
	}
	return b.String()
}

// indent prefixes every non-empty line of s.
func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n") + "\n"
}
