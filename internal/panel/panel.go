// Package panel holds the state of one report panel: its entity selector,
// the in-flight report request and what the panel currently shows. It does
// no I/O; callers perform the requests a panel asks for and hand the
// results back.
package panel

import (
	"errors"

	"github.com/alexanderramin/presence/internal/chart"
	"github.com/alexanderramin/presence/internal/domain"
	"github.com/alexanderramin/presence/internal/report"
)

// State is the report lifecycle of a panel.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateRendered
	StateEmpty
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateRendered:
		return "rendered"
	case StateEmpty:
		return "empty"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// SelectorState is the lifecycle of the entity list.
type SelectorState int

const (
	SelectorLoading SelectorState = iota
	SelectorReady
	SelectorFailed
)

// Ticket identifies one report request. Only the ticket issued by the most
// recent selection may change what the panel shows.
type Ticket struct {
	Seq      uint64
	EntityID int
}

// Visibility lists which regions of the panel are shown.
type Visibility struct {
	Selector bool
	Loading  bool
	Chart    bool
	Message  bool
	Avatar   bool
}

// Panel is one report's selector and chart area.
type Panel struct {
	def *report.Definition

	entities    []domain.Entity
	avatars     domain.AvatarIndex
	selector    SelectorState
	selectorErr error

	state     State
	selected  int
	hasChoice bool
	seq       uint64
	lastErr   error

	loading       bool
	container     chart.Container
	avatarVisible bool
	avatarURL     string
}

// New returns a panel waiting for its entity list.
func New(def *report.Definition) *Panel {
	return &Panel{
		def:      def,
		selector: SelectorLoading,
		loading:  true,
	}
}

// Definition returns the report this panel shows.
func (p *Panel) Definition() *report.Definition { return p.def }

// EntitiesLoaded fills the selector in the order given and builds the
// avatar lookup.
func (p *Panel) EntitiesLoaded(entities []domain.Entity) {
	p.entities = append([]domain.Entity(nil), entities...)
	p.avatars = domain.NewAvatarIndex(entities)
	p.selector = SelectorReady
	p.selectorErr = nil
	p.loading = false
}

// EntitiesFailed records a failed selector load. The loading indicator is
// stopped so the panel can offer a retry.
func (p *Panel) EntitiesFailed(err error) {
	p.selector = SelectorFailed
	p.selectorErr = err
	p.loading = false
}

// RetryEntities puts the selector back into its loading state.
func (p *Panel) RetryEntities() {
	p.selector = SelectorLoading
	p.selectorErr = nil
	p.loading = true
}

// Select starts a report request for entityID. The chart and avatar are
// hidden until the request completes.
func (p *Panel) Select(entityID int) Ticket {
	p.seq++
	p.selected = entityID
	p.hasChoice = true
	p.state = StateLoading
	p.lastErr = nil
	p.loading = true
	p.container.Hide()
	p.avatarVisible = false
	return Ticket{Seq: p.seq, EntityID: entityID}
}

// Clear handles choosing "none": chart and avatar are hidden, nothing is
// requested, and any request still in flight is ignored when it returns.
func (p *Panel) Clear() {
	p.seq++
	p.hasChoice = false
	p.state = StateIdle
	p.lastErr = nil
	p.loading = false
	p.container.Hide()
	p.avatarVisible = false
}

// Complete applies the outcome of the request identified by t. It returns
// false, changing nothing, when t is not the panel's latest ticket.
func (p *Panel) Complete(t Ticket, table *chart.DataTable, err error) bool {
	if t.Seq != p.seq || !p.hasChoice {
		return false
	}
	p.loading = false
	p.revealAvatar(t.EntityID)

	if err == nil {
		var c chart.Chart
		c, err = p.def.Chart(table)
		if err == nil {
			p.container.Draw(c)
			p.container.Show()
			p.state = StateRendered
			return true
		}
	}

	p.lastErr = err
	if errors.Is(err, report.ErrNoData) && p.def.EmptyMessage != "" {
		p.state = StateEmpty
		p.container.ShowMessage(p.def.EmptyMessage)
		return true
	}
	p.state = StateFailed
	p.container.ShowMessage(report.NoDataMessage)
	return true
}

// revealAvatar shows the selected user's avatar. User panels do this on
// success and on failure alike.
func (p *Panel) revealAvatar(entityID int) {
	if !p.def.ShowAvatar {
		return
	}
	p.avatarURL = p.avatars[entityID]
	p.avatarVisible = true
}

// Visibility reports which regions are shown. At most one of Loading,
// Chart and Message is true.
func (p *Panel) Visibility() Visibility {
	v := Visibility{
		Selector: p.selector == SelectorReady,
		Loading:  p.loading,
		Avatar:   p.avatarVisible,
	}
	if !p.loading && p.container.Visible() {
		v.Chart = p.container.Chart() != nil
		v.Message = !v.Chart && p.container.Message() != ""
	}
	return v
}

func (p *Panel) State() State                  { return p.state }
func (p *Panel) Selector() SelectorState       { return p.selector }
func (p *Panel) SelectorErr() error            { return p.selectorErr }
func (p *Panel) Entities() []domain.Entity     { return p.entities }
func (p *Panel) Container() *chart.Container   { return &p.container }
func (p *Panel) LastErr() error                { return p.lastErr }
func (p *Panel) AvatarURL() string             { return p.avatarURL }
func (p *Panel) CurrentTicket() (Ticket, bool) { return Ticket{Seq: p.seq, EntityID: p.selected}, p.hasChoice }

// Selected returns the chosen entity, if any.
func (p *Panel) Selected() (domain.Entity, bool) {
	if !p.hasChoice {
		return domain.Entity{}, false
	}
	if e, ok := domain.FindEntity(p.entities, p.selected); ok {
		return e, true
	}
	return domain.Entity{ID: p.selected}, true
}
