// Package teatest runs bubbletea models without a terminal.
//
// A Driver calls Update itself and runs each returned Cmd before taking the
// next input, so assertions see the model after all async loads settled.
// Spinner ticks are never fed back: every panel keeps one armed while it
// loads, and replaying them would spin until the depth limit.
package teatest

import (
	"testing"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// MaxDrainDepth bounds how many Cmds one input may chain.
const MaxDrainDepth = 100

// DefaultCmdTimeout fits in-memory stubs. Tests that go over HTTP raise it
// with WithCmdTimeout.
const DefaultCmdTimeout = 10 * time.Millisecond

// Driver feeds input to a tea.Model and drains its Cmds.
type Driver struct {
	T     *testing.T
	Model tea.Model

	CmdTimeout time.Duration

	// Quitting is set once a Cmd returned tea.QuitMsg.
	Quitting bool

	// Delivered lists every message Update received from a Cmd, in order.
	// Input sent by the test itself is not recorded.
	Delivered []tea.Msg
}

// Option configures a Driver.
type Option func(*Driver)

// New creates a Driver for model. Call DrainInit to run model.Init.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model, CmdTimeout: DefaultCmdTimeout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// WithCmdTimeout sets how long one Cmd may run before it is dropped.
func WithCmdTimeout(timeout time.Duration) Option {
	return func(d *Driver) {
		d.CmdTimeout = timeout
	}
}

// DrainInit runs the model's Init command and everything it triggers.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.drain(d.Model.Init(), 0)
}

// Send delivers msg and drains the resulting Cmds. Input after quit is
// ignored, as tea.Program would.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.drain(cmd, 0)
}

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"ctrl+c":    tea.KeyCtrlC,
}

// Press sends one key per name, using the names bubbletea's KeyMsg.String
// reports. Anything else is typed rune by rune.
func (d *Driver) Press(names ...string) {
	d.T.Helper()
	for _, name := range names {
		if typ, ok := namedKeys[name]; ok {
			d.Send(tea.KeyMsg{Type: typ})
			continue
		}
		for _, r := range name {
			d.PressKey(r)
		}
	}
}

// PressKey sends a single rune.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// View returns the model's current rendering.
func (d *Driver) View() string {
	return d.Model.View()
}

// DeliveredOf returns the delivered messages of type T.
func DeliveredOf[T tea.Msg](d *Driver) []T {
	var out []T
	for _, msg := range d.Delivered {
		if m, ok := msg.(T); ok {
			out = append(out, m)
		}
	}
	return out
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: drain depth limit (%d) reached", MaxDrainDepth)
		return
	}

	msg := run(cmd, d.CmdTimeout)
	switch m := msg.(type) {
	case nil, spinner.TickMsg:
		return
	case tea.BatchMsg:
		for _, sub := range m {
			d.drain(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
	}

	d.Delivered = append(d.Delivered, msg)
	var next tea.Cmd
	d.Model, next = d.Model.Update(msg)
	if !d.Quitting {
		d.drain(next, depth+1)
	}
}

// run executes cmd, giving up after timeout. A Cmd that times out keeps
// running in its goroutine and its result is discarded.
func run(cmd tea.Cmd, timeout time.Duration) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() {
		ch <- cmd()
	}()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(timeout):
		return nil
	}
}
