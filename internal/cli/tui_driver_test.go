package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alexanderramin/presence/internal/api"
	"github.com/alexanderramin/presence/internal/config"
	"github.com/alexanderramin/presence/internal/domain"
	"github.com/alexanderramin/presence/internal/panel"
	"github.com/alexanderramin/presence/internal/repository"
	"github.com/alexanderramin/presence/internal/teatest"
	"github.com/alexanderramin/presence/internal/testutil"
)

// stubClient serves the fixtures from memory so dashboard Cmds return
// immediately inside the synchronous driver.
type stubClient struct {
	mu         sync.Mutex
	users      []api.User
	quarters   []api.Quarter
	reports    map[string]string
	failList   map[string]error
	failReport map[string]error
	calls      []string
}

func newStubClient() *stubClient {
	return &stubClient{
		users:      testutil.FixtureUsers,
		quarters:   testutil.FixtureQuarters,
		reports:    testutil.FixtureReports(),
		failList:   make(map[string]error),
		failReport: make(map[string]error),
	}
}

func (c *stubClient) record(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, path)
}

func (c *stubClient) Users(ctx context.Context) ([]api.User, error) {
	c.record(api.PathUsers)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.failList[api.PathUsers]; err != nil {
		return nil, err
	}
	return c.users, nil
}

func (c *stubClient) Quarters(ctx context.Context) ([]api.Quarter, error) {
	c.record(api.PathQuarters)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.failList[api.PathQuarters]; err != nil {
		return nil, err
	}
	return c.quarters, nil
}

func (c *stubClient) Report(ctx context.Context, path string, id int) (api.Rows, error) {
	c.record(fmt.Sprintf("%s/%d", path, id))
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.failReport[path]; err != nil {
		return nil, err
	}
	var rows api.Rows
	if err := json.Unmarshal([]byte(c.reports[path]), &rows); err != nil {
		return nil, fmt.Errorf("%w: %v", api.ErrInvalidPayload, err)
	}
	return rows, nil
}

func (c *stubClient) Available(ctx context.Context) bool { return true }

func (c *stubClient) setReport(path, body string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reports[path] = body
}

func (c *stubClient) failReports(path string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failReport[path] = err
}

func (c *stubClient) failLists(path string, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err == nil {
		delete(c.failList, path)
		return
	}
	c.failList[path] = err
}

// Calls returns every path requested so far, report paths with their id.
func (c *stubClient) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

// testApp wires an App over client with selections stored in an in-memory DB.
func testApp(t *testing.T, client api.Client) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	cfg := config.DefaultConfig()
	cfg.API.BaseURL = "http://presence.test"

	return &App{
		API:        client,
		Config:     cfg,
		Selections: repository.NewSQLiteSelectionRepo(database),
		UoW:        testutil.NewTestUoW(database),
	}
}

// TestDriver wraps teatest.Driver with dashboard-specific inspection methods.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App.
// It constructs the appModel, sets terminal size, and drains Init(),
// which loads every panel's selector from the stub client.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 60), teatest.WithCmdTimeout(time.Second))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// Choose moves the active panel's cursor to option i (0 is "none") and
// applies it.
func (d *TestDriver) Choose(i int) {
	d.T.Helper()
	d.PressKey('g')
	for range i {
		d.Press("down")
	}
	d.Press("enter")
}

// ── Dashboard inspection ─────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveTab returns the index of the selected tab.
func (d *TestDriver) ActiveTab() int {
	return d.appModel().active
}

// ActiveReport returns the report shown by the selected tab.
func (d *TestDriver) ActiveReport() domain.ReportKind {
	m := d.appModel()
	return m.activeView().Report()
}

// Panel returns the panel state of the tab showing kind.
func (d *TestDriver) Panel(kind domain.ReportKind) *panel.Panel {
	d.T.Helper()
	m := d.appModel()
	i := m.tabFor(kind)
	if i < 0 {
		d.T.Fatalf("no tab for report %s", kind)
	}
	return m.tabs[i].(*panelView).panel
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
