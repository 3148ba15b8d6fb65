package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/alexanderramin/presence/internal/api"
	"github.com/go-chi/chi/v5"
)

// FakeAPI is an in-process presence analyzer serving fixture data over
// HTTP. Every report path returns the same body for any entity unless a
// per-entity body is set.
type FakeAPI struct {
	Server *httptest.Server

	mu        sync.Mutex
	users     []api.User
	quarters  []api.Quarter
	reports   map[string]string
	byEntity  map[string]map[int]string
	failures  map[string]int
	requests  []string
	requestID []string
}

// NewFakeAPI starts a fake API loaded with the fixtures. It is closed when
// the test completes.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	f := &FakeAPI{
		users:    FixtureUsers,
		quarters: FixtureQuarters,
		reports:  FixtureReports(),
		byEntity: make(map[string]map[int]string),
		failures: make(map[string]int),
	}

	r := chi.NewRouter()
	r.Use(f.record)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/users", f.handleUsers)
		r.Get("/quarters", f.handleQuarters)
		for _, p := range []string{
			api.PathMeanTimeWeekday,
			api.PathPresenceStartEnd,
			api.PathPresenceWeekday,
			api.PathOvertimeQuarter,
		} {
			r.Get(p[len("/api/v1"):]+"/{id}", f.handleReport(p))
		}
	})

	f.Server = httptest.NewServer(r)
	t.Cleanup(f.Server.Close)
	return f
}

// URL returns the base URL of the fake API.
func (f *FakeAPI) URL() string { return f.Server.URL }

// SetUsers replaces the user list.
func (f *FakeAPI) SetUsers(users []api.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = users
}

// SetReport sets the body served for one entity of a report path.
func (f *FakeAPI) SetReport(path string, id int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.byEntity[path] == nil {
		f.byEntity[path] = make(map[int]string)
	}
	f.byEntity[path][id] = body
}

// Fail makes every request to path answer with status.
func (f *FakeAPI) Fail(path string, status int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[path] = status
}

// Requests returns the request paths seen so far, in order.
func (f *FakeAPI) Requests() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requests...)
}

// RequestIDs returns the X-Request-ID header of every request, in order.
func (f *FakeAPI) RequestIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.requestID...)
}

func (f *FakeAPI) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, r.URL.Path)
		f.requestID = append(f.requestID, r.Header.Get("X-Request-ID"))
		f.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

// failed writes the configured failure for prefix, if any.
func (f *FakeAPI) failed(w http.ResponseWriter, prefix string) bool {
	f.mu.Lock()
	status, ok := f.failures[prefix]
	f.mu.Unlock()
	if !ok {
		return false
	}
	http.Error(w, http.StatusText(status), status)
	return true
}

func (f *FakeAPI) handleUsers(w http.ResponseWriter, r *http.Request) {
	if f.failed(w, api.PathUsers) {
		return
	}
	f.mu.Lock()
	users := f.users
	f.mu.Unlock()
	writeJSON(w, users)
}

func (f *FakeAPI) handleQuarters(w http.ResponseWriter, r *http.Request) {
	if f.failed(w, api.PathQuarters) {
		return
	}
	f.mu.Lock()
	quarters := f.quarters
	f.mu.Unlock()
	writeJSON(w, quarters)
}

func (f *FakeAPI) handleReport(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if f.failed(w, path) {
			return
		}
		id, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			http.NotFound(w, r)
			return
		}

		f.mu.Lock()
		body, ok := f.byEntity[path][id]
		if !ok {
			body = f.reports[path]
		}
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
