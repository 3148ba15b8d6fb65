package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Client reads pre-aggregated presence data from the presence API.
type Client interface {
	// Users returns the selectable users in the order the API lists them.
	Users(ctx context.Context) ([]User, error)

	// Quarters returns the selectable quarters in the order the API lists them.
	Quarters(ctx context.Context) ([]Quarter, error)

	// Report fetches the rows of one report for one entity. path is one of
	// the Path* report prefixes; id is appended as the last path segment.
	Report(ctx context.Context, path string, id int) (Rows, error)

	// Available checks whether the API answers at all.
	Available(ctx context.Context) bool
}

// httpClient implements Client over plain HTTP GETs.
type httpClient struct {
	cfg       ClientConfig
	http      *http.Client
	observer  Observer
	requestID func() string
}

// NewHTTPClient creates a Client for the API at cfg.BaseURL.
func NewHTTPClient(cfg ClientConfig, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	dial := time.Duration(cfg.DialTimeoutMs) * time.Millisecond
	if dial <= 0 {
		dial = 5 * time.Second
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: dial,
				}).DialContext,
			},
		},
		observer:  observer,
		requestID: uuid.NewString,
	}
}

func (c *httpClient) Users(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.getJSON(ctx, PathUsers, &users); err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	return users, nil
}

func (c *httpClient) Quarters(ctx context.Context) ([]Quarter, error) {
	var quarters []Quarter
	if err := c.getJSON(ctx, PathQuarters, &quarters); err != nil {
		return nil, fmt.Errorf("listing quarters: %w", err)
	}
	return quarters, nil
}

func (c *httpClient) Report(ctx context.Context, path string, id int) (Rows, error) {
	full := strings.TrimSuffix(path, "/") + "/" + strconv.Itoa(id)
	var rows Rows
	if err := c.getJSON(ctx, full, &rows); err != nil {
		return nil, fmt.Errorf("fetching %s: %w", full, err)
	}
	return rows, nil
}

func (c *httpClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+PathUsers, nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// getJSON issues one GET and decodes the body into out. There is no retry:
// a failed report fetch is surfaced to the panel as-is.
func (c *httpClient) getJSON(ctx context.Context, path string, out any) error {
	start := time.Now()
	reqID := c.requestID()

	if c.cfg.TimeoutMs > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
		defer cancel()
	}

	status, err := c.doRequest(ctx, path, reqID, out)
	if err != nil && ctx.Err() != nil {
		err = ErrTimeout
	} else if isConnectionError(err) {
		err = ErrUnavailable
	}

	c.observer.OnCallComplete(CallEvent{
		Path:       path,
		RequestID:  reqID,
		StatusCode: status,
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    err == nil,
		ErrorCode:  errorCode(err),
	})
	return err
}

func (c *httpClient) doRequest(ctx context.Context, path, reqID string, out any) (int, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", reqID)
	if c.cfg.UserAgent != "" {
		httpReq.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return 0, err
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return httpResp.StatusCode, fmt.Errorf("reading response: %w", err)
	}

	switch {
	case httpResp.StatusCode == http.StatusNotFound:
		return httpResp.StatusCode, ErrNotFound
	case httpResp.StatusCode != http.StatusOK:
		return httpResp.StatusCode, fmt.Errorf("%w %d: %s", ErrUnexpectedStatus, httpResp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return httpResp.StatusCode, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return httpResp.StatusCode, nil
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrUnexpectedStatus):
		return "STATUS"
	case errors.Is(err, ErrInvalidPayload):
		return "INVALID_PAYLOAD"
	default:
		return "UNKNOWN"
	}
}
