package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"boardsync/core/storage"

	"go.uber.org/zap"
)

// API is the upstream surface the sync services consume. It exists so that
// services can be tested against a stub without an HTTP round trip.
type API interface {
	// Users returns the full roster, persons and resources alike.
	Users(ctx context.Context) ([]User, error)
	// ProjectGroups returns all project groups.
	ProjectGroups(ctx context.Context) ([]ProjectGroup, error)
	// Projects returns all projects.
	Projects(ctx context.Context) ([]Project, error)
	// Absences returns the entire absence collection of one kind
	// ("vacation" or "sickness") in a single bulk call.
	Absences(ctx context.Context, kind string) ([]Absence, error)
}

// Client talks to the upstream ERP. It owns the bearer token lifecycle:
// authenticate on first use, re-authenticate exactly once when a request
// comes back unauthorized, abort on a second auth failure.
//
// The token lives on the client instance behind a mutex, not in package
// state, so two clients never race on each other's session.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *zap.Logger

	mu    sync.Mutex
	token string

	archiver *storage.Archiver
}

// New creates an ERP client from the configuration.
func New(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: time.Duration(timeout) * time.Second},
		logger: logger,
	}
}

// SetArchiver enables snapshot archiving of raw bulk payloads.
func (c *Client) SetArchiver(a *storage.Archiver) {
	c.archiver = a
}

// Authenticate exchanges the configured credentials for a bearer token.
// A rejection here is fatal for the run.
func (c *Client) Authenticate(ctx context.Context) error {
	payload, err := json.Marshal(map[string]string{
		"username": c.cfg.Username,
		"password": c.cfg.Password,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/api/v1/session"), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erp login request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if isAuthStatus(resp.StatusCode) {
		return &AuthError{Status: resp.StatusCode, Message: "login rejected"}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var parsed struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("erp login response invalid: %w", err)
	}
	if parsed.Token == "" {
		return &AuthError{Status: resp.StatusCode, Message: "login response carried no token"}
	}

	c.mu.Lock()
	c.token = parsed.Token
	c.mu.Unlock()

	return nil
}

// request performs one authenticated call. On an unauthorized response the
// token is cleared, re-authentication is attempted once and the original
// call retried; a second rejection aborts.
func (c *Client) request(ctx context.Context, method, path string, body any) ([]byte, error) {
	if c.currentToken() == "" {
		if err := c.Authenticate(ctx); err != nil {
			return nil, err
		}
	}

	data, status, err := c.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	if !isAuthStatus(status) {
		return c.checkStatus(data, status)
	}

	// Token expired mid-run: renew once and retry the original call.
	c.logger.Warn("erp token rejected, re-authenticating", zap.String("path", path))
	c.clearToken()
	if err := c.Authenticate(ctx); err != nil {
		return nil, err
	}

	data, status, err = c.do(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	if isAuthStatus(status) {
		c.clearToken()
		return nil, &AuthError{Status: status, Message: "request rejected after token renewal"}
	}
	return c.checkStatus(data, status)
}

func (c *Client) do(ctx context.Context, method, path string, body any) ([]byte, int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, 0, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Authorization", "Bearer "+c.currentToken())
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("erp request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	return data, resp.StatusCode, nil
}

func (c *Client) checkStatus(data []byte, status int) ([]byte, error) {
	if status < 200 || status >= 300 {
		return nil, &APIError{Status: status, Body: strings.TrimSpace(string(data))}
	}
	return data, nil
}

func (c *Client) currentToken() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

func (c *Client) clearToken() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}

func (c *Client) endpoint(path string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + path
}

// fetchList performs a bulk call and normalizes the response to a JSON
// array. The ERP wraps collections inconsistently: some endpoints return a
// bare array, others an object with the array under data, items, rows,
// records or objects.
func (c *Client) fetchList(ctx context.Context, method, path string, body any) ([]byte, error) {
	data, err := c.request(ctx, method, path, body)
	if err != nil {
		return nil, err
	}

	arr, err := normalizeList(data)
	if err != nil {
		return nil, fmt.Errorf("erp response for %s has no list shape: %w", path, err)
	}

	if c.archiver != nil {
		name := strings.Trim(strings.ReplaceAll(path, "/", "-"), "-")
		if err := c.archiver.Store(ctx, name, data); err != nil {
			c.logger.Warn("snapshot archive failed", zap.String("path", path), zap.Error(err))
		}
	}

	return arr, nil
}

var listWrapperKeys = []string{"data", "items", "rows", "records", "objects"}

func normalizeList(data []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return trimmed, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, err
	}
	for _, key := range listWrapperKeys {
		raw, ok := wrapper[key]
		if !ok {
			continue
		}
		inner := bytes.TrimSpace(raw)
		if len(inner) > 0 && inner[0] == '[' {
			return inner, nil
		}
	}
	return nil, fmt.Errorf("no known wrapper key present")
}

// Users implements API.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	arr, err := c.fetchList(ctx, http.MethodGet, "/api/v1/users", nil)
	if err != nil {
		return nil, err
	}
	var users []User
	if err := json.Unmarshal(arr, &users); err != nil {
		return nil, fmt.Errorf("erp users payload invalid: %w", err)
	}
	return users, nil
}

// ProjectGroups implements API.
func (c *Client) ProjectGroups(ctx context.Context) ([]ProjectGroup, error) {
	arr, err := c.fetchList(ctx, http.MethodPost, "/api/v1/projectgroups/query", map[string]any{})
	if err != nil {
		return nil, err
	}
	var groups []ProjectGroup
	if err := json.Unmarshal(arr, &groups); err != nil {
		return nil, fmt.Errorf("erp project groups payload invalid: %w", err)
	}
	return groups, nil
}

// Projects implements API.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	arr, err := c.fetchList(ctx, http.MethodPost, "/api/v1/projects/query", map[string]any{})
	if err != nil {
		return nil, err
	}
	var projects []Project
	if err := json.Unmarshal(arr, &projects); err != nil {
		return nil, fmt.Errorf("erp projects payload invalid: %w", err)
	}
	return projects, nil
}

// Absences implements API. The request body carries the kind filter; the
// collection is otherwise unfiltered and fetched in one call.
func (c *Client) Absences(ctx context.Context, kind string) ([]Absence, error) {
	arr, err := c.fetchList(ctx, http.MethodPost, "/api/v1/absences/query", map[string]any{"type": kind})
	if err != nil {
		return nil, err
	}
	var absences []Absence
	if err := json.Unmarshal(arr, &absences); err != nil {
		return nil, fmt.Errorf("erp absences payload invalid: %w", err)
	}
	return absences, nil
}
