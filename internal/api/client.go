// Package api is the HTTP client for the sandbox API.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/preset"
	"github.com/firefly-engineering/firefly-forage/packages/sandbox-ctl/internal/sandbox"
)

// Endpoint paths relative to the API base URL.
const (
	PresetsPath   = "/sandbox_presets"
	SandboxesPath = "/sandboxes"
)

// maxErrorBody bounds how much of a failed response is read.
const maxErrorBody = 4096

// Config holds client configuration
type Config struct {
	// BaseURL is the API root, e.g. "https://example.com/api/v1"
	BaseURL string

	// Token is sent as a bearer token when set
	Token string

	// Timeout applies to each request; zero means none
	Timeout time.Duration

	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
}

// Client talks to the sandbox API.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a client.
func New(cfg Config) *Client {
	hc := cfg.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL: strings.TrimSuffix(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http:    hc,
	}
}

// envelope is the response wrapper used by every endpoint.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error,omitempty"`
}

// CreateRequest is the body of a creation request.
type CreateRequest struct {
	Sandbox NewSandbox `json:"sandbox"`
}

// NewSandbox holds the fields of a sandbox to create.
type NewSandbox struct {
	Title      string `json:"title"`
	ForkedFrom string `json:"forkedFrom,omitempty"`
}

// FetchPresets returns the presets offered by the API, in server order.
func (c *Client) FetchPresets(ctx context.Context) ([]preset.Preset, error) {
	var presets []preset.Preset
	if err := c.do(ctx, http.MethodGet, PresetsPath, nil, &presets); err != nil {
		return nil, errors.APIError("fetch presets", err)
	}
	logging.Debug("fetched presets", "count", len(presets))
	return presets, nil
}

// CreateSandbox creates a sandbox, forking forkTarget unless it is empty.
// Every failure, including transport errors, is reported as a sandbox.Failure.
func (c *Client) CreateSandbox(ctx context.Context, title, forkTarget string) sandbox.Result {
	body := CreateRequest{Sandbox: NewSandbox{Title: title, ForkedFrom: forkTarget}}

	var sb sandbox.Sandbox
	if err := c.do(ctx, http.MethodPost, SandboxesPath, body, &sb); err != nil {
		return sandbox.Failure(errors.CreateFailed(title, err))
	}
	return sandbox.Success(&sb)
}

// GetSandbox fetches a single sandbox by id.
func (c *Client) GetSandbox(ctx context.Context, id string) (*sandbox.Sandbox, error) {
	var sb sandbox.Sandbox
	if err := c.do(ctx, http.MethodGet, SandboxesPath+"/"+url.PathEscape(id), nil, &sb); err != nil {
		return nil, errors.APIError("get sandbox", err)
	}
	return &sb, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	logging.Debug("api request", "method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(resp)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("response has no data")
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// statusError folds the server's error message into the returned error.
func statusError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var env envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Error != "" {
		return fmt.Errorf("%s: %s", resp.Status, env.Error)
	}
	if msg := strings.TrimSpace(string(data)); msg != "" {
		return fmt.Errorf("%s: %s", resp.Status, msg)
	}
	return fmt.Errorf("%s", resp.Status)
}
