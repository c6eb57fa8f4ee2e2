package kindlingsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client is a typed HTTP client for the Kindling API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates an API client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Register creates a new account and returns the created user plus a
// bearer token. Validation runs client-side first so obviously bad
// input never leaves the process.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if errs := req.Validate(); errs != nil {
		return nil, &ValidationError{Details: errs}
	}

	var out AuthResponse
	if err := c.postJSON(ctx, "/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for the user projection and a token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	if errs := req.Validate(); errs != nil {
		return nil, &ValidationError{Details: errs}
	}

	var out AuthResponse
	if err := c.postJSON(ctx, "/login", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Members lists all member projections. Requires a bearer token.
func (c *Client) Members(ctx context.Context, token string) ([]UserProfile, error) {
	var out []UserProfile
	if err := c.getJSON(ctx, "/members", token, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Member fetches a single member by id. Requires a bearer token.
func (c *Client) Member(ctx context.Context, token, id string) (*UserProfile, error) {
	var out UserProfile
	if err := c.getJSON(ctx, "/members/"+id, token, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Health calls the liveness probe. Useful for tests waiting on startup.
func (c *Client) Health(ctx context.Context) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.getJSON(ctx, "/livez", "", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("kindlingsdk: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("kindlingsdk: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) getJSON(ctx context.Context, path, token string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("kindlingsdk: build request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("kindlingsdk: %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseAPIError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("kindlingsdk: decode response: %w", err)
	}
	return nil
}
