package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// ErrSessionExpired means the stored credentials can no longer be refreshed;
// the caller must log in again.
var ErrSessionExpired = errors.New("session expired")

// envelope mirrors the server's response wrapper
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Client is a typed API client. Requests carry the stored access token; a
// 401 triggers exactly one refresh-and-retry, after which the failure is
// surfaced as ErrSessionExpired.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      TokenStore

	// refreshMu serializes refresh so a burst of 401s produces one refresh
	// call instead of a stampede
	refreshMu sync.Mutex
}

// NewClient creates a client for the API at baseURL
func NewClient(baseURL string, store TokenStore) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		store:      store,
	}
}

// do sends one authenticated request. Bodies are buffered so a replay after
// refresh is byte-identical.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
	}

	resp, err := c.send(ctx, method, path, payload)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		_ = resp.Body.Close() //nolint:errcheck
		if err := c.refresh(ctx); err != nil {
			return err
		}
		resp, err = c.send(ctx, method, path, payload)
		if err != nil {
			return err
		}
	}
	defer resp.Body.Close() //nolint:errcheck

	return decodeResponse(resp, out)
}

func (c *Client) send(ctx context.Context, method, path string, payload []byte) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	access, _, err := c.store.Tokens()
	if err != nil {
		return nil, err
	}
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	return c.httpClient.Do(req)
}

// refresh exchanges the stored refresh token for a new pair. Any failure
// clears the store and reports ErrSessionExpired.
func (c *Client) refresh(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	_, refreshToken, err := c.store.Tokens()
	if err != nil {
		return err
	}
	if refreshToken == "" {
		_ = c.store.Clear() //nolint:errcheck
		return ErrSessionExpired
	}

	payload, err := json.Marshal(map[string]string{"refreshToken": refreshToken})
	if err != nil {
		return fmt.Errorf("failed to encode refresh request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/auth/refresh", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("refresh request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		_ = c.store.Clear() //nolint:errcheck
		return ErrSessionExpired
	}

	var tokens struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := unwrap(resp.Body, &tokens); err != nil {
		_ = c.store.Clear() //nolint:errcheck
		return ErrSessionExpired
	}

	_, storedRefresh, _ := c.store.Tokens() //nolint:errcheck
	if tokens.RefreshToken == "" {
		tokens.RefreshToken = storedRefresh
	}
	return c.store.Save(tokens.AccessToken, tokens.RefreshToken)
}

// APIError is a non-2xx response from the server
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

func decodeResponse(resp *http.Response, out interface{}) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env envelope
		message := resp.Status
		if err := json.NewDecoder(resp.Body).Decode(&env); err == nil && env.Message != "" {
			message = env.Message
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}
	if out == nil {
		return nil
	}
	return unwrap(resp.Body, out)
}

func unwrap(body io.Reader, out interface{}) error {
	var env envelope
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if env.Data == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
