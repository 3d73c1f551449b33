// Package authapi is the HTTP client for the remote auth service. The
// service itself is a black box; this client only implements its wire
// contract and maps failures to typed errors the session controller can
// degrade on.
package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"suuq-storefront/models"
)

const defaultTimeout = 15 * time.Second

// Client talks to the auth service. It keeps the service's session cookie
// in a jar so status/logout calls ride the same session the login created.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates an auth client for the service at baseURL.
func NewClient(baseURL string) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout: defaultTimeout,
			Jar:     jar,
		},
	}
}

// APIError is a non-2xx response from the auth service, carrying the
// server's human-readable message and, on 429, the retry-after hint in
// seconds.
type APIError struct {
	StatusCode int
	Message    string
	RetryAfter int
}

func (e *APIError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("auth service returned %d: %s (retry after %ds)", e.StatusCode, e.Message, e.RetryAfter)
	}
	return fmt.Sprintf("auth service returned %d: %s", e.StatusCode, e.Message)
}

// StatusResponse is the auth service's answer to a session status check.
type StatusResponse struct {
	IsLoggedIn bool             `json:"isLoggedIn"`
	User       *models.Identity `json:"user,omitempty"`
	Message    string           `json:"message,omitempty"`
}

// SignupRequest is the payload for account creation. ProfileImage, when
// set, is an inline base64 data URL as produced by a file picker.
type SignupRequest struct {
	FullName     string `json:"full_name"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	ProfileImage string `json:"profile_image,omitempty"`
}

// errorBody matches the service's error responses. Login errors arrive
// under "message", signup errors under "error".
type errorBody struct {
	Message    string `json:"message"`
	Error      string `json:"error"`
	RetryAfter int    `json:"retry_after"`
}

func (b *errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	if b.Error != "" {
		return b.Error
	}
	return "request failed"
}

func apiError(resp *http.Response, body []byte) *APIError {
	var eb errorBody
	// A malformed error body still yields a usable APIError
	_ = json.Unmarshal(body, &eb)
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    eb.text(),
		RetryAfter: eb.RetryAfter,
	}
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, err
	}
	return resp, respBody, nil
}

// Status performs the session status check. Transport errors and malformed
// bodies are returned as errors; a well-formed not-logged-in answer is a
// successful response with IsLoggedIn false.
func (c *Client) Status(ctx context.Context) (*StatusResponse, error) {
	resp, body, err := c.do(ctx, http.MethodGet, "/api/auth/status", nil)
	if err != nil {
		return nil, err
	}

	// 401/403 just mean not logged in, not a failure
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return &StatusResponse{IsLoggedIn: false}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp, body)
	}

	var status StatusResponse
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("malformed status response: %w", err)
	}
	return &status, nil
}

// Login authenticates with a username-or-email identifier and password.
// Failures arrive as *APIError; 429 responses carry the retry-after hint.
func (c *Client) Login(ctx context.Context, identifier, password string) (*models.Identity, error) {
	payload := map[string]string{
		"identifier": identifier,
		"password":   password,
	}

	resp, body, err := c.do(ctx, http.MethodPost, "/api/auth/login", payload)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp, body)
	}

	var result struct {
		User *models.Identity `json:"user"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("malformed login response: %w", err)
	}
	if !result.User.Valid() {
		return nil, fmt.Errorf("login response missing user identity")
	}
	return result.User, nil
}

// Signup registers a new account and returns the freshly created identity.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*models.Identity, error) {
	resp, body, err := c.do(ctx, http.MethodPost, "/api/auth/signup", req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp, body)
	}

	var result struct {
		User *models.Identity `json:"user"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("malformed signup response: %w", err)
	}
	if !result.User.Valid() {
		return nil, fmt.Errorf("signup response missing user identity")
	}
	return result.User, nil
}

// Logout ends the remote session. Callers treat failures as advisory.
func (c *Client) Logout(ctx context.Context) error {
	resp, body, err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return apiError(resp, body)
	}
	return nil
}
