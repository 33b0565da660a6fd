// Package authclient talks to the external auth service that owns
// registration, login and token validation. This application never issues or
// parses tokens itself.
package authclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Ismail-Lafhiel/-evento/internal/domain"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// envelope matches the auth service's {statusCode, message, data} wrapper.
type envelope struct {
	StatusCode int             `json:"statusCode"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
}

// Validate checks the bearer token and returns the identity it belongs to.
func (c *Client) Validate(ctx context.Context, token string) (*domain.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/validate", nil)
	if err != nil {
		return nil, fmt.Errorf("build validate request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call auth service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, domain.ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("auth service returned %d", resp.StatusCode)
	}

	var env envelope
	if err = json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode validate response: %w", err)
	}

	var identity domain.Identity
	if err = json.Unmarshal(env.Data, &identity); err != nil {
		return nil, fmt.Errorf("decode identity: %w", err)
	}
	if identity.Email == "" && identity.Username == "" {
		return nil, domain.ErrUnauthorized
	}

	return &identity, nil
}

// Login forwards the credentials and returns the session issued by the auth
// service.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (*domain.AuthSession, error) {
	return c.postSession(ctx, "/auth/login", map[string]string{
		"username": creds.Username,
		"password": creds.Password,
	})
}

// Register forwards the registration and returns the session for the newly
// created identity.
func (c *Client) Register(ctx context.Context, reg domain.Registration) (*domain.AuthSession, error) {
	return c.postSession(ctx, "/auth/register", map[string]string{
		"fullname": reg.Fullname,
		"email":    reg.Email,
		"username": reg.Username,
		"password": reg.Password,
	})
}

func (c *Client) postSession(ctx context.Context, path string, payload map[string]string) (*domain.AuthSession, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode auth payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call auth service: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.ErrUnauthorized
	case resp.StatusCode == http.StatusConflict:
		return nil, domain.ErrEmailTaken
	case resp.StatusCode == http.StatusBadRequest:
		return nil, domain.ErrValidation
	case resp.StatusCode >= 300:
		return nil, fmt.Errorf("auth service returned %d", resp.StatusCode)
	}

	var env envelope
	if err = json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode auth response: %w", err)
	}

	var session domain.AuthSession
	if err = json.Unmarshal(env.Data, &session); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}

	return &session, nil
}
