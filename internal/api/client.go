// Package api talks to the tracking server's session and server resources.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"login-front/internal/session"
)

const (
	SessionPath = "/api/session"
	ServerPath  = "/api/server"
)

// StatusError is a non-2xx answer from the server.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("API Error (status %d): %s", e.Code, e.Body)
}

// Client calls the server under Base. An empty Base targets the page's own
// origin, which is what the browser bundle uses.
type Client struct {
	Base string
	HTTP *http.Client
}

func New(base string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: hc}
}

// CreateSession posts the credentials form-encoded and decodes the user.
func (c *Client) CreateSession(ctx context.Context, email, password string) (session.User, error) {
	form := url.Values{
		"email":    {email},
		"password": {password},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+SessionPath, strings.NewReader(form.Encode()))
	if err != nil {
		return session.User{}, fmt.Errorf("build session request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := c.do(req)
	if err != nil {
		return session.User{}, err
	}

	var user session.User
	if err := json.Unmarshal(body, &user); err != nil {
		return session.User{}, fmt.Errorf("decode user: %w", err)
	}
	return user, nil
}

// Server fetches the capability snapshot.
func (c *Client) Server(ctx context.Context) (*session.Capabilities, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+ServerPath, nil)
	if err != nil {
		return nil, fmt.Errorf("build server request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := c.do(req)
	if err != nil {
		return nil, err
	}

	var caps session.Capabilities
	if err := json.Unmarshal(body, &caps); err != nil {
		return nil, fmt.Errorf("decode server: %w", err)
	}
	return &caps, nil
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}
