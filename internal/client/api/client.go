// Package api implements the HTTP client for the community platform REST
// backend. It owns request encoding, bearer-token injection, and mapping of
// error responses into typed errors.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ayushsatvara1012/village-community-platform-sub000/internal/common"
)

// Client talks to the community platform backend. The zero value is not
// usable; construct with New. Client is not safe for concurrent mutation of
// the token; in practice a single session manager is the only writer.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

// New constructs a Client for the given backend origin,
// e.g. "http://localhost:8000".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// SetToken installs the bearer credential used on authenticated requests.
func (c *Client) SetToken(token string) {
	c.token = token
}

// ClearToken removes the bearer credential.
func (c *Client) ClearToken() {
	c.token = ""
}

// Token returns the currently installed bearer credential.
func (c *Client) Token() string {
	return c.token
}

// BaseURL returns the backend origin this client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doJSON issues a request with a JSON body (body may be nil) and decodes a
// JSON response into out (out may be nil). Non-2xx responses are returned as
// *Error with the backend-provided detail message.
func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req, out)
}

// doForm issues a POST with a form-encoded body and decodes a JSON response.
func (c *Client) doForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return common.ErrRequestTimedOut
		}
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
