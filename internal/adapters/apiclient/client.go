// Package apiclient is the JSON-over-HTTP transport shared by the search,
// pricing and language-model adapters. Each call is a single attempt: the
// caller decides what a failure falls back to.
package apiclient

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
	"time"

	"travel_planner/internal/adapters/observability"
)

var (
	ErrNotFound     = errors.New("apiclient: not found")
	ErrUnauthorized = errors.New("apiclient: unauthorized")
	ErrForbidden    = errors.New("apiclient: forbidden")
	ErrNoAPIKey     = errors.New("apiclient: API key not configured")
)

// StatusError is returned for any other non-2xx answer.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("bad status %d: %s", e.Code, e.Body)
}

type Client struct {
	service string
	base    string
	hc      *http.Client
	headers http.Header
}

// New builds a client for one upstream. service labels the outbound metrics.
func New(service, base string, timeout time.Duration, headers map[string]string) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	h := http.Header{}
	for k, v := range headers {
		h.Set(k, v)
	}
	return &Client{
		service: service,
		base:    strings.TrimRight(base, "/"),
		hc:      &http.Client{Timeout: timeout},
		headers: h,
	}
}

func (c *Client) Base() string { return c.base }

// GetJSON issues GET base+path?query and decodes the JSON answer into out.
func (c *Client) GetJSON(ctx context.Context, endpoint, path string, query url.Values, out any) error {
	u := c.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, endpoint, u, nil, out)
}

// PostJSON marshals in, posts it to base+path and decodes the answer into out.
func (c *Client) PostJSON(ctx context.Context, endpoint, path string, in, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", c.service, err)
	}
	return c.do(ctx, http.MethodPost, endpoint, c.base+path, b, out)
}

func (c *Client) do(ctx context.Context, method, endpoint, u string, body []byte, out any) error {
	err := c.send(ctx, method, endpoint, u, body, out)
	if err != nil {
		observability.ObserveExternalError(c.service, endpoint, err)
	}
	return err
}

func (c *Client) send(ctx context.Context, method, endpoint, u string, body []byte, out any) error {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return err
	}
	for k, vs := range c.headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "travel-planner/1.0")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(c.service, endpoint, 0, time.Since(start))
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%s %s: %w", c.service, endpoint, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal(c.service, endpoint, resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated, http.StatusAccepted:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode %s %s: %w", c.service, endpoint, err)
		}
		return nil

	case http.StatusNotFound:
		return ErrNotFound

	case http.StatusUnauthorized:
		return ErrUnauthorized

	case http.StatusForbidden:
		return ErrForbidden

	default:
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
}
