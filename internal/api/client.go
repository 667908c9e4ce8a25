// Package api is the HTTP client for the PymERP REST backend. Every entity
// the screens show is owned by the backend; this package fetches transient
// copies, reports degradation explicitly, and sends edits back.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"pymerp/internal/metrics"
)

// TokenSource supplies the bearer token for outbound requests.
// *session.Session satisfies it.
type TokenSource interface {
	Token() string
}

// Client talks to one backend origin. It is safe for concurrent use.
type Client struct {
	baseURL string
	tokens  TokenSource
	httpc   *http.Client
	log     zerolog.Logger
	gen     generation
}

// New builds a client. timeout bounds every round trip, including the
// notification poll path.
func New(baseURL string, tokens TokenSource, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL: trimSlash(baseURL),
		tokens:  tokens,
		httpc:   &http.Client{Timeout: timeout},
		log:     log.With().Str("component", "api").Logger(),
	}
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}
	return s
}

// Pagination is the optional paging block of a list envelope.
type Pagination struct {
	Total int `json:"total"`
}

// envelope is the response shape shared by all JSON endpoints:
// {success, data, pagination?, error?}.
type envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data"`
	Pagination *Pagination     `json:"pagination,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// APIError is a non-2xx response whose body carried a backend error message.
// Screens show Message in a dismissible banner and keep the form open.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned HTTP %d", e.Status)
	}
	return fmt.Sprintf("backend error (HTTP %d): %s", e.Status, e.Message)
}

// get issues a GET and decodes the envelope's data field into out.
// It returns the pagination block when the backend sent one.
func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values, out any) (*Pagination, error) {
	return c.roundTrip(ctx, endpoint, http.MethodGet, path, query, nil, out)
}

// send issues a mutating request with an optional JSON body. out may be nil
// when the caller does not need the response data.
func (c *Client) send(ctx context.Context, endpoint, method, path string, body, out any) error {
	_, err := c.roundTrip(ctx, endpoint, method, path, nil, body, out)
	return err
}

func (c *Client) roundTrip(ctx context.Context, endpoint, method, path string, query url.Values, body, out any) (*Pagination, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.tokens.Token())
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		return nil, fmt.Errorf("read response: %w", err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RequestsTotal.WithLabelValues(endpoint, "http_error").Inc()
		apiErr := &APIError{Status: resp.StatusCode}
		if decodeErr == nil {
			apiErr.Message = env.Error
		}
		return nil, apiErr
	}
	if decodeErr != nil {
		metrics.RequestsTotal.WithLabelValues(endpoint, "decode_error").Inc()
		return nil, fmt.Errorf("decode response: %w", decodeErr)
	}
	if !env.Success {
		metrics.RequestsTotal.WithLabelValues(endpoint, "http_error").Inc()
		return nil, &APIError{Status: resp.StatusCode, Message: env.Error}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			metrics.RequestsTotal.WithLabelValues(endpoint, "decode_error").Inc()
			return nil, fmt.Errorf("decode data: %w", err)
		}
	}
	metrics.RequestsTotal.WithLabelValues(endpoint, "ok").Inc()
	return env.Pagination, nil
}
