package api

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"pymerp/internal/metrics"
)

// download fetches an opaque PDF blob and writes it to destDir/filename.
// The body is not parsed; the only validation is the content type, so a
// backend error page is rejected instead of being saved as a broken "PDF".
func (c *Client) download(ctx context.Context, endpoint, path string, query url.Values, destDir, filename string) (string, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.tokens.Token())
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.httpc.Do(req)
	if err != nil {
		metrics.RequestsTotal.WithLabelValues(endpoint, "transport_error").Inc()
		return "", fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RequestsTotal.WithLabelValues(endpoint, "http_error").Inc()
		return "", &APIError{Status: resp.StatusCode}
	}

	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/pdf" {
		metrics.RequestsTotal.WithLabelValues(endpoint, "decode_error").Inc()
		return "", fmt.Errorf("expected application/pdf, got %q", resp.Header.Get("Content-Type"))
	}

	dest := filepath.Join(destDir, filename)
	f, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", dest, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("write %s: %w", dest, err)
	}
	metrics.RequestsTotal.WithLabelValues(endpoint, "ok").Inc()

	c.log.Info().Str("path", dest).Msg("pdf saved")
	return dest, nil
}
