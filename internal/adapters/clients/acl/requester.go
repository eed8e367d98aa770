package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/exercise-kit/internal/platform/httpclient"
)

// call is one JSON exchange with the course API.
type call struct {
	method string
	path   string
	want   int // the only status treated as success
	in     any // encoded as the request body when non-nil
}

// exchange performs c through client and decodes the reply into Out. Any
// status other than c.want goes through TranslateHTTPError.
func exchange[Out any](ctx context.Context, client *httpclient.Client, logger *slog.Logger, c call) (Out, error) {
	var out Out

	req, err := c.request(ctx, client.BaseURL())
	if err != nil {
		return out, err
	}
	log := logger.With(slog.String("method", c.method), slog.String("path", c.path))

	resp, err := client.Do(ctx, req)
	if resp != nil {
		defer func() {
			if cerr := resp.Body.Close(); cerr != nil {
				log.WarnContext(ctx, "closing response body", slog.Any("error", cerr))
			}
		}()
	}

	switch {
	case resp != nil && resp.StatusCode != c.want:
		// Also covers exhausted retries, where the last response is
		// returned alongside the error.
		log.WarnContext(ctx, "course API refused request", slog.Int("status", resp.StatusCode))
		return out, TranslateHTTPError(resp)
	case err != nil:
		log.ErrorContext(ctx, "course API unreachable", slog.Any("error", err))
		return out, fmt.Errorf("%s %s: %w", c.method, c.path, err)
	}

	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return out, fmt.Errorf("decoding %s %s reply: %w", c.method, c.path, err)
	}
	return out, nil
}

func (c call) request(ctx context.Context, baseURL string) (*http.Request, error) {
	var body io.Reader = http.NoBody
	if c.in != nil {
		raw, err := json.Marshal(c.in)
		if err != nil {
			return nil, fmt.Errorf("encoding %s %s body: %w", c.method, c.path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, baseURL+c.path, body)
	if err != nil {
		return nil, fmt.Errorf("building %s %s: %w", c.method, c.path, err)
	}
	req.Header.Set("Accept", "application/json")
	if c.in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req, nil
}
