package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jsamuelsen11/exercise-kit/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// retryableStatuses are the responses worth another attempt. 501 and 505
// describe the request itself and are returned immediately.
var retryableStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// doWithRetry sends req up to maxAttempts times. Between attempts it waits
// the exponential backoff, or the server's Retry-After when one is given,
// capped at maxInterval either way. The response is written to resp; when
// the last attempt still fails with a retryable status, resp holds that
// response with its body open and the returned error is non-nil.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, resp **http.Response) error {
	if c.retryCfg.maxAttempts < 1 {
		return fmt.Errorf("httpclient: maxAttempts must be >= 1, got %d", c.retryCfg.maxAttempts)
	}
	if err := makeReplayable(req); err != nil {
		return err
	}

	var (
		lastErr    error
		retryAfter time.Duration
	)
	for attempt := range c.retryCfg.maxAttempts {
		if attempt > 0 {
			delay := c.retryCfg.delay(attempt, retryAfter)
			if err := c.waitForRetry(ctx, req, attempt, delay, lastErr); err != nil {
				return err
			}
		}
		if err := rewind(req); err != nil {
			return err
		}

		r, err := c.httpClient.Do(req)
		if err != nil {
			if !isRetryable(err) {
				return err
			}
			lastErr, retryAfter = err, 0
			continue
		}

		if !isRetryableStatus(r.StatusCode) {
			*resp = r
			return nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", r.StatusCode, c.serviceName)
		if attempt == c.retryCfg.maxAttempts-1 {
			*resp = r
			return lastErr
		}

		retryAfter = parseRetryAfter(r.Header.Get("Retry-After"), time.Now())
		_, _ = io.Copy(io.Discard, r.Body)
		_ = r.Body.Close()
	}

	return lastErr
}

// makeReplayable ensures req.GetBody is set so every attempt sends the full
// body. Requests built from bytes or strings readers already have it.
func makeReplayable(req *http.Request) error {
	if req.Body == nil || req.Body == http.NoBody || req.GetBody != nil {
		return nil
	}

	b, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}

	req.ContentLength = int64(len(b))
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(b)), nil
	}
	return nil
}

// rewind gives req a fresh body before an attempt.
func rewind(req *http.Request) error {
	if req.GetBody == nil {
		return nil
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("rewinding request body: %w", err)
	}
	req.Body = body
	return nil
}

func (c *Client) waitForRetry(ctx context.Context, req *http.Request, attempt int, delay time.Duration, lastErr error) error {
	logging.FromContextOr(ctx, c.logger).WarnContext(ctx, "retrying HTTP request",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.serviceName),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.retryCfg.maxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// delay returns how long to wait before the given attempt (1 is the first
// retry). A positive serverHint from Retry-After replaces the computed
// backoff; both are capped at maxInterval.
func (cfg retryConfig) delay(attempt int, serverHint time.Duration) time.Duration {
	if serverHint > 0 {
		return min(serverHint, cfg.maxInterval)
	}
	return backoff(attempt, cfg)
}

// backoff is initialInterval * multiplier^(attempt-1), capped at
// maxInterval, with ±25% jitter.
func backoff(attempt int, cfg retryConfig) time.Duration {
	d := float64(cfg.initialInterval) * math.Pow(cfg.multiplier, float64(attempt-1))
	d = min(d, float64(cfg.maxInterval))
	d += d * jitterFraction * (2*rand.Float64() - 1)
	return time.Duration(max(d, 0))
}

// parseRetryAfter reads a Retry-After value given either as delay seconds
// or as an HTTP date. Missing, malformed and past values yield zero.
func parseRetryAfter(v string, now time.Time) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(max(secs, 0)) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(at.Sub(now), 0)
	}
	return 0
}

// isRetryable reports whether a transport error may succeed on another
// attempt. Cancellation and deadlines are final; everything else, network
// errors included, is retried.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func isRetryableStatus(statusCode int) bool {
	return retryableStatuses[statusCode]
}
