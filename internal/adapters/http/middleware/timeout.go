package middleware

import (
	"bytes"
	"context"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/exercise-kit/internal/adapters/http/dto"
)

// Timeout bounds each request to d. The handler sees the deadline on its
// context and its response is buffered; if d elapses first the client gets a
// 504 problem instead and later handler writes fail with
// http.ErrHandlerTimeout. A handler panic is re-raised on the serving
// goroutine so Recovery still sees it.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			bw := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(bw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				panic(v)
			case <-done:
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.copyTo(w)
			case <-ctx.Done():
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.expired = true
				dto.WriteErrorResponse(w, r, ctx.Err())
			}
		})
	}
}

// bufferedWriter holds the handler's response until Timeout decides
// whether to send it.
type bufferedWriter struct {
	mu      sync.Mutex
	header  http.Header
	body    bytes.Buffer
	status  int
	expired bool
}

func (bw *bufferedWriter) Header() http.Header {
	return bw.header
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.status == 0 && !bw.expired {
		bw.status = code
	}
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	if bw.expired {
		return 0, http.ErrHandlerTimeout
	}
	if bw.status == 0 {
		bw.status = http.StatusOK
	}
	return bw.body.Write(b)
}

// copyTo sends the buffered response; bw.mu must be held.
func (bw *bufferedWriter) copyTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), bw.header)
	if bw.status != 0 {
		w.WriteHeader(bw.status)
	}
	_, _ = w.Write(bw.body.Bytes())
}
