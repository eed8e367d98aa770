// Package middleware holds the inbound HTTP pipeline. cmd/server installs it
// in this order:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → AppContext → Timeout → Handler
package middleware

import "net/http"

// statusRecorder remembers the status and body size a handler produced so
// the logging, tracing and recovery layers can report on it.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func newStatusRecorder(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w}
}

// Status returns the status sent to the client. A handler that never calls
// WriteHeader gets the implicit 200 from net/http.
func (s *statusRecorder) Status() int {
	if s.status == 0 {
		return http.StatusOK
	}
	return s.status
}

// Committed reports whether headers have gone out to the client.
func (s *statusRecorder) Committed() bool {
	return s.status != 0 || s.bytes > 0
}

// WriteHeader forwards the first status only.
func (s *statusRecorder) WriteHeader(code int) {
	if s.Committed() {
		return
	}
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach Flush and friends.
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}
