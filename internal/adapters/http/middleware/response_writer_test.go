package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		handle        func(w http.ResponseWriter)
		wantStatus    int
		wantBytes     int64
		wantCommitted bool
	}{
		{
			name:       "nothing written",
			handle:     func(http.ResponseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name:          "explicit status",
			handle:        func(w http.ResponseWriter) { w.WriteHeader(http.StatusNoContent) },
			wantStatus:    http.StatusNoContent,
			wantCommitted: true,
		},
		{
			name: "second WriteHeader ignored",
			handle: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusCreated)
				w.WriteHeader(http.StatusConflict)
			},
			wantStatus:    http.StatusCreated,
			wantCommitted: true,
		},
		{
			name: "body implies 200 and counts bytes",
			handle: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte("week "))
				_, _ = w.Write([]byte("one"))
			},
			wantStatus:    http.StatusOK,
			wantBytes:     8,
			wantCommitted: true,
		},
		{
			name: "WriteHeader after body ignored",
			handle: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte("x"))
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus:    http.StatusOK,
			wantBytes:     1,
			wantCommitted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			sr := newStatusRecorder(rec)
			tt.handle(sr)

			if got := sr.Status(); got != tt.wantStatus {
				t.Errorf("Status() = %d, want %d", got, tt.wantStatus)
			}
			if sr.bytes != tt.wantBytes {
				t.Errorf("bytes = %d, want %d", sr.bytes, tt.wantBytes)
			}
			if got := sr.Committed(); got != tt.wantCommitted {
				t.Errorf("Committed() = %v, want %v", got, tt.wantCommitted)
			}
			if tt.wantCommitted && rec.Code != tt.wantStatus {
				t.Errorf("client saw %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestStatusRecorder_FlushReachesUnderlyingWriter(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sr := newStatusRecorder(rec)

	if err := http.NewResponseController(sr).Flush(); err != nil {
		t.Fatalf("Flush through recorder: %v", err)
	}
	if !rec.Flushed {
		t.Error("underlying recorder was not flushed")
	}
}
