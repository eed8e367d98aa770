package notify_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/jsamuelsen11/exercise-kit/internal/adapters/notify"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/logging"
)

func TestLog_Notify(t *testing.T) {
	t.Parallel()

	var fallback, scoped bytes.Buffer
	n := notify.NewLog(logging.New("info", "json", &fallback))

	n.Notify(context.Background(), "Course saved!")
	if !strings.Contains(fallback.String(), `"message":"Course saved!"`) {
		t.Errorf("fallback output = %q, want the message", fallback.String())
	}

	ctx := logging.WithLogger(context.Background(), logging.New("info", "json", &scoped))
	n.Notify(ctx, "Course deleted")
	if !strings.Contains(scoped.String(), "Course deleted") {
		t.Errorf("scoped output = %q, want the message", scoped.String())
	}
	if strings.Contains(fallback.String(), "Course deleted") {
		t.Error("message went to the fallback logger while ctx carried one")
	}
}

func TestWriter_Notify(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n := notify.NewWriter(&buf, "» ", slog.New(slog.DiscardHandler))

	n.Notify(context.Background(), "Last Name cannot be empty.")
	n.Notify(context.Background(), "Registration successful!")

	want := "» Last Name cannot be empty.\n» Registration successful!\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestWriter_NotifyConcurrent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	n := notify.NewWriter(&buf, "", slog.New(slog.DiscardHandler))

	var wg sync.WaitGroup
	for range 20 {
		wg.Go(func() { n.Notify(context.Background(), "ok") })
	}
	wg.Wait()

	if got := strings.Count(buf.String(), "ok\n"); got != 20 {
		t.Errorf("lines = %d, want 20", got)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriter_NotifyWriteFailureIsLogged(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	n := notify.NewWriter(failingWriter{}, "", logging.New("warn", "json", &logs))

	n.Notify(context.Background(), "hello")

	if !strings.Contains(logs.String(), "failed to write notification") {
		t.Errorf("logs = %q, want a write failure record", logs.String())
	}
}
