package health_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jsamuelsen11/exercise-kit/internal/platform/health"
	"github.com/jsamuelsen11/exercise-kit/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func checker(t *testing.T, name string, err error) *mocks.MockHealthChecker {
	t.Helper()
	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return(name)
	c.EXPECT().HealthCheck(mock.Anything).Return(err)
	return c
}

func TestCheckAll_Outcomes(t *testing.T) {
	t.Parallel()

	errDown := errors.New("connection refused")

	tests := []struct {
		name   string
		checks map[string]error
	}{
		{name: "no checks", checks: map[string]error{}},
		{name: "all healthy", checks: map[string]error{"course-store": nil, "course-api": nil}},
		{name: "one failing", checks: map[string]error{"course-store": nil, "course-api": errDown}},
		{name: "all failing", checks: map[string]error{"course-store": errDown, "course-api": errDown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New()
			for name, err := range tt.checks {
				r.Register(checker(t, name, err))
			}

			got := r.CheckAll(t.Context())

			require.NotNil(t, got)
			require.Len(t, got, len(tt.checks))
			for name, want := range tt.checks {
				assert.ErrorIs(t, got[name], want, name)
				if want == nil {
					assert.NoError(t, got[name], name)
				}
			}
		})
	}
}

func TestCheckAll_SameNameReplaces(t *testing.T) {
	t.Parallel()

	stale := mocks.NewMockHealthChecker(t)
	stale.EXPECT().Name().Return("course-store")

	r := health.New()
	r.Register(stale)
	r.Register(checker(t, "course-store", nil))

	got := r.CheckAll(t.Context())

	require.Len(t, got, 1)
	assert.NoError(t, got["course-store"])
}

func TestCheckAll_EachCheckHasItsOwnDeadline(t *testing.T) {
	t.Parallel()

	slow := mocks.NewMockHealthChecker(t)
	slow.EXPECT().Name().Return("course-api")
	slow.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(ctx context.Context) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok, "check should run under a deadline")
		<-ctx.Done()
		return ctx.Err()
	})

	r := health.New(health.WithCheckTimeout(20 * time.Millisecond))
	r.Register(slow)

	got := r.CheckAll(t.Context())

	assert.ErrorIs(t, got["course-api"], context.DeadlineExceeded)
}

func TestCheckAll_CanceledBeforeStart(t *testing.T) {
	t.Parallel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("course-store")
	c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()

	r := health.New()
	r.Register(c)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	got := r.CheckAll(ctx)

	require.Len(t, got, 1)
	if err := got["course-store"]; err != nil {
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestCheckAll_RunsChecksConcurrently(t *testing.T) {
	t.Parallel()

	const n = 4
	var inFlight, peak atomic.Int32
	release := make(chan struct{})
	var started sync.WaitGroup
	started.Add(n)

	r := health.New()
	for i := range n {
		c := mocks.NewMockHealthChecker(t)
		c.EXPECT().Name().Return(string(rune('a' + i)))
		c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(context.Context) error {
			cur := inFlight.Add(1)
			for {
				p := peak.Load()
				if cur <= p || peak.CompareAndSwap(p, cur) {
					break
				}
			}
			started.Done()
			<-release
			inFlight.Add(-1)
			return nil
		})
		r.Register(c)
	}

	done := make(chan map[string]error)
	go func() { done <- r.CheckAll(t.Context()) }()

	started.Wait()
	close(release)
	got := <-done

	assert.Len(t, got, n)
	assert.Equal(t, int32(n), peak.Load())
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	t.Parallel()

	r := health.New()
	var wg sync.WaitGroup
	for i := range 8 {
		c := mocks.NewMockHealthChecker(t)
		c.EXPECT().Name().Return(string(rune('a' + i)))
		c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
		wg.Go(func() {
			r.Register(c)
			_ = r.CheckAll(t.Context())
		})
	}
	wg.Wait()

	assert.Len(t, r.CheckAll(t.Context()), 8)
}
