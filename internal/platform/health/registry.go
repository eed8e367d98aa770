// Package health keeps the dependencies that gate readiness: the course
// store and, in remote mode, the course API.
package health

import (
	"context"
	"sync"
	"time"

	"github.com/jsamuelsen11/exercise-kit/internal/platform/fanout"
	"github.com/jsamuelsen11/exercise-kit/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single check unless WithCheckTimeout says
// otherwise.
const DefaultCheckTimeout = 2 * time.Second

// Registry runs named health checks concurrently. It is safe for
// concurrent use.
type Registry struct {
	checkTimeout time.Duration

	mu     sync.RWMutex
	order  []string
	byName map[string]ports.HealthChecker
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout gives each check its own deadline of d.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) { r.checkTimeout = d }
}

func New(opts ...Option) *Registry {
	r := &Registry{checkTimeout: DefaultCheckTimeout, byName: make(map[string]ports.HealthChecker)}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker under checker.Name(). Registering a second checker
// with the same name replaces the first.
func (r *Registry) Register(checker ports.HealthChecker) {
	name := checker.Name()

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byName[name]; !ok {
		r.order = append(r.order, name)
	}
	r.byName[name] = checker
}

// CheckAll runs every check at once, each bounded by the check timeout.
// Checks that never start because ctx is already done report ctx.Err().
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	names := append([]string(nil), r.order...)
	checkers := make([]ports.HealthChecker, len(names))
	for i, name := range names {
		checkers[i] = r.byName[name]
	}
	r.mu.RUnlock()

	outcomes := fanout.Run(ctx, len(checkers), checkers,
		func(ctx context.Context, c ports.HealthChecker) (struct{}, error) {
			ctx, cancel := context.WithTimeout(ctx, r.checkTimeout)
			defer cancel()
			return struct{}{}, c.HealthCheck(ctx)
		})

	results := make(map[string]error, len(names))
	for i, name := range names {
		results[name] = outcomes[i].Err
	}
	return results
}
