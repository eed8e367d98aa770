// Package appctx provides the request-scoped unit of work used by the
// application services.
//
// A RequestContext memoizes reads and queues writes. Writes run in order
// during Commit; when one fails, those already applied are rolled back in
// reverse order:
//
//	rc := appctx.New(ctx)
//
//	c, err := appctx.GetOrFetch(rc, "course:3f2a", loadCourse)
//	rc.Stage("course:3f2a", c, &saveCourse{course: c})
//	rc.AddAction(&notify{message: "Course saved!"})
//
//	err = rc.Commit(ctx)
package appctx

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jsamuelsen11/exercise-kit/internal/domain"
)

var _ domain.WriteStager = (*RequestContext)(nil)

var (
	// ErrAlreadyCommitted is returned when actions are staged on, or Commit is
	// called for, a RequestContext that has already been committed.
	ErrAlreadyCommitted = errors.New("appctx: request context already committed")

	// ErrNilAction is returned when a nil Action is staged or executed.
	ErrNilAction = errors.New("appctx: nil action")

	// ErrTypeMismatch is returned by GetOrFetch when the cached value for a
	// key has a different type than the one requested.
	ErrTypeMismatch = errors.New("appctx: cached value type mismatch")
)

// RequestContext wraps a context.Context with a read cache and a queue of
// staged actions. Create one per request. The cache is not safe for
// concurrent use; the action queue is.
type RequestContext struct {
	context.Context

	cache map[string]cacheEntry

	queueMu   sync.Mutex
	queue     []domain.Action
	committed bool
}

// cacheEntry holds a fetched value or the error the fetch returned.
type cacheEntry struct {
	value any
	err   error
}

// New returns an empty RequestContext wrapping ctx.
func New(ctx context.Context) *RequestContext {
	return &RequestContext{
		Context: ctx,
		cache:   make(map[string]cacheEntry),
	}
}

type ctxKey struct{}

// WithRequestContext returns a copy of ctx carrying rc.
func WithRequestContext(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// FromContext returns the RequestContext stored in ctx, if any.
func FromContext(ctx context.Context) (*RequestContext, bool) {
	rc, ok := ctx.Value(ctxKey{}).(*RequestContext)
	return rc, ok
}

// FromContextOrNew returns the RequestContext stored in ctx, or a fresh one
// wrapping ctx when there is none (CLI calls, tests).
func FromContextOrNew(ctx context.Context) *RequestContext {
	if rc, ok := FromContext(ctx); ok {
		return rc
	}
	return New(ctx)
}

// GetOrFetch returns the cached value for key, calling fetchFn on a miss.
// Errors are cached as well, so a failed lookup is not retried within the
// same request. A key must always be read with the same type T.
func GetOrFetch[T any](rc *RequestContext, key string, fetchFn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if entry, ok := rc.cache[key]; ok {
		if entry.err != nil {
			return zero, entry.err
		}
		v, ok := entry.value.(T)
		if !ok {
			return zero, fmt.Errorf("%w: key %q holds %T, requested %T", ErrTypeMismatch, key, entry.value, zero)
		}
		return v, nil
	}

	val, err := fetchFn(rc.Context)
	rc.cache[key] = cacheEntry{value: val, err: err}
	return val, err
}

// Stage caches entity under key and queues action for Commit. Later
// GetOrFetch calls for key see the staged entity.
func (rc *RequestContext) Stage(key string, entity any, action domain.Action) error {
	if err := rc.AddAction(action); err != nil {
		return err
	}
	rc.cache[key] = cacheEntry{value: entity}
	return nil
}

// AddAction queues action for Commit.
func (rc *RequestContext) AddAction(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}

	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return ErrAlreadyCommitted
	}
	rc.queue = append(rc.queue, action)
	return nil
}

// Execute runs action immediately. It is not queued and is never rolled
// back, and it may be called after Commit.
func (rc *RequestContext) Execute(action domain.Action) error {
	if action == nil {
		return ErrNilAction
	}
	return action.Execute(rc.Context)
}

// Pending returns the number of queued actions.
func (rc *RequestContext) Pending() int {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()
	return len(rc.queue)
}
