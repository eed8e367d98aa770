package ports

import "context"

// HealthChecker is a dependency that readiness should wait on, such as the
// course store or the remote course API.
type HealthChecker interface {
	// Name keys the result, e.g. "course-store".
	Name() string
	// HealthCheck returns nil when healthy. It must return once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects checkers for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)
	// CheckAll runs every checker and maps its name to the outcome; nil
	// means healthy.
	CheckAll(ctx context.Context) map[string]error
}
