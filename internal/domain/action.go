package domain

import "context"

// Action is a deferred write. Application services queue actions on the
// request's unit of work, which runs them at commit and rolls back the ones
// that succeeded if a later action fails.
type Action interface {
	Execute(ctx context.Context) error
	// Rollback undoes a successful Execute. It may receive a different
	// context than Execute did.
	Rollback(ctx context.Context) error
	// Description names the action in logs, e.g. "save course 3f2a".
	Description() string
}

// WriteStager is the write side of the unit of work as seen from the domain.
type WriteStager interface {
	// Stage queues action and makes entity the value later reads of key
	// observe within the same request.
	Stage(key string, entity any, action Action) error
	// Execute runs action right away, outside the commit queue.
	Execute(action Action) error
}
