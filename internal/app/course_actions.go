package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/exercise-kit/internal/domain"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/course"
	"github.com/jsamuelsen11/exercise-kit/internal/ports"
)

// saveCourse writes a new course; rollback deletes it again.
type saveCourse struct {
	store  ports.CourseStore
	course *course.Course
}

func (a *saveCourse) Execute(ctx context.Context) error {
	return a.store.Save(ctx, a.course)
}

func (a *saveCourse) Rollback(ctx context.Context) error {
	err := a.store.Delete(ctx, a.course.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

func (a *saveCourse) Description() string {
	return "save course " + a.course.ID
}

// updateProgress writes a course's progress; rollback restores the values
// it replaced.
type updateProgress struct {
	store  ports.CourseStore
	before *course.Course
	after  *course.Course
	result *course.Course
}

func (a *updateProgress) Execute(ctx context.Context) error {
	updated, err := a.store.UpdateProgress(ctx, a.after.ID, a.after.Progress, a.after.CompletedLessons)
	if err != nil {
		return err
	}
	a.result = updated
	return nil
}

func (a *updateProgress) Rollback(ctx context.Context) error {
	_, err := a.store.UpdateProgress(ctx, a.before.ID, a.before.Progress, a.before.CompletedLessons)
	return err
}

func (a *updateProgress) Description() string {
	return fmt.Sprintf("update progress of course %s to %d%%", a.after.ID, a.after.Progress)
}

// notify sends one message. It has nothing to undo.
type notify struct {
	notifier ports.Notifier
	message  string
}

func (a *notify) Execute(ctx context.Context) error {
	a.notifier.Notify(ctx, a.message)
	return nil
}

func (a *notify) Rollback(context.Context) error { return nil }

func (a *notify) Description() string {
	return fmt.Sprintf("notify %q", a.message)
}
