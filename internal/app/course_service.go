package app

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"

	appctx "github.com/jsamuelsen11/exercise-kit/internal/app/context"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/course"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/registration"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/telemetry"
	"github.com/jsamuelsen11/exercise-kit/internal/ports"
)

var _ ports.CourseService = (*CourseService)(nil)

// namedGenerator is implemented by generators that report a name for
// metrics and logs.
type namedGenerator interface {
	Name() string
}

// CourseService implements ports.CourseService. Generation goes through the
// CourseGenerator port; the library is kept in the CourseStore port. Writes
// are staged on the request's appctx.RequestContext and committed together
// with their notifications.
type CourseService struct {
	generator ports.CourseGenerator
	store     ports.CourseStore
	notifier  ports.Notifier
	metrics   *telemetry.Metrics
	logger    *slog.Logger
	policy    *bluemonday.Policy
	now       func() time.Time
	newID     func() string
}

// CourseOption configures a CourseService.
type CourseOption func(*CourseService)

// WithCourseClock replaces time.Now for course timestamps.
func WithCourseClock(now func() time.Time) CourseOption {
	return func(s *CourseService) {
		s.now = now
	}
}

// WithIDGenerator replaces the random UUID used for new course IDs.
func WithIDGenerator(newID func() string) CourseOption {
	return func(s *CourseService) {
		s.newID = newID
	}
}

// NewCourseService creates a CourseService. A nil notifier discards
// messages, nil metrics record nothing and a nil logger discards logs.
func NewCourseService(
	generator ports.CourseGenerator,
	store ports.CourseStore,
	notifier ports.Notifier,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
	opts ...CourseOption,
) *CourseService {
	if notifier == nil {
		notifier = registration.NotifierFunc(func(context.Context, string) {})
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &CourseService{
		generator: generator,
		store:     store,
		notifier:  notifier,
		metrics:   metrics,
		logger:    logger,
		policy:    bluemonday.StrictPolicy(),
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate sanitizes and validates the request, then asks the generator for
// a course. Generator failures are reported as *course.GenerationError;
// a canceled context is returned as is.
func (s *CourseService) Generate(ctx context.Context, req course.Request) (*course.Course, error) {
	req.Normalize()
	req.Topic = s.sanitize(req.Topic)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	name := s.generatorName()
	s.logger.InfoContext(ctx, "generating course",
		slog.String("topic", req.Topic),
		slog.String("level", req.Level.String()),
		slog.Int("weeks", req.DurationWeeks),
		slog.String("generator", name),
	)

	start := s.now()
	c, err := s.generator.Generate(ctx, req)
	elapsed := s.now().Sub(start)

	if err != nil {
		s.metrics.RecordGeneration(ctx, name, telemetry.ResultError, elapsed)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		s.logger.ErrorContext(ctx, "failed to generate course",
			slog.String("operation", "Generate"),
			slog.String("generator", name),
			slog.Any("error", err),
		)
		return nil, &course.GenerationError{Cause: err}
	}

	s.metrics.RecordGeneration(ctx, name, telemetry.ResultSuccess, elapsed)
	c.ApplyRequest(req)
	return c, nil
}

// Save stores a copy of c under a new ID and notifies the user. The
// notification is queued after the store write, so a failed write sends
// nothing.
func (s *CourseService) Save(ctx context.Context, c *course.Course) (*course.Course, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	saved := c.Clone()
	saved.ID = s.newID()
	saved.CreatedAt = s.now().UTC()
	saved.UpdatedAt = saved.CreatedAt

	rc := appctx.FromContextOrNew(ctx)
	if err := errors.Join(
		rc.Stage(courseKey(saved.ID), saved, &saveCourse{store: s.store, course: saved}),
		rc.AddAction(&notify{notifier: s.notifier, message: course.MsgCourseSaved}),
	); err != nil {
		return nil, fmt.Errorf("staging course save: %w", err)
	}

	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to save course",
			slog.String("operation", "Save"),
			slog.String("title", saved.Title),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "saved course",
		slog.String("id", saved.ID),
		slog.String("title", saved.Title),
	)
	return saved, nil
}

// List returns the saved courses, newest first.
func (s *CourseService) List(ctx context.Context) ([]course.Course, error) {
	courses, err := s.store.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list courses",
			slog.String("operation", "List"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return courses, nil
}

// Get returns one saved course.
func (s *CourseService) Get(ctx context.Context, id string) (*course.Course, error) {
	return s.load(appctx.FromContextOrNew(ctx), id)
}

// Delete removes a course and returns what is left of the library.
func (s *CourseService) Delete(ctx context.Context, id string) ([]course.Course, error) {
	if err := s.store.Delete(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete course",
			slog.String("operation", "Delete"),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	rc := appctx.FromContextOrNew(ctx)
	if err := rc.Execute(&notify{notifier: s.notifier, message: course.MsgCourseDeleted}); err != nil {
		s.logger.WarnContext(ctx, "delete notification not sent",
			slog.String("id", id),
			slog.Any("error", err),
		)
	}

	s.logger.InfoContext(ctx, "deleted course", slog.String("id", id))
	return s.List(ctx)
}

// UpdateProgress sets an explicit progress percentage.
func (s *CourseService) UpdateProgress(ctx context.Context, id string, progress int) (*course.Course, error) {
	return s.mutate(ctx, id, "UpdateProgress", func(c *course.Course) error {
		return c.SetProgress(progress)
	})
}

// ToggleLesson flips one lesson and recomputes progress.
func (s *CourseService) ToggleLesson(ctx context.Context, id string, week, lesson int) (*course.Course, error) {
	return s.mutate(ctx, id, "ToggleLesson", func(c *course.Course) error {
		_, err := c.ToggleLesson(week, lesson)
		return err
	})
}

// mutate loads a course, applies fn to a copy and commits the new progress.
func (s *CourseService) mutate(ctx context.Context, id, operation string, fn func(*course.Course) error) (*course.Course, error) {
	rc := appctx.FromContextOrNew(ctx)

	current, err := s.load(rc, id)
	if err != nil {
		return nil, err
	}

	next := current.Clone()
	if err := fn(next); err != nil {
		return nil, err
	}

	action := &updateProgress{store: s.store, before: current, after: next}
	if err := rc.Stage(courseKey(id), next, action); err != nil {
		return nil, fmt.Errorf("staging progress update: %w", err)
	}
	if err := rc.Commit(ctx); err != nil {
		s.logger.ErrorContext(ctx, "failed to update course progress",
			slog.String("operation", operation),
			slog.String("id", id),
			slog.Any("error", err),
		)
		return nil, err
	}

	return action.result, nil
}

func (s *CourseService) load(rc *appctx.RequestContext, id string) (*course.Course, error) {
	return appctx.GetOrFetch(rc, courseKey(id), func(ctx context.Context) (*course.Course, error) {
		return s.store.Get(ctx, id)
	})
}

// sanitize strips markup from user input. The strict policy HTML-escapes
// what it keeps, so entities are decoded again afterwards.
func (s *CourseService) sanitize(raw string) string {
	return strings.TrimSpace(html.UnescapeString(s.policy.Sanitize(raw)))
}

func (s *CourseService) generatorName() string {
	if n, ok := s.generator.(namedGenerator); ok {
		return n.Name()
	}
	return "custom"
}

func courseKey(id string) string {
	return "course:" + id
}
