package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	appctx "github.com/jsamuelsen11/exercise-kit/internal/app/context"
	"github.com/jsamuelsen11/exercise-kit/internal/domain"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/registration"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/config"
	"github.com/jsamuelsen11/exercise-kit/internal/platform/telemetry"
	"github.com/jsamuelsen11/exercise-kit/internal/ports"
)

var _ ports.RegistrationService = (*RegistrationService)(nil)

// formSession is the state behind one session ID. It is only touched
// through its SafeRef.
type formSession struct {
	controller *registration.Controller
	message    string
	expiresAt  time.Time
}

// RegistrationService implements ports.RegistrationService. It keeps one
// registration.Controller per form session in memory and forwards every
// controller notification to the configured Notifier.
type RegistrationService struct {
	notifier ports.Notifier
	metrics  *telemetry.Metrics
	logger   *slog.Logger
	cfg      config.RegistrationConfig
	now      func() time.Time

	mu       sync.RWMutex
	sessions map[string]*appctx.SafeRef[formSession]
}

// RegistrationOption configures a RegistrationService.
type RegistrationOption func(*RegistrationService)

// WithClock replaces time.Now for session expiry.
func WithClock(now func() time.Time) RegistrationOption {
	return func(s *RegistrationService) {
		s.now = now
	}
}

// NewRegistrationService creates a RegistrationService. A nil notifier
// discards messages, nil metrics record nothing and a nil logger discards
// logs.
func NewRegistrationService(
	cfg config.RegistrationConfig,
	notifier ports.Notifier,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
	opts ...RegistrationOption,
) *RegistrationService {
	if notifier == nil {
		notifier = registration.NotifierFunc(func(context.Context, string) {})
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.SuccessMessage == "" {
		cfg.SuccessMessage = registration.MsgRegistered
	}
	s := &RegistrationService{
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
		cfg:      cfg,
		now:      time.Now,
		sessions: make(map[string]*appctx.SafeRef[formSession]),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Validate runs a one-off submit of a complete form.
func (s *RegistrationService) Validate(ctx context.Context, fields registration.Fields) registration.Result {
	ctrl := s.newController(nil)
	ctrl.Load(fields)

	res := ctrl.Submit(ctx)
	s.recordSubmit(ctx, "", res)
	return res
}

// SuccessHeadline returns the headline that opens every success
// notification.
func (s *RegistrationService) SuccessHeadline() string {
	return s.cfg.SuccessMessage
}

// OpenSession starts an empty form session. Expired sessions are purged
// first so they do not count against the limit.
func (s *RegistrationService) OpenSession(ctx context.Context) (*ports.FormSession, error) {
	s.PurgeExpired(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.MaxSessions > 0 && len(s.sessions) >= s.cfg.MaxSessions {
		s.logger.WarnContext(ctx, "form session limit reached",
			slog.String("operation", "OpenSession"),
			slog.Int("max_sessions", s.cfg.MaxSessions),
		)
		return nil, fmt.Errorf("form session limit of %d reached: %w", s.cfg.MaxSessions, domain.ErrConflict)
	}

	id := uuid.NewString()
	ref := appctx.NewRef(formSession{})
	ref.Update(func(fs *formSession) {
		fs.controller = s.newController(fs)
		fs.expiresAt = s.now().Add(s.cfg.SessionTTL)
	})
	s.sessions[id] = ref

	s.logger.InfoContext(ctx, "opened form session", slog.String("session_id", id))
	return snapshot(id, ref.Get()), nil
}

// GetSession returns the session's current state and extends its lifetime.
func (s *RegistrationService) GetSession(ctx context.Context, id string) (*ports.FormSession, error) {
	var view *ports.FormSession
	err := s.withSession(ctx, id, func(fs *formSession) error {
		view = snapshot(id, *fs)
		return nil
	})
	return view, err
}

// SetField replaces one field of the session.
func (s *RegistrationService) SetField(
	ctx context.Context, id string, name registration.FieldName, value string,
) (*ports.FormSession, error) {
	var view *ports.FormSession
	err := s.withSession(ctx, id, func(fs *formSession) error {
		if _, err := fs.controller.SetField(name, value); err != nil {
			return err
		}
		view = snapshot(id, *fs)
		return nil
	})
	return view, err
}

// ResetSession clears every field of the session.
func (s *RegistrationService) ResetSession(ctx context.Context, id string) (*ports.FormSession, error) {
	var view *ports.FormSession
	err := s.withSession(ctx, id, func(fs *formSession) error {
		fs.controller.Reset()
		fs.message = ""
		view = snapshot(id, *fs)
		return nil
	})
	return view, err
}

// SubmitSession validates the session's form. The controller sends exactly
// one notification per submit.
func (s *RegistrationService) SubmitSession(
	ctx context.Context, id string,
) (*ports.FormSession, registration.Result, error) {
	var (
		view *ports.FormSession
		res  registration.Result
	)
	err := s.withSession(ctx, id, func(fs *formSession) error {
		res = fs.controller.Submit(ctx)
		view = snapshot(id, *fs)
		return nil
	})
	if err != nil {
		return nil, registration.Result{}, err
	}

	s.recordSubmit(ctx, id, res)
	return view, res, nil
}

// CloseSession discards the session.
func (s *RegistrationService) CloseSession(ctx context.Context, id string) error {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return sessionNotFound(id)
	}
	s.logger.InfoContext(ctx, "closed form session", slog.String("session_id", id))
	return nil
}

// PurgeExpired drops every session past its expiry and returns how many
// were dropped.
func (s *RegistrationService) PurgeExpired(ctx context.Context) int {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	var purged int
	for id, ref := range s.sessions {
		if now.After(ref.Get().expiresAt) {
			delete(s.sessions, id)
			purged++
		}
	}
	if purged > 0 {
		s.logger.DebugContext(ctx, "purged expired form sessions", slog.Int("count", purged))
	}
	return purged
}

// withSession runs fn under the session's lock and pushes its expiry out.
// Expired sessions are removed and reported as not found.
func (s *RegistrationService) withSession(ctx context.Context, id string, fn func(*formSession) error) error {
	s.mu.RLock()
	ref, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return sessionNotFound(id)
	}

	now := s.now()
	expired := false
	err := ref.UpdateErr(func(fs *formSession) error {
		if now.After(fs.expiresAt) {
			expired = true
			return sessionNotFound(id)
		}
		fs.expiresAt = now.Add(s.cfg.SessionTTL)
		return fn(fs)
	})

	if expired {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		s.logger.DebugContext(ctx, "form session expired", slog.String("session_id", id))
	}
	return err
}

// newController builds a controller whose notifications are forwarded to
// the service notifier and, when fs is set, remembered on the session.
func (s *RegistrationService) newController(fs *formSession) *registration.Controller {
	notify := registration.NotifierFunc(func(ctx context.Context, message string) {
		if fs != nil {
			fs.message = message
		}
		s.notifier.Notify(ctx, message)
	})
	return registration.NewController(notify, registration.WithSuccessMessage(s.cfg.SuccessMessage))
}

func (s *RegistrationService) recordSubmit(ctx context.Context, id string, res registration.Result) {
	result := telemetry.ResultValid
	if !res.Valid() {
		result = telemetry.ResultInvalid
	}
	s.metrics.RecordSubmission(ctx, result)

	attrs := []any{slog.String("result", result)}
	if id != "" {
		attrs = append(attrs, slog.String("session_id", id))
	}
	if !res.Valid() {
		attrs = append(attrs, slog.String("field", res.Field.String()))
	}
	s.logger.InfoContext(ctx, "registration submitted", attrs...)
}

func snapshot(id string, fs formSession) *ports.FormSession {
	view := &ports.FormSession{
		ID:        id,
		Fields:    fs.controller.Fields(),
		Message:   fs.message,
		ExpiresAt: fs.expiresAt,
	}
	if res, ok := fs.controller.LastResult(); ok {
		view.LastResult = &res
	}
	return view
}

func sessionNotFound(id string) error {
	return fmt.Errorf("form session %s: %w", id, domain.ErrNotFound)
}
