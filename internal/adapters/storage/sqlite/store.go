// Package sqlite is the CourseStore backed by an embedded SQLite database
// (modernc.org/sqlite, no cgo). The generated course body is kept as a JSON
// document; progress columns are updated in place.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/jsamuelsen11/exercise-kit/internal/domain"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/course"
	"github.com/jsamuelsen11/exercise-kit/internal/ports"
)

// Compile-time interface check.
var _ ports.CourseStore = (*Store)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS courses (
	id                TEXT PRIMARY KEY,
	body              TEXT NOT NULL,
	progress          INTEGER NOT NULL DEFAULT 0,
	completed_lessons TEXT NOT NULL DEFAULT '{}',
	created_at        INTEGER NOT NULL,
	updated_at        INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_courses_created ON courses(created_at DESC, id);
`

// Store persists courses in one SQLite table.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the database at dsn and applies the
// schema. dsn is a file path or ":memory:".
func Open(ctx context.Context, dsn string) (*Store, error) {
	if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
		if err := os.MkdirAll(filepath.Dir(dsn), 0o750); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	// One connection: SQLite serializes writers anyway, and ":memory:" is
	// per connection.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("applying sqlite schema: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// body is the JSON document stored for a course's generated content.
type body struct {
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Level         course.Level       `json:"level"`
	DurationWeeks int                `json:"durationWeeks"`
	FocusAreas    []course.FocusArea `json:"focusAreas"`
	Prerequisites []string           `json:"prerequisites"`
	Outcomes      []string           `json:"outcomes"`
	Outline       []course.Week      `json:"outline"`
}

// Save inserts or replaces c.
func (s *Store) Save(ctx context.Context, c *course.Course) error {
	doc, err := json.Marshal(body{
		Title:         c.Title,
		Description:   c.Description,
		Level:         c.Level,
		DurationWeeks: c.DurationWeeks,
		FocusAreas:    c.FocusAreas,
		Prerequisites: c.Prerequisites,
		Outcomes:      c.Outcomes,
		Outline:       c.Outline,
	})
	if err != nil {
		return fmt.Errorf("encoding course %s: %w", c.ID, err)
	}
	completed, err := encodeCompleted(c.CompletedLessons)
	if err != nil {
		return fmt.Errorf("encoding course %s: %w", c.ID, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO courses (id, body, progress, completed_lessons, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			body = excluded.body,
			progress = excluded.progress,
			completed_lessons = excluded.completed_lessons,
			created_at = excluded.created_at,
			updated_at = excluded.updated_at`,
		c.ID, string(doc), c.Progress, completed, c.CreatedAt.UnixNano(), c.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("saving course %s: %w", c.ID, err)
	}
	return nil
}

const selectColumns = `SELECT id, body, progress, completed_lessons, created_at, updated_at FROM courses`

// Get returns the course with id.
func (s *Store) Get(ctx context.Context, id string) (*course.Course, error) {
	row := s.db.QueryRowContext(ctx, selectColumns+` WHERE id = ?`, id)
	c, err := scan(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("loading course %s: %w", id, err)
	}
	return c, nil
}

// List returns every course, newest first.
func (s *Store) List(ctx context.Context) ([]course.Course, error) {
	rows, err := s.db.QueryContext(ctx, selectColumns+` ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := []course.Course{}
	for rows.Next() {
		c, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("listing courses: %w", err)
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	return out, nil
}

// Delete removes the course with id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM courses WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting course %s: %w", id, err)
	}
	return requireRow(res, id)
}

// UpdateProgress replaces the progress state of the course with id.
func (s *Store) UpdateProgress(ctx context.Context, id string, progress int, completed map[int][]int) (*course.Course, error) {
	encoded, err := encodeCompleted(completed)
	if err != nil {
		return nil, fmt.Errorf("encoding progress of course %s: %w", id, err)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE courses SET progress = ?, completed_lessons = ?, updated_at = ? WHERE id = ?`,
		progress, encoded, s.now().UTC().UnixNano(), id,
	)
	if err != nil {
		return nil, fmt.Errorf("updating progress of course %s: %w", id, err)
	}
	if err := requireRow(res, id); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

// Name identifies the store in health reports.
func (s *Store) Name() string {
	return "course-store"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("course-store: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*course.Course, error) {
	var (
		c                  course.Course
		doc, completed     string
		createdAt, updated int64
	)
	if err := row.Scan(&c.ID, &doc, &c.Progress, &completed, &createdAt, &updated); err != nil {
		return nil, err
	}

	var b body
	if err := json.Unmarshal([]byte(doc), &b); err != nil {
		return nil, fmt.Errorf("decoding course %s: %w", c.ID, err)
	}
	if err := json.Unmarshal([]byte(completed), &c.CompletedLessons); err != nil {
		return nil, fmt.Errorf("decoding progress of course %s: %w", c.ID, err)
	}

	c.Title = b.Title
	c.Description = b.Description
	c.Level = b.Level
	c.DurationWeeks = b.DurationWeeks
	c.FocusAreas = b.FocusAreas
	c.Prerequisites = b.Prerequisites
	c.Outcomes = b.Outcomes
	c.Outline = b.Outline
	c.CreatedAt = time.Unix(0, createdAt).UTC()
	c.UpdatedAt = time.Unix(0, updated).UTC()
	return &c, nil
}

func encodeCompleted(completed map[int][]int) (string, error) {
	if completed == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(completed)
	return string(raw), err
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("course %s: %w", id, err)
	}
	if n == 0 {
		return notFound(id)
	}
	return nil
}

func notFound(id string) error {
	return fmt.Errorf("course %s: %w", id, domain.ErrNotFound)
}
