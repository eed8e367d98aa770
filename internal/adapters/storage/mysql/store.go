// Package mysql is the CourseStore backed by MySQL through gorm. The schema
// is created with AutoMigrate on Open.
package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen11/exercise-kit/internal/domain"
	"github.com/jsamuelsen11/exercise-kit/internal/domain/course"
	"github.com/jsamuelsen11/exercise-kit/internal/ports"
)

// Compile-time interface check.
var _ ports.CourseStore = (*Store)(nil)

// Store persists courses in a MySQL table.
type Store struct {
	db  *gorm.DB
	now func() time.Time
}

// Open connects to the database at dsn and migrates the courses table. The
// DSN must set parseTime=true.
func Open(ctx context.Context, dsn string) (*Store, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:  gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("opening mysql database: %w", err)
	}
	if err := db.WithContext(ctx).AutoMigrate(&courseRecord{}); err != nil {
		return nil, fmt.Errorf("migrating courses table: %w", err)
	}
	return &Store{db: db, now: time.Now}, nil
}

// Save inserts or replaces c.
func (s *Store) Save(ctx context.Context, c *course.Course) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(toRecord(c)).Error
	if err != nil {
		return fmt.Errorf("saving course %s: %w", c.ID, err)
	}
	return nil
}

// Get returns the course with id.
func (s *Store) Get(ctx context.Context, id string) (*course.Course, error) {
	var rec courseRecord
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, notFound(id)
	case err != nil:
		return nil, fmt.Errorf("loading course %s: %w", id, err)
	default:
		return rec.toDomain(), nil
	}
}

// List returns every course, newest first.
func (s *Store) List(ctx context.Context) ([]course.Course, error) {
	var recs []courseRecord
	if err := s.db.WithContext(ctx).Order("created_at DESC, id").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}

	out := make([]course.Course, len(recs))
	for i := range recs {
		out[i] = *recs[i].toDomain()
	}
	return out, nil
}

// Delete removes the course with id.
func (s *Store) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&courseRecord{})
	if res.Error != nil {
		return fmt.Errorf("deleting course %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(id)
	}
	return nil
}

// UpdateProgress replaces the progress state of the course with id. The
// read and write share one transaction.
func (s *Store) UpdateProgress(ctx context.Context, id string, progress int, completed map[int][]int) (*course.Course, error) {
	var rec courseRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&rec).Error; err != nil {
			return err
		}

		rec.Progress = progress
		rec.CompletedLessons = (&course.Course{CompletedLessons: completed}).Clone().CompletedLessons
		rec.UpdatedAt = s.now().UTC()

		return tx.Model(&rec).
			Select("progress", "completed_lessons", "updated_at").
			Updates(&rec).Error
	})
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, notFound(id)
	case err != nil:
		return nil, fmt.Errorf("updating progress of course %s: %w", id, err)
	default:
		return rec.toDomain(), nil
	}
}

// Name identifies the store in health reports.
func (s *Store) Name() string {
	return "course-store"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("course-store: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("course-store: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func notFound(id string) error {
	return fmt.Errorf("course %s: %w", id, domain.ErrNotFound)
}
