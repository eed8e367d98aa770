package mysql

import (
	"time"

	"github.com/jsamuelsen11/exercise-kit/internal/domain/course"
)

// courseRecord is the courses table row. Generated content that has no
// query use is stored in JSON columns.
type courseRecord struct {
	ID               string             `gorm:"primaryKey;type:varchar(64)"`
	Title            string             `gorm:"type:varchar(255);not null"`
	Description      string             `gorm:"type:text"`
	Level            string             `gorm:"type:varchar(32)"`
	DurationWeeks    int                `gorm:"not null"`
	FocusAreas       []course.FocusArea `gorm:"serializer:json;type:json"`
	Prerequisites    []string           `gorm:"serializer:json;type:json"`
	Outcomes         []string           `gorm:"serializer:json;type:json"`
	Outline          []course.Week      `gorm:"serializer:json;type:json"`
	Progress         int                `gorm:"not null;default:0"`
	CompletedLessons map[int][]int      `gorm:"serializer:json;type:json"`
	CreatedAt        time.Time          `gorm:"autoCreateTime:false;precision:6;index"`
	UpdatedAt        time.Time          `gorm:"autoUpdateTime:false;precision:6"`
}

// TableName maps courseRecord to the courses table.
func (courseRecord) TableName() string {
	return "courses"
}

func toRecord(c *course.Course) *courseRecord {
	cp := c.Clone()
	return &courseRecord{
		ID:               cp.ID,
		Title:            cp.Title,
		Description:      cp.Description,
		Level:            cp.Level.String(),
		DurationWeeks:    cp.DurationWeeks,
		FocusAreas:       cp.FocusAreas,
		Prerequisites:    cp.Prerequisites,
		Outcomes:         cp.Outcomes,
		Outline:          cp.Outline,
		Progress:         cp.Progress,
		CompletedLessons: cp.CompletedLessons,
		CreatedAt:        cp.CreatedAt.UTC(),
		UpdatedAt:        cp.UpdatedAt.UTC(),
	}
}

func (r *courseRecord) toDomain() *course.Course {
	return &course.Course{
		ID:               r.ID,
		Title:            r.Title,
		Description:      r.Description,
		Level:            course.Level(r.Level),
		DurationWeeks:    r.DurationWeeks,
		FocusAreas:       r.FocusAreas,
		Prerequisites:    r.Prerequisites,
		Outcomes:         r.Outcomes,
		Outline:          r.Outline,
		Progress:         r.Progress,
		CompletedLessons: r.CompletedLessons,
		CreatedAt:        r.CreatedAt.UTC(),
		UpdatedAt:        r.UpdatedAt.UTC(),
	}
}
