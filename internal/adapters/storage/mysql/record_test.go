package mysql

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/jsamuelsen11/exercise-kit/internal/adapters/storage/storetest"
)

func TestRecordRoundTrip(t *testing.T) {
	t.Parallel()

	want := storetest.Sample("c-1", 3)
	want.Progress = 33
	want.CompletedLessons = map[int][]int{1: {1}}

	if diff := cmp.Diff(want, toRecord(want).toDomain()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestToRecord_CopiesProgressAndNormalizesTime(t *testing.T) {
	t.Parallel()

	c := storetest.Sample("c-1", 0)
	c.CompletedLessons = map[int][]int{1: {0}}
	c.CreatedAt = c.CreatedAt.In(time.FixedZone("CET", 3600))

	rec := toRecord(c)
	c.CompletedLessons[1][0] = 9

	if rec.CompletedLessons[1][0] != 0 {
		t.Error("record shares CompletedLessons with the course")
	}
	if rec.CreatedAt.Location() != time.UTC {
		t.Errorf("CreatedAt location = %v, want UTC", rec.CreatedAt.Location())
	}
	if rec.TableName() != "courses" {
		t.Errorf("TableName() = %q, want courses", rec.TableName())
	}
}
