package student

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeRepo records the upsert it receives.
type fakeRepo struct {
	student Student
	lastRec Record
	err     error
}

func (r *fakeRepo) QueryStudents(ctx context.Context, scope string) ([]Student, error) {
	return []Student{r.student}, nil
}

func (r *fakeRepo) GetStudentByID(ctx context.Context, id string) (Student, error) {
	if r.err != nil {
		return Student{}, r.err
	}
	return r.student, nil
}

func (r *fakeRepo) SetAttendance(ctx context.Context, id string, rec Record) (Student, error) {
	if r.err != nil {
		return Student{}, r.err
	}
	r.lastRec = rec
	return r.student, nil
}

func TestServiceMark(t *testing.T) {
	now := time.Date(2024, 1, 3, 15, 4, 5, 0, time.UTC)

	t.Run("records today's calendar date", func(t *testing.T) {
		repo := &fakeRepo{student: Student{ID: "s001"}}
		svc := NewService(repo)
		svc.now = func() time.Time { return now }

		_, err := svc.Mark(context.Background(), "s001", StatusLate)
		assert.NoError(t, err)
		assert.True(t, repo.lastRec.Date.Equal(NewDay(now)))
		assert.Equal(t, StatusLate, repo.lastRec.Status)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		repo := &fakeRepo{student: Student{ID: "s001"}}
		svc := NewService(repo)

		_, err := svc.Mark(context.Background(), "s001", Status(42))
		assert.Equal(t, ErrUnknownStatus, err)
		assert.Zero(t, repo.lastRec)
	})

	t.Run("propagates not found", func(t *testing.T) {
		repo := &fakeRepo{err: ErrNotFound}
		svc := NewService(repo)

		_, err := svc.Mark(context.Background(), "nope", StatusPresent)
		assert.Equal(t, ErrNotFound, err)
	})
}
