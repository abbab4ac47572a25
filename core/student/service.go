package student

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("student not found")

type (
	// Repository abstracts student storage. QueryStudents and GetStudentByID
	// never mutate; SetAttendance is the one mutating operation and upserts
	// by the record's calendar date.
	Repository interface {
		// QueryStudents returns students in scope: every student for ScopeAll,
		// otherwise students whose class equals scope (possibly none).
		QueryStudents(ctx context.Context, scope string) ([]Student, error)
		GetStudentByID(ctx context.Context, id string) (Student, error)
		SetAttendance(ctx context.Context, id string, rec Record) (Student, error)
	}

	Service struct {
		repo Repository
		now  func() time.Time
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (svc *Service) Query(ctx context.Context, scope string) ([]Student, error) {
	return svc.repo.QueryStudents(ctx, scope)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Student, error) {
	return svc.repo.GetStudentByID(ctx, id)
}

// Mark records the given status for the student for today. Marking twice on
// the same day overwrites the earlier status instead of adding a record.
func (svc *Service) Mark(ctx context.Context, id string, status Status) (Student, error) {
	if !status.Valid() {
		return Student{}, ErrUnknownStatus
	}
	rec := Record{Date: NewDay(svc.now()), Status: status}
	return svc.repo.SetAttendance(ctx, id, rec)
}
