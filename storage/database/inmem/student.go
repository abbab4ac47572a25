package inmemdb

import (
	"context"
	"sort"

	"github.com/Yash22022006-glitch/Student-Attendence/core/student"
)

type studentRepository struct {
	db *DB
}

func NewStudentRepository(db *DB) student.Repository {
	return &studentRepository{db: db}
}

// clone copies a student so callers never alias the table's record slices.
func clone(st student.Student) student.Student {
	records := make([]student.Record, len(st.Attendance))
	copy(records, st.Attendance)
	st.Attendance = records
	return st
}

func (repo *studentRepository) QueryStudents(ctx context.Context, scope string) ([]student.Student, error) {
	if err := repo.db.wait(ctx); err != nil {
		return nil, err
	}

	repo.db.students.RLock()
	defer repo.db.students.RUnlock()

	students := make([]student.Student, 0, len(repo.db.students.table))
	for _, st := range repo.db.students.table {
		if scope == student.ScopeAll || st.Class == scope {
			students = append(students, clone(*st))
		}
	}
	sort.Slice(students, func(i, j int) bool { return students[i].ID < students[j].ID })
	return students, nil
}

func (repo *studentRepository) GetStudentByID(ctx context.Context, id string) (student.Student, error) {
	if err := repo.db.wait(ctx); err != nil {
		return student.Student{}, err
	}

	repo.db.students.RLock()
	defer repo.db.students.RUnlock()

	if st, ok := repo.db.students.table[id]; ok {
		return clone(*st), nil
	}
	return student.Student{}, student.ErrNotFound
}

// SetAttendance upserts the record by its calendar date: an existing record
// for that date has its status overwritten, otherwise the record is appended.
func (repo *studentRepository) SetAttendance(ctx context.Context, id string, rec student.Record) (student.Student, error) {
	if err := repo.db.wait(ctx); err != nil {
		return student.Student{}, err
	}

	repo.db.students.Lock()
	defer repo.db.students.Unlock()

	st, ok := repo.db.students.table[id]
	if !ok {
		return student.Student{}, student.ErrNotFound
	}

	updated := false
	for i := range st.Attendance {
		if st.Attendance[i].Date.Equal(rec.Date) {
			st.Attendance[i].Status = rec.Status
			updated = true
			break
		}
	}
	if !updated {
		st.Attendance = append(st.Attendance, rec)
	}
	return clone(*st), nil
}
