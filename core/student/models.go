package student

import (
	"math"
	"time"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
)

// ScopeAll is the scope sentinel that matches every student.
const ScopeAll = "all"

// Attendance statuses
const (
	StatusPresent Status = iota + 1
	StatusAbsent
	StatusLate
	StatusExcused
)

var (
	statusNames = map[Status]string{
		StatusPresent: "Present",
		StatusAbsent:  "Absent",
		StatusLate:    "Late",
		StatusExcused: "Excused",
	}
	statusValues = map[string]Status{
		"Present": StatusPresent,
		"Absent":  StatusAbsent,
		"Late":    StatusLate,
		"Excused": StatusExcused,
	}

	ErrUnknownStatus = errors.New("unknown attendance status")
)

// Status is an attendance status; one of Present, Absent, Late or Excused.
type Status uint8

func StatusFromString(s string) (Status, error) {
	if status, ok := statusValues[s]; ok {
		return status, nil
	}
	return 0, ErrUnknownStatus
}

func (s Status) Valid() bool {
	_, ok := statusNames[s]
	return ok
}

func (s Status) String() string {
	return statusNames[s]
}

func (s Status) MarshalText() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, ErrUnknownStatus
	}
	return []byte(name), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	status, err := StatusFromString(string(text))
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// Day is a calendar date with no time component, in UTC.
type Day struct {
	t time.Time
}

const dayFormat = "2006-01-02"

func NewDay(t time.Time) Day {
	t = t.UTC()
	return Day{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func Today() Day {
	return NewDay(time.Now())
}

func (d Day) AddDays(n int) Day {
	return NewDay(d.t.AddDate(0, 0, n))
}

func (d Day) Equal(other Day) bool {
	return d.t.Equal(other.t)
}

func (d Day) Weekday() time.Weekday {
	return d.t.Weekday()
}

func (d Day) String() string {
	return d.t.Format(dayFormat)
}

func (d Day) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Day) UnmarshalText(text []byte) error {
	t, err := time.Parse(dayFormat, string(text))
	if err != nil {
		return errors.Wrap(err, "parsing day")
	}
	*d = NewDay(t)
	return nil
}

// Record is a single day's attendance entry. It is owned by its Student;
// a Student holds at most one Record per calendar date.
type Record struct {
	Date   Day    `json:"date"`
	Status Status `json:"status"`
}

type Student struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Class      string   `json:"class"`
	ProfileImg string   `json:"profile_img"`
	ParentID   string   `json:"parent_id"`
	Attendance []Record `json:"attendance"`
}

// AttendanceRate returns the student's Present percentage rounded to the
// nearest integer; invalid when the student has no records.
func (s Student) AttendanceRate() null.Int {
	if len(s.Attendance) == 0 {
		return null.Int{}
	}
	var present int
	for _, rec := range s.Attendance {
		if rec.Status == StatusPresent {
			present++
		}
	}
	rate := float64(present) / float64(len(s.Attendance)) * 100
	return null.IntFrom(int(math.Round(rate)))
}
