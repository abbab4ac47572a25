package student

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"
)

// 2024-01-01 was a Monday.
func day(t *testing.T, value string) Day {
	t.Helper()
	tm, err := time.Parse("2006-01-02", value)
	if err != nil {
		t.Fatalf("day(%s) failed: %v", value, err)
	}
	return NewDay(tm)
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name     string
		students []Student
		want     Summary
	}{
		{
			name:     "no students",
			students: nil,
			want: Summary{
				Rate:           null.Float64{},
				StatusCounts:   map[Status]int{},
				WeeklyAbsences: map[string]int{},
			},
		},
		{
			name: "students without records",
			students: []Student{
				{ID: "s001"},
				{ID: "s002"},
			},
			want: Summary{
				Rate:           null.Float64{},
				StatusCounts:   map[Status]int{},
				WeeklyAbsences: map[string]int{},
			},
		},
		{
			name: "all present",
			students: []Student{
				{ID: "s001", Attendance: []Record{
					{Date: day(t, "2024-01-01"), Status: StatusPresent},
					{Date: day(t, "2024-01-02"), Status: StatusPresent},
				}},
			},
			want: Summary{
				Rate:           null.Float64From(100),
				StatusCounts:   map[Status]int{StatusPresent: 2},
				WeeklyAbsences: map[string]int{},
			},
		},
		{
			name: "mixed statuses rounds to one decimal",
			students: []Student{
				{ID: "s001", Attendance: []Record{
					{Date: day(t, "2024-01-01"), Status: StatusPresent},
					{Date: day(t, "2024-01-02"), Status: StatusAbsent},
					{Date: day(t, "2024-01-03"), Status: StatusLate},
				}},
			},
			want: Summary{
				Rate:           null.Float64From(33.3),
				StatusCounts:   map[Status]int{StatusPresent: 1, StatusAbsent: 1, StatusLate: 1},
				WeeklyAbsences: map[string]int{"Tuesday": 1},
			},
		},
		{
			name: "histogram only lists weekdays with absences",
			students: []Student{
				{ID: "s001", Attendance: []Record{
					{Date: day(t, "2024-01-01"), Status: StatusAbsent},
					{Date: day(t, "2024-01-02"), Status: StatusPresent},
					{Date: day(t, "2024-01-08"), Status: StatusAbsent},
				}},
			},
			want: Summary{
				Rate:           null.Float64From(33.3),
				StatusCounts:   map[Status]int{StatusPresent: 1, StatusAbsent: 2},
				WeeklyAbsences: map[string]int{"Monday": 2},
			},
		},
		{
			name: "records folded across students",
			students: []Student{
				{ID: "s001", Attendance: []Record{{Date: day(t, "2024-01-01"), Status: StatusPresent}}},
				{ID: "s002", Attendance: []Record{{Date: day(t, "2024-01-01"), Status: StatusExcused}}},
			},
			want: Summary{
				Rate:           null.Float64From(50),
				StatusCounts:   map[Status]int{StatusPresent: 1, StatusExcused: 1},
				WeeklyAbsences: map[string]int{},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Summarize(tt.students)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSummarizeRateBounds(t *testing.T) {
	students := []Student{
		{ID: "s001", Attendance: []Record{
			{Date: day(t, "2024-01-01"), Status: StatusAbsent},
			{Date: day(t, "2024-01-02"), Status: StatusAbsent},
		}},
	}
	got := Summarize(students)
	assert.True(t, got.Rate.Valid)
	assert.GreaterOrEqual(t, got.Rate.Float64, float64(0))
	assert.LessOrEqual(t, got.Rate.Float64, float64(100))
	assert.Equal(t, float64(0), got.Rate.Float64)
}

func TestAttendanceRate(t *testing.T) {
	tests := []struct {
		name    string
		student Student
		want    null.Int
	}{
		{name: "no records is not applicable", student: Student{ID: "s001"}, want: null.Int{}},
		{
			name: "rounds to nearest integer",
			student: Student{ID: "s001", Attendance: []Record{
				{Date: day(t, "2024-01-01"), Status: StatusPresent},
				{Date: day(t, "2024-01-02"), Status: StatusPresent},
				{Date: day(t, "2024-01-03"), Status: StatusAbsent},
			}},
			want: null.IntFrom(67),
		},
		{
			name: "all present",
			student: Student{ID: "s001", Attendance: []Record{
				{Date: day(t, "2024-01-01"), Status: StatusPresent},
			}},
			want: null.IntFrom(100),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.student.AttendanceRate())
		})
	}
}
