package student

import (
	"math"

	"github.com/volatiletech/null/v8"
)

// Summary holds the dashboard metrics folded out of a student list.
type Summary struct {
	// Rate is the Present percentage across all records, one decimal;
	// invalid when there are no records at all.
	Rate null.Float64 `json:"rate"`
	// StatusCounts maps each status to its record count across the set.
	StatusCounts map[Status]int `json:"status_counts"`
	// WeeklyAbsences maps weekday names to absence counts; only weekdays
	// with at least one absence appear.
	WeeklyAbsences map[string]int `json:"weekly_absences"`
}

// Summarize folds a student list into its dashboard Summary.
// It is pure: same students in, same Summary out.
func Summarize(students []Student) Summary {
	summary := Summary{
		StatusCounts:   make(map[Status]int),
		WeeklyAbsences: make(map[string]int),
	}

	var total, present int
	for _, st := range students {
		for _, rec := range st.Attendance {
			total++
			summary.StatusCounts[rec.Status]++
			switch rec.Status {
			case StatusPresent:
				present++
			case StatusAbsent:
				summary.WeeklyAbsences[rec.Date.Weekday().String()]++
			}
		}
	}

	if total > 0 {
		rate := float64(present) / float64(total) * 100
		summary.Rate = null.Float64From(math.Round(rate*10) / 10)
	}
	return summary
}
