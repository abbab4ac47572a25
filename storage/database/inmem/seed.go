package inmemdb

import (
	"math/rand"
	"time"

	"github.com/Yash22022006-glitch/Student-Attendence/core/student"
	"github.com/Yash22022006-glitch/Student-Attendence/core/user"
)

const defaultSeedDays = 30

// statusPool weighs Present heavily so seeded histories look plausible.
var statusPool = []student.Status{
	student.StatusPresent,
	student.StatusPresent,
	student.StatusPresent,
	student.StatusPresent,
	student.StatusPresent,
	student.StatusAbsent,
	student.StatusLate,
	student.StatusExcused,
}

var seedUsers = []user.User{
	{ID: "u001", Name: "Dr. Evelyn Reed", Role: user.RoleAdmin, AssociatedID: student.ScopeAll},
	{ID: "u002", Name: "Mr. David Chen", Role: user.RoleTeacher, AssociatedID: "Grade 5"},
	{ID: "p001", Name: "Sarah Johnson (Parent)", Role: user.RoleParent, AssociatedID: "s001"},
}

var seedStudents = []student.Student{
	{ID: "s001", Name: "Alice Johnson", Class: "Grade 5", ProfileImg: "https://picsum.photos/seed/alice/200", ParentID: "p001"},
	{ID: "s002", Name: "Bob Williams", Class: "Grade 5", ProfileImg: "https://picsum.photos/seed/bob/200", ParentID: "p002"},
	{ID: "s003", Name: "Charlie Brown", Class: "Grade 5", ProfileImg: "https://picsum.photos/seed/charlie/200", ParentID: "p003"},
	{ID: "s004", Name: "Diana Miller", Class: "Grade 4", ProfileImg: "https://picsum.photos/seed/diana/200", ParentID: "p004"},
	{ID: "s005", Name: "Ethan Davis", Class: "Grade 4", ProfileImg: "https://picsum.photos/seed/ethan/200", ParentID: "p005"},
}

func seed(db *DB, rnd *rand.Rand, days int) {
	for _, usr := range seedUsers {
		usr := usr
		db.users.table[usr.ID] = &usr
	}
	for _, st := range seedStudents {
		st := st
		st.Attendance = generateAttendance(rnd, days)
		db.students.table[st.ID] = &st
	}
}

// generateAttendance synthesizes the given number of trailing calendar days
// of attendance, skipping weekends.
func generateAttendance(rnd *rand.Rand, days int) []student.Record {
	today := student.Today()
	records := make([]student.Record, 0, days)
	for i := 0; i < days; i++ {
		day := today.AddDays(i - days)
		if wd := day.Weekday(); wd == time.Sunday || wd == time.Saturday {
			continue
		}
		records = append(records, student.Record{
			Date:   day,
			Status: statusPool[rnd.Intn(len(statusPool))],
		})
	}
	return records
}
