package capturesvc

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/Yash22022006-glitch/Student-Attendence/core"
	"github.com/Yash22022006-glitch/Student-Attendence/core/student"
)

// ErrNoStudents is returned when a scan finds no students in scope.
var ErrNoStudents = errors.New("no students available to scan")

// Scanner drives the scan-to-mark-present flow. Recognition is simulated:
// one student in scope is picked at random.
type Scanner struct {
	device   core.CaptureDevice
	students *student.Service

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewScanner(device core.CaptureDevice, students *student.Service, rnd *rand.Rand) *Scanner {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Scanner{device: device, students: students, rnd: rnd}
}

// Scan acquires the camera, "recognizes" a random student in scope and marks
// them Present for today. The camera is released whatever the outcome.
func (sc *Scanner) Scan(ctx context.Context, scope string) (student.Student, error) {
	if err := sc.device.Start(); err != nil {
		return student.Student{}, err
	}
	defer sc.device.Stop()

	students, err := sc.students.Query(ctx, scope)
	if err != nil {
		return student.Student{}, errors.Wrap(err, "querying students in scope")
	}
	if len(students) == 0 {
		return student.Student{}, ErrNoStudents
	}

	picked := students[sc.intn(len(students))]
	return sc.students.Mark(ctx, picked.ID, student.StatusPresent)
}

func (sc *Scanner) intn(n int) int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.rnd.Intn(n)
}
