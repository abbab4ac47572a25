package inmemdb

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/Yash22022006-glitch/Student-Attendence/core/student"
	"github.com/Yash22022006-glitch/Student-Attendence/core/user"
)

type (
	// DB is the process-local attendance store. It stands in for a remote
	// service: every operation observes the configured latency and honors
	// context cancellation. Data is re-seeded on every Open.
	DB struct {
		users    *userTable
		students *studentTable
		latency  time.Duration
	}

	userTable struct {
		sync.RWMutex
		table map[string]*user.User
	}

	studentTable struct {
		sync.RWMutex
		table map[string]*student.Student
	}
)

type Options struct {
	// Latency is applied to every operation to emulate a remote API; zero disables it.
	Latency time.Duration
	// Rand drives the synthesized seed attendance. Defaults to a time-seeded
	// source; tests pass a fixed seed for determinism.
	Rand *rand.Rand
	// SeedDays is how many calendar days of attendance to synthesize per student.
	SeedDays int
}

func Open(opts Options) (*DB, error) {
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	days := opts.SeedDays
	if days <= 0 {
		days = defaultSeedDays
	}

	db := &DB{
		users:    &userTable{table: make(map[string]*user.User)},
		students: &studentTable{table: make(map[string]*student.Student)},
		latency:  opts.Latency,
	}
	seed(db, rnd, days)
	return db, nil
}

func (db *DB) wait(ctx context.Context) error {
	if db.latency <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(db.latency)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
