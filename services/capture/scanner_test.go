package capturesvc

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yash22022006-glitch/Student-Attendence/core"
	"github.com/Yash22022006-glitch/Student-Attendence/core/student"
	inmemdb "github.com/Yash22022006-glitch/Student-Attendence/storage/database/inmem"
)

func setup(t *testing.T, cameraDisabled bool) (*Scanner, *SimDevice, *student.Service) {
	db, err := inmemdb.Open(inmemdb.Options{Rand: rand.New(rand.NewSource(1))})
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	svc := student.NewService(inmemdb.NewStudentRepository(db))

	conf := &core.Config{}
	conf.Camera.Disabled = cameraDisabled
	device := NewSimDevice(conf)
	return NewScanner(device, svc, rand.New(rand.NewSource(1))), device, svc
}

func TestSimDevice(t *testing.T) {
	conf := &core.Config{}
	device := NewSimDevice(conf)
	assert.False(t, device.Active())

	assert.NoError(t, device.Start())
	assert.True(t, device.Active())

	device.Stop()
	assert.False(t, device.Active())
}

func TestSimDeviceDisabled(t *testing.T) {
	conf := &core.Config{}
	conf.Camera.Disabled = true
	device := NewSimDevice(conf)

	assert.Equal(t, ErrDeviceUnavailable, device.Start())
	// the device stays off; a retry fails the same way
	assert.False(t, device.Active())
	assert.Equal(t, ErrDeviceUnavailable, device.Start())
}

func TestScan(t *testing.T) {
	sc, device, _ := setup(t, false)
	ctx := context.Background()

	st, err := sc.Scan(ctx, "Grade 5")
	assert.NoError(t, err)
	assert.Equal(t, "Grade 5", st.Class)

	// the scanned student is marked Present for today
	today := student.Today()
	var found bool
	for _, rec := range st.Attendance {
		if rec.Date.Equal(today) {
			found = true
			assert.Equal(t, student.StatusPresent, rec.Status)
		}
	}
	assert.True(t, found, "expected a record for today")

	// the camera is released after the scan
	assert.False(t, device.Active())
}

func TestScanDeviceUnavailable(t *testing.T) {
	sc, _, _ := setup(t, true)

	_, err := sc.Scan(context.Background(), "Grade 5")
	assert.Equal(t, ErrDeviceUnavailable, err)
}

func TestScanEmptyScope(t *testing.T) {
	sc, device, _ := setup(t, false)

	_, err := sc.Scan(context.Background(), "Grade 9")
	assert.Equal(t, ErrNoStudents, err)
	assert.False(t, device.Active())
}
