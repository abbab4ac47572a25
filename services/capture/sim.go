package capturesvc

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/Yash22022006-glitch/Student-Attendence/core"
)

// ErrDeviceUnavailable is returned when the camera cannot be acquired.
// The device stays off; a retry is a new Start call.
var ErrDeviceUnavailable = errors.New("camera device unavailable")

// SimDevice is a simulated camera. It can be disabled via config to exercise
// the permission/availability failure path.
type SimDevice struct {
	mu       sync.Mutex
	disabled bool
	active   bool
}

var _ core.CaptureDevice = (*SimDevice)(nil)

func NewSimDevice(conf *core.Config) *SimDevice {
	return &SimDevice{disabled: conf.Camera.Disabled}
}

func (d *SimDevice) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.disabled {
		return ErrDeviceUnavailable
	}
	d.active = true
	return nil
}

func (d *SimDevice) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.active = false
}

func (d *SimDevice) Active() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.active
}
