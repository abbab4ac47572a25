package core

// CaptureDevice abstracts the camera used by the attendance scanner.
// Start may fail when the device cannot be acquired; the device then stays
// off and a retry is a new Start call.
type CaptureDevice interface {
	Start() error
	Stop()
	Active() bool
}
