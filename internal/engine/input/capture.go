package input

import (
	"errors"
)

// Surface is the render surface the capture session controls. The SDL
// window implements it; tests substitute a fake.
type Surface interface {
	// SetRelativeMouse enables or disables relative mouse mode, which
	// hides the cursor and reports motion as unbounded deltas.
	SetRelativeMouse(enabled bool) error
	// Raise gives the surface input focus.
	Raise()
}

// CaptureSession owns the captured/released lifecycle of the mouse.
// A click on the surface acquires capture; release comes from outside
// (ESC, focus loss) and is never requested by the session itself.
type CaptureSession struct {
	surface  Surface
	captured bool

	// ShowHint toggles the "click to play" hint. Optional.
	ShowHint func(visible bool)
	// OnRelease runs after every release so the controller can reset
	// movement state. Optional.
	OnRelease func()
}

// NewCaptureSession creates a session over the given surface. The
// surface is required; the session cannot function without one.
func NewCaptureSession(surface Surface) (*CaptureSession, error) {
	if surface == nil {
		return nil, errors.New("input: capture session needs a surface")
	}
	return &CaptureSession{surface: surface}, nil
}

// Captured reports whether the mouse is currently captured.
func (s *CaptureSession) Captured() bool {
	return s.captured
}

// HandleClick acquires capture on a surface click. Clicks while already
// captured are gameplay input, not lifecycle events, and are ignored.
func (s *CaptureSession) HandleClick() {
	if s.captured {
		return
	}
	if err := s.surface.SetRelativeMouse(true); err != nil {
		return
	}
	s.captured = true
	s.surface.Raise()
	if s.ShowHint != nil {
		s.ShowHint(false)
	}
}

// Release drops capture. Safe to call when not captured.
func (s *CaptureSession) Release() {
	if !s.captured {
		return
	}
	_ = s.surface.SetRelativeMouse(false)
	s.captured = false
	if s.ShowHint != nil {
		s.ShowHint(true)
	}
	if s.OnRelease != nil {
		s.OnRelease()
	}
}
