package player

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/sableforge/driftwalk/internal/engine/input"
)

// State is the mutable movement state owned by the controller. All
// mutation happens on the host's single event/render thread; the input
// handlers and Update are never invoked concurrently.
type State struct {
	Keys input.Keys

	// Velocity is authoritative in kinematic mode and mirrored from
	// the physics body in dynamic mode.
	Velocity mgl32.Vec3

	// Direction is the last normalized desired horizontal direction,
	// zero when no movement key is held.
	Direction mgl32.Vec3

	Grounded bool
}

// resetMotion zeroes velocity and direction and clears the jump latch.
// Held keys are kept: this is the per-frame idle reset, not the
// capture-release reset.
func (s *State) resetMotion() {
	s.Velocity = mgl32.Vec3{}
	s.Direction = mgl32.Vec3{}
	s.Keys.PendingJump = false
	s.Keys.JumpBoost = false
}

// resetAll clears everything including held keys, used when the mouse
// capture is released so no stale input leaks into the next session.
func (s *State) resetAll() {
	s.Keys.Reset()
	s.Velocity = mgl32.Vec3{}
	s.Direction = mgl32.Vec3{}
	s.Grounded = true
}
