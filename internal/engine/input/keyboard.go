package input

// Keys tracks held movement keys and the jump latch. Movement keys are
// level signals; the jump latch is an edge: it is set on a Space press
// while grounded and consumed exactly once by the integrator.
type Keys struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Sprint   bool

	// PendingJump latches on a grounded Space press and is cleared by
	// the next integrator step whether or not the jump fires.
	PendingJump bool
	// JumpBoost snapshots Forward at the moment the jump latched.
	JumpBoost bool
}

// Apply feeds one key edge into the state machine. grounded is the
// player's grounded state at the time of the event; it gates jump
// latching only. Repeated down events for held keys are idempotent.
func (k *Keys) Apply(a Action, pressed, grounded bool) {
	switch a {
	case ActionForward:
		k.Forward = pressed
	case ActionBackward:
		k.Backward = pressed
	case ActionLeft:
		k.Left = pressed
	case ActionRight:
		k.Right = pressed
	case ActionSprint:
		k.Sprint = pressed
	case ActionJump:
		if pressed {
			// Airborne presses are dropped: no jump buffering.
			if grounded {
				k.PendingJump = true
				k.JumpBoost = k.Forward
			}
		} else {
			// Releasing Space clears a latch that has not fired yet,
			// so a stale latch cannot trigger a later jump.
			k.PendingJump = false
			k.JumpBoost = false
		}
	}
}

// ConsumeJump clears the latch and reports what was latched.
func (k *Keys) ConsumeJump() (jump, boost bool) {
	jump = k.PendingJump
	boost = k.JumpBoost
	k.PendingJump = false
	k.JumpBoost = false
	return jump, boost
}

// Reset clears every held key and the jump latch.
func (k *Keys) Reset() {
	*k = Keys{}
}

// AnyMovement reports whether any directional key is held.
func (k *Keys) AnyMovement() bool {
	return k.Forward || k.Backward || k.Left || k.Right
}
