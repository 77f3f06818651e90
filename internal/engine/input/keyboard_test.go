package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestLookupAliases(t *testing.T) {
	cases := []struct {
		code sdl.Scancode
		want Action
	}{
		{sdl.SCANCODE_W, ActionForward},
		{sdl.SCANCODE_UP, ActionForward},
		{sdl.SCANCODE_S, ActionBackward},
		{sdl.SCANCODE_DOWN, ActionBackward},
		{sdl.SCANCODE_A, ActionLeft},
		{sdl.SCANCODE_LEFT, ActionLeft},
		{sdl.SCANCODE_D, ActionRight},
		{sdl.SCANCODE_RIGHT, ActionRight},
		{sdl.SCANCODE_LSHIFT, ActionSprint},
		{sdl.SCANCODE_RSHIFT, ActionSprint},
		{sdl.SCANCODE_SPACE, ActionJump},
	}
	for _, c := range cases {
		got, ok := Lookup(c.code)
		if !ok {
			t.Errorf("Lookup(%v): not bound", c.code)
			continue
		}
		if got != c.want {
			t.Errorf("Lookup(%v) = %v, want %v", c.code, got, c.want)
		}
	}

	if _, ok := Lookup(sdl.SCANCODE_Q); ok {
		t.Error("Lookup(Q) bound, want unbound")
	}
}

func TestApplyMovementKeys(t *testing.T) {
	var k Keys

	k.Apply(ActionForward, true, false)
	if !k.Forward {
		t.Error("Forward not held after press")
	}

	// Repeated presses are idempotent.
	k.Apply(ActionForward, true, false)
	if !k.Forward {
		t.Error("Forward dropped by repeated press")
	}

	k.Apply(ActionForward, false, false)
	if k.Forward {
		t.Error("Forward still held after release")
	}
}

func TestJumpLatchRequiresGrounded(t *testing.T) {
	var k Keys

	k.Apply(ActionJump, true, false)
	if k.PendingJump {
		t.Error("airborne Space press latched a jump")
	}

	k.Apply(ActionJump, true, true)
	if !k.PendingJump {
		t.Error("grounded Space press did not latch")
	}
}

func TestJumpBoostSnapshotsForward(t *testing.T) {
	var k Keys

	k.Apply(ActionForward, true, true)
	k.Apply(ActionJump, true, true)
	if !k.JumpBoost {
		t.Error("JumpBoost false with Forward held at latch time")
	}

	k.Reset()
	k.Apply(ActionJump, true, true)
	if k.JumpBoost {
		t.Error("JumpBoost true without Forward held")
	}

	// Forward pressed after the latch must not change the snapshot.
	k.Reset()
	k.Apply(ActionJump, true, true)
	k.Apply(ActionForward, true, true)
	if k.JumpBoost {
		t.Error("JumpBoost picked up Forward pressed after the latch")
	}
}

func TestJumpReleaseClearsLatch(t *testing.T) {
	var k Keys

	k.Apply(ActionForward, true, true)
	k.Apply(ActionJump, true, true)
	k.Apply(ActionJump, false, true)

	if k.PendingJump || k.JumpBoost {
		t.Error("Space release left the latch set")
	}
}

func TestConsumeJump(t *testing.T) {
	var k Keys

	k.Apply(ActionForward, true, true)
	k.Apply(ActionJump, true, true)

	jump, boost := k.ConsumeJump()
	if !jump || !boost {
		t.Errorf("ConsumeJump = (%v, %v), want (true, true)", jump, boost)
	}

	jump, boost = k.ConsumeJump()
	if jump || boost {
		t.Error("second ConsumeJump returned a latched jump")
	}
}

func TestReset(t *testing.T) {
	k := Keys{Forward: true, Left: true, Sprint: true, PendingJump: true, JumpBoost: true}
	k.Reset()
	if k != (Keys{}) {
		t.Errorf("Reset left state %+v", k)
	}
}
