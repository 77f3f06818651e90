package player

import (
	"github.com/chewxy/math32"
)

// kinematicIntegrator moves the camera directly: manual Euler
// integration with exponential-style damping and terrain clamping.
// Active when no physics body is attached.
type kinematicIntegrator struct {
	c *Controller
}

func (k *kinematicIntegrator) step(delta float32) {
	c := k.c
	s := &c.state
	cfg := c.cfg

	// Horizontal damping. Deliberately unclamped: at very large delta
	// the factor can overshoot zero and flip sign, matching the
	// accepted behavior of the original integrator.
	s.Velocity[0] -= s.Velocity[0] * cfg.MovementDamping * delta
	s.Velocity[2] -= s.Velocity[2] * cfg.MovementDamping * delta

	// Desired direction from raw key axes, normalized when nonzero.
	s.Direction[0] = axis(s.Keys.Right) - axis(s.Keys.Left)
	s.Direction[1] = 0
	s.Direction[2] = axis(s.Keys.Forward) - axis(s.Keys.Backward)
	if s.Direction.Len() > 0 {
		s.Direction = s.Direction.Normalize()
	}

	accel := cfg.WalkAcceleration
	if s.Keys.Sprint {
		accel = cfg.SprintAcceleration
	}
	// Each axis only accelerates while one of its keys is held.
	if s.Keys.Forward || s.Keys.Backward {
		s.Velocity[2] -= s.Direction.Z() * accel * delta
	}
	if s.Keys.Left || s.Keys.Right {
		s.Velocity[0] -= s.Direction.X() * accel * delta
	}

	if jump, boost := s.Keys.ConsumeJump(); jump && s.Grounded {
		s.Velocity[1] = cfg.JumpSpeed
		s.Grounded = false
		if boost {
			// Preserve forward momentum through the jump.
			s.Velocity[2] -= cfg.WalkAcceleration * 0.1
		}
	}

	s.Velocity[1] -= cfg.Gravity * delta

	// Camera-relative horizontal integration, then vertical.
	cam := c.cam
	cam.MoveRight(-s.Velocity.X() * delta)
	cam.MoveForward(-s.Velocity.Z() * delta)
	cam.Position[1] += s.Velocity.Y() * delta

	k.clampToGround()
}

// clampToGround snaps the camera onto the terrain when it has sunk to
// or below standing height, and maintains the grounded flag.
func (k *kinematicIntegrator) clampToGround() {
	c := k.c
	s := &c.state
	cam := c.cam

	if c.sampler != nil {
		h := c.sampler.Sample(cam.Position.X(), cam.Position.Z())
		if !math32.IsNaN(h) {
			floor := h + c.cfg.PlayerHeight
			if cam.Position.Y() <= floor {
				cam.Position[1] = floor
				// Only arrest downward motion; an upward jump that
				// grazes the slope keeps its speed.
				if s.Velocity.Y() < 0 {
					s.Velocity[1] = 0
				}
				s.Grounded = true
			} else {
				s.Grounded = false
			}
			return
		}
	}

	floor := c.flatFloor + c.cfg.PlayerHeight
	if cam.Position.Y() <= floor {
		cam.Position[1] = floor
		s.Velocity[1] = 0
		s.Grounded = true
	} else {
		s.Grounded = false
	}
}

func axis(held bool) float32 {
	if held {
		return 1
	}
	return 0
}
