package player

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Ground correction constants for the dynamic integrator: deviations
// beyond deadband are corrected by a velocity term computed over at
// least minCorrectionDt seconds and clamped to maxCorrectionSpeed, so
// a slow frame cannot produce a correction spike.
const (
	correctionDeadband = 0.02
	minCorrectionDt    = 0.016
	maxCorrectionSpeed = 10.0

	groundedHeightBand   = 0.15
	groundedMaxVertSpeed = 0.2
)

// dynamicIntegrator drives the physics capsule: it reads the body's
// velocity as the baseline each frame (so external pushes survive),
// blends horizontal velocity toward the input target and writes the
// result back. The world integrates afterward.
type dynamicIntegrator struct {
	c *Controller

	// kicked guards the one-shot settle nudge that forces an initial
	// ground contact after spawn.
	kicked bool
}

func (d *dynamicIntegrator) step(delta float32) {
	c := d.c
	s := &c.state
	cfg := c.cfg
	body := c.body

	vel := body.Velocity()

	if !d.kicked {
		d.kicked = true
		vel[1] -= 0.5
	}

	// Camera-relative movement basis, flattened to the ground plane.
	fwd := c.cam.FlatForward()
	right := c.cam.FlatRight()

	dir := mgl32.Vec3{}
	if s.Keys.Forward {
		dir = dir.Add(fwd)
	}
	if s.Keys.Backward {
		dir = dir.Sub(fwd)
	}
	if s.Keys.Right {
		dir = dir.Add(right)
	}
	if s.Keys.Left {
		dir = dir.Sub(right)
	}
	hasInput := dir.Len() > 1e-6
	if hasInput {
		dir = dir.Normalize()
	}
	s.Direction = dir

	speed := cfg.walkSpeed()
	if s.Keys.Sprint {
		speed = cfg.sprintSpeed()
	}
	if !s.Grounded {
		speed *= cfg.AirControl
	}

	hx, hz := vel.X(), vel.Z()
	if hasInput {
		blend := 1 - math32.Exp(-cfg.MovementDamping*delta)
		hx += (dir.X()*speed - hx) * blend
		hz += (dir.Z()*speed - hz) * blend
	} else {
		// Pure exponential decay, not a blend toward a zero target:
		// the two paths converge but must stay numerically distinct.
		decay := math32.Exp(-cfg.MovementDamping * delta)
		hx *= decay
		hz *= decay
	}

	vy := vel.Y()
	if jump, _ := s.Keys.ConsumeJump(); jump && s.Grounded {
		vy = cfg.JumpSpeed
		s.Grounded = false
	}

	// Terrain height correction and height-based grounding.
	pos := body.Position()
	groundHeight := math32.NaN()
	if c.sampler != nil {
		groundHeight = c.sampler.Sample(pos.X(), pos.Z())
	}
	groundedFromHeight := false
	if !math32.IsNaN(groundHeight) {
		target := groundHeight + cfg.capsuleHalfHeight()
		deviation := target - pos.Y()
		if math32.Abs(deviation) > correctionDeadband {
			corr := deviation / math32.Max(delta, minCorrectionDt)
			if corr > maxCorrectionSpeed {
				corr = maxCorrectionSpeed
			}
			if corr < -maxCorrectionSpeed {
				corr = -maxCorrectionSpeed
			}
			vy += corr
		}
		groundedFromHeight = math32.Abs(deviation) < groundedHeightBand &&
			math32.Abs(vy) <= groundedMaxVertSpeed
	}

	body.SetVelocityX(hx)
	body.SetVelocityY(vy)
	body.SetVelocityZ(hz)

	// Contact normals from the last physics step catch ground the
	// height heuristic misses, like standing on a wall ledge.
	groundedFromContact := false
	for _, ct := range body.Contacts() {
		if ct.Normal.Y() > 0.5 {
			groundedFromContact = true
			break
		}
	}
	s.Grounded = groundedFromHeight || groundedFromContact
	s.Velocity = mgl32.Vec3{hx, vy, hz}

	// The camera never integrates on its own in this mode: it is
	// re-derived from the body every frame.
	if !math32.IsNaN(groundHeight) {
		c.cam.Position = mgl32.Vec3{pos.X(), groundHeight + cfg.PlayerHeight, pos.Z()}
	} else {
		c.cam.Position = mgl32.Vec3{pos.X(), pos.Y() + cfg.capsuleHalfHeight(), pos.Z()}
	}
}
