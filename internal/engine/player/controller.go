package player

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/sableforge/driftwalk/internal/engine/camera"
	"github.com/sableforge/driftwalk/internal/engine/input"
	"github.com/sableforge/driftwalk/internal/engine/physics"
	"github.com/sableforge/driftwalk/internal/engine/terrain"
	"github.com/sableforge/driftwalk/internal/logger"
)

// integrator is one per-frame movement strategy. The variant is picked
// once at construction and never re-checked.
type integrator interface {
	step(delta float32)
}

// Options carries the controller's optional collaborators. Everything
// here may be nil; each absence has a documented fallback.
type Options struct {
	// Terrain enables heightmap ground sampling. Nil means flat world.
	Terrain *terrain.Heightmap
	// Bounds are the terrain height bounds, used for fallback ground
	// heights when sampling is unavailable.
	Bounds *terrain.Bounds
	// World requests physics mode. If capsule creation fails the
	// controller silently falls back to kinematic mode.
	World *physics.World
	// Session gates input: while the mouse is not captured the
	// controller idles. Nil means always active (tests, headless).
	Session *input.CaptureSession
	// SpawnX, SpawnZ position the player at construction.
	SpawnX, SpawnZ float32
}

// Controller is the first-person movement controller facade. The host
// render loop feeds it events and calls Update once per frame.
type Controller struct {
	cam   *camera.FirstPerson
	cfg   Config
	state State

	integ   integrator
	body    *physics.Body // nil in kinematic mode
	sampler *terrain.Heightmap
	ground  *terrain.Resolver
	session *input.CaptureSession

	// flatFloor is the kinematic ground height when no sampler exists.
	flatFloor float32
}

// New builds a controller over the camera. The camera is the one hard
// requirement; terrain and physics degrade to documented fallbacks.
func New(cam *camera.FirstPerson, cfg Config, opts Options) (*Controller, error) {
	if cam == nil {
		return nil, errors.New("player: controller needs a camera")
	}

	c := &Controller{
		cam:     cam,
		cfg:     cfg,
		sampler: opts.Terrain,
		session: opts.Session,
		ground:  terrain.NewResolver(opts.Terrain, opts.Bounds, cfg.FloorLevel),
	}
	c.flatFloor = cfg.FloorLevel
	if opts.Bounds != nil {
		c.flatFloor = opts.Bounds.Min
	}

	if opts.World != nil {
		body, err := opts.World.AddCapsule(physics.CapsuleDef{
			Radius: cfg.CapsuleRadius,
			Height: cfg.PlayerHeight,
			Mass:   cfg.CapsuleMass,
			X:      opts.SpawnX,
			Z:      opts.SpawnZ,
		})
		if err != nil {
			// Physics was requested but the body could not be made:
			// degrade to kinematic visuals instead of failing.
			logger.Warn("physics body unavailable, using kinematic mode", zap.Error(err))
		} else {
			body.LockRotation()
			body.SetDamping(0, 0)
			body.SetCcdThreshold(cfg.CapsuleRadius * 0.5)
			c.body = body
		}
	}

	if c.body != nil {
		c.integ = &dynamicIntegrator{c: c}
	} else {
		c.integ = &kinematicIntegrator{c: c}
	}

	cam.Position[0] = opts.SpawnX
	cam.Position[2] = opts.SpawnZ
	c.ResyncToGround()

	if opts.Session != nil {
		opts.Session.OnRelease = c.handleRelease
	}
	return c, nil
}

// Update advances the controller by delta seconds. While the mouse is
// not captured, input is ignored and motion is parked.
func (c *Controller) Update(delta float32) {
	if c.session != nil && !c.session.Captured() {
		c.state.resetMotion()
		return
	}
	c.integ.step(delta)
}

// HandleKey feeds a key edge into the movement state machine.
func (c *Controller) HandleKey(a input.Action, pressed bool) {
	c.state.Keys.Apply(a, pressed, c.state.Grounded)
}

// HandleMouseMotion applies a relative mouse delta to the camera.
func (c *Controller) HandleMouseMotion(dx, dy float32) {
	c.cam.HandleMouseDelta(dx, dy)
}

// ResyncToGround places the player standing on the resolved ground at
// the current horizontal position and marks it grounded. Used at spawn
// and on capture release so a session never resumes mid-air.
func (c *Controller) ResyncToGround() {
	x, z := c.cam.Position.X(), c.cam.Position.Z()
	if c.body != nil {
		p := c.body.Position()
		x, z = p.X(), p.Z()
	}
	ground, _ := c.ground.Sample(x, z)

	c.cam.Position[0] = x
	c.cam.Position[1] = ground + c.cfg.PlayerHeight
	c.cam.Position[2] = z
	if c.body != nil {
		c.body.SetPosition(mgl32.Vec3{x, ground + c.cfg.capsuleHalfHeight(), z})
		c.body.SetVelocity(mgl32.Vec3{})
	}
	c.state.Grounded = true
}

// handleRelease is the capture-release reset: drop all held keys and
// momentum and put the player back on the ground.
func (c *Controller) handleRelease() {
	c.state.resetAll()
	c.ResyncToGround()
}

// Velocity returns the live velocity estimate.
func (c *Controller) Velocity() mgl32.Vec3 { return c.state.Velocity }

// SetVelocity overrides the velocity estimate (debug, tests).
func (c *Controller) SetVelocity(v mgl32.Vec3) { c.state.Velocity = v }

// Direction returns the last desired horizontal direction.
func (c *Controller) Direction() mgl32.Vec3 { return c.state.Direction }

// Grounded reports whether vertical motion is resolved against ground.
func (c *Controller) Grounded() bool { return c.state.Grounded }

// SetGrounded overrides the grounded state (debug, tests).
func (c *Controller) SetGrounded(g bool) { c.state.Grounded = g }

// Config returns the resolved configuration.
func (c *Controller) Config() Config { return c.cfg }

// Body returns the physics capsule, or nil in kinematic mode.
func (c *Controller) Body() *physics.Body { return c.body }

// PhysicsDriven reports whether the dynamic integrator is active.
func (c *Controller) PhysicsDriven() bool { return c.body != nil }
