package player

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/sableforge/driftwalk/internal/engine/camera"
	"github.com/sableforge/driftwalk/internal/engine/input"
	"github.com/sableforge/driftwalk/internal/engine/terrain"
)

const frameDt = float32(1.0 / 60.0)

func approx(t *testing.T, got, want, tol float32, label string) {
	t.Helper()
	if math32.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (tol %v)", label, got, want, tol)
	}
}

func newKinematic(t *testing.T, cfg Config, opts Options) (*Controller, *camera.FirstPerson) {
	t.Helper()
	cam := camera.New(70, 0.002)
	c, err := New(cam, cfg, opts)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.PhysicsDriven() {
		t.Fatal("expected kinematic mode")
	}
	return c, cam
}

// flatGrid returns a heightmap with every vertex at the same height,
// spanning a generous area around the origin.
func flatGrid(height float32) *terrain.Heightmap {
	h := &terrain.Heightmap{
		Heights:   make([]float32, 9),
		Rows:      3,
		Cols:      3,
		CellSizeX: 10,
		CellSizeZ: 10,
		HalfWidth: 10,
		HalfDepth: 10,
	}
	for i := range h.Heights {
		h.Heights[i] = height
	}
	return h
}

func TestSpawnAtStandingHeight(t *testing.T) {
	c, cam := newKinematic(t, DefaultConfig(), Options{})

	approx(t, cam.Position.Y(), 1.6, 1e-5, "spawn eye height")
	if !c.Grounded() {
		t.Error("expected grounded at spawn")
	}
}

func TestWalkApproachesEquilibriumSpeed(t *testing.T) {
	c, cam := newKinematic(t, DefaultConfig(), Options{})

	c.HandleKey(input.ActionForward, true)
	prev := float32(0)
	for i := 0; i < 60; i++ {
		c.Update(frameDt)
		speed := math32.Abs(c.Velocity().Z())
		if speed < prev {
			t.Fatalf("frame %d: speed %v dropped below %v while accelerating", i, speed, prev)
		}
		prev = speed
	}

	// Equilibrium is acceleration over damping: 50/12.
	speed := math32.Abs(c.Velocity().Z())
	if speed <= 4.1 || speed > 50.0/12.0+1e-4 {
		t.Errorf("walk speed after 1s = %v, want in (4.1, 4.1667]", speed)
	}

	// Yaw zero looks down -Z, so walking forward decreases Z.
	if cam.Position.Z() >= 0 {
		t.Errorf("expected forward motion along -Z, at z=%v", cam.Position.Z())
	}
	approx(t, cam.Position.Y(), 1.6, 1e-4, "eye height while walking")
	if !c.Grounded() {
		t.Error("expected grounded while walking on flat ground")
	}
}

func TestSprintEquilibriumSpeed(t *testing.T) {
	c, _ := newKinematic(t, DefaultConfig(), Options{})

	c.HandleKey(input.ActionForward, true)
	c.HandleKey(input.ActionSprint, true)
	for i := 0; i < 60; i++ {
		c.Update(frameDt)
	}

	speed := math32.Abs(c.Velocity().Z())
	if speed <= 37 || speed > 450.0/12.0+1e-3 {
		t.Errorf("sprint speed after 1s = %v, want in (37, 37.5]", speed)
	}
}

func TestDampingDecaysVelocity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gravity = 0
	c, _ := newKinematic(t, cfg, Options{})

	c.SetVelocity(mgl32.Vec3{3, 0, -3})
	c.SetGrounded(false) // keep the clamp from zeroing anything

	prev := c.Velocity().Len()
	for i := 0; i < 30; i++ {
		c.Update(frameDt)
		l := c.Velocity().Len()
		if l >= prev {
			t.Fatalf("frame %d: speed %v did not decay from %v", i, l, prev)
		}
		prev = l
	}
}

func TestDampingOvershootsAtLargeDelta(t *testing.T) {
	// The damping term is a plain Euler step. At delta > 1/damping it
	// overshoots zero and flips sign; that behavior is intentional.
	cfg := DefaultConfig()
	cfg.Gravity = 0
	c, _ := newKinematic(t, cfg, Options{})

	c.SetVelocity(mgl32.Vec3{1, 0, 0})
	c.Update(0.1)
	approx(t, c.Velocity().X(), -0.2, 1e-4, "overshot velocity")
}

func TestJumpArc(t *testing.T) {
	c, cam := newKinematic(t, DefaultConfig(), Options{})

	c.HandleKey(input.ActionJump, true)
	maxY := cam.Position.Y()
	for i := 0; i < 120; i++ {
		c.Update(frameDt)
		if cam.Position.Y() > maxY {
			maxY = cam.Position.Y()
		}
	}

	// Ballistic apex is roughly jumpSpeed^2 / (2 gravity) above the eye.
	if maxY < 3.5 || maxY > 4.5 {
		t.Errorf("jump apex = %v, want ~4.17", maxY)
	}
	approx(t, cam.Position.Y(), 1.6, 1e-4, "eye height after landing")
	if !c.Grounded() {
		t.Error("expected grounded after landing")
	}
	approx(t, c.Velocity().Y(), 0, 1e-5, "vertical velocity after landing")
}

func TestJumpFiresOnce(t *testing.T) {
	c, _ := newKinematic(t, DefaultConfig(), Options{})

	c.HandleKey(input.ActionJump, true)
	c.Update(frameDt)
	if c.Grounded() {
		t.Fatal("expected airborne after jump")
	}
	vyAfterJump := c.Velocity().Y()

	// The latch is consumed: the next frame only applies gravity.
	c.Update(frameDt)
	want := vyAfterJump - 28*frameDt
	approx(t, c.Velocity().Y(), want, 1e-4, "second frame vertical velocity")
}

func TestAirbornePressDoesNotLatch(t *testing.T) {
	c, _ := newKinematic(t, DefaultConfig(), Options{})

	c.HandleKey(input.ActionJump, true)
	c.Update(frameDt)

	// Press again while airborne: dropped, no buffering.
	c.HandleKey(input.ActionJump, false)
	c.HandleKey(input.ActionJump, true)
	vy := c.Velocity().Y()
	c.Update(frameDt)
	approx(t, c.Velocity().Y(), vy-28*frameDt, 1e-4, "no second jump midair")
}

func TestJumpBoostCarriesForwardMomentum(t *testing.T) {
	c, _ := newKinematic(t, DefaultConfig(), Options{})

	c.HandleKey(input.ActionForward, true)
	c.HandleKey(input.ActionJump, true)
	c.Update(frameDt)

	// One frame: forward acceleration 50/60 plus the jump boost 50*0.1.
	approx(t, c.Velocity().Z(), -(50.0/60.0 + 5.0), 1e-3, "boosted forward velocity")
	approx(t, c.Velocity().Y(), 12-28*frameDt, 1e-3, "jump velocity")
}

func TestReleasedSpaceClearsLatch(t *testing.T) {
	c, _ := newKinematic(t, DefaultConfig(), Options{})

	c.HandleKey(input.ActionJump, true)
	c.HandleKey(input.ActionJump, false)
	c.Update(frameDt)
	if !c.Grounded() {
		t.Error("released latch should not fire a jump")
	}
}

func TestTerrainSnap(t *testing.T) {
	grid := flatGrid(2)
	c, cam := newKinematic(t, DefaultConfig(), Options{Terrain: grid})

	approx(t, cam.Position.Y(), 3.6, 1e-4, "spawn on terrain")

	c.HandleKey(input.ActionForward, true)
	for i := 0; i < 30; i++ {
		c.Update(frameDt)
	}
	approx(t, cam.Position.Y(), 3.6, 1e-3, "eye height stays on terrain")
	if !c.Grounded() {
		t.Error("expected grounded on terrain")
	}
}

func TestTerrainClampKeepsUpwardVelocity(t *testing.T) {
	// Grazing the slope from below while moving up must not arrest the
	// upward motion, only snap the height.
	cfg := DefaultConfig()
	cfg.Gravity = 0
	grid := flatGrid(2)
	c, cam := newKinematic(t, cfg, Options{Terrain: grid})

	cam.Position[1] = 3.0 // below standing height 3.6
	c.SetVelocity(mgl32.Vec3{0, 5, 0})
	c.Update(frameDt)

	approx(t, cam.Position.Y(), 3.6, 1e-4, "snapped to terrain")
	approx(t, c.Velocity().Y(), 5, 1e-5, "upward velocity preserved")
	if !c.Grounded() {
		t.Error("expected grounded after snap")
	}
}

func TestDirectionNormalizedOnDiagonal(t *testing.T) {
	c, _ := newKinematic(t, DefaultConfig(), Options{})

	c.HandleKey(input.ActionForward, true)
	c.HandleKey(input.ActionRight, true)
	c.Update(frameDt)

	d := c.Direction()
	approx(t, d.Len(), 1, 1e-5, "diagonal direction length")
	inv := math32.Sqrt(2) / 2
	approx(t, d.X(), inv, 1e-5, "diagonal x")
	approx(t, d.Z(), inv, 1e-5, "diagonal z")
}

func TestOpposedKeysCancel(t *testing.T) {
	c, _ := newKinematic(t, DefaultConfig(), Options{})

	c.HandleKey(input.ActionForward, true)
	c.HandleKey(input.ActionBackward, true)
	c.Update(frameDt)

	approx(t, c.Velocity().Z(), 0, 1e-5, "opposed keys velocity")
	approx(t, c.Direction().Len(), 0, 1e-5, "opposed keys direction")
}
