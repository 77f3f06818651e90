package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func vecApprox(t *testing.T, got, want mgl32.Vec3, tol float32, name string) {
	t.Helper()
	if got.Sub(want).Len() > tol {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestLookDirAtRest(t *testing.T) {
	c := New(70, 0.002)
	vecApprox(t, c.LookDir(), mgl32.Vec3{0, 0, -1}, 1e-5, "LookDir")
	vecApprox(t, c.FlatForward(), mgl32.Vec3{0, 0, -1}, 1e-5, "FlatForward")
	vecApprox(t, c.FlatRight(), mgl32.Vec3{1, 0, 0}, 1e-5, "FlatRight")
}

func TestYawQuarterTurn(t *testing.T) {
	c := New(70, 0.002)
	c.SetAngles(math32.Pi/2, 0)

	// Positive yaw turns toward -X.
	vecApprox(t, c.FlatForward(), mgl32.Vec3{-1, 0, 0}, 1e-5, "FlatForward")
	vecApprox(t, c.FlatRight(), mgl32.Vec3{0, 0, -1}, 1e-5, "FlatRight")
}

func TestMouseDeltaDirections(t *testing.T) {
	c := New(70, 0.01)

	// Mouse right turns right, mouse up (negative dy) looks up.
	c.HandleMouseDelta(10, -10)
	if c.Yaw() >= 0 {
		t.Errorf("yaw = %v after mouse right, want negative", c.Yaw())
	}
	if c.Pitch() <= 0 {
		t.Errorf("pitch = %v after mouse up, want positive", c.Pitch())
	}
	if c.LookDir().Y() <= 0 {
		t.Error("look direction not tilted up")
	}
}

func TestPitchClamp(t *testing.T) {
	c := New(70, 1)
	c.HandleMouseDelta(0, -1000)
	if c.Pitch() > maxPitch {
		t.Errorf("pitch = %v exceeds clamp %v", c.Pitch(), maxPitch)
	}
	c.HandleMouseDelta(0, 1e6)
	if c.Pitch() < -maxPitch {
		t.Errorf("pitch = %v below clamp %v", c.Pitch(), -maxPitch)
	}
}

func TestFlatForwardDegenerateFallback(t *testing.T) {
	c := New(70, 0.002)
	c.SetAngles(1.23, math32.Pi/2) // straight up

	vecApprox(t, c.FlatForward(), mgl32.Vec3{0, 0, -1}, 1e-5, "FlatForward")

	c.SetAngles(1.23, -math32.Pi/2) // straight down
	vecApprox(t, c.FlatForward(), mgl32.Vec3{0, 0, -1}, 1e-5, "FlatForward")
}

func TestMoveIgnoresPitch(t *testing.T) {
	c := New(70, 0.002)
	c.SetAngles(0, 1.0) // looking well above the horizon

	c.MoveForward(2)
	vecApprox(t, c.Position, mgl32.Vec3{0, 0, -2}, 1e-5, "Position after MoveForward")

	c.MoveRight(3)
	vecApprox(t, c.Position, mgl32.Vec3{3, 0, -2}, 1e-5, "Position after MoveRight")
}

func TestOrientationMatchesLookDir(t *testing.T) {
	c := New(70, 0.002)
	c.SetAngles(0.7, -0.3)

	fromQuat := c.Orientation().Rotate(mgl32.Vec3{0, 0, -1})
	vecApprox(t, fromQuat, c.LookDir(), 1e-5, "Orientation.Rotate(-Z)")
}
