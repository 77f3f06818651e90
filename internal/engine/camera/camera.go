// Package camera provides the first-person camera for the demo.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Pitch is clamped just short of straight up/down so the view matrix
// never degenerates, matching the usual first-person feel.
const maxPitch = 89.0 * math32.Pi / 180.0

// canonicalForward is the fallback movement basis when the look
// direction projects to nothing on the ground plane.
var canonicalForward = mgl32.Vec3{0, 0, -1}

// FirstPerson is a yaw/pitch camera. Yaw 0 looks down -Z; positive
// pitch looks up. The player controller owns Position.
type FirstPerson struct {
	Position    mgl32.Vec3
	Fovy        float32 // vertical field of view, degrees
	Sensitivity float32 // radians per pixel of mouse motion

	yaw   float32
	pitch float32
}

// New creates a camera with the given field of view and look sensitivity.
func New(fovy, sensitivity float32) *FirstPerson {
	return &FirstPerson{
		Fovy:        fovy,
		Sensitivity: sensitivity,
	}
}

// HandleMouseDelta applies a relative mouse motion to yaw and pitch.
// SDL reports y growing downward, so a negative dy looks up.
func (c *FirstPerson) HandleMouseDelta(dx, dy float32) {
	c.yaw -= dx * c.Sensitivity
	c.pitch -= dy * c.Sensitivity
	if c.pitch > maxPitch {
		c.pitch = maxPitch
	}
	if c.pitch < -maxPitch {
		c.pitch = -maxPitch
	}
}

// Yaw returns the horizontal look angle in radians.
func (c *FirstPerson) Yaw() float32 { return c.yaw }

// Pitch returns the vertical look angle in radians.
func (c *FirstPerson) Pitch() float32 { return c.pitch }

// SetAngles sets yaw and pitch directly (radians). Unlike mouse input
// it does not clamp, so hosts can point the camera anywhere.
func (c *FirstPerson) SetAngles(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = pitch
}

// Orientation returns the camera orientation as a quaternion:
// yaw about world Y, then pitch about local X.
func (c *FirstPerson) Orientation() mgl32.Quat {
	yawQ := mgl32.QuatRotate(c.yaw, mgl32.Vec3{0, 1, 0})
	pitchQ := mgl32.QuatRotate(c.pitch, mgl32.Vec3{1, 0, 0})
	return yawQ.Mul(pitchQ)
}

// LookDir returns the unit look direction.
func (c *FirstPerson) LookDir() mgl32.Vec3 {
	cp := math32.Cos(c.pitch)
	return mgl32.Vec3{
		-math32.Sin(c.yaw) * cp,
		math32.Sin(c.pitch),
		-math32.Cos(c.yaw) * cp,
	}
}

// FlatForward returns the look direction projected onto the ground
// plane and renormalized. When the camera points straight up or down
// the projection vanishes and the canonical forward is returned.
func (c *FirstPerson) FlatForward() mgl32.Vec3 {
	d := c.LookDir()
	d[1] = 0
	if d.Len() < 1e-4 {
		return canonicalForward
	}
	return d.Normalize()
}

// FlatRight returns the ground-plane right vector.
func (c *FirstPerson) FlatRight() mgl32.Vec3 {
	return c.FlatForward().Cross(mgl32.Vec3{0, 1, 0})
}

// MoveForward translates the camera along its flat forward basis.
func (c *FirstPerson) MoveForward(d float32) {
	c.Position = c.Position.Add(c.FlatForward().Mul(d))
}

// MoveRight translates the camera along its flat right basis.
func (c *FirstPerson) MoveRight(d float32) {
	c.Position = c.Position.Add(c.FlatRight().Mul(d))
}

// ViewMatrix returns the view matrix for the current pose.
func (c *FirstPerson) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.LookDir()), mgl32.Vec3{0, 1, 0})
}

// ProjectionMatrix returns the perspective projection for an aspect ratio.
func (c *FirstPerson) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.Fovy), aspect, 0.1, 1000)
}

