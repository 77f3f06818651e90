// Package physics implements the small rigid-body world the player
// controller drives in physics mode: capsule bodies under gravity with
// ground-plane and static-box resolution and per-step contact normals.
package physics

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Contact records one collision resolved during the last Step.
type Contact struct {
	Normal mgl32.Vec3
	Depth  float32
}

// CapsuleDef describes a capsule body to create.
type CapsuleDef struct {
	Radius  float32
	Height  float32 // full height, cap to cap
	Mass    float32
	X, Y, Z float32 // initial center position
}

// Body is a dynamic capsule. The player controller reads and writes its
// velocity every frame; the world integrates it in Step. Rotation is
// locked for player capsules, so only linear state is tracked.
type Body struct {
	radius float32
	height float32
	mass   float32

	pos mgl32.Vec3
	vel mgl32.Vec3

	angularLocked  bool
	linearDamping  float32
	angularDamping float32
	ccdThreshold   float32 // max travel per substep; 0 disables substepping

	contacts []Contact
}

// Position returns the capsule center.
func (b *Body) Position() mgl32.Vec3 { return b.pos }

// SetPosition teleports the capsule center.
func (b *Body) SetPosition(p mgl32.Vec3) { b.pos = p }

// Velocity returns the linear velocity.
func (b *Body) Velocity() mgl32.Vec3 { return b.vel }

// SetVelocity replaces the linear velocity.
func (b *Body) SetVelocity(v mgl32.Vec3) { b.vel = v }

// SetVelocityX sets one velocity axis, leaving the others untouched.
func (b *Body) SetVelocityX(v float32) { b.vel[0] = v }

// SetVelocityY sets the vertical velocity.
func (b *Body) SetVelocityY(v float32) { b.vel[1] = v }

// SetVelocityZ sets one velocity axis, leaving the others untouched.
func (b *Body) SetVelocityZ(v float32) { b.vel[2] = v }

// LockRotation pins the body upright. Player capsules are always locked.
func (b *Body) LockRotation() { b.angularLocked = true }

// SetDamping sets linear and angular damping factors in [0, 1).
func (b *Body) SetDamping(linear, angular float32) {
	b.linearDamping = linear
	b.angularDamping = angular
}

// SetCcdThreshold caps how far the body may travel in a single substep.
// Fast bodies are integrated in pieces so they cannot tunnel through
// thin colliders.
func (b *Body) SetCcdThreshold(d float32) { b.ccdThreshold = d }

// Contacts returns the collisions resolved during the most recent
// world Step. The slice is reused; callers must not retain it.
func (b *Body) Contacts() []Contact { return b.contacts }

// Radius returns the capsule radius.
func (b *Body) Radius() float32 { return b.radius }

// Height returns the full capsule height.
func (b *Body) Height() float32 { return b.height }

// HalfHeight returns the distance from center to cap.
func (b *Body) HalfHeight() float32 { return b.height / 2 }

// Mass returns the body mass.
func (b *Body) Mass() float32 { return b.mass }
