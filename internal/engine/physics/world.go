package physics

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// AABB is a static axis-aligned box collider.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// World steps a set of capsule bodies against a ground plane and
// static boxes. Single-threaded: the host loop calls Step once per
// frame after the controller has written body velocities.
type World struct {
	gravity mgl32.Vec3

	floorY   float32
	hasFloor bool

	bodies  []*Body
	statics []AABB
}

// NewWorld creates a world with the given gravity vector.
func NewWorld(gravity mgl32.Vec3) *World {
	return &World{gravity: gravity}
}

// SetFloor installs an infinite ground plane at the given height.
func (w *World) SetFloor(y float32) {
	w.floorY = y
	w.hasFloor = true
}

// AddStaticBox adds an immovable box collider (walls, platforms).
func (w *World) AddStaticBox(min, max mgl32.Vec3) {
	w.statics = append(w.statics, AABB{Min: min, Max: max})
}

// AddCapsule creates a dynamic capsule body and adds it to the world.
func (w *World) AddCapsule(def CapsuleDef) (*Body, error) {
	if def.Radius <= 0 || def.Height <= 0 {
		return nil, errors.New("physics: capsule needs positive radius and height")
	}
	if def.Mass <= 0 {
		return nil, errors.New("physics: capsule needs positive mass")
	}
	b := &Body{
		radius: def.Radius,
		height: def.Height,
		mass:   def.Mass,
		pos:    mgl32.Vec3{def.X, def.Y, def.Z},
	}
	w.bodies = append(w.bodies, b)
	return b, nil
}

// Step advances the simulation by dt seconds: gravity, damping, Euler
// integration with CCD substepping, then collision resolution. Contact
// lists hold exactly the collisions of this step.
func (w *World) Step(dt float32) {
	if dt <= 0 {
		return
	}
	for _, b := range w.bodies {
		b.contacts = b.contacts[:0]

		b.vel = b.vel.Add(w.gravity.Mul(dt))
		if b.linearDamping > 0 {
			f := 1 - b.linearDamping*dt
			if f < 0 {
				f = 0
			}
			b.vel = b.vel.Mul(f)
		}

		steps := 1
		if b.ccdThreshold > 0 {
			travel := b.vel.Len() * dt
			if travel > b.ccdThreshold {
				steps = int(math32.Ceil(travel / b.ccdThreshold))
			}
		}
		sub := dt / float32(steps)
		for i := 0; i < steps; i++ {
			b.pos = b.pos.Add(b.vel.Mul(sub))
			w.resolve(b)
		}
	}
}

// resolve pushes the body out of the floor and any static boxes,
// zeroing the velocity component into each surface and recording a
// contact per resolved collision.
func (w *World) resolve(b *Body) {
	if w.hasFloor {
		bottom := b.pos.Y() - b.HalfHeight()
		if bottom < w.floorY {
			depth := w.floorY - bottom
			b.pos[1] += depth
			if b.vel.Y() < 0 {
				b.vel[1] = 0
			}
			b.addContact(mgl32.Vec3{0, 1, 0}, depth)
		}
	}

	// Capsule approximated by its bounding box for static resolution.
	half := mgl32.Vec3{b.radius, b.HalfHeight(), b.radius}
	for _, box := range w.statics {
		bMin := b.pos.Sub(half)
		bMax := b.pos.Add(half)
		if !overlaps(bMin, bMax, box.Min, box.Max) {
			continue
		}
		push := minPenetration(bMin, bMax, box.Min, box.Max)
		b.pos = b.pos.Add(push)

		depth := push.Len()
		if depth == 0 {
			continue
		}
		normal := push.Mul(1 / depth)
		// Kill the velocity component driving into the surface.
		into := b.vel.Dot(normal)
		if into < 0 {
			b.vel = b.vel.Sub(normal.Mul(into))
		}
		b.addContact(normal, depth)
	}
}

func (b *Body) addContact(normal mgl32.Vec3, depth float32) {
	b.contacts = append(b.contacts, Contact{Normal: normal, Depth: depth})
}

func overlaps(aMin, aMax, bMin, bMax mgl32.Vec3) bool {
	return aMin.X() < bMax.X() && aMax.X() > bMin.X() &&
		aMin.Y() < bMax.Y() && aMax.Y() > bMin.Y() &&
		aMin.Z() < bMax.Z() && aMax.Z() > bMin.Z()
}

// minPenetration returns the smallest translation that separates two
// overlapping AABBs, along a single axis.
func minPenetration(aMin, aMax, bMin, bMax mgl32.Vec3) mgl32.Vec3 {
	var push mgl32.Vec3
	best := float32(math32.MaxFloat32)
	for axis := 0; axis < 3; axis++ {
		left := aMax[axis] - bMin[axis]  // push toward negative axis
		right := bMax[axis] - aMin[axis] // push toward positive axis
		mag, dir := left, float32(-1)
		if right < left {
			mag, dir = right, 1
		}
		if mag < best {
			best = mag
			push = mgl32.Vec3{}
			push[axis] = mag * dir
		}
	}
	return push
}
