// Package player implements the first-person movement controller: the
// movement state machine, a kinematic integrator for plain camera
// movement and a dynamic integrator that drives a physics capsule.
package player

// Config is the per-session movement tuning. It is fixed at
// construction and never mutated by the controller.
type Config struct {
	FloorLevel   float32 `yaml:"floor_level"`
	PlayerHeight float32 `yaml:"player_height"` // eye height above the ground
	Gravity      float32 `yaml:"gravity"`

	WalkAcceleration   float32 `yaml:"walk_acceleration"`
	SprintAcceleration float32 `yaml:"sprint_acceleration"`
	MovementDamping    float32 `yaml:"movement_damping"`
	JumpSpeed          float32 `yaml:"jump_speed"`

	// Physics mode only.
	CapsuleRadius float32 `yaml:"capsule_radius"`
	CapsuleMass   float32 `yaml:"capsule_mass"`
	AirControl    float32 `yaml:"air_control"` // horizontal control fraction while airborne
}

// DefaultConfig returns the documented defaults. Hosts start from this
// and override fields; a zero field set on purpose (for example zero
// gravity in tests) is respected as-is.
func DefaultConfig() Config {
	return Config{
		FloorLevel:         0,
		PlayerHeight:       1.6,
		Gravity:            28,
		WalkAcceleration:   50,
		SprintAcceleration: 450,
		MovementDamping:    12,
		JumpSpeed:          12,
		CapsuleRadius:      0.4,
		CapsuleMass:        80,
		AirControl:         0.3,
	}
}

// walkSpeed is the damping-equilibrium speed of the kinematic mode,
// used as the physics-mode target speed so both modes feel alike.
func (c Config) walkSpeed() float32 {
	if c.MovementDamping == 0 {
		return c.WalkAcceleration
	}
	return c.WalkAcceleration / c.MovementDamping
}

func (c Config) sprintSpeed() float32 {
	if c.MovementDamping == 0 {
		return c.SprintAcceleration
	}
	return c.SprintAcceleration / c.MovementDamping
}

// capsuleHalfHeight is the distance from capsule center to cap; the
// capsule spans the player height.
func (c Config) capsuleHalfHeight() float32 {
	return c.PlayerHeight / 2
}
