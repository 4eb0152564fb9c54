// Package physics resolves per-tick rigid-body movement against a built
// level. Resolvers are free functions over a plain body value: hitbox
// position, size and per-axis deltas in, a corrected position plus contact
// flags out. Any entity kind composes a Body as a field instead of
// inheriting resolver behavior.
//
// Every function here is total and never mutates the level, so the hot path
// has no error returns and no locking.
package physics

import "github.com/chris-redfield/mega-human/level"

// Body is the movable-body value the resolvers operate on. Position is the
// hitbox's top-left corner. Grounded and OnSlope are recomputed by the
// resolvers every tick and consumed by the owning entity's state machine.
type Body struct {
	X, Y float64
	W, H float64

	Grounded bool
	OnSlope  bool
}

// Step resolves one tick of slope-aware motion. Horizontal resolves before
// vertical: the vertical slope snap depends on the already-corrected X.
func Step(l *level.Level, b *Body, dx, dy float64) {
	b.X = ResolveSlopeHorizontal(l, b.X, b.Y, b.W, b.H, dx, b.OnSlope)
	b.Y, b.Grounded, b.OnSlope = ResolveSlopeVertical(l, b.X, b.Y, b.W, b.H, dy, b.Grounded, b.OnSlope)
}

// StepFlat resolves one tick against the tile grid only, for bodies that
// never touch slopes (projectiles, walkers on flat terrain).
func StepFlat(l *level.Level, b *Body, dx, dy float64) {
	b.X = ResolveHorizontal(l, b.X, b.Y, b.W, b.H, dx)
	b.Y, b.Grounded = ResolveVertical(l, b.X, b.Y, b.W, b.H, dy)
	b.OnSlope = false
}

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}
