package systems

import (
	"github.com/chris-redfield/mega-human/components"
	"github.com/chris-redfield/mega-human/level"
	"github.com/chris-redfield/mega-human/physics"
	"github.com/chris-redfield/mega-human/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCollisions resolves movement for every moving body against the
// current level. For each body the horizontal pass always runs before the
// vertical pass: the vertical slope snap reads the already-corrected X.
// Bodies never push on each other; only static level geometry resolves.
func UpdateCollisions(e *ecs.ECS) {
	lvl := CurrentLevel(e)
	if lvl == nil {
		return
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		resolveSlopeBody(lvl, entry)
		if inDeadZone(entry) {
			respawn(lvl, entry)
		}
	})

	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		resolveSlopeBody(lvl, entry)
		if inDeadZone(entry) {
			respawn(lvl, entry)
		}
	})

	// Projectiles and other flat-terrain movers skip the slope layer.
	tags.Projectile.Each(e.World, func(entry *donburi.Entry) {
		resolveFlatBody(lvl, entry)
	})
}

func resolveSlopeBody(lvl *level.Level, entry *donburi.Entry) {
	phys := components.Physics.Get(entry)
	obj := components.Object.Get(entry)
	b := &obj.Body

	wantX := b.X + phys.SpeedX
	physics.Step(lvl, b, phys.SpeedX, phys.SpeedY)
	if b.X != wantX {
		phys.SpeedX = 0
	}
	if b.Grounded {
		phys.SpeedY = 0
	}
	phys.WallContact = physics.CheckWallContact(lvl, b.X, b.Y, b.W, b.H)
	phys.WallSliding = phys.WallContact != 0 && !b.Grounded && phys.SpeedY > 0

	obj.SyncProbe()
}

func resolveFlatBody(lvl *level.Level, entry *donburi.Entry) {
	phys := components.Physics.Get(entry)
	obj := components.Object.Get(entry)
	b := &obj.Body

	wantX := b.X + phys.SpeedX
	physics.StepFlat(lvl, b, phys.SpeedX, phys.SpeedY)
	if b.X != wantX {
		phys.SpeedX = 0
	}
	if b.Grounded {
		phys.SpeedY = 0
	}

	obj.SyncProbe()
}

// inDeadZone reports whether the entity's probe overlaps a dead zone.
func inDeadZone(entry *donburi.Entry) bool {
	obj := components.Object.Get(entry)
	if obj.Probe == nil {
		return false
	}
	return obj.Probe.Check(0, 0, tags.ResolvDeadZone) != nil
}

// respawn places the body back at the stage's first spawn point.
func respawn(lvl *level.Level, entry *donburi.Entry) {
	if len(lvl.SpawnPoints) == 0 {
		return
	}
	sp := lvl.SpawnPoints[0]

	obj := components.Object.Get(entry)
	obj.Body.X = sp.X
	obj.Body.Y = sp.Y - obj.Body.H
	obj.Body.Grounded = false
	obj.Body.OnSlope = false
	obj.SyncProbe()

	phys := components.Physics.Get(entry)
	phys.SpeedX = 0
	phys.SpeedY = 0
}
