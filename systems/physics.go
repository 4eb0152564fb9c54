package systems

import (
	"github.com/chris-redfield/mega-human/components"
	cfg "github.com/chris-redfield/mega-human/config"
	"github.com/chris-redfield/mega-human/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates friction and gravity into per-tick speeds. The
// resolvers consume the resulting deltas in UpdateCollisions, which must run
// after this system.
func UpdatePhysics(e *ecs.ECS) {
	components.Physics.Each(e.World, func(entry *donburi.Entry) {
		phys := components.Physics.Get(entry)

		phys.SpeedX = physics.ApplyFriction(phys.SpeedX, phys.Friction)
		phys.SpeedX = physics.ClampSpeed(phys.SpeedX, phys.MaxSpeed)

		phys.SpeedY += phys.Gravity
		if phys.SpeedY > cfg.Physics.MaxFallSpeed {
			phys.SpeedY = cfg.Physics.MaxFallSpeed
		}
		phys.SpeedY = physics.ClampSpeed(phys.SpeedY, cfg.Physics.VerticalSpeedClamp)
	})
}
