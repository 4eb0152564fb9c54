package factory

import (
	"github.com/chris-redfield/mega-human/archetypes"
	"github.com/chris-redfield/mega-human/components"
	"github.com/chris-redfield/mega-human/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateProjectile spawns a flat-resolved body: projectiles never interact
// with slopes, only the tile grid.
func CreateProjectile(e *ecs.ECS, x, y, speedX float64) *donburi.Entry {
	proj := archetypes.Projectile.Spawn(e)

	components.Object.SetValue(proj, components.ObjectData{
		Body: physics.Body{X: x, Y: y, W: 6, H: 6},
	})
	components.Physics.SetValue(proj, components.PhysicsData{
		SpeedX:   speedX,
		MaxSpeed: 8,
	})

	return proj
}
