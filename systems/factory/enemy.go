package factory

import (
	"github.com/chris-redfield/mega-human/archetypes"
	"github.com/chris-redfield/mega-human/components"
	cfg "github.com/chris-redfield/mega-human/config"
	"github.com/chris-redfield/mega-human/physics"
	"github.com/chris-redfield/mega-human/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a slope-walking demo body.
func CreateEnemy(e *ecs.ECS, x, y float64) *donburi.Entry {
	enemy := archetypes.Enemy.Spawn(e)

	w := cfg.Enemy.CollisionWidth
	h := cfg.Enemy.CollisionHeight
	probe := resolv.NewObject(x, y, w, h, tags.ResolvCharacter)
	probe.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(e, probe)

	components.Object.SetValue(enemy, components.ObjectData{
		Body:  physics.Body{X: x, Y: y, W: w, H: h},
		Probe: probe,
	})
	components.Physics.SetValue(enemy, components.PhysicsData{
		SpeedX:   cfg.Enemy.PatrolSpeed,
		Gravity:  cfg.Enemy.Gravity,
		Friction: cfg.Enemy.Friction,
		MaxSpeed: cfg.Enemy.MaxSpeed,
	})

	return enemy
}
