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

// CreatePlayer spawns the test body at (x, y). Its probe joins the zone
// space so dead zones and pickups register.
func CreatePlayer(e *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(e)

	w := cfg.Player.CollisionWidth
	h := cfg.Player.CollisionHeight
	probe := resolv.NewObject(x, y, w, h, tags.ResolvCharacter)
	probe.SetShape(resolv.NewRectangle(0, 0, w, h))
	addToSpace(e, probe)

	components.Object.SetValue(player, components.ObjectData{
		Body:  physics.Body{X: x, Y: y, W: w, H: h},
		Probe: probe,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:  cfg.Player.Gravity,
		Friction: cfg.Player.Friction,
		MaxSpeed: cfg.Player.MaxSpeed,
	})
	components.Collector.SetValue(player, components.CollectorData{})

	return player
}

func addToSpace(e *ecs.ECS, obj *resolv.Object) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	components.Space.Get(spaceEntry).Add(obj)
}
