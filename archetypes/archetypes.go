package archetypes

import (
	"github.com/chris-redfield/mega-human/components"
	cfg "github.com/chris-redfield/mega-human/config"
	"github.com/chris-redfield/mega-human/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Object,
		components.Physics,
		components.Collector,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Object,
		components.Physics,
	)
	Projectile = newArchetype(
		tags.Projectile,
		components.Object,
		components.Physics,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(e *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	return e.World.Entry(e.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
}
