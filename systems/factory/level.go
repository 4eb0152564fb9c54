package factory

import (
	"github.com/chris-redfield/mega-human/archetypes"
	"github.com/chris-redfield/mega-human/components"
	"github.com/chris-redfield/mega-human/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel registers the loaded stages with the world.
func CreateLevel(e *ecs.ECS, stages map[string]*level.Stage, names []string, index int) *donburi.Entry {
	entry := archetypes.Level.Spawn(e)
	components.Level.SetValue(entry, components.LevelData{
		Stages: stages,
		Names:  names,
		Index:  index,
	})
	return entry
}

// CreateCamera spawns the camera centered on (x, y).
func CreateCamera(e *ecs.ECS, x, y float64) *donburi.Entry {
	entry := archetypes.Camera.Spawn(e)
	components.Camera.SetValue(entry, components.CameraData{X: x, Y: y})
	return entry
}
