package factory

import (
	"github.com/chris-redfield/mega-human/archetypes"
	"github.com/chris-redfield/mega-human/components"
	"github.com/chris-redfield/mega-human/level"
	"github.com/chris-redfield/mega-human/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace builds the zone space for a level: dead zones and pickup
// markers as resolv objects that entity probes overlap-check against. Tile
// and slope collision never touches this space.
func CreateSpace(e *ecs.ECS, lvl *level.Level) *donburi.Entry {
	entry := archetypes.Space.Spawn(e)
	cell := int(lvl.CellSize())
	space := resolv.NewSpace(lvl.Width, lvl.Height, cell, cell)

	for _, z := range lvl.DeadZones {
		obj := resolv.NewObject(z.X, z.Y, z.W, z.H, tags.ResolvDeadZone)
		obj.SetShape(resolv.NewRectangle(0, 0, z.W, z.H))
		space.Add(obj)
	}
	for _, p := range lvl.Pickups {
		obj := resolv.NewObject(p.X-4, p.Y-4, 8, 8, tags.ResolvPickup)
		space.Add(obj)
	}

	components.Space.SetValue(entry, components.SpaceData{Space: space})
	return entry
}
