package systems

import (
	"github.com/chris-redfield/mega-human/components"
	"github.com/chris-redfield/mega-human/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateZones handles pickup overlap for collecting entities. Zone geometry
// is static; entity probes were already synced by UpdateCollisions, so this
// runs after it.
func UpdateZones(e *ecs.ECS) {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if obj.Probe == nil {
			return
		}
		check := obj.Probe.Check(0, 0, tags.ResolvPickup)
		if check == nil {
			return
		}
		collector := components.Collector.Get(entry)
		for _, pickup := range check.ObjectsByTags(tags.ResolvPickup) {
			space.Remove(pickup)
			collector.Collected++
		}
	})
}
