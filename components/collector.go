package components

import "github.com/yohamta/donburi"

// CollectorData counts pickups consumed by an entity.
type CollectorData struct {
	Collected int
}

var Collector = donburi.NewComponentType[CollectorData]()
