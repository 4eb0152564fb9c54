package components

import (
	"github.com/chris-redfield/mega-human/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData pairs the movable body the resolvers operate on with a resolv
// probe used only for zone overlap checks (dead zones, pickups). The probe
// is re-synced to the body after each resolution pass; it plays no part in
// tile or slope collision.
type ObjectData struct {
	Body  physics.Body
	Probe *resolv.Object
}

// SyncProbe moves the zone probe to the body's current position.
func (o *ObjectData) SyncProbe() {
	if o.Probe == nil {
		return
	}
	o.Probe.X = o.Body.X
	o.Probe.Y = o.Body.Y
	o.Probe.Update()
}

var Object = donburi.NewComponentType[ObjectData]()
