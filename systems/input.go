package systems

import (
	"github.com/chris-redfield/mega-human/components"
	cfg "github.com/chris-redfield/mega-human/config"
	"github.com/chris-redfield/mega-human/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput drives the test body from the keyboard so resolver behavior
// can be felt directly in the editor: arrows walk, space jumps.
func UpdateInput(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		phys := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		// Acceleration doubled so friction does not eat the input.
		if ebiten.IsKeyPressed(ebiten.KeyLeft) {
			phys.SpeedX -= cfg.Player.Acceleration * 2
		}
		if ebiten.IsKeyPressed(ebiten.KeyRight) {
			phys.SpeedX += cfg.Player.Acceleration * 2
		}
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) && obj.Body.Grounded {
			phys.SpeedY = -cfg.Player.JumpSpeed
		}
	})
}
