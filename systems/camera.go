package systems

import (
	"github.com/chris-redfield/mega-human/components"
	cfg "github.com/chris-redfield/mega-human/config"
	"github.com/chris-redfield/mega-human/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

const tickSeconds = 1.0 / 60.0

// UpdateCamera advances an active stage-change glide, otherwise eases the
// camera toward the player.
func UpdateCamera(e *ecs.ECS) {
	camEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(camEntry)

	if cam.GlideX != nil {
		x, doneX := cam.GlideX.Update(tickSeconds)
		y, doneY := cam.GlideY.Update(tickSeconds)
		cam.X, cam.Y = float64(x), float64(y)
		if doneX && doneY {
			cam.GlideX, cam.GlideY = nil, nil
		}
		return
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	body := components.Object.Get(playerEntry).Body
	targetX := body.X + body.W/2
	targetY := body.Y + body.H/2
	cam.X += (targetX - cam.X) / 8
	cam.Y += (targetY - cam.Y) / 8
}

// GlideCameraTo starts an eased camera move, used on stage switches.
func GlideCameraTo(e *ecs.ECS, x, y float64) {
	camEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(camEntry)
	cam.GlideX = gween.New(float32(cam.X), float32(x), cfg.Editor.CameraGlideTime, ease.OutQuad)
	cam.GlideY = gween.New(float32(cam.Y), float32(y), cfg.Editor.CameraGlideTime, ease.OutQuad)
}
