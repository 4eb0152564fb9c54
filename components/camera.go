package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	X, Y float64

	// Active glide tweens, nil when the camera is free.
	GlideX *gween.Tween
	GlideY *gween.Tween
}

var Camera = donburi.NewComponentType[CameraData]()
