package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Config holds general application configuration
type Config struct {
	Width  int
	Height int
}

// CollisionConfig collects the resolver's tuned distances. These are
// empirical values carried over from playtesting, not derived quantities;
// change them only while watching slope seams in the debug viewer.
type CollisionConfig struct {
	// SnapEpsilon is the inset applied to every boundary snap so the next
	// tick's query does not re-trigger the same boundary through
	// floating-point exactness.
	SnapEpsilon float64

	// EdgeSampleInset pulls the vertical edge samples in from the hitbox
	// corners, keeping them out of the neighboring columns.
	EdgeSampleInset float64

	// SlopeRelevanceTiles: feet farther than this many tile-heights from a
	// slope surface ignore that slope, so a body far below an unrelated
	// slope keeps its wall collisions.
	SlopeRelevanceTiles float64

	// SlopeSnapTiles bounds how far past a surface a falling body may
	// project and still snap onto it, in tile-heights.
	SlopeSnapTiles float64

	// SlopeDescendSnap is how far below the feet a surface may sit while
	// still keeping contact when walking downhill across a convex seam.
	// World units.
	SlopeDescendSnap float64

	// SlopeFallbackRows is how many grid rows beneath the feet are scanned
	// for solid ground right after leaving a slope, covering sub-tile gaps
	// where the analytic surface and the rasterized grid disagree.
	SlopeFallbackRows int
}

// PhysicsConfig contains global physics configuration
type PhysicsConfig struct {
	Gravity            float64
	MaxFallSpeed       float64
	VerticalSpeedClamp float64
}

// PlayerConfig contains the test body's movement configuration
type PlayerConfig struct {
	JumpSpeed    float64
	Acceleration float64
	MaxSpeed     float64
	Friction     float64
	Gravity      float64

	CollisionWidth  float64
	CollisionHeight float64
}

// EnemyConfig contains the demo walker's configuration
type EnemyConfig struct {
	PatrolSpeed float64
	MaxSpeed    float64
	Friction    float64
	Gravity     float64

	CollisionWidth  float64
	CollisionHeight float64
}

// EditorConfig contains collision editor and debug viewer configuration
type EditorConfig struct {
	CameraSpeed     float64
	CameraGlideTime float32 // seconds

	GridColor    color.RGBA
	SlopeColor   color.RGBA
	ZoneColor    color.RGBA
	PickupColor  color.RGBA
	BodyColor    color.RGBA
	PaintColor   color.RGBA
	OverlayColor color.RGBA
}

// Global configuration instances
var C *Config
var Collision CollisionConfig
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Editor EditorConfig

// Update/render layers
const (
	Default ecs.LayerID = iota
	DebugLayer
)

// Shared RGBA color constants
var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey  = color.RGBA{R: 100, G: 100, B: 100, A: 255}
	Red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue  = color.RGBA{R: 0, G: 100, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Collision = CollisionConfig{
		SnapEpsilon:         0.01,
		EdgeSampleInset:     1.0,
		SlopeRelevanceTiles: 2.0,
		SlopeSnapTiles:      2.0,
		SlopeDescendSnap:    12.0,
		SlopeFallbackRows:   2,
	}

	Physics = PhysicsConfig{
		Gravity:            0.75,
		MaxFallSpeed:       10.0,
		VerticalSpeedClamp: 10.0,
	}

	Player = PlayerConfig{
		JumpSpeed:    8.0,
		Acceleration: 0.75,
		MaxSpeed:     3.0,
		Friction:     0.5,
		Gravity:      0.75,

		CollisionWidth:  14,
		CollisionHeight: 24,
	}

	Enemy = EnemyConfig{
		PatrolSpeed: 1.0,
		MaxSpeed:    1.5,
		Friction:    0.25,
		Gravity:     0.75,

		CollisionWidth:  16,
		CollisionHeight: 16,
	}

	Editor = EditorConfig{
		CameraSpeed:     4.0,
		CameraGlideTime: 0.6,

		GridColor:    color.RGBA{R: 100, G: 100, B: 100, A: 255},
		SlopeColor:   color.RGBA{R: 0, G: 255, B: 60, A: 255},
		ZoneColor:    color.RGBA{R: 255, G: 60, B: 60, A: 255},
		PickupColor:  color.RGBA{R: 255, G: 255, B: 0, A: 255},
		BodyColor:    color.RGBA{R: 0, G: 100, B: 255, A: 255},
		PaintColor:   color.RGBA{R: 255, G: 140, B: 0, A: 255},
		OverlayColor: color.RGBA{R: 0, G: 0, B: 0, A: 180},
	}
}
