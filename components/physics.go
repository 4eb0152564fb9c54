package components

import "github.com/yohamta/donburi"

type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Gravity  float64
	Friction float64
	MaxSpeed float64

	// WallContact is the resolver's wall report for this tick: -1 left,
	// 1 right, 0 none. Entity logic decides what to do with it.
	WallContact int

	// WallSliding is derived from WallContact: airborne, falling, pressed
	// against a wall.
	WallSliding bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
