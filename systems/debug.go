package systems

import (
	"fmt"
	"image/color"

	"github.com/chris-redfield/mega-human/components"
	cfg "github.com/chris-redfield/mega-human/config"
	"github.com/chris-redfield/mega-human/level"
	"github.com/chris-redfield/mega-human/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel renders the collision view: grid solidity, slope segments,
// zones, and moving bodies, camera-offset into screen space. This is the
// authoring feedback surface; there is no game art.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	lvl := CurrentLevel(e)
	if lvl == nil {
		return
	}

	camEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(camEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX := float64(width)/2 - cam.X
	camY := float64(height)/2 - cam.Y

	drawGrid(screen, lvl, camX, camY, float64(width), float64(height))
	drawSlopes(screen, lvl, camX, camY)
	drawZones(screen, e, lvl, camX, camY)
	drawBodies(screen, e, camX, camY)
}

func drawGrid(screen *ebiten.Image, lvl *level.Level, camX, camY, viewW, viewH float64) {
	cell := lvl.CellSize()
	g := lvl.Grid

	// Cull to the visible cell range.
	c0 := g.ColAt(-camX)
	r0 := g.RowAt(-camY)
	c1 := g.ColAt(-camX + viewW)
	r1 := g.RowAt(-camY + viewH)

	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			if g.Tile(c, r) == level.Empty {
				continue
			}
			x := float64(c)*cell + camX
			y := float64(r)*cell + camY
			vector.FillRect(screen, float32(x), float32(y), float32(cell-1), float32(cell-1), cfg.Editor.GridColor, false)
		}
	}
}

func drawSlopes(screen *ebiten.Image, lvl *level.Level, camX, camY float64) {
	for _, s := range lvl.Slopes {
		vector.StrokeLine(screen,
			float32(s.X1+camX), float32(s.Y1+camY),
			float32(s.X2+camX), float32(s.Y2+camY),
			2, cfg.Editor.SlopeColor, false)
	}
}

func drawZones(screen *ebiten.Image, e *ecs.ECS, lvl *level.Level, camX, camY float64) {
	for _, z := range lvl.DeadZones {
		strokeRect(screen, z.X+camX, z.Y+camY, z.W, z.H, cfg.Editor.ZoneColor)
	}
	// Pickups still present in the space; consumed ones disappear.
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	for _, obj := range space.Objects() {
		if !obj.HasTags(tags.ResolvPickup) {
			continue
		}
		strokeRect(screen, obj.X+camX, obj.Y+camY, obj.W, obj.H, cfg.Editor.PickupColor)
	}
}

func drawBodies(screen *ebiten.Image, e *ecs.ECS, camX, camY float64) {
	components.Object.Each(e.World, func(entry *donburi.Entry) {
		b := components.Object.Get(entry).Body
		strokeRect(screen, b.X+camX, b.Y+camY, b.W, b.H, cfg.Editor.BodyColor)
	})
}

func strokeRect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), 1, c, false)
	vector.FillRect(screen, float32(x), float32(y+h-1), float32(w), 1, c, false)
	vector.FillRect(screen, float32(x), float32(y), 1, float32(h), c, false)
	vector.FillRect(screen, float32(x+w-1), float32(y), 1, float32(h), c, false)
}

// DrawHUD prints the active stage and the test body's contact flags.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	st := CurrentStage(e)
	if st == nil {
		return
	}
	info := fmt.Sprintf("stage: %s  slopes: %d", st.Level.Name, len(st.Level.Slopes))
	if entry, ok := components.Object.First(e.World); ok {
		b := components.Object.Get(entry).Body
		info += fmt.Sprintf("  grounded: %v  onSlope: %v", b.Grounded, b.OnSlope)
		if entry.HasComponent(components.Physics) {
			phys := components.Physics.Get(entry)
			info += fmt.Sprintf("  wall: %d", phys.WallContact)
			if phys.WallSliding {
				info += " (sliding)"
			}
		}
	}
	ebitenutil.DebugPrint(screen, info)
}
