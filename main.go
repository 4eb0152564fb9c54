// Collision editor and debug viewer: renders a stage's collision grid,
// slope segments and zones, lets you paint a hand-authored override grid,
// and drives a test body through the resolvers to feel the results.
package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/chris-redfield/mega-human/components"
	cfg "github.com/chris-redfield/mega-human/config"
	"github.com/chris-redfield/mega-human/level"
	"github.com/chris-redfield/mega-human/systems"
	"github.com/chris-redfield/mega-human/systems/factory"
	"github.com/chris-redfield/mega-human/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const toolbarHeight = 36

type Editor struct {
	ecs       *ecs.ECS
	ui        *ui.EditorUI
	assetsDir string

	stages map[string]*level.Stage
	names  []string
	index  int
}

func NewEditor(assetsDir string) (*Editor, error) {
	stages, names, err := level.LoadAllStages(os.DirFS(assetsDir), "levels")
	if err != nil {
		return nil, err
	}

	e := &Editor{
		assetsDir: assetsDir,
		stages:    stages,
		names:     names,
	}

	if err := systems.InitPersistence(); err == nil {
		if state, _ := systems.LoadEditorState(); state != nil {
			if state.StageIndex >= 0 && state.StageIndex < len(names) {
				e.index = state.StageIndex
			}
		}
		// A crashed session's unsaved painting takes precedence over the
		// on-disk override.
		for _, name := range names {
			if ov, _ := systems.LoadAutosavedOverride(name); ov != nil {
				stages[name].Override = ov
				stages[name].Rebuild()
			}
		}
	}

	e.ui = ui.NewEditorUI(e.saveOverride, e.revertOverride, e.clearOverride, e.toggleCellSize)
	e.configure()
	return e, nil
}

// configure rebuilds the world for the active stage. Stage switches replace
// the whole world rather than mutating the old one.
func (e *Editor) configure() {
	w := ecs.NewECS(donburi.NewWorld())

	w.AddSystem(systems.UpdateInput)
	w.AddSystem(systems.UpdatePhysics)
	w.AddSystem(systems.UpdateCollisions)
	w.AddSystem(systems.UpdateZones)
	w.AddSystem(systems.UpdateCamera)

	w.AddRenderer(cfg.Default, systems.DrawLevel)
	w.AddRenderer(cfg.DebugLayer, systems.DrawHUD)

	factory.CreateLevel(w, e.stages, e.names, e.index)

	lvl := e.stage().Level
	factory.CreateSpace(w, lvl)

	spawnX, spawnY := float64(lvl.Width)/2, float64(lvl.Height)/2
	if len(lvl.SpawnPoints) > 0 {
		sp := lvl.SpawnPoints[0]
		spawnX, spawnY = sp.X, sp.Y
	}
	factory.CreateCamera(w, spawnX, spawnY)
	factory.CreatePlayer(w, spawnX, spawnY-cfg.Player.CollisionHeight)

	e.ecs = w
}

func (e *Editor) stage() *level.Stage {
	return e.stages[e.names[e.index]]
}

func (e *Editor) Update() error {
	e.handleKeys()
	e.handlePainting()
	e.ecs.Update()
	e.ui.UI.Update()

	st := e.stage()
	painted := 0
	if st.Override != nil {
		painted = len(st.Override.Cells)
	}
	e.ui.SetStatus(st.Level.Name, st.Level.CellSize(), painted)
	return nil
}

func (e *Editor) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		e.index = (e.index + 1) % len(e.names)
		e.configure()
		e.saveSession()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		if entry, ok := components.Object.First(e.ecs.World); ok {
			b := components.Object.Get(entry).Body
			systems.GlideCameraTo(e.ecs, b.X+b.W/2, b.Y+b.H/2)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		if camEntry, ok := components.Camera.First(e.ecs.World); ok {
			cam := components.Camera.Get(camEntry)
			factory.CreateEnemy(e.ecs, cam.X, cam.Y-64)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if camEntry, ok := components.Camera.First(e.ecs.World); ok {
			cam := components.Camera.Get(camEntry)
			factory.CreateProjectile(e.ecs, cam.X, cam.Y-32, 4)
		}
	}
}

// handlePainting converts mouse clicks into override cells. The first paint
// on a stage seeds the override from the current grid, so painting refines
// the rasterizer's output instead of wiping it.
func (e *Editor) handlePainting() {
	paint := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	erase := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !paint && !erase {
		return
	}

	mx, my := ebiten.CursorPosition()
	if my > cfg.C.Height-toolbarHeight {
		return // over the toolbar
	}

	camEntry, ok := components.Camera.First(e.ecs.World)
	if !ok {
		return
	}
	cam := components.Camera.Get(camEntry)
	worldX := float64(mx) - (float64(cfg.C.Width)/2 - cam.X)
	worldY := float64(my) - (float64(cfg.C.Height)/2 - cam.Y)

	st := e.stage()
	if st.Override == nil {
		st.Override = seedOverride(st.Level)
	}
	col := st.Level.Grid.ColAt(worldX)
	row := st.Level.Grid.RowAt(worldY)
	if paint {
		st.Override.Add(col, row)
	} else {
		st.Override.Remove(col, row)
	}
	st.Rebuild()
	systems.AutosaveOverride(st.Level.Name, st.Override)
}

// seedOverride captures the grid's current solidity as an override, the
// starting point for hand editing.
func seedOverride(lvl *level.Level) *level.Override {
	ov := &level.Override{CellSize: lvl.CellSize()}
	for r := 0; r < lvl.Grid.Rows(); r++ {
		for c := 0; c < lvl.Grid.Cols(); c++ {
			if lvl.Grid.Tile(c, r) != level.Empty {
				ov.Add(c, r)
			}
		}
	}
	return ov
}

func (e *Editor) saveOverride() {
	st := e.stage()
	if st.Override == nil {
		return
	}
	raw, err := st.Override.Encode()
	if err != nil {
		log.Printf("encode override: %v", err)
		return
	}
	path := filepath.Join(e.assetsDir, "levels", st.Level.Name+".override.yaml")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		log.Printf("write override: %v", err)
		return
	}
	log.Printf("Saved override: %s (%d cells)", path, len(st.Override.Cells))
}

func (e *Editor) revertOverride() {
	st := e.stage()
	st.Override = nil
	st.Rebuild()
}

func (e *Editor) clearOverride() {
	st := e.stage()
	st.Override = &level.Override{CellSize: st.Level.CellSize()}
	st.Rebuild()
}

// toggleCellSize flips the override between the stage's native cell size
// and a half-size fine grid, resampling painted cells against the current
// build so the geometry survives the switch.
func (e *Editor) toggleCellSize() {
	st := e.stage()
	coarse := st.Data.CellSize
	fine := coarse / 2

	old := st.Level
	size := fine
	if old.CellSize() == fine {
		size = coarse
	}

	ov := &level.Override{CellSize: size}
	cols := int(float64(st.Data.Width) / size)
	rows := int(float64(st.Data.Height) / size)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cx := (float64(c) + 0.5) * size
			cy := (float64(r) + 0.5) * size
			if old.Grid.Tile(old.Grid.ColAt(cx), old.Grid.RowAt(cy)) != level.Empty {
				ov.Add(c, r)
			}
		}
	}

	st.Override = ov
	st.Rebuild()
	systems.AutosaveOverride(st.Level.Name, st.Override)
}

func (e *Editor) saveSession() {
	systems.SaveEditorState(&systems.SavedEditorState{StageIndex: e.index})
}

func (e *Editor) Draw(screen *ebiten.Image) {
	e.ecs.Draw(screen)
	e.ui.UI.Draw(screen)
}

func (e *Editor) Layout(outsideWidth, outsideHeight int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func main() {
	assetsDir := flag.String("assets", "assets", "directory containing levels/*.tmx")
	flag.Parse()

	editor, err := NewEditor(*assetsDir)
	if err != nil {
		log.Fatalf("load stages: %v", err)
	}

	ebiten.SetWindowSize(cfg.C.Width*2, cfg.C.Height*2)
	ebiten.SetWindowTitle("mega-human collision editor")
	if err := ebiten.RunGame(editor); err != nil {
		log.Fatal(err)
	}
}
