package level

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names recognized in stage TMX files.
const (
	groupCollision = "Collision"
	groupSpawn     = "PlayerSpawn"
	groupDeadZone  = "DeadZone"
	groupPickup    = "Pickup"
)

// LoadStage parses a TMX file into MapData. It takes an fs.FS so callers can
// pass embed.FS or os.DirFS.
func LoadStage(fsys fs.FS, tmxPath string) (*MapData, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	data := &MapData{
		Name:     strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:    m.Width * m.TileWidth,
		Height:   m.Height * m.TileHeight,
		CellSize: float64(m.TileWidth),
	}

	for _, og := range m.ObjectGroups {
		switch og.Name {
		case groupCollision:
			for _, o := range og.Objects {
				poly := objectPolygon(o)
				if len(poly.Points) == 0 {
					continue
				}
				data.Polygons = append(data.Polygons, poly)
			}
		case groupSpawn:
			for _, o := range og.Objects {
				data.SpawnPoints = append(data.SpawnPoints, SpawnPoint{
					X:     o.X,
					Y:     o.Y,
					Index: o.Properties.GetInt("spawnIndex"),
				})
			}
		case groupDeadZone:
			for _, o := range og.Objects {
				data.DeadZones = append(data.DeadZones, Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case groupPickup:
			for _, o := range og.Objects {
				data.Pickups = append(data.Pickups, Pickup{
					X:    o.X,
					Y:    o.Y,
					Kind: o.Properties.GetString("kind"),
				})
			}
		}
	}

	// Sort spawns left-to-right for consistent assignment
	sort.Slice(data.SpawnPoints, func(i, j int) bool {
		return data.SpawnPoints[i].X < data.SpawnPoints[j].X
	})

	return data, nil
}

// objectPolygon reads an object's polygon points in world space, preserving
// the authored winding order. Rectangle objects without a polygon child
// become their four corners, so plain rect tools still author collision.
func objectPolygon(o *tiled.Object) Polygon {
	shape := o.Name
	if shape == "" {
		shape = fmt.Sprintf("object#%d", o.ID)
	}
	if len(o.Polygons) > 0 && o.Polygons[0].Points != nil {
		pts := make([]Point, 0, len(*o.Polygons[0].Points))
		for _, p := range *o.Polygons[0].Points {
			// Tiled polygon points are relative to the object position.
			pts = append(pts, Point{X: o.X + float64(p.X), Y: o.Y + float64(p.Y)})
		}
		return Polygon{Shape: shape, Points: pts}
	}
	if o.Width > 0 && o.Height > 0 {
		return Polygon{Shape: shape, Points: []Point{
			{o.X, o.Y},
			{o.X + o.Width, o.Y},
			{o.X + o.Width, o.Y + o.Height},
			{o.X, o.Y + o.Height},
		}}
	}
	return Polygon{Shape: shape}
}

// Stage pairs a stage's parsed authoring data with its built Level. The
// editor rebuilds the Level whenever the override changes; the data itself
// stays as loaded.
type Stage struct {
	Data     *MapData
	Override *Override
	Level    *Level
}

// Rebuild replaces the stage's Level with a fresh build from its current
// data and override.
func (s *Stage) Rebuild() {
	s.Level = Build(s.Data, s.Override)
}

// LoadAllStages discovers all .tmx files in dir within fsys, loads and
// builds each, and returns stages keyed by stem name plus a sorted name
// list. A sibling "<stem>.override.yaml" file, when present, supplies that
// stage's hand-authored collision grid.
func LoadAllStages(fsys fs.FS, dir string) (map[string]*Stage, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	stages := make(map[string]*Stage, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadStage(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		ov, err := LoadOverride(fsys, dir+"/"+stem+".override.yaml")
		if err != nil {
			return nil, nil, err
		}
		st := &Stage{Data: data, Override: ov}
		st.Rebuild()
		stages[stem] = st
		names = append(names, stem)
	}

	sort.Strings(names)
	return stages, names, nil
}
