package level

import (
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// Override is a hand-authored replacement for the rasterizer's output: an
// explicit list of solid cells at its own cell size. Stages whose geometry
// the rasterizer handles poorly opt into one; slope extraction is unaffected
// by its presence. The editor's tile-painting flow produces these files.
type Override struct {
	CellSize float64  `yaml:"cellSize"`
	Cells    [][2]int `yaml:"cells"` // col, row pairs
}

// Apply writes the override's solid cells into the grid.
func (o *Override) Apply(g *Grid) {
	for _, c := range o.Cells {
		g.SetTile(c[0], c[1], Solid)
	}
}

// Add marks a cell solid in the override, ignoring duplicates.
func (o *Override) Add(col, row int) {
	for _, c := range o.Cells {
		if c[0] == col && c[1] == row {
			return
		}
	}
	o.Cells = append(o.Cells, [2]int{col, row})
}

// Remove clears a cell from the override.
func (o *Override) Remove(col, row int) {
	for i, c := range o.Cells {
		if c[0] == col && c[1] == row {
			o.Cells = append(o.Cells[:i], o.Cells[i+1:]...)
			return
		}
	}
}

// Encode serializes the override to YAML.
func (o *Override) Encode() ([]byte, error) {
	return yaml.Marshal(o)
}

// DecodeOverride parses YAML override data.
func DecodeOverride(raw []byte) (*Override, error) {
	var ov Override
	if err := yaml.Unmarshal(raw, &ov); err != nil {
		return nil, fmt.Errorf("parse override: %w", err)
	}
	return &ov, nil
}

// LoadOverride reads an override file. A missing file is not an error: it
// means "not supplied" and the caller rasterizes normally.
func LoadOverride(fsys fs.FS, path string) (*Override, error) {
	raw, err := fs.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read override %s: %w", path, err)
	}
	ov, err := DecodeOverride(raw)
	if err != nil {
		return nil, fmt.Errorf("override %s: %w", path, err)
	}
	return ov, nil
}
