package components

import (
	"github.com/chris-redfield/mega-human/level"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Stages map[string]*level.Stage
	Names  []string
	Index  int
}

// Current returns the active stage, or nil before any stage is loaded.
func (l *LevelData) Current() *level.Stage {
	if len(l.Names) == 0 {
		return nil
	}
	return l.Stages[l.Names[l.Index]]
}

var Level = donburi.NewComponentType[LevelData]()
