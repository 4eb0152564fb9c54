package systems

import (
	"github.com/chris-redfield/mega-human/components"
	"github.com/chris-redfield/mega-human/level"
	"github.com/yohamta/donburi/ecs"
)

// CurrentStage returns the active stage, or nil before one is loaded.
func CurrentStage(e *ecs.ECS) *level.Stage {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry).Current()
}

// CurrentLevel returns the active stage's built Level, or nil.
func CurrentLevel(e *ecs.ECS) *level.Level {
	st := CurrentStage(e)
	if st == nil {
		return nil
	}
	return st.Level
}
