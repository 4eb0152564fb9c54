package systems

import (
	"encoding/json"
	"log"

	"github.com/chris-redfield/mega-human/level"
	"github.com/quasilyte/gdata"
)

// SavedEditorState is the editor session data stored on disk.
type SavedEditorState struct {
	StageIndex int  `json:"stageIndex"`
	ShowGrid   bool `json:"showGrid"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for editor storage.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "mega-human",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadEditorState loads the previous session, or returns nil when none
// exists.
func LoadEditorState() (*SavedEditorState, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("editor")
	if err != nil {
		log.Printf("Warning: Could not load editor state: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var state SavedEditorState
	if err := json.Unmarshal(data, &state); err != nil {
		log.Printf("Warning: Could not parse editor state: %v", err)
		return nil, err
	}
	return &state, nil
}

// SaveEditorState saves the session.
func SaveEditorState(s *SavedEditorState) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem("editor", data); err != nil {
		log.Printf("Warning: Could not save editor state: %v", err)
		return err
	}
	return nil
}

// AutosaveOverride keeps a per-stage copy of the painted override in app
// data, so an unsaved session survives a crash. The canonical file next to
// the stage's TMX is written separately by the editor's save action.
func AutosaveOverride(stage string, ov *level.Override) error {
	if !gdataInitialized || gdataManager == nil || ov == nil {
		return nil
	}

	raw, err := ov.Encode()
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem("override-"+stage, raw); err != nil {
		log.Printf("Warning: Could not autosave override for %s: %v", stage, err)
		return err
	}
	return nil
}

// LoadAutosavedOverride restores a stage's autosaved override, or nil when
// none exists.
func LoadAutosavedOverride(stage string) (*level.Override, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	raw, err := gdataManager.LoadItem("override-" + stage)
	if err != nil || raw == nil {
		return nil, err
	}
	return level.DecodeOverride(raw)
}
