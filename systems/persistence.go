package systems

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/wirecubes/components"
	cfg "github.com/automoto/wirecubes/config"
	"github.com/automoto/wirecubes/logging"
	"github.com/automoto/wirecubes/tags"
	"github.com/automoto/wirecubes/windows"
	"github.com/yohamta/donburi/ecs"
)

const viewKey = "view"

// SavedView is the view state stored between runs
type SavedView struct {
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
	Debug   bool    `json:"debug"`
}

// LoadView loads the saved view. It returns nil without error when nothing
// has been saved yet.
func LoadView(store windows.Store) (*SavedView, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.Load(viewKey)
	if err != nil {
		return nil, fmt.Errorf("load view: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var view SavedView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, fmt.Errorf("parse saved view: %w", err)
	}
	return &view, nil
}

// SaveView stores the view
func SaveView(store windows.Store, view *SavedView) error {
	if store == nil || view == nil {
		return nil
	}

	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("encode view: %w", err)
	}
	if err := store.Save(viewKey, data); err != nil {
		return fmt.Errorf("save view: %w", err)
	}
	return nil
}

// ClearView removes the saved view
func ClearView(store windows.Store) error {
	if store == nil {
		return nil
	}
	if err := store.Save(viewKey, nil); err != nil {
		return fmt.Errorf("clear view: %w", err)
	}
	return nil
}

// CurrentView captures the scene's view state.
func CurrentView(ecs *ecs.ECS) *SavedView {
	root, ok := tags.SceneRoot.First(ecs.World)
	if !ok {
		return nil
	}
	offset := components.Offset.Get(root)
	return &SavedView{
		OffsetX: offset.Target.X,
		OffsetY: offset.Target.Y,
		Debug:   components.Settings.Get(root).Debug,
	}
}

// ApplySavedView restores a saved view. The offset is snapped so the scene
// does not ease in from the origin. A saved debug flag can turn the overlay
// on but never off when the configuration (or --debug) enables it.
func ApplySavedView(ecs *ecs.ECS, saved *SavedView) {
	if saved == nil {
		return
	}
	root, ok := tags.SceneRoot.First(ecs.World)
	if !ok {
		return
	}
	offset := components.Offset.Get(root)
	offset.Target.X = saved.OffsetX
	offset.Target.Y = saved.OffsetY
	SnapOffset(offset)

	components.Settings.Get(root).Debug = saved.Debug || cfg.Debug.Enabled
	logging.Named("persistence").Debugw("restored view", "x", saved.OffsetX, "y", saved.OffsetY)
}
