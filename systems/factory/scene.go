package factory

import (
	"time"

	"github.com/automoto/wirecubes/archetypes"
	"github.com/automoto/wirecubes/components"
	cfg "github.com/automoto/wirecubes/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSceneRoot spawns the entity holding the pan offset, the drag state
// and the link to the window registry. Registry callbacks only flag the
// root; the windows system picks the flags up on the next tick.
func CreateSceneRoot(ecs *ecs.ECS, registry components.Registry, now func() time.Time) *donburi.Entry {
	root := archetypes.SceneRoot.Spawn(ecs)

	if now == nil {
		now = time.Now
	}
	components.Clock.SetValue(root, components.ClockData{Now: now})
	components.Settings.SetValue(root, components.SettingsData{Debug: cfg.Debug.Enabled})
	components.Windows.SetValue(root, components.WindowsData{
		Registry:  registry,
		Dirty:     true, // build the initial cubes on the first tick
		SyncTimer: cfg.Window.SyncInterval,
	})

	if registry != nil {
		registry.SetWindowsChangeCallback(func() {
			components.Windows.Get(root).Dirty = true
		})
		registry.SetShapeChangeCallback(func() {
			components.Windows.Get(root).ShapeChanged = true
		})
	}

	return root
}
