package systems

import (
	"github.com/automoto/wirecubes/components"
	cfg "github.com/automoto/wirecubes/config"
	"github.com/automoto/wirecubes/logging"
	"github.com/automoto/wirecubes/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateReload applies settings delivered by the file watcher. Cube layout
// may have changed, so the cubes are rebuilt.
func UpdateReload(ecs *ecs.ECS) {
	entry, ok := components.Reload.First(ecs.World)
	if !ok {
		return
	}
	reload := components.Reload.Get(entry)
	if reload.Updates == nil {
		return
	}

	select {
	case f, ok := <-reload.Updates:
		if !ok {
			reload.Updates = nil
			return
		}
		ApplySettings(ecs, f)
	default:
	}
}

// ApplySettings makes f the active configuration and refreshes the scene.
// The registry picks up the new TTL on its next sync.
func ApplySettings(ecs *ecs.ECS, f cfg.File) {
	cfg.Apply(f)
	if root, ok := tags.SceneRoot.First(ecs.World); ok {
		wd := components.Windows.Get(root)
		wd.Dirty = true
		if wd.Registry != nil {
			wd.Registry.SetTTL(f.Window.TTL)
		}
	}
	logging.Named("config").Infow("applied settings",
		"falloff", f.Scene.Falloff, "baseSize", f.Cube.BaseSize, "ttl", f.Window.TTL)
}
