package systems

import (
	"github.com/automoto/wirecubes/components"
	cfg "github.com/automoto/wirecubes/config"
	"github.com/automoto/wirecubes/logging"
	"github.com/automoto/wirecubes/tags"
	"github.com/automoto/wirecubes/windows"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateWindowShape reports this instance's window position and size to the
// registry. Platforms without window placement report zeros.
func UpdateWindowShape(ecs *ecs.ECS) {
	root, ok := tags.SceneRoot.First(ecs.World)
	if !ok {
		return
	}
	wd := components.Windows.Get(root)
	if wd.Registry == nil {
		return
	}
	if err := wd.Registry.Update(CurrentShape()); err != nil {
		logging.Named("windows").Warnw("could not update window shape", "error", err)
	}
}

// CurrentShape returns the OS window rectangle.
func CurrentShape() windows.Shape {
	x, y := ebiten.WindowPosition()
	w, h := ebiten.WindowSize()
	return windows.Shape{X: x, Y: y, W: w, H: h}
}

// UpdateWindows syncs the registry on its interval, applies add/remove
// actions and rebuilds the cubes whenever the record list changed.
func UpdateWindows(ecs *ecs.ECS) {
	root, ok := tags.SceneRoot.First(ecs.World)
	if !ok {
		return
	}
	wd := components.Windows.Get(root)
	if wd.Registry == nil {
		return
	}

	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionAddWindow).JustPressed {
		AddWindow(ecs)
	}
	if GetAction(input, cfg.ActionRemoveWindow).JustPressed {
		RemoveWindow(ecs)
	}

	wd.SyncTimer--
	if wd.SyncTimer <= 0 {
		wd.SyncTimer = cfg.Window.SyncInterval
		if err := wd.Registry.Sync(); err != nil {
			logging.Named("windows").Warnw("could not sync windows", "error", err)
		}
	}

	if wd.ShapeChanged {
		wd.ShapeChanged = false
		if cfg.Scene.FollowWindow {
			followWindow(components.Offset.Get(root), wd.Registry)
		}
	}

	if wd.Dirty {
		wd.Dirty = false
		wd.Records = wd.Registry.Windows()
		RebuildCubes(ecs, len(wd.Records))
	}
}

// followWindow keeps the scene fixed on the desktop by offsetting it by the
// negated window position.
func followWindow(offset *components.OffsetData, registry components.Registry) {
	for _, r := range registry.Windows() {
		if r.ID == registry.ID() {
			offset.Target = math.Vec2{X: float64(-r.Shape.X), Y: float64(-r.Shape.Y)}
			return
		}
	}
}

// AddWindow registers a new virtual window. The registry callback marks the
// cubes for rebuild.
func AddWindow(ecs *ecs.ECS) {
	root, ok := tags.SceneRoot.First(ecs.World)
	if !ok {
		return
	}
	wd := components.Windows.Get(root)
	if wd.Registry == nil {
		return
	}
	r, err := wd.Registry.Add(map[string]string{"kind": "virtual"})
	if err != nil {
		logging.Named("windows").Warnw("could not add window", "error", err)
		return
	}
	logging.Named("windows").Debugw("added virtual window", "id", r.ID)
}

// RemoveWindow removes the newest virtual window owned by this instance.
// It does nothing when only the instance's own window is left.
func RemoveWindow(ecs *ecs.ECS) {
	root, ok := tags.SceneRoot.First(ecs.World)
	if !ok {
		return
	}
	wd := components.Windows.Get(root)
	if wd.Registry == nil {
		return
	}
	r, ok := wd.Registry.LastVirtual()
	if !ok {
		return
	}
	if err := wd.Registry.Remove(r.ID); err != nil {
		logging.Named("windows").Warnw("could not remove window", "id", r.ID, "error", err)
	}
}

// CanRemoveWindow reports whether RemoveWindow would remove anything.
func CanRemoveWindow(ecs *ecs.ECS) bool {
	root, ok := tags.SceneRoot.First(ecs.World)
	if !ok {
		return false
	}
	wd := components.Windows.Get(root)
	if wd.Registry == nil {
		return false
	}
	_, ok = wd.Registry.LastVirtual()
	return ok
}
