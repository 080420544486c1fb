package systems

import (
	"github.com/automoto/wirecubes/components"
	cfg "github.com/automoto/wirecubes/config"
	"github.com/automoto/wirecubes/gamemath"
	"github.com/automoto/wirecubes/tags"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateOffset applies keyboard/gamepad panning and the reset action to the
// offset target, then eases the live offset toward it.
func UpdateOffset(ecs *ecs.ECS) {
	root, ok := tags.SceneRoot.First(ecs.World)
	if !ok {
		return
	}
	offset := components.Offset.Get(root)
	ptr := components.Pointer.Get(root)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionResetView).JustPressed {
		ResetView(offset)
	}

	// A drag owns the target while it is active.
	if !ptr.Active {
		step := cfg.Input.PanStep
		if GetAction(input, cfg.ActionPanLeft).Pressed {
			offset.Target.X -= step
		}
		if GetAction(input, cfg.ActionPanRight).Pressed {
			offset.Target.X += step
		}
		if GetAction(input, cfg.ActionPanUp).Pressed {
			offset.Target.Y -= step
		}
		if GetAction(input, cfg.ActionPanDown).Pressed {
			offset.Target.Y += step
		}
	}

	EaseOffset(offset, cfg.Scene.Falloff)
}

// EaseOffset moves the live offset a falloff fraction toward the target.
// It runs once per tick, so convergence speed follows the tick rate rather
// than wall time.
func EaseOffset(offset *components.OffsetData, falloff float64) {
	offset.Current = gamemath.ApproachVec2(offset.Current, offset.Target, falloff)
}

// SnapOffset jumps the live offset to the target without easing.
func SnapOffset(offset *components.OffsetData) {
	offset.Current = offset.Target
}

// ResetView recentres the scene immediately.
func ResetView(offset *components.OffsetData) {
	offset.Target = math.Vec2{}
	SnapOffset(offset)
}

// UpdateSettings handles runtime toggles.
func UpdateSettings(ecs *ecs.ECS) {
	root, ok := tags.SceneRoot.First(ecs.World)
	if !ok {
		return
	}
	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings := components.Settings.Get(root)
		settings.Debug = !settings.Debug
	}
}
