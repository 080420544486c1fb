package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/wirecubes/components"
	cfg "github.com/automoto/wirecubes/config"
	"github.com/automoto/wirecubes/fonts"
	"github.com/automoto/wirecubes/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // freetype faces need the v1 API
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const debugMargin = 10

// DrawDebug renders offset, drag and registry state in the top-left corner.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	root, ok := tags.SceneRoot.First(ecs.World)
	if !ok {
		return
	}
	if !components.Settings.Get(root).Debug || !fonts.Loaded(fonts.Small) {
		return
	}

	lines := DebugLines(ecs)
	face := fonts.Small.Get()
	lineHeight := face.Metrics().Height.Ceil()

	header := fonts.Small.Get()
	if fonts.Loaded(fonts.Regular) {
		header = fonts.Regular.Get()
	}
	headerHeight := header.Metrics().Height.Ceil()

	vector.FillRect(screen,
		debugMargin/2, debugMargin/2,
		320, float32(headerHeight+lineHeight*len(lines)+debugMargin),
		cfg.DarkPanel, false)

	text.Draw(screen, "wirecubes", header, debugMargin, debugMargin+headerHeight, cfg.Debug.TextColor)
	for i, line := range lines {
		text.Draw(screen, line, face, debugMargin, debugMargin+headerHeight+lineHeight*(i+1), cfg.Debug.TextColor)
	}
}

// DebugLines returns the overlay text.
func DebugLines(ecs *ecs.ECS) []string {
	root, ok := tags.SceneRoot.First(ecs.World)
	if !ok {
		return nil
	}
	offset := components.Offset.Get(root)
	ptr := components.Pointer.Get(root)
	wd := components.Windows.Get(root)

	ids := make([]string, len(wd.Records))
	for i, r := range wd.Records {
		ids[i] = fmt.Sprint(r.ID)
	}

	drag := "idle"
	if ptr.Active {
		drag = fmt.Sprintf("dragging from (%.0f, %.0f) at (%.0f, %.0f)",
			ptr.StartX, ptr.StartY, ptr.LastX, ptr.LastY)
	}

	self := 0
	if wd.Registry != nil {
		self = wd.Registry.ID()
	}

	return []string{
		fmt.Sprintf("TPS: %.1f  FPS: %.1f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("offset: (%.1f, %.1f)", offset.Current.X, offset.Current.Y),
		fmt.Sprintf("target: (%.1f, %.1f)", offset.Target.X, offset.Target.Y),
		"pointer: " + drag,
		"input: " + inputMethodName(getOrCreateInput(ecs).LastInputMethod),
		fmt.Sprintf("window: %d  cubes: %d", self, CubeCount(ecs)),
		"records: [" + strings.Join(ids, " ") + "]",
	}
}

func inputMethodName(m components.InputMethod) string {
	switch m {
	case components.InputGamepad:
		return "gamepad"
	case components.InputPointer:
		return "pointer"
	default:
		return "keyboard"
	}
}
