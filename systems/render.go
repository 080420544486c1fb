package systems

import (
	"github.com/automoto/wirecubes/components"
	cfg "github.com/automoto/wirecubes/config"
	"github.com/automoto/wirecubes/gamemath"
	"github.com/automoto/wirecubes/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// DrawCubes renders every cube as an orthographic wireframe, translated by
// the live scene offset.
func DrawCubes(ecs *ecs.ECS, screen *ebiten.Image) {
	root, ok := tags.SceneRoot.First(ecs.World)
	if !ok {
		return
	}
	origin := SceneOrigin(screen.Bounds().Dx(), screen.Bounds().Dy(), components.Offset.Get(root).Current)

	tags.Cube.Each(ecs.World, func(e *donburi.Entry) {
		cube := components.Cube.Get(e)
		if cube.Scale <= 0 {
			return
		}
		cx := origin.X + cube.Position.X
		cy := origin.Y + cube.Position.Y
		pts := gamemath.ProjectBox(cube.Size, cube.Scale, cube.RotationX, cube.RotationY)

		for _, edge := range gamemath.BoxEdges {
			a, b := pts[edge[0]], pts[edge[1]]
			vector.StrokeLine(screen,
				float32(cx+a[0]), float32(cy+a[1]),
				float32(cx+b[0]), float32(cy+b[1]),
				cfg.Cube.StrokeWidth, cube.Color, true)
		}
	})
}

// SceneOrigin returns the screen position of the scene root for a screen of
// the given size.
func SceneOrigin(width, height int, offset math.Vec2) math.Vec2 {
	origin := offset
	if cfg.Scene.CenterOrigin {
		origin.X += float64(width) / 2
		origin.Y += float64(height) / 2
	}
	return origin
}
