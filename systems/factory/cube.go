package factory

import (
	"github.com/automoto/wirecubes/archetypes"
	"github.com/automoto/wirecubes/components"
	cfg "github.com/automoto/wirecubes/config"
	"github.com/automoto/wirecubes/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Layout returns the cube layout from the active configuration.
func Layout() gamemath.CubeLayout {
	return gamemath.CubeLayout{
		BaseSize:   cfg.Cube.BaseSize,
		SizeStep:   cfg.Cube.SizeStep,
		Spacing:    cfg.Cube.Spacing,
		HueStep:    cfg.Cube.HueStep,
		Saturation: cfg.Cube.Saturation,
		Lightness:  cfg.Cube.Lightness,
	}
}

// CreateCube spawns the cube for record index i out of n records.
func CreateCube(ecs *ecs.ECS, i, n int) *donburi.Entry {
	layout := Layout()

	cube := archetypes.Cube.Spawn(ecs)
	components.Cube.SetValue(cube, components.CubeData{
		Index:    i,
		Size:     layout.Size(i),
		Color:    layout.Color(i),
		Position: math.Vec2{X: layout.X(i, n), Y: 0},
		Scale:    1,
	})

	// Grow the cube in from nothing instead of popping it in.
	if cfg.Cube.SpawnSeconds > 0 {
		cube.AddComponent(components.Spawn)
		components.Spawn.SetValue(cube, components.SpawnData{
			Tween: gween.New(0, 1, cfg.Cube.SpawnSeconds, ease.OutCubic),
		})
		components.Cube.Get(cube).Scale = 0
	}

	return cube
}
