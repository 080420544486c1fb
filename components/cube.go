package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CubeData is one wireframe cube. Index is the position of the window record
// the cube was built from; it has no identity beyond the current rebuild.
type CubeData struct {
	Index     int
	Size      float64
	Color     color.RGBA
	Position  math.Vec2 // relative to the scene root
	RotationX float64
	RotationY float64
	Scale     float64
}

var Cube = donburi.NewComponentType[CubeData]()

// SpawnData animates a freshly built cube's scale from 0 to 1
type SpawnData struct {
	Tween *gween.Tween
}

var Spawn = donburi.NewComponentType[SpawnData]()
