package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// PointerSource identifies the device driving a drag
type PointerSource int

const (
	PointerNone PointerSource = iota
	PointerMouse
	PointerTouch
)

// PointerData tracks a single drag gesture. StartX/StartY and InitialOffset
// are captured on press; moves set the offset target relative to them.
type PointerData struct {
	Active        bool
	Source        PointerSource
	TouchID       ebiten.TouchID // valid when Source == PointerTouch
	StartX        float64
	StartY        float64
	LastX         float64
	LastY         float64
	InitialOffset math.Vec2

	// Ignore reports screen positions where a press must not start a drag,
	// such as over the HUD panel. Nil accepts every press.
	Ignore func(x, y int) bool
}

var Pointer = donburi.NewComponentType[PointerData]()
