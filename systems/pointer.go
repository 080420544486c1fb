package systems

import (
	"github.com/automoto/wirecubes/components"
	"github.com/automoto/wirecubes/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// UpdatePointer turns mouse and touch state into drag gestures on the scene
// root. Only one pointer drives a drag; further touches are ignored until it
// is released.
func UpdatePointer(ecs *ecs.ECS) {
	root, ok := tags.SceneRoot.First(ecs.World)
	if !ok {
		return
	}
	ptr := components.Pointer.Get(root)
	offset := components.Offset.Get(root)
	input := getOrCreateInput(ecs)

	if !ptr.Active {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			if ptr.Ignore == nil || !ptr.Ignore(x, y) {
				BeginDrag(ptr, offset, components.PointerMouse, float64(x), float64(y))
				input.LastInputMethod = components.InputPointer
			}
			return
		}

		touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
		if len(touchIDs) == 0 {
			return
		}
		id := touchIDs[0]
		x, y := ebiten.TouchPosition(id)
		if ptr.Ignore == nil || !ptr.Ignore(x, y) {
			BeginDrag(ptr, offset, components.PointerTouch, float64(x), float64(y))
			ptr.TouchID = id
			input.LastInputMethod = components.InputPointer
		}
		return
	}

	switch ptr.Source {
	case components.PointerMouse:
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			EndDrag(ptr)
			return
		}
		x, y := ebiten.CursorPosition()
		MoveDrag(ptr, offset, float64(x), float64(y))
	case components.PointerTouch:
		if inpututil.IsTouchJustReleased(ptr.TouchID) {
			EndDrag(ptr)
			return
		}
		x, y := ebiten.TouchPosition(ptr.TouchID)
		MoveDrag(ptr, offset, float64(x), float64(y))
	}
}

// BeginDrag starts a drag at (x, y), capturing the live offset.
func BeginDrag(ptr *components.PointerData, offset *components.OffsetData, source components.PointerSource, x, y float64) {
	ptr.Active = true
	ptr.Source = source
	ptr.StartX, ptr.StartY = x, y
	ptr.LastX, ptr.LastY = x, y
	ptr.InitialOffset = offset.Current
}

// MoveDrag sets the offset target to the captured offset plus the distance
// moved since the press. It reports false when no drag is active.
func MoveDrag(ptr *components.PointerData, offset *components.OffsetData, x, y float64) bool {
	if !ptr.Active {
		return false
	}
	ptr.LastX, ptr.LastY = x, y
	offset.Target.X = ptr.InitialOffset.X + (x - ptr.StartX)
	offset.Target.Y = ptr.InitialOffset.Y + (y - ptr.StartY)
	return true
}

// EndDrag releases the pointer. The offset keeps easing toward the last target.
func EndDrag(ptr *components.PointerData) {
	ptr.Active = false
	ptr.Source = components.PointerNone
}
