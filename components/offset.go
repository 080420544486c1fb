package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// OffsetData is the pan offset of the scene root. Input writes Target; the
// live Current value eases toward it once per tick.
type OffsetData struct {
	Current math.Vec2
	Target  math.Vec2
}

var Offset = donburi.NewComponentType[OffsetData]()
