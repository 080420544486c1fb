package gamemath

import "github.com/yohamta/donburi/features/math"

// Approach moves current a fraction of the way toward target. Applied once
// per tick it converges exponentially; the rate depends on the tick rate.
func Approach(current, target, falloff float64) float64 {
	return current + (target-current)*falloff
}

// ApproachVec2 applies Approach to each axis.
func ApproachVec2(current, target math.Vec2, falloff float64) math.Vec2 {
	return math.Vec2{
		X: Approach(current.X, target.X, falloff),
		Y: Approach(current.Y, target.Y, falloff),
	}
}
