package gamemath

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// CubeLayout describes how record indexes map to cube size, colour and slot.
type CubeLayout struct {
	BaseSize   float64
	SizeStep   float64
	Spacing    float64
	HueStep    float64
	Saturation float64
	Lightness  float64
}

// Size returns the edge length of the cube at index i.
func (l CubeLayout) Size(i int) float64 {
	return l.BaseSize + float64(i)*l.SizeStep
}

// X returns the horizontal position of cube i of n. The slot width depends
// on the cube's own size, so larger cubes sit further out.
func (l CubeLayout) X(i, n int) float64 {
	s := l.Size(i)
	return float64(i)*s*l.Spacing - float64(n)*s*l.Spacing*0.5
}

// Color returns the HSL colour of cube i. Hue wraps around past 1.
func (l CubeLayout) Color(i int) color.RGBA {
	h := math.Mod(float64(i)*l.HueStep, 1)
	if h < 0 {
		h++
	}
	r, g, b := colorful.Hsl(h*360, l.Saturation, l.Lightness).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
