package gamemath

import "math"

// Vec3 is a point in cube-local space
type Vec3 struct {
	X, Y, Z float64
}

// BoxEdges lists the 12 edges of a box as index pairs into BoxVertices.
var BoxEdges = [12][2]int{
	// back face
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	// front face
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	// connecting edges
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// BoxVertices returns the corners of an axis-aligned cube of edge length
// size centred on the origin. Bit 0 of the index selects +X, bit 1 +Y and
// bit 2 +Z.
func BoxVertices(size float64) [8]Vec3 {
	h := size / 2
	var v [8]Vec3
	for i := range v {
		v[i] = Vec3{X: -h, Y: -h, Z: -h}
		if i&1 != 0 {
			v[i].X = h
		}
		if i&2 != 0 {
			v[i].Y = h
		}
		if i&4 != 0 {
			v[i].Z = h
		}
	}
	return v
}

// RotateXY rotates p by rx around X and ry around Y using XYZ Euler order,
// i.e. the Y rotation is applied to the point first.
func RotateXY(p Vec3, rx, ry float64) Vec3 {
	sy, cy := math.Sincos(ry)
	x := p.X*cy + p.Z*sy
	z := -p.X*sy + p.Z*cy
	y := p.Y

	sx, cx := math.Sincos(rx)
	return Vec3{
		X: x,
		Y: y*cx - z*sx,
		Z: y*sx + z*cx,
	}
}

// ProjectBox rotates and scales a cube and projects it orthographically.
// The returned points are relative to the cube centre in screen units.
func ProjectBox(size, scale, rx, ry float64) [8][2]float64 {
	var out [8][2]float64
	for i, v := range BoxVertices(size * scale) {
		r := RotateXY(v, rx, ry)
		out[i] = [2]float64{r.X, r.Y}
	}
	return out
}
