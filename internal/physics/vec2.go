package physics

import "math"

// Vec2 is a physical-space (x, y) coordinate pair, used for measurement
// centers, potential-well centers, and brush-stroke centers. It carries no
// rendering-library conversions: the core never depends on a display
// toolkit (adapted from the teacher's Vec3, which did).
type Vec2 struct {
	X, Y float64
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Length returns the Euclidean magnitude of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// wrapCoordinate folds a coordinate difference into (-L/2, L/2], the
// min-image convention described in spec.md's GLOSSARY.
func wrapCoordinate(d, l float64) float64 {
	d = math.Mod(d, l)
	if d > l/2 {
		d -= l
	} else if d <= -l/2 {
		d += l
	}
	return d
}

// minImageDistance returns the shortest distance between two points on an
// L-by-L periodic domain, wrapping each axis independently.
func minImageDistance(a, b Vec2, l float64) float64 {
	dx := wrapCoordinate(a.X-b.X, l)
	dy := wrapCoordinate(a.Y-b.Y, l)
	return math.Sqrt(dx*dx + dy*dy)
}
