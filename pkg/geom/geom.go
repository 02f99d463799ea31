// pkg/geom/geom.go
package geom

import "math"

// Point is a position or a direction in screen space (pixels, y grows down).
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Scale returns p multiplied by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Len returns the euclidean length of p.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Dist2 returns the squared distance between p and q.
func (p Point) Dist2(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return dx*dx + dy*dy
}

// Unit returns p scaled to length 1. A zero vector is treated as having
// length 1, so the zero vector is returned unchanged.
func (p Point) Unit() Point {
	d := p.Len()
	if d == 0 {
		d = 1
	}
	return Point{X: p.X / d, Y: p.Y / d}
}

// Perp returns p rotated by +90 degrees.
func (p Point) Perp() Point {
	return Point{X: -p.Y, Y: p.X}
}

// Angle returns the direction of p in radians.
func (p Point) Angle() float64 {
	return math.Atan2(p.Y, p.X)
}

// FromAngle returns a vector of length r pointing at angle a.
func FromAngle(a, r float64) Point {
	return Point{X: math.Cos(a) * r, Y: math.Sin(a) * r}
}

// Rect is an axis-aligned rectangle [Min.X, Max.X] x [Min.Y, Max.Y].
type Rect struct {
	Min, Max Point
}

// Screen returns the rectangle [0, w] x [0, h].
func Screen(w, h float64) Rect {
	return Rect{Max: Point{X: w, Y: h}}
}

// Width returns the horizontal extent of r.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent of r.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Contains reports whether p lies inside r, borders included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
