// component/movement.go
package component

import "laser-defense/pkg/geom"

// Position — позиция в пикселях экрана
type Position struct {
	X, Y float64
}

// Point converts the position to a geom.Point.
func (p Position) Point() geom.Point {
	return geom.Point{X: p.X, Y: p.Y}
}

// Velocity is a per-frame velocity in px/s.
type Velocity struct {
	VX, VY float64
}
