package entity

import "laser-defense/pkg/geom"

// Arena is the fixed layout of the playfield: screen bounds and the base the
// enemies converge on. The player fires from the base center.
type Arena struct {
	Bounds     geom.Rect
	Base       geom.Point
	BaseRadius float64
}

// NewArena places the base in the bottom-right corner, margin pixels away
// from both edges.
func NewArena(width, height, baseRadius, margin float64) Arena {
	return Arena{
		Bounds:     geom.Screen(width, height),
		Base:       geom.Pt(width-margin-baseRadius, height-margin-baseRadius),
		BaseRadius: baseRadius,
	}
}

// Player returns the firing origin.
func (a Arena) Player() geom.Point {
	return a.Base
}
