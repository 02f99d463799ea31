package component

import "image/color"

// Beam is the visible segment of one shot. It disappears once now > Until.
type Beam struct {
	X1, Y1 float64
	X2, Y2 float64
	Color  color.RGBA
	Until  float64 // ms
}

// Particle is a small fading dot (muzzle flash, minion spawn puff).
type Particle struct {
	Position
	Velocity
	R      float64
	Color  color.RGBA
	Life   float64 // ms
	BornAt float64 // ms
}

// Glyph is one character of the disintegration burst.
type Glyph struct {
	Position
	Velocity
	Char     rune
	Size     float64 // px
	Rot      float64 // radians
	RotSpeed float64 // radians per second
	Life     float64 // ms
	BornAt   float64 // ms
}

// Age returns how far through its life the glyph is at now, in [0, 1].
func (g *Glyph) Age(now float64) float64 {
	return lifeRatio(now-g.BornAt, g.Life)
}

// Age returns how far through its life the particle is at now, in [0, 1].
func (p *Particle) Age(now float64) float64 {
	return lifeRatio(now-p.BornAt, p.Life)
}

func lifeRatio(elapsed, life float64) float64 {
	if life <= 0 {
		return 1
	}
	r := elapsed / life
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
