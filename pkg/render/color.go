// pkg/render/color.go
package render

import (
	"image/color"

	"laser-defense/internal/config"
)

// ArenaColors holds all the color definitions needed to render the arena.
type ArenaColors struct {
	BackgroundColor color.RGBA
	GridColor       color.RGBA
	BaseFillColor   color.RGBA
	BaseRingColor   color.RGBA
	BaseGlowColor   color.RGBA
	BeamGlowColor   color.RGBA
	AimColor        color.RGBA
	GlyphColor      color.RGBA
	BatteryFrame    color.RGBA
	HPBarBackground color.RGBA
}

// DefaultArenaColors returns the palette from config.
func DefaultArenaColors() *ArenaColors {
	return &ArenaColors{
		BackgroundColor: config.BackgroundColor,
		GridColor:       config.GridColor,
		BaseFillColor:   config.BaseFillColor,
		BaseRingColor:   config.BaseRingColor,
		BaseGlowColor:   color.RGBA{0x7e, 0xe7, 0x87, 0x33},
		BeamGlowColor:   config.BeamGlowColor,
		AimColor:        config.AimColor,
		GlyphColor:      config.GlyphColor,
		BatteryFrame:    config.BatteryFrame,
		HPBarBackground: color.RGBA{0x00, 0x00, 0x00, 0x99},
	}
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Fade multiplies the alpha of c by k in [0, 1]. The result stays
// premultiplied as color.RGBA requires.
func Fade(c color.RGBA, k float64) color.RGBA {
	if k <= 0 {
		return color.RGBA{}
	}
	if k >= 1 {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}
