// internal/system/effects.go
package system

import (
	"image/color"
	"math"

	"laser-defense/internal/component"
	"laser-defense/internal/config"
	"laser-defense/internal/entity"
	"laser-defense/internal/utils"
	"laser-defense/pkg/geom"
	pkgutils "laser-defense/pkg/utils"
)

// MuzzleFlash emits a cone of sparks from origin along angle.
func MuzzleFlash(w *entity.World, rng *utils.PRNGService, origin geom.Point, angle float64) {
	for range config.MuzzleParticles {
		a := angle + rng.Range(-config.MuzzleSpread, config.MuzzleSpread)
		v := geom.FromAngle(a, rng.Range(config.MuzzleSpeedMin, config.MuzzleSpeedMax))
		w.Particles = append(w.Particles, component.Particle{
			Position: component.Position{X: origin.X, Y: origin.Y},
			Velocity: component.Velocity{VX: v.X, VY: v.Y},
			R:        rng.Range(config.MuzzleRadiusMin, config.MuzzleRadiusMax),
			Color:    config.MuzzleColor,
			Life:     rng.Range(config.MuzzleLifeMinMs, config.MuzzleLifeMaxMs),
			BornAt:   w.Now,
		})
	}
}

// Puff emits a small round burst, used when a spawner drops a minion.
func Puff(w *entity.World, rng *utils.PRNGService, at geom.Point, c color.RGBA) {
	for range config.PuffParticles {
		v := geom.FromAngle(rng.Range(0, 2*math.Pi), rng.Range(config.PuffSpeedMin, config.PuffSpeedMax))
		w.Particles = append(w.Particles, component.Particle{
			Position: component.Position{X: at.X, Y: at.Y},
			Velocity: component.Velocity{VX: v.X, VY: v.Y},
			R:        rng.Range(config.PuffRadiusMin, config.PuffRadiusMax),
			Color:    c,
			Life:     rng.Range(config.PuffLifeMinMs, config.PuffLifeMaxMs),
			BornAt:   w.Now,
		})
	}
}

// GlyphCount returns the burst size for power; power is clamped to [0, 1].
func GlyphCount(power float64) int {
	return int(math.Round(config.GlyphMin + (config.GlyphMax-config.GlyphMin)*pkgutils.Clamp01(power)))
}

// GlyphBurst scatters disintegration glyphs around at.
func GlyphBurst(w *entity.World, rng *utils.PRNGService, at geom.Point, power float64) {
	charset := []rune(config.GlyphCharset)
	for range GlyphCount(power) {
		v := geom.FromAngle(rng.Range(0, 2*math.Pi), rng.Range(config.GlyphSpeedMin, config.GlyphSpeedMax))
		w.Glyphs = append(w.Glyphs, component.Glyph{
			Position: component.Position{X: at.X, Y: at.Y},
			Velocity: component.Velocity{VX: v.X, VY: v.Y},
			Life:     config.GlyphBaseLifeMs + rng.Range(-1, 1)*config.GlyphLifeJitter,
			Char:     charset[rng.Intn(len(charset))],
			Size:     rng.Range(config.GlyphSizeMin, config.GlyphSizeMax),
			Rot:      rng.Range(0, 2*math.Pi),
			RotSpeed: rng.Range(-1, 1) * config.GlyphMaxSpin,
			BornAt:   w.Now,
		})
	}
}
