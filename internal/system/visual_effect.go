// internal/system/visual_effect.go
package system

import (
	"math"

	"laser-defense/internal/config"
	"laser-defense/internal/entity"
	"laser-defense/internal/utils"
)

// VisualEffectSystem управляет визуальными эффектами: частицами, глифами и лучами.
type VisualEffectSystem struct{}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem() *VisualEffectSystem {
	return &VisualEffectSystem{}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(w *entity.World, deltaTime float64) {
	now := w.Now

	// Глифы: движение с затуханием, вращение, истечение срока
	damp := math.Pow(config.GlyphDamping, max(0, deltaTime*60))
	glyphs := w.Glyphs[:0]
	for _, g := range w.Glyphs {
		g.X += g.VX * deltaTime
		g.Y += g.VY * deltaTime
		g.VX *= damp
		g.VY *= damp
		g.Rot = utils.NormalizeAngle(g.Rot + g.RotSpeed*deltaTime)
		if now-g.BornAt > g.Life {
			continue
		}
		glyphs = append(glyphs, g)
	}
	clear(w.Glyphs[len(glyphs):])
	w.Glyphs = glyphs

	particles := w.Particles[:0]
	for _, p := range w.Particles {
		p.X += p.VX * deltaTime
		p.Y += p.VY * deltaTime
		if now-p.BornAt > p.Life {
			continue
		}
		particles = append(particles, p)
	}
	clear(w.Particles[len(particles):])
	w.Particles = particles

	beams := w.Beams[:0]
	for _, b := range w.Beams {
		if now > b.Until {
			continue
		}
		beams = append(beams, b)
	}
	clear(w.Beams[len(beams):])
	w.Beams = beams
}
