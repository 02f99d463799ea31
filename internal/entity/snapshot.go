package entity

import (
	"slices"

	"laser-defense/internal/component"
)

// Snapshot is a read-only copy of the world handed to renderers each frame.
type Snapshot struct {
	Arena        Arena
	Now          float64
	BaseHealth   int
	Score        int
	Wave         int
	GameOver     bool
	DeathMessage string
	LastShotAt   float64
	// Paused is filled in by the game loop; the world itself has no pause state.
	Paused bool

	Enemies   []component.Enemy
	Beams     []component.Beam
	Particles []component.Particle
	Glyphs    []component.Glyph
}

// Snapshot copies the world. Enemies are copied by value so a renderer can
// hold on to the snapshot while the next step runs.
func (w *World) Snapshot() Snapshot {
	enemies := make([]component.Enemy, len(w.Enemies))
	for i, e := range w.Enemies {
		enemies[i] = *e
	}
	return Snapshot{
		Arena:        w.Arena,
		Now:          w.Now,
		BaseHealth:   w.BaseHealth,
		Score:        w.Score,
		Wave:         w.Wave,
		GameOver:     w.GameOver,
		DeathMessage: w.DeathMessage,
		LastShotAt:   w.LastShotAt,
		Enemies:      enemies,
		Beams:        slices.Clone(w.Beams),
		Particles:    slices.Clone(w.Particles),
		Glyphs:       slices.Clone(w.Glyphs),
	}
}
