package entity

import (
	"laser-defense/internal/component"
	"laser-defense/internal/types"
)

// Start-of-game values.
const (
	BaseMaxHealth   = 100
	InitialShotTime = -1e9
	FirstWaveDelay  = 1000 // ms before the first wave is scheduled
)

// World owns every mutable value of one playthrough. Systems receive it
// explicitly; nothing in the simulation keeps state outside of it.
type World struct {
	Arena Arena

	// Now is the simulation clock in milliseconds. It only advances while the
	// game steps, so pausing freezes every timer.
	Now float64

	BaseHealth int
	Score      int
	Wave       int
	WavePhase  component.WavePhase

	Enemies   []*component.Enemy
	Beams     []component.Beam
	Particles []component.Particle
	Glyphs    []component.Glyph

	NextGroupAt float64
	GroupLeft   int
	// Emitted counts enemies the spawn director released in the current
	// wave. Spawner minions are not counted.
	Emitted int

	LastShotAt float64

	GameOver     bool
	DeathMessage string

	NextID types.EntityID
}

// NewWorld returns a world ready for wave 1.
func NewWorld(arena Arena) *World {
	w := &World{Arena: arena}
	w.Reset()
	return w
}

// Reset reinitialises all mutable fields to start-of-game values. The arena
// is kept.
func (w *World) Reset() {
	arena := w.Arena
	*w = World{
		Arena:       arena,
		BaseHealth:  BaseMaxHealth,
		Wave:        1,
		WavePhase:   component.WavePending,
		Enemies:     make([]*component.Enemy, 0, 32),
		Beams:       make([]component.Beam, 0, 8),
		Particles:   make([]component.Particle, 0, 64),
		Glyphs:      make([]component.Glyph, 0, 128),
		NextGroupAt: FirstWaveDelay,
		LastShotAt:  InitialShotTime,
		NextID:      1,
	}
}

// NewEntity hands out the next entity id.
func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// AddEnemy appends e to the live set.
func (w *World) AddEnemy(e *component.Enemy) {
	w.Enemies = append(w.Enemies, e)
}

// RemoveEnemyAt removes the enemy at index i, keeping spawn order. Callers
// walking the slice must iterate backwards.
func (w *World) RemoveEnemyAt(i int) *component.Enemy {
	e := w.Enemies[i]
	copy(w.Enemies[i:], w.Enemies[i+1:])
	w.Enemies[len(w.Enemies)-1] = nil
	w.Enemies = w.Enemies[:len(w.Enemies)-1]
	return e
}

// Enemy returns the live enemy with the given id.
func (w *World) Enemy(id types.EntityID) (*component.Enemy, bool) {
	for _, e := range w.Enemies {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// CountChildren returns the number of live minions spawned by parent.
func (w *World) CountChildren(parent types.EntityID) int {
	n := 0
	for _, e := range w.Enemies {
		if e.ParentID == parent {
			n++
		}
	}
	return n
}

// DamageBase removes dmg from the base, clamped at zero.
func (w *World) DamageBase(dmg int) {
	w.BaseHealth -= dmg
	if w.BaseHealth < 0 {
		w.BaseHealth = 0
	}
}
