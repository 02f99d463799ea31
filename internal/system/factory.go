// internal/system/factory.go
package system

import (
	"fmt"

	"laser-defense/internal/component"
	"laser-defense/internal/defs"
	"laser-defense/internal/entity"
	"laser-defense/internal/utils"
)

// EnemyFactory builds enemies from the stat templates of a library.
type EnemyFactory struct {
	library defs.Library
	rng     *utils.PRNGService
}

func NewEnemyFactory(library defs.Library, rng *utils.PRNGService) *EnemyFactory {
	return &EnemyFactory{library: library, rng: rng}
}

// SetLibrary swaps the stat templates. Only call it between games.
func (f *EnemyFactory) SetLibrary(library defs.Library) {
	f.library = library
}

func (f *EnemyFactory) Library() defs.Library {
	return f.library
}

// Make creates an enemy of type t at (x, y) with a fresh id from w. The enemy
// is not added to the world.
func (f *EnemyFactory) Make(w *entity.World, t defs.EnemyType, x, y float64) (*component.Enemy, error) {
	def, err := f.library.Get(t)
	if err != nil {
		return nil, fmt.Errorf("make enemy: %w", err)
	}

	now := w.Now
	e := &component.Enemy{
		ID:       w.NewEntity(),
		Type:     t,
		Position: component.Position{X: x, Y: y},
		HP:       def.Health,
		MaxHP:    def.Health,
		Speed:    def.Speed,
		Damage:   def.Damage,
		Radius:   def.Radius,
		BornAt:   now,
		ZigSign:  1,
	}

	if sp := def.Spawner; sp != nil {
		e.NextSpawnAt = now + f.rng.Range(sp.IntervalMinMs, sp.IntervalMaxMs)
	}
	if b := def.Battery; b != nil {
		e.Phase = component.PhaseActive
		e.NextPhaseAt = now + b.ActiveMs
		e.BatteryLeft = b.ActiveMs
	}
	if z := def.Zigzag; z != nil {
		e.ZigAmp = z.Amplitude
		e.ZigFreqHz = z.FreqHz
		e.ZigSign = f.rng.Sign()
	}
	return e, nil
}

// ScoreFor returns the points awarded for killing an enemy of type t.
func (f *EnemyFactory) ScoreFor(t defs.EnemyType) int {
	if def, err := f.library.Get(t); err == nil {
		return def.Score
	}
	return defaultKillScore
}

const defaultKillScore = 10
