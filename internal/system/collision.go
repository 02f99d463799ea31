// internal/system/collision.go
package system

import (
	"laser-defense/internal/config"
	"laser-defense/internal/entity"
	"laser-defense/internal/event"
	"laser-defense/internal/utils"
)

// CollisionSystem resolves enemies reaching the base.
type CollisionSystem struct {
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{rng: rng, eventDispatcher: eventDispatcher}
}

// Update removes every enemy touching the base and charges its damage.
func (s *CollisionSystem) Update(w *entity.World) {
	base := w.Arena.Base
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := w.Enemies[i]
		reach := w.Arena.BaseRadius + e.Radius
		if e.Point().Dist2(base) > reach*reach {
			continue
		}
		w.DamageBase(e.Damage)
		GlyphBurst(w, s.rng, e.Point(), config.GlyphImpactPower)
		w.RemoveEnemyAt(i)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.BaseHit,
			Data: event.EnemyData{ID: e.ID, Type: e.Type, X: e.X, Y: e.Y, Points: e.Damage},
		})
	}
}
