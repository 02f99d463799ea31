// internal/system/combat.go
package system

import (
	"laser-defense/internal/component"
	"laser-defense/internal/config"
	"laser-defense/internal/entity"
	"laser-defense/internal/event"
	"laser-defense/internal/utils"
	"laser-defense/pkg/geom"
)

// CombatSystem resolves the hit-scan laser.
type CombatSystem struct {
	factory         *EnemyFactory
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher

	// Piercing stretches the visible beam to the screen edge. Damage always
	// reaches every enemy on the ray.
	Piercing bool
	FireRate float64 // shots per second
	Damage   int
}

func NewCombatSystem(factory *EnemyFactory, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{
		factory:         factory,
		rng:             rng,
		eventDispatcher: eventDispatcher,
		Piercing:        config.LaserPiercing,
		FireRate:        config.PlayerFireRate,
		Damage:          config.HitscanDamage,
	}
}

// Cooldown is the minimum time between two shots, in ms.
func (s *CombatSystem) Cooldown() float64 {
	return 1000 / s.FireRate
}

// TryFire shoots from the player through aim if the trigger is held and the
// cooldown has elapsed. It reports whether a shot was fired.
func (s *CombatSystem) TryFire(w *entity.World, aim geom.Point, firing bool) bool {
	if w.GameOver || !firing || w.Now-w.LastShotAt < s.Cooldown() {
		return false
	}
	w.LastShotAt = w.Now

	origin := w.Arena.Player()
	edge := geom.RayToScreenEdge(origin, aim, w.Arena.Bounds)

	nearest := geom.Hit{T: 1, Point: edge}
	hits, kills := 0, 0

	// Обход с конца: убитые удаляются прямо в цикле.
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := w.Enemies[i]
		if e.Hidden() {
			continue
		}
		res := geom.SegmentCircleIntersect(origin, edge, e.Point(), e.Radius)
		if !res.OK {
			continue
		}
		hits++

		if ApplyDamage(e, s.Damage, w.Now) {
			kills++
			s.kill(w, i, e)
		}
		if res.T < nearest.T {
			nearest = res
		}
	}

	end := edge
	if !s.Piercing && hits > 0 {
		end = nearest.Point
	}
	w.Beams = append(w.Beams, component.Beam{
		X1: origin.X, Y1: origin.Y,
		X2: end.X, Y2: end.Y,
		Color: config.BeamColor,
		Until: w.Now + config.BeamDurationMs,
	})

	angle := end.Sub(origin).Angle()
	MuzzleFlash(w, s.rng, origin, angle)

	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ShotFired,
		Data: event.ShotData{Hits: hits, Kills: kills, Angle: angle, Pierce: s.Piercing},
	})
	return true
}

func (s *CombatSystem) kill(w *entity.World, i int, e *component.Enemy) {
	points := s.factory.ScoreFor(e.Type)
	w.Score += points
	GlyphBurst(w, s.rng, e.Point(), config.GlyphKillPower)
	w.RemoveEnemyAt(i)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.EnemyKilled,
		Data: event.EnemyData{ID: e.ID, Type: e.Type, X: e.X, Y: e.Y, Points: points},
	})
}
