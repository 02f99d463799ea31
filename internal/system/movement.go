// internal/system/movement.go
package system

import (
	"image/color"
	"math"

	"laser-defense/internal/component"
	"laser-defense/internal/config"
	"laser-defense/internal/defs"
	"laser-defense/internal/entity"
	"laser-defense/internal/event"
	"laser-defense/internal/utils"
	"laser-defense/pkg/geom"
)

// behavior is the per-type AI of an enemy. think runs the timers of the type
// (battery cycle, minion production), velocity returns the px/s to apply this
// frame given the unit vector toward the base.
type behavior struct {
	think    func(w *entity.World, e *component.Enemy)
	velocity func(w *entity.World, e *component.Enemy, toBase geom.Point) geom.Point
}

// MovementSystem moves enemies toward the base and runs their per-type AI.
type MovementSystem struct {
	factory         *EnemyFactory
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
	behaviors       map[defs.EnemyType]behavior
	fallback        behavior
}

func NewMovementSystem(factory *EnemyFactory, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *MovementSystem {
	s := &MovementSystem{
		factory:         factory,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
	s.fallback = behavior{velocity: straight}
	s.behaviors = map[defs.EnemyType]behavior{
		defs.EnemyGrunt:          s.fallback,
		defs.EnemyRunner:         s.fallback,
		defs.EnemyMinion:         s.fallback,
		defs.EnemySpawner:        {think: s.spawnMinions, velocity: straight},
		defs.EnemyBatteryCarrier: {think: s.cycleBattery, velocity: batteryVelocity},
		defs.EnemyZigzag:         {velocity: zigzagVelocity},
	}
	return s
}

func (s *MovementSystem) Update(w *entity.World, deltaTime float64) {
	base := w.Arena.Base
	// Миньоны, рожденные в этом кадре, начинают движение со следующего.
	n := len(w.Enemies)
	for i := 0; i < n; i++ {
		e := w.Enemies[i]
		b, ok := s.behaviors[e.Type]
		if !ok {
			b = s.fallback
		}
		if b.think != nil {
			b.think(w, e)
		}
		toBase := base.Sub(e.Point()).Unit()
		v := b.velocity(w, e, toBase)
		e.X += v.X * deltaTime
		e.Y += v.Y * deltaTime
	}
}

func straight(_ *entity.World, e *component.Enemy, toBase geom.Point) geom.Point {
	return toBase.Scale(e.Speed)
}

func batteryVelocity(w *entity.World, e *component.Enemy, toBase geom.Point) geom.Point {
	if e.Hidden() {
		return geom.Point{}
	}
	return straight(w, e, toBase)
}

func zigzagVelocity(w *entity.World, e *component.Enemy, toBase geom.Point) geom.Point {
	freq := e.ZigFreqHz
	if freq == 0 {
		freq = 1
	}
	seconds := (w.Now - e.BornAt) / 1000
	lateral := e.ZigAmp * math.Sin(2*math.Pi*freq*seconds) * e.ZigSign
	return toBase.Scale(e.Speed).Add(toBase.Perp().Scale(lateral))
}

// cycleBattery flips a carrier between ACTIVE and HIDDEN and keeps the
// battery gauge in sync.
func (s *MovementSystem) cycleBattery(w *entity.World, e *component.Enemy) {
	def, err := s.factory.Library().Get(e.Type)
	if err != nil || def.Battery == nil {
		return
	}
	now := w.Now
	switch e.Phase {
	case component.PhaseActive:
		e.BatteryLeft = max(0, e.NextPhaseAt-now)
		if now >= e.NextPhaseAt {
			e.Phase = component.PhaseHidden
			e.NextPhaseAt = now + def.Battery.HiddenMs
		}
	case component.PhaseHidden:
		if now >= e.NextPhaseAt {
			e.Phase = component.PhaseActive
			e.NextPhaseAt = now + def.Battery.ActiveMs
			e.BatteryLeft = def.Battery.ActiveMs
		}
	}
}

// spawnMinions drops up to PerSpawn minions next to a spawner whose timer
// has elapsed, never exceeding MaxChildren live children. The timer is
// rescheduled whether or not anything spawned.
func (s *MovementSystem) spawnMinions(w *entity.World, e *component.Enemy) {
	if w.Now < e.NextSpawnAt {
		return
	}
	def, err := s.factory.Library().Get(e.Type)
	if err != nil || def.Spawner == nil {
		return
	}
	sp := def.Spawner

	children := w.CountChildren(e.ID)
	if children < sp.MaxChildren {
		minionColor := s.minionColor()
		for range min(sp.PerSpawn, sp.MaxChildren-children) {
			offset := geom.FromAngle(s.rng.Range(0, 2*math.Pi), s.rng.Range(config.MinionOffsetMin, config.MinionOffsetMax))
			p := e.Point().Add(offset)
			m, err := s.factory.Make(w, defs.EnemyMinion, p.X, p.Y)
			if err != nil {
				return
			}
			m.ParentID = e.ID
			w.AddEnemy(m)
			Puff(w, s.rng, p, minionColor)
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.EnemySpawned,
				Data: event.EnemyData{ID: m.ID, Type: m.Type, X: m.X, Y: m.Y},
			})
		}
	}
	e.NextSpawnAt = w.Now + s.rng.Range(sp.IntervalMinMs, sp.IntervalMaxMs)
}

func (s *MovementSystem) minionColor() color.RGBA {
	if def, err := s.factory.Library().Get(defs.EnemyMinion); err == nil {
		return def.Visuals.Color.RGBA()
	}
	return color.RGBA{0x76, 0xe3, 0xc6, 0xff}
}
