package component

import (
	"laser-defense/internal/defs"
	"laser-defense/internal/types"
)

// Enemy is one spawned hostile unit. Everything except HP, Position, the
// blink window and the per-type timers is fixed at creation.
type Enemy struct {
	ID   types.EntityID
	Type defs.EnemyType
	Position
	HP     int
	MaxHP  int
	Speed  float64
	Damage int
	Radius float64

	BlinkUntil float64 // ms; drawn highlighted while now < BlinkUntil
	BornAt     float64 // ms

	// SPAWNER
	NextSpawnAt float64
	// MINION spawned by a SPAWNER; zero otherwise
	ParentID types.EntityID

	// BATTERY_CARRIER
	Phase       BatteryPhase
	NextPhaseAt float64
	BatteryLeft float64 // ms left in the ACTIVE phase

	// ZIGZAG
	ZigAmp    float64
	ZigFreqHz float64
	ZigSign   float64 // -1 or +1
}

// Hidden reports whether the enemy is a battery carrier in its HIDDEN phase.
// Hidden carriers neither move, render, nor take hits.
func (e *Enemy) Hidden() bool {
	return e.Type == defs.EnemyBatteryCarrier && e.Phase == PhaseHidden
}

// Alive reports whether the enemy still has hit points.
func (e *Enemy) Alive() bool {
	return e.HP > 0
}
