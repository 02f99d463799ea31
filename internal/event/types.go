// internal/event/types.go
package event

import (
	"laser-defense/internal/defs"
	"laser-defense/internal/types"
)

const (
	ShotFired    EventType = "ShotFired"
	EnemySpawned EventType = "EnemySpawned"
	EnemyKilled  EventType = "EnemyKilled"
	BaseHit      EventType = "BaseHit"
	WaveStarted  EventType = "WaveStarted"
	WaveCleared  EventType = "WaveCleared"
	GameOver     EventType = "GameOver"
	GameReset    EventType = "GameReset"
)

// ShotData accompanies ShotFired.
type ShotData struct {
	Hits   int
	Kills  int
	Angle  float64
	Pierce bool
}

// EnemyData accompanies EnemySpawned, EnemyKilled and BaseHit.
type EnemyData struct {
	ID     types.EntityID
	Type   defs.EnemyType
	X, Y   float64
	Points int // score awarded (EnemyKilled) or base damage dealt (BaseHit)
}

// WaveData accompanies WaveStarted and WaveCleared.
type WaveData struct {
	Wave  int
	Total int
}

// GameOverData accompanies GameOver.
type GameOverData struct {
	Score   int
	Wave    int
	Message string
}
