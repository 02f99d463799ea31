// internal/defs/enemies.go
package defs

import (
	"errors"
	"fmt"
	"maps"
)

// ErrUnknownEnemyType is returned when a type has no definition.
var ErrUnknownEnemyType = errors.New("unknown enemy type")

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	ID      EnemyType `json:"id"`
	Name    string    `json:"name"`
	Health  int       `json:"health"`
	Speed   float64   `json:"speed"`  // px/s
	Radius  float64   `json:"radius"` // px
	Damage  int       `json:"damage"` // base health removed on contact
	Score   int       `json:"score"`  // awarded on kill
	Visuals Visuals   `json:"visuals"`

	Spawner *SpawnerParams `json:"spawner,omitempty"`
	Battery *BatteryParams `json:"battery,omitempty"`
	Zigzag  *ZigzagParams  `json:"zigzag,omitempty"`
}

// Visuals contains the colors used for the vector fallback and HP bar.
type Visuals struct {
	Color HexColor `json:"color"`
	Body  HexColor `json:"body"`
}

// SpawnerParams configures minion production.
type SpawnerParams struct {
	IntervalMinMs float64 `json:"interval_min_ms"`
	IntervalMaxMs float64 `json:"interval_max_ms"`
	MaxChildren   int     `json:"max_children"`
	PerSpawn      int     `json:"per_spawn"`
}

// BatteryParams configures the ACTIVE/HIDDEN cycle.
type BatteryParams struct {
	ActiveMs float64 `json:"active_ms"`
	HiddenMs float64 `json:"hidden_ms"`
}

// ZigzagParams configures the lateral oscillation.
type ZigzagParams struct {
	Amplitude float64 `json:"amplitude"` // lateral px/s at the sine peak
	FreqHz    float64 `json:"freq_hz"`
}

// Library maps each enemy type to its definition. A Library is never mutated
// once a game is running; reloads build a new one.
type Library map[EnemyType]EnemyDefinition

// Get returns the definition for t.
func (l Library) Get(t EnemyType) (EnemyDefinition, error) {
	def, ok := l[t]
	if !ok {
		return EnemyDefinition{}, fmt.Errorf("%w: %s", ErrUnknownEnemyType, t)
	}
	return def, nil
}

// Clone returns a shallow copy of l.
func (l Library) Clone() Library {
	return maps.Clone(l)
}

// DefaultLibrary returns the built-in stat table.
func DefaultLibrary() Library {
	return Library{
		EnemyGrunt: {
			ID: EnemyGrunt, Name: "Grunt",
			Health: 30, Speed: 70, Radius: 16, Damage: 4, Score: 10,
			Visuals: Visuals{Color: MustHex("#ff5a6a"), Body: MustHex("#2a0f14")},
		},
		EnemyRunner: {
			ID: EnemyRunner, Name: "Runner",
			Health: 18, Speed: 110, Radius: 14, Damage: 3, Score: 12,
			Visuals: Visuals{Color: MustHex("#ffd54f"), Body: MustHex("#2a1f0a")},
		},
		EnemySpawner: {
			ID: EnemySpawner, Name: "Spawner",
			Health: 60, Speed: 50, Radius: 18, Damage: 6, Score: 20,
			Visuals: Visuals{Color: MustHex("#b084ff"), Body: MustHex("#1f1930")},
			Spawner: &SpawnerParams{IntervalMinMs: 1300, IntervalMaxMs: 1900, MaxChildren: 4, PerSpawn: 2},
		},
		EnemyMinion: {
			ID: EnemyMinion, Name: "Minion",
			Health: 12, Speed: 95, Radius: 12, Damage: 2, Score: 6,
			Visuals: Visuals{Color: MustHex("#76e3c6"), Body: MustHex("#0e2a27")},
		},
		EnemyBatteryCarrier: {
			ID: EnemyBatteryCarrier, Name: "Battery carrier",
			Health: 28, Speed: 80, Radius: 16, Damage: 4, Score: 10,
			Visuals: Visuals{Color: MustHex("#7ec8ff"), Body: MustHex("#0f1524")},
			Battery: &BatteryParams{ActiveMs: 5000, HiddenMs: 3000},
		},
		EnemyZigzag: {
			ID: EnemyZigzag, Name: "Zigzag",
			Health: 26, Speed: 85, Radius: 15, Damage: 4, Score: 10,
			Visuals: Visuals{Color: MustHex("#7ec8ff"), Body: MustHex("#0f1524")},
			Zigzag:  &ZigzagParams{Amplitude: 140, FreqHz: 1.2},
		},
	}
}
