// internal/defs/spawn_table.go
package defs

// SpawnRatio is the share of a wave taken by one enemy type. The share grows
// linearly with the wave number and is capped at Max.
type SpawnRatio struct {
	Type    EnemyType
	Base    float64
	PerWave float64
	Max     float64
}

// At returns the ratio for the given wave (1-based).
func (r SpawnRatio) At(wave int) float64 {
	return min(r.Base+float64(wave-1)*r.PerWave, r.Max)
}

// SpawnTable is tested in order against one uniform roll using cumulative
// thresholds. Whatever the roll leaves over becomes a FallbackSpawn.
var SpawnTable = []SpawnRatio{
	{Type: EnemySpawner, Base: 0.10, PerWave: 0.02, Max: 0.20},
	{Type: EnemyRunner, Base: 0.35, PerWave: 0.03, Max: 0.65},
	{Type: EnemyBatteryCarrier, Base: 0.08, PerWave: 0.01, Max: 0.15},
	{Type: EnemyZigzag, Base: 0.12, PerWave: 0.02, Max: 0.30},
}

// FallbackSpawn is chosen when the roll exceeds every threshold.
const FallbackSpawn = EnemyGrunt
