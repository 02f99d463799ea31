package utils

import (
	"math"
	"testing"

	"laser-defense/internal/defs"

	"github.com/stretchr/testify/assert"
)

func TestPickCumulativeWaveOne(t *testing.T) {
	// wave 1 thresholds: spawner 0.10, runner 0.45, carrier 0.53, zigzag 0.65
	tests := []struct {
		roll float64
		want defs.EnemyType
	}{
		{0.00, defs.EnemySpawner},
		{0.099, defs.EnemySpawner},
		{0.10, defs.EnemyRunner},
		{0.449, defs.EnemyRunner},
		{0.45, defs.EnemyBatteryCarrier},
		{0.529, defs.EnemyBatteryCarrier},
		{0.53, defs.EnemyZigzag},
		{0.649, defs.EnemyZigzag},
		{0.65, defs.EnemyGrunt},
		{0.999, defs.EnemyGrunt},
	}
	for _, tt := range tests {
		got := PickCumulative(defs.SpawnTable, 1, tt.roll, defs.FallbackSpawn)
		assert.Equal(t, tt.want, got, "roll %.3f", tt.roll)
	}
}

func TestPickCumulativeLateWavesLeaveNoGrunts(t *testing.T) {
	// At the caps the ratios sum past 1, so grunts stop appearing.
	got := PickCumulative(defs.SpawnTable, 40, 0.999, defs.FallbackSpawn)
	assert.NotEqual(t, defs.EnemyGrunt, got)
}

func TestPRNGServiceIsDeterministic(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Range(40, 1160), b.Range(40, 1160))
		assert.Equal(t, a.Sign(), b.Sign())
	}
	assert.EqualValues(t, 42, a.Seed())
}

func TestRangeAndSignBounds(t *testing.T) {
	s := NewPRNGService(7)
	for i := 0; i < 1000; i++ {
		v := s.Range(0.6, 1.1)
		assert.GreaterOrEqual(t, v, 0.6)
		assert.Less(t, v, 1.1)
		assert.Equal(t, 1.0, math.Abs(s.Sign()))
	}
}

func TestNormalizeAngle(t *testing.T) {
	assert.InDelta(t, 0.0, NormalizeAngle(2*math.Pi), 1e-9)
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-9)
	assert.InDelta(t, 0.5, Lerp(0, 1, 0.5), 1e-9)
	assert.InDelta(t, 0.125, EaseInCubic(0.5), 1e-9)
}
