package system

import (
	"testing"

	"laser-defense/internal/component"
	"laser-defense/internal/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactoryMakeUsesTemplate(t *testing.T) {
	f := newFixture(t)
	f.world.Now = 1500

	e, err := f.factory.Make(f.world, defs.EnemyGrunt, 10, 20)
	require.NoError(t, err)
	assert.Equal(t, defs.EnemyGrunt, e.Type)
	assert.Equal(t, 30, e.HP)
	assert.Equal(t, 30, e.MaxHP)
	assert.Equal(t, 70.0, e.Speed)
	assert.Equal(t, 16.0, e.Radius)
	assert.Equal(t, 4, e.Damage)
	assert.Equal(t, 1500.0, e.BornAt)
	assert.Equal(t, 10.0, e.X)
	assert.Equal(t, 20.0, e.Y)
	assert.Empty(t, f.world.Enemies, "Make must not add to the world")
}

func TestFactoryIDsIncrease(t *testing.T) {
	f := newFixture(t)
	a, err := f.factory.Make(f.world, defs.EnemyGrunt, 0, 0)
	require.NoError(t, err)
	b, err := f.factory.Make(f.world, defs.EnemyRunner, 0, 0)
	require.NoError(t, err)
	assert.Greater(t, b.ID, a.ID)
}

func TestFactoryTypeSpecificFields(t *testing.T) {
	f := newFixture(t)
	f.world.Now = 1000

	sp, err := f.factory.Make(f.world, defs.EnemySpawner, 0, 0)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, sp.NextSpawnAt, 2300.0)
	assert.Less(t, sp.NextSpawnAt, 2900.0)

	bc, err := f.factory.Make(f.world, defs.EnemyBatteryCarrier, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, component.PhaseActive, bc.Phase)
	assert.Equal(t, 6000.0, bc.NextPhaseAt)
	assert.Equal(t, 5000.0, bc.BatteryLeft)

	zz, err := f.factory.Make(f.world, defs.EnemyZigzag, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 140.0, zz.ZigAmp)
	assert.Equal(t, 1.2, zz.ZigFreqHz)
	assert.Contains(t, []float64{-1, 1}, zz.ZigSign)
}

func TestFactoryUnknownType(t *testing.T) {
	f := newFixture(t)
	_, err := f.factory.Make(f.world, defs.EnemyType("DRAGON"), 0, 0)
	assert.ErrorIs(t, err, defs.ErrUnknownEnemyType)
}

func TestScoreFor(t *testing.T) {
	f := newFixture(t)
	tests := map[defs.EnemyType]int{
		defs.EnemyMinion:         6,
		defs.EnemyRunner:         12,
		defs.EnemySpawner:        20,
		defs.EnemyGrunt:          10,
		defs.EnemyBatteryCarrier: 10,
		defs.EnemyZigzag:         10,
	}
	for typ, want := range tests {
		assert.Equal(t, want, f.factory.ScoreFor(typ), typ)
	}
}

func TestApplyDamageKeepsHPInRange(t *testing.T) {
	e := &component.Enemy{HP: 30, MaxHP: 30}

	assert.False(t, ApplyDamage(e, 24, 100))
	assert.Equal(t, 6, e.HP)
	assert.Equal(t, 190.0, e.BlinkUntil)
	assert.True(t, e.Alive())

	assert.True(t, ApplyDamage(e, 24, 200))
	assert.Equal(t, 0, e.HP)
	assert.False(t, e.Alive())

	healed := &component.Enemy{HP: 10, MaxHP: 12}
	assert.False(t, ApplyDamage(healed, -5, 0))
	assert.Equal(t, 12, healed.HP)
}
