package entity

import (
	"testing"

	"laser-defense/internal/component"
	"laser-defense/internal/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testArena() Arena {
	return NewArena(1200, 900, 46, 60)
}

func TestNewArenaPlacesBaseBottomRight(t *testing.T) {
	a := testArena()
	assert.Equal(t, 1094.0, a.Base.X)
	assert.Equal(t, 794.0, a.Base.Y)
	assert.Equal(t, a.Base, a.Player())
	assert.Equal(t, 1200.0, a.Bounds.Width())
}

func TestNewWorldStartValues(t *testing.T) {
	w := NewWorld(testArena())
	assert.Equal(t, BaseMaxHealth, w.BaseHealth)
	assert.Equal(t, 0, w.Score)
	assert.Equal(t, 1, w.Wave)
	assert.Equal(t, component.WavePending, w.WavePhase)
	assert.Empty(t, w.Enemies)
	assert.False(t, w.GameOver)
	assert.Equal(t, InitialShotTime, w.LastShotAt)
}

func TestResetRestoresStartOfGame(t *testing.T) {
	w := NewWorld(testArena())
	arena := w.Arena

	w.Now = 98765
	w.BaseHealth = 0
	w.Score = 420
	w.Wave = 7
	w.WavePhase = component.WaveActive
	w.AddEnemy(&component.Enemy{ID: w.NewEntity(), Type: defs.EnemyGrunt, HP: 30, MaxHP: 30})
	w.Beams = append(w.Beams, component.Beam{Until: 10})
	w.Particles = append(w.Particles, component.Particle{Life: 100})
	w.Glyphs = append(w.Glyphs, component.Glyph{Char: 'A'})
	w.GroupLeft = 3
	w.LastShotAt = 98000
	w.GameOver = true
	w.DeathMessage = "gone"

	w.Reset()

	assert.Equal(t, arena, w.Arena)
	assert.Equal(t, 100, w.BaseHealth)
	assert.Equal(t, 0, w.Score)
	assert.Equal(t, 1, w.Wave)
	assert.Empty(t, w.Enemies)
	assert.Empty(t, w.Beams)
	assert.Empty(t, w.Particles)
	assert.Empty(t, w.Glyphs)
	assert.Equal(t, 0, w.GroupLeft)
	assert.False(t, w.GameOver)
	assert.Empty(t, w.DeathMessage)
	assert.Equal(t, InitialShotTime, w.LastShotAt)
	assert.Equal(t, float64(FirstWaveDelay), w.NextGroupAt)
}

func TestRemoveEnemyAtKeepsOrder(t *testing.T) {
	w := NewWorld(testArena())
	for i := 0; i < 4; i++ {
		w.AddEnemy(&component.Enemy{ID: w.NewEntity()})
	}

	removed := w.RemoveEnemyAt(1)
	assert.EqualValues(t, 2, removed.ID)
	require.Len(t, w.Enemies, 3)
	assert.EqualValues(t, 1, w.Enemies[0].ID)
	assert.EqualValues(t, 3, w.Enemies[1].ID)
	assert.EqualValues(t, 4, w.Enemies[2].ID)

	_, ok := w.Enemy(2)
	assert.False(t, ok)
	e, ok := w.Enemy(4)
	require.True(t, ok)
	assert.EqualValues(t, 4, e.ID)
}

func TestCountChildren(t *testing.T) {
	w := NewWorld(testArena())
	parent := &component.Enemy{ID: w.NewEntity(), Type: defs.EnemySpawner}
	w.AddEnemy(parent)
	for i := 0; i < 3; i++ {
		w.AddEnemy(&component.Enemy{ID: w.NewEntity(), Type: defs.EnemyMinion, ParentID: parent.ID})
	}
	w.AddEnemy(&component.Enemy{ID: w.NewEntity(), Type: defs.EnemyMinion, ParentID: 999})

	assert.Equal(t, 3, w.CountChildren(parent.ID))
}

func TestDamageBaseClampsAtZero(t *testing.T) {
	w := NewWorld(testArena())
	w.DamageBase(30)
	assert.Equal(t, 70, w.BaseHealth)
	w.DamageBase(500)
	assert.Equal(t, 0, w.BaseHealth)
}

func TestSnapshotIsACopy(t *testing.T) {
	w := NewWorld(testArena())
	w.AddEnemy(&component.Enemy{ID: w.NewEntity(), HP: 30})
	w.Beams = append(w.Beams, component.Beam{X2: 5})

	snap := w.Snapshot()
	w.Enemies[0].HP = 1
	w.Beams[0].X2 = 50

	assert.Equal(t, 30, snap.Enemies[0].HP)
	assert.Equal(t, 5.0, snap.Beams[0].X2)
}
