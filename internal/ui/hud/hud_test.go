package hud

import (
	"testing"

	"laser-defense/internal/defs"
	"laser-defense/internal/entity"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestLinesUseLocaleGrouping(t *testing.T) {
	txt := New(language.English)
	lines := txt.Lines(entity.Snapshot{Wave: 3, Score: 12345, BaseHealth: 96})
	assert.Equal(t, []string{"Wave : 3", "Score : 12,345", "Base : 96%"}, lines)
}

func TestStatus(t *testing.T) {
	txt := New(language.English)

	s, kind := txt.Status(entity.Snapshot{})
	assert.Empty(t, s)
	assert.Equal(t, StatusNone, kind)

	_, kind = txt.Status(entity.Snapshot{Paused: true})
	assert.Equal(t, StatusPaused, kind)

	_, kind = txt.Status(entity.Snapshot{Paused: true, GameOver: true})
	assert.Equal(t, StatusGameOver, kind)
}

func TestGameOverCard(t *testing.T) {
	txt := New(language.English)
	title, lines, footer := txt.GameOverCard(entity.Snapshot{Score: 1500, Wave: 9, DeathMessage: "first\nsecond"})
	assert.Equal(t, "GAME OVER", title)
	assert.Equal(t, []string{"first", "second"}, lines)
	assert.Contains(t, footer, "1,500")
	assert.Contains(t, footer, "IX")
}

func TestTypeName(t *testing.T) {
	txt := New(language.English)
	assert.Equal(t, "Battery Carrier", txt.TypeName(defs.EnemyBatteryCarrier))
	assert.Equal(t, "Grunt", txt.TypeName(defs.EnemyGrunt))
}

func TestBaseRatio(t *testing.T) {
	assert.Equal(t, 1.0, BaseRatio(100))
	assert.Equal(t, 0.5, BaseRatio(50))
	assert.Equal(t, 0.0, BaseRatio(-5))
}

func TestToRoman(t *testing.T) {
	assert.Equal(t, "", ToRoman(0))
	assert.Equal(t, "IV", ToRoman(4))
	assert.Equal(t, "XIV", ToRoman(14))
	assert.Equal(t, "MCMXCIV", ToRoman(1994))
}
