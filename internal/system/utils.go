// internal/system/utils.go
package system

import (
	"laser-defense/internal/component"
	"laser-defense/internal/config"
)

// ApplyDamage наносит урон врагу и включает короткую вспышку.
// Возвращает true, если удар убил врага. HP хранится не ниже нуля.
func ApplyDamage(e *component.Enemy, damage int, now float64) bool {
	hp := e.HP - damage
	e.BlinkUntil = now + config.BlinkDurationMs
	e.HP = min(max(hp, 0), e.MaxHP)
	return !e.Alive()
}
