// Package hud builds the text shown around the arena. It has no drawing code
// so the window and terminal front ends share it.
package hud

import (
	"strings"

	"laser-defense/internal/defs"
	"laser-defense/internal/entity"
	pkgutils "laser-defense/pkg/utils"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// StatusKind selects the colour of the top band.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusPaused
	StatusGameOver
)

// Text formats numbers and labels for one locale.
type Text struct {
	printer *message.Printer
	caser   cases.Caser
}

// New returns a formatter for tag.
func New(tag language.Tag) *Text {
	return &Text{
		printer: message.NewPrinter(tag),
		caser:   cases.Title(tag),
	}
}

// Lines returns the three HUD rows: wave, score and base health.
func (t *Text) Lines(snap entity.Snapshot) []string {
	return []string{
		t.printer.Sprintf("Wave : %d", snap.Wave),
		t.printer.Sprintf("Score : %d", snap.Score),
		t.printer.Sprintf("Base : %d%%", max(0, snap.BaseHealth)),
	}
}

// Status returns the band text. Game over wins over pause.
func (t *Text) Status(snap entity.Snapshot) (string, StatusKind) {
	switch {
	case snap.GameOver:
		return "GAME OVER - press R to play again", StatusGameOver
	case snap.Paused:
		return "PAUSED - press P to resume", StatusPaused
	}
	return "", StatusNone
}

// GameOverCard returns the title, message lines and footer of the game over
// card.
func (t *Text) GameOverCard(snap entity.Snapshot) (title string, lines []string, footer string) {
	msg := snap.DeathMessage
	if msg == "" {
		msg = "Defeat."
	}
	return "GAME OVER",
		strings.Split(msg, "\n"),
		t.printer.Sprintf("Score: %d  -  wave %s  -  press R to play again", snap.Score, ToRoman(snap.Wave))
}

// TypeName turns an enemy type into a display name, e.g. "Battery Carrier".
func (t *Text) TypeName(typ defs.EnemyType) string {
	return t.caser.String(strings.ReplaceAll(strings.ToLower(string(typ)), "_", " "))
}

// BaseRatio is the base health as a fraction of the maximum.
func BaseRatio(health int) float64 {
	return pkgutils.Clamp01(float64(health) / entity.BaseMaxHealth)
}

// ToRoman конвертирует целое число в римское.
func ToRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}
