package ui

import (
	"laser-defense/internal/config"
	"laser-defense/internal/entity"
	"laser-defense/internal/ui/hud"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const bandHeight = 40

// StatusBand is the translucent strip across the top shown while paused or
// after game over.
type StatusBand struct {
	fontFace font.Face
	text     *hud.Text
	width    int
}

func NewStatusBand(face font.Face, t *hud.Text, width int) *StatusBand {
	return &StatusBand{fontFace: face, text: t, width: width}
}

func (b *StatusBand) Draw(screen *ebiten.Image, snap entity.Snapshot) {
	msg, kind := b.text.Status(snap)
	if kind == hud.StatusNone {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(b.width), bandHeight, config.BandColor, false)

	clr := config.TextLightColor
	if kind == hud.StatusGameOver {
		clr = config.HealthBad
	}
	bounds := text.BoundString(b.fontFace, msg)
	x := (b.width - bounds.Dx()) / 2
	y := (bandHeight-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, msg, b.fontFace, x, y, clr)
}
