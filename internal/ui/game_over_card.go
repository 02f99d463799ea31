package ui

import (
	"image/color"

	"laser-defense/internal/config"
	"laser-defense/internal/entity"
	"laser-defense/internal/ui/hud"
	"laser-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	cardWidth   = 520
	cardPadding = 24
	cardLine    = 24
)

// GameOverCard dims the arena and shows the death message with the score.
type GameOverCard struct {
	fontFace      font.Face
	titleFontFace font.Face
	text          *hud.Text
	shapes        *render.Shapes
	width, height int
}

func NewGameOverCard(face, titleFace font.Face, t *hud.Text, shapes *render.Shapes, width, height int) *GameOverCard {
	return &GameOverCard{
		fontFace:      face,
		titleFontFace: titleFace,
		text:          t,
		shapes:        shapes,
		width:         width,
		height:        height,
	}
}

func (c *GameOverCard) Draw(screen *ebiten.Image, snap entity.Snapshot) {
	if !snap.GameOver {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(c.width), float32(c.height), config.OverlayColor, false)

	title, lines, footer := c.text.GameOverCard(snap)
	h := cardPadding*2 + cardLine*(len(lines)+3)
	x0 := (c.width - cardWidth) / 2
	y0 := (c.height - h) / 2

	box := render.RoundedRect(float32(x0), float32(y0), cardWidth, float32(h), 12)
	c.shapes.FillPath(screen, box, config.HUDFillColor)
	c.shapes.StrokePath(screen, box, 2, config.HealthBad)

	y := y0 + cardPadding + cardLine
	c.drawCentered(screen, title, c.titleFontFace, y, config.HealthBad)
	y += cardLine * 2
	for _, line := range lines {
		c.drawCentered(screen, line, c.fontFace, y, config.TextLightColor)
		y += cardLine
	}
	c.drawCentered(screen, footer, c.fontFace, y, config.ScoreTextColor)
}

func (c *GameOverCard) drawCentered(screen *ebiten.Image, s string, face font.Face, baseline int, clr color.RGBA) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, (c.width-bounds.Dx())/2, baseline, clr)
}
