// internal/ui/hud_panel.go
package ui

import (
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
	panelMargin  = 10
	panelWidth   = 170
	panelPadding = 10
	lineHeight   = 20
	barHeight    = 6
)

// HUDPanel draws wave, score and base health in the top-left corner.
type HUDPanel struct {
	fontFace font.Face
	text     *hud.Text
	shapes   *render.Shapes
}

// NewHUDPanel creates the panel.
func NewHUDPanel(face font.Face, t *hud.Text, shapes *render.Shapes) *HUDPanel {
	return &HUDPanel{fontFace: face, text: t, shapes: shapes}
}

func (p *HUDPanel) Draw(screen *ebiten.Image, snap entity.Snapshot) {
	lines := p.text.Lines(snap)
	h := panelPadding*2 + len(lines)*lineHeight + barHeight + 4

	box := render.RoundedRect(panelMargin, panelMargin, panelWidth, float32(h), 8)
	p.shapes.FillPath(screen, box, config.HUDFillColor)
	p.shapes.StrokePath(screen, box, 2, config.HUDBorderColor)

	x := panelMargin + panelPadding
	y := panelMargin + panelPadding
	for i, line := range lines {
		clr := config.TextLightColor
		if i == 1 {
			clr = config.ScoreTextColor
		}
		bounds := text.BoundString(p.fontFace, line)
		text.Draw(screen, line, p.fontFace, x, y+lineHeight/2-bounds.Min.Y/2, clr)
		y += lineHeight
	}

	// Полоска здоровья базы
	ratio := hud.BaseRatio(snap.BaseHealth)
	barW := float32(panelWidth - panelPadding*2)
	vector.DrawFilledRect(screen, float32(x), float32(y), barW, barHeight, config.HUDBorderColor, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), barW*float32(ratio), barHeight, config.HealthColor(ratio), false)
}
