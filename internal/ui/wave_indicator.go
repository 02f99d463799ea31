package ui

import (
	"image/color"

	"laser-defense/internal/config"
	"laser-defense/internal/ui/hud"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             int
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
	fontFace         font.Face
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y int, face font.Face) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.ScoreTextColor,
		OutlineColor:     color.RGBA{0x00, 0x00, 0x00, 0xff},
		OutlineThickness: 1,
		fontFace:         face,
	}
}

// Draw отрисовывает индикатор на экране.
func (i *WaveIndicator) Draw(screen *ebiten.Image, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	s := hud.ToRoman(waveNumber)

	// Каждая десятая волна подсвечивается красным
	textColor := i.Color
	if waveNumber%10 == 0 {
		textColor = config.HealthBad
	}

	bounds := text.BoundString(i.fontFace, s)
	x := i.X - bounds.Dx()/2
	y := i.Y - bounds.Min.Y

	// Рисуем обводку
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, s, i.fontFace, x+dx, y+dy, i.OutlineColor)
		}
	}

	// Рисуем основной текст
	text.Draw(screen, s, i.fontFace, x, y, textColor)
}
