// Package tui runs the game in a terminal through tcell.
package tui

import (
	"image/color"
	"math"

	"laser-defense/internal/config"
	"laser-defense/internal/defs"
	"laser-defense/internal/entity"
	"laser-defense/internal/ui/hud"
	"laser-defense/internal/utils"
	"laser-defense/pkg/geom"
	pkgutils "laser-defense/pkg/utils"

	"github.com/gdamore/tcell/v2"
)

// Renderer draws a snapshot onto a character grid. Row 0 is the HUD line,
// the arena is scaled into the remaining rows.
type Renderer struct {
	screen tcell.Screen
	text   *hud.Text
}

func NewRenderer(screen tcell.Screen, t *hud.Text) *Renderer {
	return &Renderer{screen: screen, text: t}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// enemyRune is the cell glyph for each enemy type.
func enemyRune(t defs.EnemyType) rune {
	switch t {
	case defs.EnemyRunner:
		return 'r'
	case defs.EnemySpawner:
		return 'S'
	case defs.EnemyMinion:
		return 'm'
	case defs.EnemyBatteryCarrier:
		return 'B'
	case defs.EnemyZigzag:
		return 'z'
	}
	return 'G'
}

// CellOf maps an arena point to a screen cell.
func (r *Renderer) CellOf(arena entity.Arena, p geom.Point) (int, int) {
	cols, rows := r.screen.Size()
	rows--
	if cols <= 0 || rows <= 0 {
		return 0, 0
	}
	col := int(p.X / arena.Bounds.Width() * float64(cols))
	row := int(p.Y/arena.Bounds.Height()*float64(rows)) + 1
	return col, row
}

// PointOf maps a screen cell back to the centre of its arena area.
func (r *Renderer) PointOf(arena entity.Arena, col, row int) geom.Point {
	cols, rows := r.screen.Size()
	rows--
	if cols <= 0 || rows <= 0 {
		return arena.Player()
	}
	return geom.Pt(
		(float64(col)+0.5)/float64(cols)*arena.Bounds.Width(),
		(float64(row-1)+0.5)/float64(rows)*arena.Bounds.Height(),
	)
}

func (r *Renderer) set(col, row int, ch rune, style tcell.Style) {
	cols, rows := r.screen.Size()
	if col < 0 || row < 1 || col >= cols || row >= rows {
		return
	}
	r.screen.SetContent(col, row, ch, nil, style)
}

func (r *Renderer) print(col, row int, s string, style tcell.Style) {
	cols, _ := r.screen.Size()
	for _, ch := range s {
		if col >= cols {
			return
		}
		if col >= 0 {
			r.screen.SetContent(col, row, ch, nil, style)
		}
		col++
	}
}

func (r *Renderer) printCentered(row int, s string, style tcell.Style) {
	cols, _ := r.screen.Size()
	r.print((cols-len([]rune(s)))/2, row, s, style)
}

// Draw renders snap and shows the frame.
func (r *Renderer) Draw(snap entity.Snapshot, lib defs.Library) {
	r.screen.Clear()
	arena := snap.Arena
	base := tcell.StyleDefault.Background(toTcell(config.BackgroundColor))

	// База
	bc, br := r.CellOf(arena, arena.Base)
	r.set(bc, br, '@', base.Foreground(tcell.ColorGreen).Bold(true))

	for _, b := range snap.Beams {
		r.drawLine(arena, geom.Pt(b.X1, b.Y1), geom.Pt(b.X2, b.Y2), '*', base.Foreground(toTcell(b.Color)))
	}

	for i := range snap.Enemies {
		e := &snap.Enemies[i]
		if e.Hidden() {
			continue
		}
		style := base
		if def, err := lib.Get(e.Type); err == nil {
			style = style.Foreground(toTcell(def.Visuals.Color.RGBA()))
		}
		if snap.Now < e.BlinkUntil {
			style = style.Reverse(true)
		}
		c, row := r.CellOf(arena, e.Point())
		r.set(c, row, enemyRune(e.Type), style)
	}

	for i := range snap.Glyphs {
		g := &snap.Glyphs[i]
		c, row := r.CellOf(arena, g.Point())
		style := base.Foreground(tcell.ColorLime)
		if g.Age(snap.Now) > 0.6 {
			style = style.Dim(true)
		}
		r.set(c, row, g.Char, style)
	}

	for i := range snap.Particles {
		p := &snap.Particles[i]
		c, row := r.CellOf(arena, p.Point())
		r.set(c, row, '.', base.Foreground(toTcell(p.Color)))
	}

	r.drawHUD(snap)
	r.screen.Show()
}

// drawLine plots a segment cell by cell.
func (r *Renderer) drawLine(arena entity.Arena, a, b geom.Point, ch rune, style tcell.Style) {
	c0, r0 := r.CellOf(arena, a)
	c1, r1 := r.CellOf(arena, b)
	steps := max(pkgutils.Abs(c1-c0), pkgutils.Abs(r1-r0))
	if steps == 0 {
		r.set(c0, r0, ch, style)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		c := int(math.Round(utils.Lerp(float64(c0), float64(c1), t)))
		row := int(math.Round(utils.Lerp(float64(r0), float64(r1), t)))
		r.set(c, row, ch, style)
	}
}

func (r *Renderer) drawHUD(snap entity.Snapshot) {
	hudStyle := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	col := 0
	for _, line := range r.text.Lines(snap) {
		r.print(col, 0, line, hudStyle)
		col += len([]rune(line)) + 3
	}

	msg, kind := r.text.Status(snap)
	switch kind {
	case hud.StatusPaused:
		r.printCentered(1, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))
	case hud.StatusGameOver:
		r.printCentered(1, msg, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
		_, rows := r.screen.Size()
		title, lines, footer := r.text.GameOverCard(snap)
		row := rows/2 - (len(lines)+2)/2
		r.printCentered(row, title, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
		for _, line := range lines {
			row++
			r.printCentered(row, line, tcell.StyleDefault)
		}
		r.printCentered(row+2, footer, tcell.StyleDefault.Foreground(tcell.ColorLightSteelBlue))
	}
}
