package render

import (
	"image"
	"image/color"
	"math"

	"laser-defense/internal/assets"
	"laser-defense/internal/component"
	"laser-defense/internal/config"
	"laser-defense/internal/defs"
	"laser-defense/internal/entity"
	"laser-defense/internal/utils"
	"laser-defense/pkg/geom"
	pkgutils "laser-defense/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// SpriteSource provides decoded sprites by key. assets.SpriteManager
// implements it.
type SpriteSource interface {
	Get(key string) (image.Image, bool)
}

// ArenaRenderer draws a world snapshot: grid, base, beams, enemies, glyphs,
// aim line and particles.
type ArenaRenderer struct {
	screenWidth  int
	screenHeight int
	colors       *ArenaColors
	shapes       *Shapes
	fontFace     font.Face
	sprites      SpriteSource
	spriteCache  map[string]*ebiten.Image
	mapImage     *ebiten.Image // предрендеренная сетка
}

func NewArenaRenderer(screenWidth, screenHeight int, colors *ArenaColors, face font.Face, sprites SpriteSource) *ArenaRenderer {
	if colors == nil {
		colors = DefaultArenaColors()
	}
	r := &ArenaRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		colors:       colors,
		shapes:       NewShapes(),
		fontFace:     face,
		sprites:      sprites,
		spriteCache:  make(map[string]*ebiten.Image),
		mapImage:     ebiten.NewImage(screenWidth, screenHeight),
	}
	// Отрисовываем сетку один раз при инициализации
	r.RenderMapImage()
	return r
}

// RenderMapImage создаёт предрендеренное изображение задника
func (r *ArenaRenderer) RenderMapImage() {
	r.mapImage.Fill(r.colors.BackgroundColor)
	w, h := float32(r.screenWidth), float32(r.screenHeight)
	for x := config.GridOffset; x < r.screenWidth; x += config.GridStep {
		vector.StrokeLine(r.mapImage, float32(x), 0, float32(x), h, 1, r.colors.GridColor, false)
	}
	for y := config.GridOffset; y < r.screenHeight; y += config.GridStep {
		vector.StrokeLine(r.mapImage, 0, float32(y), w, float32(y), 1, r.colors.GridColor, false)
	}
}

// Draw renders snap. lib supplies per-type colours, aim is the cursor.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, snap entity.Snapshot, lib defs.Library, aim geom.Point) {
	screen.DrawImage(r.mapImage, nil)

	r.drawBase(screen, snap)
	for _, b := range snap.Beams {
		r.drawBeam(screen, b)
	}
	r.drawEnemies(screen, snap, lib)
	r.drawGlyphs(screen, snap)
	r.drawAim(screen, snap, aim)
	r.drawParticles(screen, snap)
}

func (r *ArenaRenderer) sprite(key string) (*ebiten.Image, bool) {
	if img, ok := r.spriteCache[key]; ok {
		return img, img != nil
	}
	if r.sprites == nil {
		return nil, false
	}
	src, ok := r.sprites.Get(key)
	if !ok {
		r.spriteCache[key] = nil
		return nil, false
	}
	img := ebiten.NewImageFromImage(src)
	r.spriteCache[key] = img
	return img, true
}

// drawSprite fits img into a w x h box centred on (cx, cy).
func drawSprite(dst, img *ebiten.Image, cx, cy, w, h float64, clr ebiten.ColorScale) {
	b := img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	scale := math.Min(w/iw, h/ih)
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(math.Round(cx-iw*scale/2), math.Round(cy-ih*scale/2))
	op.ColorScale = clr
	dst.DrawImage(img, op)
}

func (r *ArenaRenderer) drawBase(screen *ebiten.Image, snap entity.Snapshot) {
	base := snap.Arena.Base
	cx, cy := float32(base.X), float32(base.Y)
	radius := float32(snap.Arena.BaseRadius)

	vector.DrawFilledCircle(screen, cx, cy, radius+30, Fade(r.colors.BaseGlowColor, 0.5), true)

	if img, ok := r.sprite(assets.BaseSprite); ok {
		drawSprite(screen, img, base.X, base.Y, 2*snap.Arena.BaseRadius, 2*snap.Arena.BaseRadius, ebiten.ColorScale{})
	} else {
		vector.DrawFilledCircle(screen, cx, cy, radius, r.colors.BaseFillColor, true)
		vector.StrokeCircle(screen, cx, cy, radius-6, 6, r.colors.BaseRingColor, true)
	}

	// Кольцо здоровья базы
	ratio := pkgutils.Clamp01(float64(snap.BaseHealth) / entity.BaseMaxHealth)
	if ratio > 0 {
		start := float32(-math.Pi / 2)
		end := start + float32(2*math.Pi*ratio)
		r.shapes.StrokePath(screen, Arc(cx, cy, radius-2, start, end), 8, config.HealthColor(ratio))
	}
}

func (r *ArenaRenderer) drawBeam(screen *ebiten.Image, b component.Beam) {
	x1, y1, x2, y2 := float32(b.X1), float32(b.Y1), float32(b.X2), float32(b.Y2)
	vector.StrokeLine(screen, x1, y1, x2, y2, 6, r.colors.BeamGlowColor, true)
	vector.StrokeLine(screen, x1, y1, x2, y2, 2.5, b.Color, true)
	vector.DrawFilledCircle(screen, x2, y2, 3, b.Color, true)
}

func (r *ArenaRenderer) drawEnemies(screen *ebiten.Image, snap entity.Snapshot, lib defs.Library) {
	for i := range snap.Enemies {
		e := &snap.Enemies[i]
		if e.Hidden() {
			continue
		}
		def, _ := lib.Get(e.Type)
		accent := def.Visuals.Color.RGBA()
		body := def.Visuals.Body.RGBA()
		blink := snap.Now < e.BlinkUntil

		if e.Type == defs.EnemyBatteryCarrier && def.Battery != nil {
			r.drawBattery(screen, e, def.Battery.ActiveMs)
		}

		size := math.Max(2, e.Radius*2)
		top := math.Round(e.Y - size/2)
		if img, ok := r.sprite(string(e.Type)); ok {
			drawSprite(screen, img, e.X, e.Y, size, size, ebiten.ColorScale{})
			if blink {
				vector.DrawFilledRect(screen, float32(math.Round(e.X-size/2)), float32(top), float32(size), float32(size), color.RGBA{0x59, 0x59, 0x59, 0x59}, false)
			}
		} else {
			fill := body
			if blink {
				fill = color.RGBA{0xff, 0xff, 0xff, 0xff}
			}
			vector.DrawFilledCircle(screen, float32(e.X), float32(e.Y), float32(e.Radius), fill, true)
			vector.StrokeCircle(screen, float32(e.X), float32(e.Y), float32(e.Radius), 3, accent, true)
		}

		// Полоска здоровья
		const barW, barH = 24, 4
		ratio := 0.0
		if e.MaxHP > 0 {
			ratio = math.Max(0, float64(e.HP)/float64(e.MaxHP))
		}
		bx, by := float32(e.X-barW/2), float32(top-10)
		vector.DrawFilledRect(screen, bx, by, barW, barH, r.colors.HPBarBackground, false)
		vector.DrawFilledRect(screen, bx, by, float32(barW*ratio), barH, accent, false)
	}
}

// drawBattery draws the charge gauge above an active carrier.
func (r *ArenaRenderer) drawBattery(screen *ebiten.Image, e *component.Enemy, activeMs float64) {
	const bw, bh, tipW, gap = 26, 8, 3, 6
	ratio := 0.0
	if activeMs > 0 {
		ratio = pkgutils.Clamp01(e.BatteryLeft / activeMs)
	}
	x0 := float32(math.Round(e.X - bw/2))
	y0 := float32(math.Round(e.Y - e.Radius - gap - bh))

	vector.DrawFilledRect(screen, x0-1, y0-1, bw+2+tipW, bh+2, color.RGBA{0x0a, 0x0f, 0x1a, 0xff}, false)
	vector.StrokeRect(screen, x0, y0, bw, bh, 1, r.colors.BatteryFrame, false)
	vector.DrawFilledRect(screen, x0+bw, y0+bh/3, tipW, bh/3+1, r.colors.BatteryFrame, false)
	vector.DrawFilledRect(screen, x0+1, y0+1, bw-2, bh-2, color.RGBA{0x00, 0x0f, 0x20, 0x80}, false)

	fill := color.RGBA{0x7e, 0xc8, 0xff, 0xff}
	if ratio <= 0.5 {
		fill = config.HealthColor(ratio)
	}
	if w := float32(math.Round(bw*ratio)) - 2; w > 0 {
		vector.DrawFilledRect(screen, x0+1, y0+1, w, bh-2, fill, false)
	}
}

func (r *ArenaRenderer) drawGlyphs(screen *ebiten.Image, snap entity.Snapshot) {
	if r.fontFace == nil {
		return
	}
	for i := range snap.Glyphs {
		g := &snap.Glyphs[i]
		life := g.Age(snap.Now)
		alpha := 1 - utils.EaseInCubic(life)
		scale := (1 - 0.3*life) * g.Size / 13

		s := string(g.Char)
		bounds := text.BoundString(r.fontFace, s)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(bounds.Dx())/2, float64(bounds.Dy())/2)
		op.GeoM.Scale(scale, scale)
		op.GeoM.Rotate(g.Rot)
		op.GeoM.Translate(g.X, g.Y+1)

		// Ореол, затем основной символ
		op.ColorScale.ScaleWithColor(Fade(r.colors.GlyphColor, alpha*0.35))
		text.DrawWithOptions(screen, s, r.fontFace, op)

		op.GeoM.Translate(0, -1)
		op.ColorScale.Reset()
		op.ColorScale.ScaleWithColor(Fade(r.colors.GlyphColor, alpha))
		text.DrawWithOptions(screen, s, r.fontFace, op)
	}
}

func (r *ArenaRenderer) drawAim(screen *ebiten.Image, snap entity.Snapshot, aim geom.Point) {
	origin := snap.Arena.Player()
	angle := aim.Sub(origin).Angle()
	recoil := math.Max(0, 1-(snap.Now-snap.LastShotAt)/(config.RecoilSeconds*1000))
	tip := origin.Add(geom.FromAngle(angle, config.AimLineLength+recoil*config.AimRecoilExtra))
	vector.StrokeLine(screen, float32(origin.X), float32(origin.Y), float32(tip.X), float32(tip.Y), 1.5, r.colors.AimColor, true)
}

func (r *ArenaRenderer) drawParticles(screen *ebiten.Image, snap entity.Snapshot) {
	for i := range snap.Particles {
		p := &snap.Particles[i]
		left := 1 - p.Age(snap.Now)
		if left <= 0 {
			continue
		}
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.R*left), Fade(p.Color, left), true)
	}
}
