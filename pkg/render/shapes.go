package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Shapes fills and strokes vector paths with reusable vertex buffers.
type Shapes struct {
	whiteImg *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16
}

func NewShapes() *Shapes {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.White)
	return &Shapes{
		whiteImg: img,
		vs:       make([]ebiten.Vertex, 0, 64),
		is:       make([]uint16, 0, 64),
	}
}

// FillPath fills path with clr.
func (s *Shapes) FillPath(dst *ebiten.Image, path *vector.Path, clr color.RGBA) {
	s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.draw(dst, clr)
}

// StrokePath outlines path with clr.
func (s *Shapes) StrokePath(dst *ebiten.Image, path *vector.Path, width float32, clr color.RGBA) {
	s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], &vector.StrokeOptions{
		Width: width,
	})
	s.draw(dst, clr)
}

func (s *Shapes) draw(dst *ebiten.Image, clr color.RGBA) {
	for i := range s.vs {
		s.vs[i].SrcX = 0
		s.vs[i].SrcY = 0
		s.vs[i].ColorR = float32(clr.R) / 255
		s.vs[i].ColorG = float32(clr.G) / 255
		s.vs[i].ColorB = float32(clr.B) / 255
		s.vs[i].ColorA = float32(clr.A) / 255
	}
	dst.DrawTriangles(s.vs, s.is, s.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// RoundedRect returns a closed rectangle path with rounded corners.
func RoundedRect(x, y, w, h, r float32) *vector.Path {
	var p vector.Path
	p.MoveTo(x+r, y)
	p.ArcTo(x+w, y, x+w, y+h, r)
	p.ArcTo(x+w, y+h, x, y+h, r)
	p.ArcTo(x, y+h, x, y, r)
	p.ArcTo(x, y, x+w, y, r)
	p.Close()
	return &p
}

// Arc returns an open arc path around (cx, cy), clockwise from start to end.
func Arc(cx, cy, r, start, end float32) *vector.Path {
	var p vector.Path
	p.Arc(cx, cy, r, start, end, vector.Clockwise)
	return &p
}
