package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRayToScreenEdge(t *testing.T) {
	bounds := Screen(800, 600)

	tests := []struct {
		name    string
		origin  Point
		through Point
		want    Point
	}{
		{"straight up", Pt(400, 300), Pt(400, 200), Pt(400, 0)},
		{"straight left", Pt(400, 300), Pt(100, 300), Pt(0, 300)},
		{"straight right", Pt(400, 300), Pt(500, 300), Pt(800, 300)},
		{"straight down", Pt(400, 300), Pt(400, 500), Pt(400, 600)},
		{"diagonal to top-left corner", Pt(300, 300), Pt(200, 200), Pt(0, 0)},
		{"shallow angle hits left edge", Pt(700, 500), Pt(600, 480), Pt(0, 360)},
		{"through point beyond edge still uses the edge", Pt(700, 500), Pt(-100, 500), Pt(0, 500)},
		{"degenerate direction returns origin", Pt(120, 80), Pt(120, 80), Pt(120, 80)},
		{"outside and pointing away falls back to through", Pt(-50, 300), Pt(-100, 300), Pt(-100, 300)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RayToScreenEdge(tt.origin, tt.through, bounds)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestRayToScreenEdge_PicksNearestCandidate(t *testing.T) {
	// From the bottom-right base toward the upper left, the top edge is
	// reached before the left edge.
	got := RayToScreenEdge(Pt(700, 500), Pt(650, 400), Screen(800, 600))
	assert.InDelta(t, 0.0, got.Y, 1e-9)
	assert.InDelta(t, 450.0, got.X, 1e-9)
}

func TestSegmentCircleIntersect(t *testing.T) {
	a, b := Pt(0, 0), Pt(100, 0)

	t.Run("center on segment", func(t *testing.T) {
		hit := SegmentCircleIntersect(a, b, Pt(30, 0), 5)
		assert.True(t, hit.OK)
		assert.InDelta(t, 0.3, hit.T, 1e-9)
		assert.Equal(t, Pt(30, 0), hit.Point)
	})

	t.Run("grazing at exactly the radius counts", func(t *testing.T) {
		hit := SegmentCircleIntersect(a, b, Pt(50, 10), 10)
		assert.True(t, hit.OK)
		assert.InDelta(t, 0.5, hit.T, 1e-9)
	})

	t.Run("miss", func(t *testing.T) {
		hit := SegmentCircleIntersect(a, b, Pt(50, 11), 10)
		assert.False(t, hit.OK)
	})

	t.Run("behind the start is clamped to t=0", func(t *testing.T) {
		hit := SegmentCircleIntersect(a, b, Pt(-4, 0), 5)
		assert.True(t, hit.OK)
		assert.Equal(t, 0.0, hit.T)
		assert.Equal(t, a, hit.Point)

		assert.False(t, SegmentCircleIntersect(a, b, Pt(-6, 0), 5).OK)
	})

	t.Run("past the end is clamped to t=1", func(t *testing.T) {
		hit := SegmentCircleIntersect(a, b, Pt(103, 0), 5)
		assert.True(t, hit.OK)
		assert.Equal(t, 1.0, hit.T)
	})

	t.Run("degenerate segment", func(t *testing.T) {
		hit := SegmentCircleIntersect(a, a, Pt(3, 4), 5)
		assert.True(t, hit.OK)
		assert.Equal(t, a, hit.Point)
	})
}

func TestPointHelpers(t *testing.T) {
	assert.Equal(t, Pt(0, 0), Pt(0, 0).Unit())
	u := Pt(3, 4).Unit()
	assert.InDelta(t, 0.6, u.X, 1e-9)
	assert.InDelta(t, 0.8, u.Y, 1e-9)
	assert.Equal(t, Pt(-4, 3), Pt(3, 4).Perp())
	assert.Equal(t, 25.0, Pt(3, 4).Dist2(Pt(0, 0)))
	assert.True(t, Screen(10, 10).Contains(Pt(10, 0)))
	assert.False(t, Screen(10, 10).Contains(Pt(10.1, 0)))

	assert.Equal(t, Pt(4, 6), Pt(1, 2).Add(Pt(3, 4)))
	assert.Equal(t, Pt(-2, -2), Pt(1, 2).Sub(Pt(3, 4)))
	assert.Equal(t, Pt(2.5, 5), Pt(1, 2).Scale(2.5))
	r := Rect{Min: Pt(10, 20), Max: Pt(110, 70)}
	assert.Equal(t, 100.0, r.Width())
	assert.Equal(t, 50.0, r.Height())
}
