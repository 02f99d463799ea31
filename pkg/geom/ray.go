package geom

const epsilon = 1e-6

// RayToScreenEdge returns the point where the ray starting at origin and
// passing through `through` leaves bounds. The ray continues past `through`.
//
// A zero-length direction returns origin. If no edge is crossed in front of
// origin (origin outside bounds and pointing away), `through` is returned.
func RayToScreenEdge(origin, through Point, bounds Rect) Point {
	v := through.Sub(origin)
	if abs(v.X) < epsilon && abs(v.Y) < epsilon {
		return origin
	}

	best := through
	bestT := -1.0
	consider := func(t float64, p Point) {
		if t <= 0 {
			return
		}
		if bestT < 0 || t < bestT {
			bestT = t
			best = p
		}
	}

	if abs(v.X) > epsilon {
		for _, x := range [2]float64{bounds.Min.X, bounds.Max.X} {
			t := (x - origin.X) / v.X
			y := origin.Y + t*v.Y
			if y >= bounds.Min.Y && y <= bounds.Max.Y {
				consider(t, Point{X: x, Y: y})
			}
		}
	}
	if abs(v.Y) > epsilon {
		for _, y := range [2]float64{bounds.Min.Y, bounds.Max.Y} {
			t := (y - origin.Y) / v.Y
			x := origin.X + t*v.X
			if x >= bounds.Min.X && x <= bounds.Max.X {
				consider(t, Point{X: x, Y: y})
			}
		}
	}
	return best
}

// Hit describes the result of a segment/circle test.
type Hit struct {
	OK    bool
	T     float64 // parametric position along the segment, 0 at a, 1 at b
	Point Point   // closest point of the segment to the circle center
}

// SegmentCircleIntersect tests the segment a->b against the circle
// (center, radius). The contact point is the point of the segment closest to
// center, with t clamped to [0, 1]. T orders several hits along one segment.
func SegmentCircleIntersect(a, b, center Point, radius float64) Hit {
	v := b.Sub(a)
	w := center.Sub(a)
	l2 := v.Dot(v)
	if l2 == 0 {
		l2 = 1
	}
	t := w.Dot(v) / l2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	p := a.Add(v.Scale(t))
	if p.Dist2(center) <= radius*radius {
		return Hit{OK: true, T: t, Point: p}
	}
	return Hit{}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
