package geom

import "math"

// Epsilon is the tolerance used by containment and overlap tests to absorb
// floating-point error accumulated across section/layer boundary math.
// spec.md §5 allows bit-identical geometry "within floating-point ULP on
// the section/layer boundaries"; Epsilon is intentionally looser than ULP
// so legitimately touching (not overlapping) edges never register as
// overlapping.
const Epsilon = 1e-9

// Point is a 2-D Cartesian coordinate, in metres.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Rotated returns p rotated by angleDeg degrees counter-clockwise about the origin.
func (p Point) Rotated(angleDeg float64) Point {
	rad := angleDeg * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)

	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// Rect is an axis-aligned rectangle in Cartesian space, described by its
// center and full width/height (not half-extents).
type Rect struct {
	Center Point
	Width  float64
	Height float64
}

// MinX returns the rectangle's lower X bound.
func (r Rect) MinX() float64 { return r.Center.X - r.Width/2 }

// MaxX returns the rectangle's upper X bound.
func (r Rect) MaxX() float64 { return r.Center.X + r.Width/2 }

// MinY returns the rectangle's lower Y bound.
func (r Rect) MinY() float64 { return r.Center.Y - r.Height/2 }

// MaxY returns the rectangle's upper Y bound.
func (r Rect) MaxY() float64 { return r.Center.Y + r.Height/2 }

// Contains reports whether inner lies entirely within r, allowing Epsilon
// slack at the boundary.
func (r Rect) Contains(inner Rect) bool {
	return inner.MinX() >= r.MinX()-Epsilon &&
		inner.MaxX() <= r.MaxX()+Epsilon &&
		inner.MinY() >= r.MinY()-Epsilon &&
		inner.MaxY() <= r.MaxY()+Epsilon
}

// Overlaps reports whether r and other share any interior area, beyond
// Epsilon tolerance (edge-touching rectangles do not overlap).
func (r Rect) Overlaps(other Rect) bool {
	if r.MaxX() <= other.MinX()+Epsilon || other.MaxX() <= r.MinX()+Epsilon {
		return false
	}
	if r.MaxY() <= other.MinY()+Epsilon || other.MaxY() <= r.MinY()+Epsilon {
		return false
	}

	return true
}

// Translate returns r shifted by delta.
func (r Rect) Translate(delta Point) Rect {
	r.Center = r.Center.Add(delta)

	return r
}

// BoundRects returns the minimal axis-aligned rectangle containing every
// rect in rs. Panics is avoided by returning the zero Rect for an empty
// slice; callers are expected to guard on len(rs) == 0 first.
func BoundRects(rs []Rect) Rect {
	if len(rs) == 0 {
		return Rect{}
	}

	minX, maxX := rs[0].MinX(), rs[0].MaxX()
	minY, maxY := rs[0].MinY(), rs[0].MaxY()
	for _, r := range rs[1:] {
		minX = math.Min(minX, r.MinX())
		maxX = math.Max(maxX, r.MaxX())
		minY = math.Min(minY, r.MinY())
		maxY = math.Max(maxY, r.MaxY())
	}

	return Rect{
		Center: Point{X: (minX + maxX) / 2, Y: (minY + maxY) / 2},
		Width:  maxX - minX,
		Height: maxY - minY,
	}
}

// Sector is an annular sector in polar space: the region between
// InnerRadius and OuterRadius, swept from StartAngle through SpanAngle
// degrees. StartAngle is on [0, 360); SpanAngle is on [0, 360], with 360
// for a full ring.
type Sector struct {
	Center      Point
	InnerRadius float64
	OuterRadius float64
	StartAngle  float64
	SpanAngle   float64
}

// NormalizeAngle folds deg into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}

	return deg
}

// EndAngle returns the sector's trailing angle, normalized to [0, 360).
func (s Sector) EndAngle() float64 {
	return NormalizeAngle(s.StartAngle + s.SpanAngle)
}

// MidRadius returns the radius halfway between InnerRadius and OuterRadius.
func (s Sector) MidRadius() float64 {
	return (s.InnerRadius + s.OuterRadius) / 2
}

// ContainsAngle reports whether angleDeg falls within the sector's angular
// span, handling wraparound through 0/360.
func (s Sector) ContainsAngle(angleDeg float64) bool {
	angleDeg = NormalizeAngle(angleDeg)
	start := NormalizeAngle(s.StartAngle)
	span := s.SpanAngle

	rel := angleDeg - start
	if rel < -Epsilon {
		rel += 360
	}

	return rel >= -Epsilon && rel <= span+Epsilon
}

// RadialOverlaps reports whether s and other share any radial band,
// beyond Epsilon tolerance.
func (s Sector) RadialOverlaps(other Sector) bool {
	return s.OuterRadius > other.InnerRadius+Epsilon && other.OuterRadius > s.InnerRadius+Epsilon
}

// PointAt returns the Cartesian point on the sector's mid-radius arc at
// angleDeg (measured from the sector's Center).
func (s Sector) PointAt(angleDeg float64) Point {
	rad := angleDeg * math.Pi / 180

	return Point{
		X: s.Center.X + s.MidRadius()*math.Cos(rad),
		Y: s.Center.Y + s.MidRadius()*math.Sin(rad),
	}
}

// PointAtRadius returns the Cartesian point at radius r and angleDeg
// (measured from center), independent of any Sector.
func PointAtRadius(center Point, r, angleDeg float64) Point {
	rad := angleDeg * math.Pi / 180

	return Point{
		X: center.X + r*math.Cos(rad),
		Y: center.Y + r*math.Sin(rad),
	}
}

// ArcSpanForChord returns the angular span in degrees subtended at radius r
// by a chord of the given length — the footprint of a wire of width
// chordLen sitting tangentially on a circle of radius r. Returns 0 if r is
// not positive.
func ArcSpanForChord(chordLen, r float64) float64 {
	if r <= 0 {
		return 0
	}
	ratio := (chordLen / 2) / r
	if ratio > 1 {
		ratio = 1
	} else if ratio < -1 {
		ratio = -1
	}

	return 2 * math.Asin(ratio) * 180 / math.Pi
}
