package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowind/coilwind/geom"
)

func TestRectContains(t *testing.T) {
	outer := geom.Rect{Center: geom.Point{X: 0, Y: 0}, Width: 10, Height: 10}
	cases := []struct {
		name  string
		inner geom.Rect
		want  bool
	}{
		{"centered smaller", geom.Rect{Center: geom.Point{X: 0, Y: 0}, Width: 4, Height: 4}, true},
		{"touches edge", geom.Rect{Center: geom.Point{X: 3, Y: 0}, Width: 4, Height: 4}, true},
		{"exceeds edge", geom.Rect{Center: geom.Point{X: 4, Y: 0}, Width: 4, Height: 4}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, outer.Contains(tc.inner))
		})
	}
}

func TestRectOverlaps(t *testing.T) {
	a := geom.Rect{Center: geom.Point{X: 0, Y: 0}, Width: 2, Height: 2}
	b := geom.Rect{Center: geom.Point{X: 2, Y: 0}, Width: 2, Height: 2}
	require.False(t, a.Overlaps(b), "edge-touching rects should not overlap")

	c := geom.Rect{Center: geom.Point{X: 1.5, Y: 0}, Width: 2, Height: 2}
	require.True(t, a.Overlaps(c), "interpenetrating rects should overlap")
}

func TestBoundRects(t *testing.T) {
	rs := []geom.Rect{
		{Center: geom.Point{X: 0, Y: 0}, Width: 2, Height: 2},
		{Center: geom.Point{X: 4, Y: 1}, Width: 2, Height: 2},
	}
	b := geom.BoundRects(rs)
	require.Equal(t, -1.0, b.MinX())
	require.Equal(t, 5.0, b.MaxX())
	require.Equal(t, -1.0, b.MinY())
	require.Equal(t, 2.0, b.MaxY())
}

func TestSectorContainsAngleWraps(t *testing.T) {
	s := geom.Sector{StartAngle: 350, SpanAngle: 20} // spans 350..10
	for _, angle := range []float64{350, 0, 5, 10} {
		require.True(t, s.ContainsAngle(angle), "ContainsAngle(%v) should be true", angle)
	}
	require.False(t, s.ContainsAngle(180))
}

func TestSectorRadialOverlaps(t *testing.T) {
	a := geom.Sector{InnerRadius: 5, OuterRadius: 10}
	b := geom.Sector{InnerRadius: 10, OuterRadius: 15}
	require.False(t, a.RadialOverlaps(b), "radially adjacent sectors should not overlap")

	c := geom.Sector{InnerRadius: 8, OuterRadius: 12}
	require.True(t, a.RadialOverlaps(c), "radially interpenetrating sectors should overlap")
}

func TestArcSpanForChord(t *testing.T) {
	span := geom.ArcSpanForChord(1.0, 10.0)
	require.Greater(t, span, 0.0)
	require.LessOrEqual(t, span, 90.0)
	require.Equal(t, 0.0, geom.ArcSpanForChord(1.0, 0))
}
