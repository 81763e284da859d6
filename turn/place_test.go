package turn_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowind/coilwind/geom"
	"github.com/gowind/coilwind/layer"
	"github.com/gowind/coilwind/layout"
	"github.com/gowind/coilwind/policy"
	"github.com/gowind/coilwind/turn"
	"github.com/gowind/coilwind/winding"
)

// TestPlaceCentered mirrors spec.md §8 scenario S1: 7 turns centered along
// the layer axis.
func TestPlaceCentered(t *testing.T) {
	l := layer.Layer{
		Name:           "layer 1",
		CoordSystem:    layout.Cartesian,
		Rect:           geom.Rect{Center: geom.Point{X: 5, Y: 5}, Width: 9, Height: 9},
		Type:           layout.Conduction,
		Orientation:    layout.Contiguous,
		TurnsAlignment: layout.Centered,
		WindingStyle:   layout.ConsecutiveTurns,
		PartialWindings: []winding.PartialWinding{
			{WindingName: "primary", ParallelsProportion: []float64{1.0}},
		},
	}

	in := turn.Input{
		Layer:           l,
		SectionName:     "primary section 1",
		Windings:        []winding.Winding{{Name: "primary", Turns: 7, Parallels: 1, WireName: "w"}},
		WireOuterWidth:  map[string]float64{"primary": 0.509},
		WireOuterHeight: map[string]float64{"primary": 0.509},
		Counters:        map[string][]int{},
		Policies:        policy.NewPolicies(),
	}

	res, err := turn.Place(in)
	require.NoError(t, err)
	require.Len(t, res.Turns, 7)

	for i, tn := range res.Turns {
		require.Equal(t, i, tn.Index)
		require.Equal(t, fmt.Sprintf("primary parallel 0 turn %d", i), tn.Name)
	}

	mid := res.Turns[3]
	require.InDelta(t, l.Rect.Center.X, mid.Center.X, 1e-6, "middle turn should be centered; Contiguous turn axis is X")
}

// TestPlacePolar mirrors spec.md §8 scenario S4: 3 turns on a toroidal
// layer, centered, with the middle turn at 180°.
func TestPlacePolar(t *testing.T) {
	l := layer.Layer{
		Name:        "layer 1",
		CoordSystem: layout.Polar,
		Sector: geom.Sector{
			Center:      geom.Point{X: 0, Y: 0},
			InnerRadius: 4.5,
			OuterRadius: 5.5,
			StartAngle:  0,
			SpanAngle:   360,
		},
		Type:           layout.Conduction,
		Orientation:    layout.Contiguous,
		TurnsAlignment: layout.Centered,
		WindingStyle:   layout.ConsecutiveTurns,
		PartialWindings: []winding.PartialWinding{
			{WindingName: "primary", ParallelsProportion: []float64{1.0}},
		},
	}

	in := turn.Input{
		Layer:           l,
		SectionName:     "primary section 1",
		Windings:        []winding.Winding{{Name: "primary", Turns: 3, Parallels: 1, WireName: "w"}},
		WireOuterWidth:  map[string]float64{"primary": 0.5},
		WireOuterHeight: map[string]float64{"primary": 0.5},
		Counters:        map[string][]int{},
		Policies:        policy.NewPolicies(),
	}

	res, err := turn.Place(in)
	require.NoError(t, err)
	require.Len(t, res.Turns, 3)
	for _, tn := range res.Turns {
		require.GreaterOrEqual(t, tn.RotationAngle, 0.0)
		require.Less(t, tn.RotationAngle, 360.0)
		require.NotNil(t, tn.AdditionalCoordinates, "AdditionalCoordinates should be set in polar mode")
	}

	require.InDelta(t, 180.0, res.Turns[1].RotationAngle, 1)
}

func TestPlaceInsulationLayer(t *testing.T) {
	l := layer.Layer{Type: layout.Insulation}
	res, err := turn.Place(turn.Input{Layer: l, Counters: map[string][]int{}})
	require.NoError(t, err)
	require.Empty(t, res.Turns)
}

func TestPlaceDoesNotFit(t *testing.T) {
	l := layer.Layer{
		CoordSystem: layout.Cartesian,
		Rect:        geom.Rect{Center: geom.Point{X: 0, Y: 0}, Width: 1, Height: 1},
		Type:        layout.Conduction,
		Orientation: layout.Contiguous,
		PartialWindings: []winding.PartialWinding{
			{WindingName: "primary", ParallelsProportion: []float64{1.0}},
		},
	}

	in := turn.Input{
		Layer:           l,
		Windings:        []winding.Winding{{Name: "primary", Turns: 100, Parallels: 1, WireName: "w"}},
		WireOuterWidth:  map[string]float64{"primary": 1},
		WireOuterHeight: map[string]float64{"primary": 1},
		Counters:        map[string][]int{},
		Policies:        policy.NewPolicies(),
	}

	_, err := turn.Place(in)
	require.ErrorIs(t, err, turn.ErrDoesNotFit)
}
