package layer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowind/coilwind/geom"
	"github.com/gowind/coilwind/insul"
	"github.com/gowind/coilwind/layer"
	"github.com/gowind/coilwind/layout"
	"github.com/gowind/coilwind/policy"
	"github.com/gowind/coilwind/section"
	"github.com/gowind/coilwind/winding"
)

// TestPackSingleLayer mirrors spec.md §8 scenario S1: a section whose
// turns all fit comfortably into a single layer.
func TestPackSingleLayer(t *testing.T) {
	sec := section.Section{
		Name:        "primary section 1",
		CoordSystem: layout.Cartesian,
		Rect:        geom.Rect{Center: geom.Point{X: 5, Y: 5}, Width: 3.563, Height: 9},
		Type:        layout.Conduction,
		Orientation: layout.Contiguous,
		Alignment:   layout.Centered,
		PartialWindings: []winding.PartialWinding{
			{WindingName: "primary", ParallelsProportion: []float64{1.0}},
		},
	}

	in := layer.Input{
		Section:         sec,
		Windings:        []winding.Winding{{Name: "primary", Turns: 7, Parallels: 1, WireName: "w"}},
		WireOuterWidth:  map[string]float64{"primary": 0.509},
		WireOuterHeight: map[string]float64{"primary": 0.509},
		TurnsAlignment:  layout.Centered,
		Policies:        policy.NewPolicies(),
	}

	res, err := layer.Pack(in)
	require.NoError(t, err)
	require.Len(t, res.Layers, 1)
	require.Len(t, res.Layers[0].PartialWindings, 1)
}

// TestPackMultipleLayersConsecutiveParallels mirrors spec.md §8 scenario
// S2: a single winding with 2 parallels that overflows one layer,
// producing the consecutive-parallels winding style.
func TestPackMultipleLayersConsecutiveParallels(t *testing.T) {
	sec := section.Section{
		Name:        "primary section 1",
		CoordSystem: layout.Cartesian,
		Rect:        geom.Rect{Center: geom.Point{X: 5, Y: 5}, Width: 1, Height: 6 * 0.5},
		Type:        layout.Conduction,
		Orientation: layout.Overlapping,
		Alignment:   layout.Centered,
		PartialWindings: []winding.PartialWinding{
			{WindingName: "primary", ParallelsProportion: []float64{1.0, 1.0}},
		},
	}

	in := layer.Input{
		Section:         sec,
		Windings:        []winding.Winding{{Name: "primary", Turns: 7, Parallels: 2, WireName: "w"}},
		WireOuterWidth:  map[string]float64{"primary": 0.5},
		WireOuterHeight: map[string]float64{"primary": 0.5},
		TurnsAlignment:  layout.Centered,
		Policies:        policy.NewPolicies(),
	}

	res, err := layer.Pack(in)
	require.NoError(t, err)
	require.Len(t, res.Layers, 3)

	total := 0
	for _, l := range res.Layers {
		for _, pw := range l.PartialWindings {
			for _, p := range pw.ParallelsProportion {
				total += int(p*7 + 0.5)
			}
		}
	}
	require.Equal(t, 14, total)
	require.Equal(t, layout.ConsecutiveParallels, res.Layers[0].WindingStyle)
}

func TestPackInsertsInterlayerInsulation(t *testing.T) {
	sec := section.Section{
		Name:        "primary section 1",
		CoordSystem: layout.Cartesian,
		Rect:        geom.Rect{Center: geom.Point{X: 5, Y: 5}, Width: 1, Height: 2},
		Type:        layout.Conduction,
		Orientation: layout.Overlapping,
		Alignment:   layout.Centered,
		PartialWindings: []winding.PartialWinding{
			{WindingName: "primary", ParallelsProportion: []float64{1.0, 1.0}},
		},
	}

	planner := insul.NewPlanner(nil)
	planner.InterlayerInsulation(0.1)

	in := layer.Input{
		Section:           sec,
		Windings:          []winding.Winding{{Name: "primary", Turns: 7, Parallels: 2, WireName: "w"}},
		WireOuterWidth:    map[string]float64{"primary": 0.5},
		WireOuterHeight:   map[string]float64{"primary": 0.5},
		TurnsAlignment:    layout.Centered,
		Policies:          policy.NewPolicies(),
		InsulationPlanner: planner,
	}

	res, err := layer.Pack(in)
	require.NoError(t, err)

	found := false
	for _, l := range res.Layers {
		if l.Type == layout.Insulation {
			found = true
		}
	}
	require.True(t, found, "expected at least one insulation layer between conduction layers")
}

// TestPackPolicyInsulationFloorWithoutPlanner confirms
// Policies.InterlayerInsulationThickness alone inserts interlayer
// insulation, with no insul.Planner attached.
func TestPackPolicyInsulationFloorWithoutPlanner(t *testing.T) {
	sec := section.Section{
		Name:        "primary section 1",
		CoordSystem: layout.Cartesian,
		Rect:        geom.Rect{Center: geom.Point{X: 5, Y: 5}, Width: 1, Height: 2},
		Type:        layout.Conduction,
		Orientation: layout.Overlapping,
		Alignment:   layout.Centered,
		PartialWindings: []winding.PartialWinding{
			{WindingName: "primary", ParallelsProportion: []float64{1.0, 1.0}},
		},
	}

	in := layer.Input{
		Section:         sec,
		Windings:        []winding.Winding{{Name: "primary", Turns: 7, Parallels: 2, WireName: "w"}},
		WireOuterWidth:  map[string]float64{"primary": 0.5},
		WireOuterHeight: map[string]float64{"primary": 0.5},
		TurnsAlignment:  layout.Centered,
		Policies:        policy.NewPolicies(policy.WithInterlayerInsulationThickness(0.1)),
	}

	res, err := layer.Pack(in)
	require.NoError(t, err)

	found := false
	for _, l := range res.Layers {
		if l.Type == layout.Insulation {
			found = true
		}
	}
	require.True(t, found, "policy floor alone should insert interlayer insulation")
}

func TestPackInsulationSectionPassthrough(t *testing.T) {
	sec := section.Section{
		Name:               "insulation section 0",
		CoordSystem:        layout.Cartesian,
		Rect:               geom.Rect{Center: geom.Point{X: 5, Y: 5}, Width: 0.4, Height: 9},
		Type:               layout.Insulation,
		InsulationMaterial: "nomex",
	}

	res, err := layer.Pack(layer.Input{Section: sec})
	require.NoError(t, err)
	require.Len(t, res.Layers, 1)
	require.Equal(t, layout.Insulation, res.Layers[0].Type)
	require.Equal(t, "nomex", res.Layers[0].InsulationMaterial)
}

func TestPackNoPartialWindings(t *testing.T) {
	sec := section.Section{Type: layout.Conduction}
	_, err := layer.Pack(layer.Input{Section: sec})
	require.ErrorIs(t, err, layer.ErrNoPartialWindings)
}
