package planar_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowind/coilwind/bobbin"
	"github.com/gowind/coilwind/layout"
	"github.com/gowind/coilwind/planar"
	"github.com/gowind/coilwind/policy"
	"github.com/gowind/coilwind/winding"
)

func rectBobbin(width, height float64) bobbin.Bobbin {
	return bobbin.Bobbin{
		Window:              bobbin.Window{Shape: bobbin.RectangularShape, Width: width, Height: height},
		SectionsOrientation: layout.Contiguous,
		SectionsAlignment:   layout.InnerTop,
	}
}

// TestSectionsMergesConsecutiveStackUpEntries mirrors spec.md §4.5: a
// stack-up with a repeated winding index becomes one section spanning
// multiple copper layers, not one section per occurrence.
func TestSectionsMergesConsecutiveStackUpEntries(t *testing.T) {
	windings := []winding.Winding{
		{Name: "primary", Turns: 4, Parallels: 1, WireName: "p"},
		{Name: "secondary", Turns: 2, Parallels: 1, WireName: "s"},
	}

	res, err := planar.Sections(planar.SectionsInput{
		StackUp:                []int{0, 0, 1},
		Windings:               windings,
		WireOuterHeight:        map[string]float64{"primary": 0.05, "secondary": 0.05},
		InterWindingInsulation: 0.1,
		InsulationToCore:       0.2,
		Bobbin:                 rectBobbin(10, 10),
		Policies:               policy.NewPolicies(),
	})
	require.NoError(t, err)

	conductionRuns := 0
	for _, r := range res.Runs {
		if r.WindingIndex >= 0 {
			conductionRuns++
		}
	}
	require.Equal(t, 2, conductionRuns, "one merged run for primary, one for secondary")
	require.Equal(t, 2, res.Runs[0].CopperLayers)
}

// TestSectionsDoesNotFit mirrors the overflow edge case: a stack-up that
// exceeds the usable window height fails closed by default.
func TestSectionsDoesNotFit(t *testing.T) {
	windings := []winding.Winding{{Name: "primary", Turns: 1, Parallels: 1, WireName: "p"}}

	_, err := planar.Sections(planar.SectionsInput{
		StackUp:                []int{0},
		Windings:               windings,
		WireOuterHeight:        map[string]float64{"primary": 5},
		InterWindingInsulation: 0,
		InsulationToCore:       0,
		Bobbin:                 rectBobbin(10, 1),
		Policies:               policy.NewPolicies(),
	})
	require.ErrorIs(t, err, planar.ErrDoesNotFit)
}

// TestFullPlanarPipeline exercises Sections -> Layers -> Turns end to end
// for a two-winding, interleaved planar stack-up.
func TestFullPlanarPipeline(t *testing.T) {
	windings := []winding.Winding{
		{Name: "primary", Turns: 6, Parallels: 1, WireName: "p"},
		{Name: "secondary", Turns: 2, Parallels: 1, WireName: "s"},
	}
	wireWidth := map[string]float64{"primary": 0.2, "secondary": 0.3}
	wireHeight := map[string]float64{"primary": 0.07, "secondary": 0.07}

	sections, err := planar.Sections(planar.SectionsInput{
		StackUp:                []int{0, 0, 1, 0},
		Windings:               windings,
		WireOuterHeight:        wireHeight,
		InterWindingInsulation: 0.1,
		InsulationToCore:       0.15,
		Bobbin:                 rectBobbin(10, 10),
		Policies:               policy.NewPolicies(),
	})
	require.NoError(t, err)

	layers := planar.Layers(planar.LayersInput{
		Runs:            sections.Runs,
		WireOuterHeight: wireHeight,
		TurnsAlignment:  layout.Centered,
		WindingStyle:    layout.ConsecutiveTurns,
	})

	wantCopperLayers := 0
	for _, r := range sections.Runs {
		if r.WindingIndex >= 0 {
			wantCopperLayers += r.CopperLayers
		}
	}
	conductionLayers := 0
	for _, l := range layers.Layers {
		if l.Type == layout.Conduction {
			conductionLayers++
		}
	}
	require.Equal(t, wantCopperLayers, conductionLayers)

	res, err := planar.Turns(planar.TurnsInput{
		LayersResult:         layers,
		Windings:             windings,
		WireOuterWidth:       wireWidth,
		WireOuterHeight:      wireHeight,
		InterLayerInsulation: 0.05,
		DistanceToCore:       0.1,
		TurnsAlignment:       layout.Centered,
		Direction:            layout.Clockwise,
		Counters:             map[string][]int{},
		Policies:             policy.NewPolicies(),
	})
	require.NoError(t, err)

	totalTurns := 0
	for _, w := range windings {
		totalTurns += w.Turns * w.Parallels
	}
	require.Len(t, res.Turns, totalTurns)

	// Every layer must have a distinct Y (vertical board position), in
	// strictly increasing order from the core outward.
	lastY := -1.0
	for _, l := range res.Layers {
		require.Greater(t, l.Rect.Center.Y, lastY, "layer %q Y should be strictly increasing", l.Name)
		lastY = l.Rect.Center.Y
	}

	for _, tn := range res.Turns {
		require.Equal(t, layout.Cartesian, tn.CoordSystem)
	}
}

// TestSectionsEmptyStackUp asserts the empty-input edge case.
func TestSectionsEmptyStackUp(t *testing.T) {
	_, err := planar.Sections(planar.SectionsInput{})
	require.ErrorIs(t, err, planar.ErrEmptyStackUp)
}

// TestSectionsIndexOutOfRange asserts the out-of-range stack-up index edge
// case.
func TestSectionsIndexOutOfRange(t *testing.T) {
	in := planar.SectionsInput{
		StackUp:  []int{0, 5},
		Windings: []winding.Winding{{Name: "primary", Turns: 1, Parallels: 1, WireName: "p"}},
		Bobbin:   rectBobbin(10, 10),
		Policies: policy.NewPolicies(),
	}
	_, err := planar.Sections(in)
	require.ErrorIs(t, err, planar.ErrStackUpIndexOutOfRange)
}
