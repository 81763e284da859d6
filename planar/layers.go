package planar

import (
	"fmt"

	"github.com/gowind/coilwind/geom"
	"github.com/gowind/coilwind/layer"
	"github.com/gowind/coilwind/layout"
	"github.com/gowind/coilwind/winding"
)

// LayersInput gathers everything Layers needs (spec.md §4.5,
// "windByPlanarLayers()" — it takes no spacing parameters; those are
// supplied later, to Turns, since they only affect geometry, not the
// mechanical copper-layer split).
type LayersInput struct {
	Runs []Run

	// WireOuterHeight gives each winding's fixed copper thickness.
	WireOuterHeight map[string]float64

	TurnsAlignment layout.Alignment
	WindingStyle   layout.WindingStyle
}

// LayersResult is the Layers stage's output: one layer.Layer per physical
// copper layer (or per insulation run), in board order. Each conduction
// layer's Rect.Height is already its copper thickness; Rect.Center.Y is a
// placeholder the Turns stage overwrites once spacing is known.
type LayersResult struct {
	Layers []layer.Layer

	// SectionNames[i] is Layers[i]'s owning run's section name.
	SectionNames []string

	// GapBefore[i] reports whether Turns must insert InterLayerInsulation
	// immediately before Layers[i] — true between two copper layers of the
	// same run, false at every other boundary (a run boundary already
	// carries its own clearance section).
	GapBefore []bool
}

// Layers splits each conduction Run into CopperLayers identical-thickness
// copper layers, dividing the run's partial winding evenly across them. An
// insulation Run packs into a single insulation layer spanning its Section.
func Layers(in LayersInput) LayersResult {
	var layers []layer.Layer
	var sectionNames []string
	var gapBefore []bool

	for _, r := range in.Runs {
		if r.WindingIndex < 0 {
			layers = append(layers, layer.Layer{
				Name:          r.Section.Name,
				CoordSystem:   layout.Cartesian,
				Rect:          r.Section.Rect,
				Type:          layout.Insulation,
				FillingFactor: 1.0,
			})
			sectionNames = append(sectionNames, r.Section.Name)
			gapBefore = append(gapBefore, false)

			continue
		}

		pw := r.Section.PartialWindings[0]
		thickness := in.WireOuterHeight[pw.WindingName]
		placeholder := geom.Rect{Center: r.Section.Rect.Center, Width: r.Section.Rect.Width, Height: thickness}

		// Split the run's physical turns evenly across its copper layers,
		// remainder on the last, then scale the run's own per-parallel
		// proportion by each layer's share — mirrors
		// layer.distributeAcrossLayers' take/memberTurns fraction.
		base := r.assignedTurns / r.CopperLayers
		remainder := r.assignedTurns - base*r.CopperLayers

		for c := 0; c < r.CopperLayers; c++ {
			turnsForLayer := base
			if c == r.CopperLayers-1 {
				turnsForLayer += remainder
			}

			props := make([]float64, len(pw.ParallelsProportion))
			if r.assignedTurns > 0 {
				scale := float64(turnsForLayer) / float64(r.assignedTurns)
				for i, p := range pw.ParallelsProportion {
					props[i] = p * scale
				}
			}

			layers = append(layers, layer.Layer{
				Name:           fmt.Sprintf("%s copper layer %d", pw.WindingName, c+1),
				CoordSystem:    layout.Cartesian,
				Rect:           placeholder,
				Type:           layout.Conduction,
				Orientation:    layout.Contiguous,
				TurnsAlignment: in.TurnsAlignment,
				WindingStyle:   in.WindingStyle,
				FillingFactor:  r.Section.FillingFactor,
				PartialWindings: []winding.PartialWinding{{
					WindingName:         pw.WindingName,
					ParallelsProportion: props,
				}},
			})
			sectionNames = append(sectionNames, r.Section.Name)
			gapBefore = append(gapBefore, c > 0)
		}
	}

	return LayersResult{Layers: layers, SectionNames: sectionNames, GapBefore: gapBefore}
}
