package planar

import (
	"github.com/gowind/coilwind/layer"
	"github.com/gowind/coilwind/layout"
	"github.com/gowind/coilwind/policy"
	"github.com/gowind/coilwind/turn"
	"github.com/gowind/coilwind/winding"
)

// TurnsInput gathers everything Turns needs (spec.md §4.5,
// "windByPlanarTurns(interLayerInsulation, distanceToCore)").
type TurnsInput struct {
	LayersResult LayersResult
	Windings     []winding.Winding

	WireOuterWidth, WireOuterHeight map[string]float64
	MeanTurnLength                  map[string]float64

	// InterLayerInsulation is the vertical clearance between two copper
	// layers belonging to the same run.
	InterLayerInsulation float64

	// DistanceToCore offsets the first (innermost) layer from the core.
	DistanceToCore float64

	TurnsAlignment layout.Alignment
	Direction      layout.TurnDirection
	Counters       map[string][]int

	Policies policy.Policies
}

// TurnsResult is the Turns stage's output: the finalized layer list (with
// real Rect.Center.Y positions) and every placed turn, in board order.
type TurnsResult struct {
	Layers []layer.Layer
	Turns  []turn.Turn
}

// Turns finalizes each layer's vertical position from DistanceToCore and
// InterLayerInsulation, then places each copper layer's turns along the
// board's width axis by delegating to turn.Place unchanged (spec.md §4.5:
// "turn placement within each planar layer is along the layer's width
// axis" — the same Contiguous-orientation rule §4.3 already implements).
func Turns(in TurnsInput) (TurnsResult, error) {
	layers := append([]layer.Layer(nil), in.LayersResult.Layers...)

	offset := in.DistanceToCore
	for i := range layers {
		if i > 0 && in.LayersResult.GapBefore[i] {
			offset += in.InterLayerInsulation
		}

		height := layers[i].Rect.Height
		layers[i].Rect.Center.Y = offset + height/2
		offset += height
	}

	var turns []turn.Turn
	for i, l := range layers {
		if l.Type == layout.Insulation {
			continue
		}

		l.TurnsAlignment = in.TurnsAlignment

		res, err := turn.Place(turn.Input{
			Layer:           l,
			SectionName:     in.LayersResult.SectionNames[i],
			Windings:        in.Windings,
			WireOuterWidth:  in.WireOuterWidth,
			WireOuterHeight: in.WireOuterHeight,
			MeanTurnLength:  in.MeanTurnLength,
			Counters:        in.Counters,
			Direction:       in.Direction,
			Policies:        in.Policies,
		})
		if err != nil {
			return TurnsResult{}, err
		}

		layers[i].FillingFactor = res.FillingFactor
		turns = append(turns, res.Turns...)
	}

	return TurnsResult{Layers: layers, Turns: turns}, nil
}
