package layer

import (
	"fmt"
	"math"

	"github.com/gowind/coilwind/geom"
	"github.com/gowind/coilwind/insul"
	"github.com/gowind/coilwind/layout"
	"github.com/gowind/coilwind/policy"
	"github.com/gowind/coilwind/section"
	"github.com/gowind/coilwind/winding"
)

// Input gathers everything Pack needs for one section (spec.md §4.2).
type Input struct {
	Section section.Section

	// Windings is the original functional description, used to recover
	// each partial winding's own (turns, parallels) counts.
	Windings []winding.Winding

	// WireOuterWidth/WireOuterHeight give each winding's wire outer
	// footprint, keyed by Winding.Name.
	WireOuterWidth  map[string]float64
	WireOuterHeight map[string]float64

	// TurnsAlignment is recorded on every resulting conduction layer;
	// the Placer reads it in §4.3.
	TurnsAlignment layout.Alignment

	// WindingStyle overrides the automatic style selection (spec.md §4.2
	// "the choice is observable ... and must be reproduced" — a rewind
	// may pin a previously chosen style rather than let it flip).
	WindingStyle *layout.WindingStyle

	Policies          policy.Policies
	InsulationPlanner *insul.Planner
}

// Result is Pack's output: the ordered layer list for one section.
type Result struct {
	Layers []Layer
}

// Pack implements the packer (spec.md §4.2). An insulation section packs
// into a single insulation layer spanning its geometry; a conduction
// section is split into L = ⌈turns / turnsPerLayer⌉ layers, with partial
// windings placed in declaration order and insulation layers inserted
// between conduction layers.
func Pack(in Input) (Result, error) {
	if in.Section.Type == layout.Insulation {
		return Result{Layers: []Layer{insulationLayerFor(in.Section)}}, nil
	}

	if len(in.Section.PartialWindings) == 0 {
		return Result{}, ErrNoPartialWindings
	}

	layerAxisLen, turnAxisLen := axisExtents(in.Section, in.Section.Orientation)

	turnExtent, err := turnExtentAlongAxis(in)
	if err != nil {
		return Result{}, err
	}
	clearance := interTurnClearance(in)

	turnsPerLayer := int(math.Floor(turnAxisLen / (turnExtent + clearance)))
	if turnsPerLayer < 1 {
		turnsPerLayer = 1
	}

	totalTurns := 0
	memberTurns := make([]int, len(in.Section.PartialWindings))
	for i, pw := range in.Section.PartialWindings {
		w := findWinding(in.Windings, pw.WindingName)
		memberTurns[i] = section.TurnsForMember(pw, w.Turns, w.Parallels)
		totalTurns += memberTurns[i]
	}

	numLayers := int(math.Ceil(float64(totalTurns) / float64(turnsPerLayer)))
	if numLayers < 1 {
		numLayers = 1
	}

	style := layout.ConsecutiveTurns
	if in.WindingStyle != nil {
		style = *in.WindingStyle
	} else if len(in.Section.PartialWindings) == 1 {
		// spec.md §4.2's prose additionally requires "and one layer", but
		// §8 scenario S2 (7 turns, 2 parallels, 3 layers) expects
		// consecutive-parallels regardless of layer count; the single-
		// winding condition alone decides it here.
		w := findWinding(in.Windings, in.Section.PartialWindings[0].WindingName)
		if w.Parallels > 1 {
			style = layout.ConsecutiveParallels
		}
	}

	conduction := distributeAcrossLayers(in, memberTurns, turnsPerLayer, numLayers, style)

	requiredAxis := float64(totalTurns) * (turnExtent + clearance)
	fillingFactor := 1.0
	if requiredAxis > turnAxisLen*float64(numLayers)+geom.Epsilon {
		if !in.Policies.WindEvenIfNotFit {
			return Result{}, ErrDoesNotFit
		}
		fillingFactor = requiredAxis / (turnAxisLen * float64(numLayers))
	}
	for i := range conduction {
		conduction[i].FillingFactor = fillingFactor
	}

	stackExtent, err := stackExtentAlongAxis(in)
	if err != nil {
		return Result{}, err
	}

	layers, extents := interleaveInsulation(conduction, stackExtent, in.InsulationPlanner, in.Policies)
	layers, extents, layerAxisLen, startShift := applyMargin(in, layers, extents, layerAxisLen)
	layoutLayers(in.Section, layers, extents, layerAxisLen, startShift)

	return Result{Layers: layers}, nil
}

// applyMargin accounts for Section.Margin, a dead zone along the layer-
// stacking axis near the section's inner/outer edge (spec.md glossary
// "Margin"). With Policies.FillSectionsWithMarginTape it is rendered as an
// insulation layer at each non-zero edge, occupying its own share of the
// original axis; otherwise it shrinks the axis available for layout and
// shifts the remaining layers past the inner margin, leaving it empty.
func applyMargin(in Input, layers []Layer, extents []float64, layerAxisLen float64) ([]Layer, []float64, float64, float64) {
	low, high := in.Section.Margin[0], in.Section.Margin[1]
	if low <= 0 && high <= 0 {
		return layers, extents, layerAxisLen, 0
	}

	if !in.Policies.FillSectionsWithMarginTape {
		layerAxisLen -= low + high
		if layerAxisLen < 0 {
			layerAxisLen = 0
		}

		return layers, extents, layerAxisLen, low
	}

	if low > 0 {
		layers = append([]Layer{{Name: "margin layer low", Type: layout.Insulation, FillingFactor: 1.0}}, layers...)
		extents = append([]float64{low}, extents...)
	}
	if high > 0 {
		layers = append(layers, Layer{Name: "margin layer high", Type: layout.Insulation, FillingFactor: 1.0})
		extents = append(extents, high)
	}

	return layers, extents, layerAxisLen, 0
}

func insulationLayerFor(sec section.Section) Layer {
	return Layer{
		Name:               "insulation layer",
		CoordSystem:        sec.CoordSystem,
		Rect:               sec.Rect,
		Sector:             sec.Sector,
		Type:               layout.Insulation,
		InsulationMaterial: sec.InsulationMaterial,
		FillingFactor:      1.0,
	}
}

// axisExtents returns (layer-stacking axis length, turn axis length)
// within sec's own geometry, for the given layer orientation. In polar
// mode layers always stack radially, independent of orientation (a round
// window's only natural layering axis is its radial one).
func axisExtents(sec section.Section, orientation layout.Orientation) (float64, float64) {
	if sec.CoordSystem == layout.Polar {
		return sec.Sector.OuterRadius - sec.Sector.InnerRadius, sec.Sector.SpanAngle
	}

	if orientation == layout.Overlapping {
		return sec.Rect.Width, sec.Rect.Height
	}

	return sec.Rect.Height, sec.Rect.Width
}

// turnExtentAlongAxis returns the wire outer dimension along the turn
// axis, weighted across the section's partial windings by member physical
// turn count (mirrors section.effectiveWireExtent's weighting).
func turnExtentAlongAxis(in Input) (float64, error) {
	total := 0
	weighted := 0.0
	for _, pw := range in.Section.PartialWindings {
		w := findWinding(in.Windings, pw.WindingName)
		physical := section.TurnsForMember(pw, w.Turns, w.Parallels)
		if physical == 0 {
			continue
		}

		var dim float64
		if in.Section.CoordSystem == layout.Polar || in.Section.Orientation == layout.Overlapping {
			dim = in.WireOuterHeight[pw.WindingName]
		} else {
			dim = in.WireOuterWidth[pw.WindingName]
		}
		if dim <= 0 {
			return 0, fmt.Errorf("%w: %q", ErrUnknownWireDimension, pw.WindingName)
		}

		weighted += dim * float64(physical)
		total += physical
	}
	if total == 0 {
		return 0, ErrNoPartialWindings
	}

	return weighted / float64(total), nil
}

// stackExtentAlongAxis returns the wire outer dimension along the
// layer-stacking axis (the axis perpendicular to turnExtentAlongAxis):
// every conduction layer occupies this much of the section's layer axis,
// regardless of how many turns it holds.
func stackExtentAlongAxis(in Input) (float64, error) {
	total := 0
	weighted := 0.0
	for _, pw := range in.Section.PartialWindings {
		w := findWinding(in.Windings, pw.WindingName)
		physical := section.TurnsForMember(pw, w.Turns, w.Parallels)
		if physical == 0 {
			continue
		}

		var dim float64
		if in.Section.CoordSystem == layout.Polar || in.Section.Orientation == layout.Overlapping {
			dim = in.WireOuterWidth[pw.WindingName]
		} else {
			dim = in.WireOuterHeight[pw.WindingName]
		}
		if dim <= 0 {
			return 0, fmt.Errorf("%w: %q", ErrUnknownWireDimension, pw.WindingName)
		}

		weighted += dim * float64(physical)
		total += physical
	}
	if total == 0 {
		return 0, ErrNoPartialWindings
	}

	return weighted / float64(total), nil
}

// interTurnClearance derives the inter-turn gap from
// interlayerInsulationThickness, applied only when layers lay out
// contiguously (spec.md §4.2: "derived from interlayerInsulationThickness
// projected onto the turn axis if layers are contiguous").
func interTurnClearance(in Input) float64 {
	if in.Section.CoordSystem == layout.Polar || in.Section.Orientation != layout.Contiguous {
		return 0
	}

	names := make([]string, len(in.Section.PartialWindings))
	for i, pw := range in.Section.PartialWindings {
		names[i] = pw.WindingName
	}

	if in.InsulationPlanner != nil {
		return in.InsulationPlanner.InterlayerThickness(names...)
	}

	return in.Policies.InterlayerInsulationThickness
}

func findWinding(ws []winding.Winding, name string) winding.Winding {
	for _, w := range ws {
		if w.Name == name {
			return w
		}
	}

	return winding.Winding{}
}

// distributeAcrossLayers places each partial winding's member turns into
// numLayers conduction layers, in section.PartialWindings declaration
// order, advancing to the next layer only once the current one reaches
// turnsPerLayer capacity (spec.md §4.2 "Parallels-proportion split").
func distributeAcrossLayers(in Input, memberTurns []int, turnsPerLayer, numLayers int, style layout.WindingStyle) []Layer {
	layers := make([]Layer, numLayers)
	for i := range layers {
		layers[i] = Layer{
			Type:           layout.Conduction,
			Orientation:    in.Section.Orientation,
			TurnsAlignment: in.TurnsAlignment,
			WindingStyle:   style,
			CoordSystem:    in.Section.CoordSystem,
		}
	}

	remainingInLayer := make([]int, numLayers)
	for i := range remainingInLayer {
		remainingInLayer[i] = turnsPerLayer
	}

	layerIdx := 0
	for pwIdx, pw := range in.Section.PartialWindings {
		remaining := memberTurns[pwIdx]
		if remaining == 0 {
			continue
		}

		for remaining > 0 {
			if layerIdx >= numLayers {
				layerIdx = numLayers - 1 // overflow: pile onto the last layer
			}
			take := remaining
			if remainingInLayer[layerIdx] > 0 && take > remainingInLayer[layerIdx] {
				take = remainingInLayer[layerIdx]
			}

			fraction := float64(take) / float64(memberTurns[pwIdx])
			props := make([]float64, len(pw.ParallelsProportion))
			for i, p := range pw.ParallelsProportion {
				props[i] = p * fraction
			}
			layers[layerIdx].PartialWindings = append(layers[layerIdx].PartialWindings, winding.PartialWinding{
				WindingName:         pw.WindingName,
				ParallelsProportion: props,
			})

			remainingInLayer[layerIdx] -= take
			remaining -= take

			if remainingInLayer[layerIdx] <= 0 {
				layerIdx++
			}
		}
	}

	for i := range layers {
		layers[i].Name = fmt.Sprintf("layer %d", i+1)
	}

	return layers
}

// interleaveInsulation inserts an insulation layer of thickness
// interlayerInsulationThickness between every pair of adjacent conduction
// layers (spec.md §4.2). Cross-section insulation is §4.1's concern, not
// repeated here. The thickness is the greater of the planner's resolved
// value and the Policies.InterlayerInsulationThickness floor, so a caller
// that only sets the policy still gets insulation layers inserted.
// Returns the interleaved layer list alongside each layer's extent along
// the layer-stacking axis (stackExtent for conduction layers, the
// resolved thickness for inserted ones).
func interleaveInsulation(conduction []Layer, stackExtent float64, planner *insul.Planner, pol policy.Policies) ([]Layer, []float64) {
	extents := make([]float64, len(conduction))
	for i := range extents {
		extents[i] = stackExtent
	}
	if len(conduction) < 2 {
		return conduction, extents
	}

	var names []string
	for _, l := range conduction {
		for _, pw := range l.PartialWindings {
			names = append(names, pw.WindingName)
		}
	}

	thickness := pol.InterlayerInsulationThickness
	if planner != nil {
		if t := planner.InterlayerThickness(names...); t > thickness {
			thickness = t
		}
	}
	if thickness <= 0 {
		return conduction, extents
	}

	layers := make([]Layer, 0, len(conduction)*2-1)
	out := make([]float64, 0, len(conduction)*2-1)
	for i, l := range conduction {
		layers = append(layers, l)
		out = append(out, stackExtent)
		if i == len(conduction)-1 {
			continue
		}
		layers = append(layers, Layer{
			Name:          fmt.Sprintf("insulation layer %d", i+1),
			Type:          layout.Insulation,
			FillingFactor: 1.0,
		})
		out = append(out, thickness)
	}

	return layers, out
}

// layoutLayers assigns Cartesian or polar geometry to each layer along the
// section's layer-stacking axis, honoring the section's Alignment — the
// same centered/inner-top/outer-bottom/spread rule §4.1 applies to
// sections (spec.md §3: Section.Alignment is "alignment for its layers").
func layoutLayers(sec section.Section, layers []Layer, extents []float64, layerAxisLen, startShift float64) {
	if len(layers) == 0 {
		return
	}

	total := 0.0
	for _, e := range extents {
		total += e
	}

	start := layerStackStartOffset(sec.Alignment, total, layerAxisLen, len(layers))
	gap := 0.0
	if sec.Alignment == layout.Spread && len(layers) > 1 && total < layerAxisLen {
		gap = (layerAxisLen - total) / float64(len(layers)-1)
	}

	crossLen := crossAxisLen(sec)
	round := sec.CoordSystem == layout.Polar

	offset := startShift + start
	for i := range layers {
		extent := extents[i]
		if round {
			layers[i].Sector = sectorFor(sec, offset, extent, crossLen)
		} else {
			layers[i].Rect = rectFor(sec, offset, extent, crossLen)
		}
		offset += extent + gap
	}
}

func crossAxisLen(sec section.Section) float64 {
	if sec.CoordSystem == layout.Polar {
		return sec.Sector.SpanAngle
	}
	if sec.Orientation == layout.Overlapping {
		return sec.Rect.Height
	}

	return sec.Rect.Width
}

// layerStackStartOffset mirrors section.startOffset's alignment rule,
// applied to a section's own layer-stacking axis instead of the bobbin
// window (spec.md §9 Open Question: a single-element Spread is treated as
// Centered, as decided for section alignment).
func layerStackStartOffset(alignment layout.Alignment, total, axisLen float64, n int) float64 {
	switch alignment {
	case layout.InnerTop:
		return 0
	case layout.OuterBottom:
		return axisLen - total
	case layout.Spread:
		if n <= 1 {
			return (axisLen - total) / 2 // single element: treated as centered (spec.md §9 Open Question)
		}

		return 0
	default: // Centered
		return (axisLen - total) / 2
	}
}

func rectFor(sec section.Section, offset, extent, crossLen float64) geom.Rect {
	var center geom.Point
	var width, height float64
	if sec.Orientation == layout.Overlapping {
		width = extent
		height = crossLen
		center = geom.Point{X: sec.Rect.MinX() + offset + extent/2, Y: sec.Rect.Center.Y}
	} else {
		width = crossLen
		height = extent
		center = geom.Point{X: sec.Rect.Center.X, Y: sec.Rect.MinY() + offset + extent/2}
	}

	return geom.Rect{Center: center, Width: width, Height: height}
}

func sectorFor(sec section.Section, offset, extent, crossLen float64) geom.Sector {
	return geom.Sector{
		Center:      sec.Sector.Center,
		InnerRadius: sec.Sector.InnerRadius + offset,
		OuterRadius: sec.Sector.InnerRadius + offset + extent,
		StartAngle:  sec.Sector.StartAngle,
		SpanAngle:   crossLen,
	}
}
