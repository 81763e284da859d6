package section

import (
	"fmt"
	"math"

	"github.com/gowind/coilwind/bobbin"
	"github.com/gowind/coilwind/geom"
	"github.com/gowind/coilwind/insul"
	"github.com/gowind/coilwind/layout"
	"github.com/gowind/coilwind/policy"
	"github.com/gowind/coilwind/winding"
)

// Input gathers everything Partition needs (spec.md §4.1).
type Input struct {
	// Windings is the original (pre-virtualization) functional
	// description, needed to recover each virtual winding member's own
	// turn/parallel counts when expanding a position's allocation back
	// into per-member PartialWindings.
	Windings []winding.Winding

	// VirtualWindings is the merged view Pattern indexes into (spec.md
	// §4.1 Virtualization; see winding.Virtualize).
	VirtualWindings []winding.VirtualWinding

	// WireOuterWidth/WireOuterHeight give each original winding's wire
	// outer footprint, keyed by Winding.Name.
	WireOuterWidth  map[string]float64
	WireOuterHeight map[string]float64

	Pattern     []int
	Repetitions int
	Proportions []float64

	Bobbin            bobbin.Bobbin
	Policies          policy.Policies
	InsulationPlanner *insul.Planner
}

// Result is Partition's output: the ordered section list plus the
// overflow flag recorded on conduction sections via FillingFactor.
type Result struct {
	Sections []Section
}

// slot is one element of the expanded, turns-assigned sequence before
// geometry is laid out.
type slot struct {
	virtualIndex int // -1 for an inserted insulation slot
	turns        int
	isInsulation bool
	thickness    float64 // valid when isInsulation
	// isolationSide is used to decide insulation insertion; for an
	// insulation slot it is unset.
	isolationSide layout.IsolationSide
	members       []string
}

// Partition implements the partitioner (spec.md §4.1): pattern expansion,
// proportional turn distribution, insulation-section insertion, and
// Cartesian/polar geometry allocation under the bobbin's orientation and
// alignment.
func Partition(in Input) (Result, error) {
	if err := validate(in); err != nil {
		return Result{}, err
	}

	seq := make([]int, 0, len(in.Pattern)*in.Repetitions)
	for r := 0; r < in.Repetitions; r++ {
		seq = append(seq, in.Pattern...)
	}

	assigned, err := distributeTurns(in, seq)
	if err != nil {
		return Result{}, err
	}

	slots := make([]slot, 0, len(seq))
	for i, w := range seq {
		if assigned[i] == 0 {
			continue // an entry with zero assigned turns is elided (spec.md §4.1)
		}
		vw := in.VirtualWindings[w]
		slots = append(slots, slot{
			virtualIndex:  w,
			turns:         assigned[i],
			isolationSide: vw.IsolationSide,
			members:       vw.Members,
		})
	}

	slots = insertInsulationSlots(slots, in.InsulationPlanner, in.Policies)

	orientation := in.Bobbin.SectionsOrientation
	axisLen, crossLen := axisExtents(in.Bobbin, orientation)

	extents := make([]float64, len(slots))
	total := 0.0
	for i, s := range slots {
		if s.isInsulation {
			extents[i] = s.thickness
		} else {
			extents[i] = float64(s.turns) * effectiveWireExtent(in, s.virtualIndex, orientation)
		}
		total += extents[i]
	}

	fillingFactor := 1.0
	if total > axisLen+geom.Epsilon {
		if !in.Policies.WindEvenIfNotFit {
			return Result{}, ErrDoesNotFit
		}
		fillingFactor = total / axisLen
	}

	sections := layoutSlots(in, slots, extents, total, axisLen, crossLen, orientation, fillingFactor)

	return Result{Sections: sections}, nil
}

func validate(in Input) error {
	if len(in.Pattern) == 0 {
		return ErrEmptyPattern
	}
	if in.Repetitions < 1 {
		return ErrInvalidRepetitions
	}
	for _, idx := range in.Pattern {
		if idx < 0 || idx >= len(in.VirtualWindings) {
			return ErrPatternIndexOutOfRange
		}
	}
	if len(in.Proportions) > 0 {
		if len(in.Proportions) != len(in.VirtualWindings) {
			return ErrProportionsLength
		}
		sum := 0.0
		for _, p := range in.Proportions {
			sum += p
		}
		if math.Abs(sum-1.0) > 1e-6 {
			return ErrProportionsSum
		}
	}

	return nil
}

// distributeTurns implements the per-position turn distribution described
// in spec.md §4.1: each virtual winding's total physical turns are split
// across its occurrences in seq, any remainder landing on the last
// occurrence.
func distributeTurns(in Input, seq []int) ([]int, error) {
	assigned := make([]int, len(seq))

	positionsByWinding := make(map[int][]int)
	for i, w := range seq {
		positionsByWinding[w] = append(positionsByWinding[w], i)
	}

	for w, vw := range in.VirtualWindings {
		positions := positionsByWinding[w]
		if len(positions) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrWindingNotInPattern, vw.Name)
		}

		total := vw.PhysicalTurns()
		count := len(positions)

		share := float64(total) / float64(count)
		if len(in.Proportions) > 0 {
			share = float64(total) * in.Proportions[w] / float64(count)
		}

		base := int(math.Floor(share))
		sum := 0
		for _, pos := range positions {
			assigned[pos] = base
			sum += base
		}
		assigned[positions[len(positions)-1]] += total - sum
	}

	return assigned, nil
}

// insertInsulationSlots inserts an insulation slot between any two
// adjacent conduction slots whose isolation sides differ (spec.md §4.1).
// The thickness is the greater of the planner's resolved value and the
// Policies.IntersectionInsulationThickness floor, so a caller that only
// sets the policy (without attaching a Planner) still gets insulation.
func insertInsulationSlots(slots []slot, planner *insul.Planner, pol policy.Policies) []slot {
	if len(slots) < 2 {
		return slots
	}

	out := make([]slot, 0, len(slots)*2)
	for i, s := range slots {
		out = append(out, s)
		if i == len(slots)-1 {
			continue
		}
		next := slots[i+1]
		if s.isolationSide == next.isolationSide {
			continue
		}

		thickness := pol.IntersectionInsulationThickness
		if planner != nil {
			if t := planner.IntersectionThickness(append(append([]string{}, s.members...), next.members...)...); t > thickness {
				thickness = t
			}
		}
		if thickness <= 0 {
			continue
		}

		out = append(out, slot{isInsulation: true, thickness: thickness})
	}

	return out
}

func effectiveWireExtent(in Input, virtualIndex int, orientation layout.Orientation) float64 {
	vw := in.VirtualWindings[virtualIndex]
	totalPhysical := vw.PhysicalTurns()
	if totalPhysical == 0 {
		return 0
	}

	weighted := 0.0
	for _, m := range vw.Members {
		member := findWinding(in.Windings, m)
		memberPhysical := member.Turns * member.Parallels

		var dim float64
		if orientation == layout.Overlapping {
			dim = in.WireOuterWidth[m]
		} else {
			dim = in.WireOuterHeight[m]
		}
		weighted += dim * float64(memberPhysical)
	}

	return weighted / float64(totalPhysical)
}

func findWinding(ws []winding.Winding, name string) winding.Winding {
	for _, w := range ws {
		if w.Name == name {
			return w
		}
	}

	return winding.Winding{}
}

// axisExtents returns (layout-axis length, cross-axis length) in the
// bobbin's usable geometry for the given section orientation. Overlapping
// always lays out along the window's Cartesian width; Contiguous lays
// out along Cartesian height or, for a round window, the angular span.
func axisExtents(b bobbin.Bobbin, orientation layout.Orientation) (float64, float64) {
	if b.Window.Shape == bobbin.RoundShape {
		sector := b.UsableSector()

		return sector.SpanAngle, sector.OuterRadius - sector.InnerRadius
	}

	rect := b.UsableRect()
	if orientation == layout.Overlapping {
		return rect.Width, rect.Height
	}

	return rect.Height, rect.Width
}

// layoutSlots assigns Cartesian or polar geometry to each slot, honoring
// the bobbin's SectionsAlignment, and converts slots into Sections.
func layoutSlots(in Input, slots []slot, extents []float64, total, axisLen, crossLen float64, orientation layout.Orientation, fillingFactor float64) []Section {
	start := startOffset(in.Bobbin.SectionsAlignment, total, axisLen, len(slots))
	gap := 0.0
	if in.Bobbin.SectionsAlignment == layout.Spread && len(slots) > 1 && total < axisLen {
		gap = (axisLen - total) / float64(len(slots)-1)
	}

	sections := make([]Section, 0, len(slots))
	offset := start
	insulationCounter := 0
	occurrence := make(map[int]int)

	round := in.Bobbin.Window.Shape == bobbin.RoundShape

	for i, s := range slots {
		extent := extents[i]

		var sec Section
		if round {
			sec = sectorSectionFor(in.Bobbin, orientation, offset, extent, crossLen)
		} else {
			sec = rectSectionFor(in.Bobbin, orientation, offset, extent, crossLen)
		}

		sec.Orientation = layout.Contiguous
		sec.Alignment = layout.Centered

		if s.isInsulation {
			sec.Type = layout.Insulation
			sec.Name = fmt.Sprintf("insulation section %d", insulationCounter)
			insulationCounter++
		} else {
			vw := in.VirtualWindings[s.virtualIndex]
			occurrence[s.virtualIndex]++
			sec.Type = layout.Conduction
			sec.Name = fmt.Sprintf("%s section %d", vw.Name, occurrence[s.virtualIndex])
			sec.FillingFactor = fillingFactor
			sec.PartialWindings = partialWindingsFor(in, vw, s.turns)
		}

		sections = append(sections, sec)

		offset += extent + gap
	}

	return sections
}

func startOffset(alignment layout.Alignment, total, axisLen float64, n int) float64 {
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

func rectSectionFor(b bobbin.Bobbin, orientation layout.Orientation, offset, extent, crossLen float64) Section {
	usable := b.UsableRect()

	var center geom.Point
	var width, height float64
	if orientation == layout.Overlapping {
		width = extent
		height = crossLen
		center = geom.Point{X: usable.MinX() + offset + extent/2, Y: usable.Center.Y}
	} else {
		width = crossLen
		height = extent
		center = geom.Point{X: usable.Center.X, Y: usable.MinY() + offset + extent/2}
	}

	return Section{
		CoordSystem: layout.Cartesian,
		Rect:        geom.Rect{Center: center, Width: width, Height: height},
	}
}

func sectorSectionFor(b bobbin.Bobbin, orientation layout.Orientation, offset, extent, crossLen float64) Section {
	usable := b.UsableSector()

	return Section{
		CoordSystem: layout.Polar,
		Sector: geom.Sector{
			Center:      usable.Center,
			InnerRadius: usable.InnerRadius,
			OuterRadius: usable.OuterRadius,
			StartAngle:  usable.StartAngle + offset,
			SpanAngle:   extent,
		},
	}
}

func partialWindingsFor(in Input, vw winding.VirtualWinding, assignedTurns int) []winding.PartialWinding {
	totalPhysical := vw.PhysicalTurns()
	out := make([]winding.PartialWinding, 0, len(vw.Members))

	for _, name := range vw.Members {
		member := findWinding(in.Windings, name)
		memberPhysical := member.Turns * member.Parallels
		if memberPhysical == 0 {
			continue
		}

		proportion := float64(assignedTurns) / float64(totalPhysical)

		props := make([]float64, member.Parallels)
		for i := range props {
			props[i] = proportion
		}

		out = append(out, winding.PartialWinding{
			WindingName:         name,
			ParallelsProportion: props,
		})
	}

	return out
}
