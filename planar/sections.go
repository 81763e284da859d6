package planar

import (
	"fmt"
	"math"

	"github.com/gowind/coilwind/bobbin"
	"github.com/gowind/coilwind/geom"
	"github.com/gowind/coilwind/layout"
	"github.com/gowind/coilwind/policy"
	"github.com/gowind/coilwind/section"
	"github.com/gowind/coilwind/winding"
)

// SectionsInput gathers everything Sections needs (spec.md §4.5,
// "windByPlanarSections(stackUp, interWindingInsulation, insulationToCore)").
type SectionsInput struct {
	// StackUp names the winding index occupying each PCB copper layer, in
	// board order starting nearest the core.
	StackUp []int

	Windings []winding.Winding

	// WireOuterHeight gives each winding's fixed copper thickness; the
	// in-plane trace width is only needed later, by Turns.
	WireOuterHeight map[string]float64

	// InterWindingInsulation is the clearance inserted between two runs of
	// differing windings.
	InterWindingInsulation float64

	// InsulationToCore offsets the first run away from the core wall.
	InsulationToCore float64

	Bobbin   bobbin.Bobbin
	Policies policy.Policies
}

// SectionsResult is the Sections stage's output: the board's runs in stack
// order, clearance runs included.
type SectionsResult struct {
	Runs []Run
}

// Sections implements the planar partitioner. The board stacks vertically
// along the bobbin window's height axis (spec.md §4.5 reuses §4.1's
// Contiguous convention: layer-stacking axis is Rect.Height); within a
// copper layer, turns run along the width axis.
func Sections(in SectionsInput) (SectionsResult, error) {
	if len(in.StackUp) == 0 {
		return SectionsResult{}, ErrEmptyStackUp
	}
	for _, idx := range in.StackUp {
		if idx < 0 || idx >= len(in.Windings) {
			return SectionsResult{}, ErrStackUpIndexOutOfRange
		}
	}

	runs := collapseRuns(in.StackUp)
	assignTurns(in.Windings, runs)
	runs = interleaveClearance(runs)

	usable := in.Bobbin.UsableRect()
	axisLen := usable.Height - in.InsulationToCore
	crossLen := usable.Width

	extents := make([]float64, len(runs))
	total := 0.0
	for i, r := range runs {
		if r.WindingIndex < 0 {
			extents[i] = in.InterWindingInsulation
		} else {
			w := in.Windings[r.WindingIndex]
			height, ok := in.WireOuterHeight[w.Name]
			if !ok || height <= 0 {
				return SectionsResult{}, fmt.Errorf("%w: %q", ErrUnknownWireDimension, w.Name)
			}
			extents[i] = height * float64(r.CopperLayers)
		}
		total += extents[i]
	}

	fillingFactor := 1.0
	if total > axisLen+geom.Epsilon {
		if !in.Policies.WindEvenIfNotFit {
			return SectionsResult{}, ErrDoesNotFit
		}
		fillingFactor = total / axisLen
	}

	offset := in.InsulationToCore
	insulationCounter := 0
	occurrence := make(map[int]int)
	for i := range runs {
		extent := extents[i]
		center := geom.Point{X: usable.Center.X, Y: usable.MinY() + offset + extent/2}
		rect := geom.Rect{Center: center, Width: crossLen, Height: extent}

		if runs[i].WindingIndex < 0 {
			runs[i].Section = section.Section{
				Name:        fmt.Sprintf("planar insulation section %d", insulationCounter),
				CoordSystem: layout.Cartesian,
				Rect:        rect,
				Type:        layout.Insulation,
				Orientation: layout.Contiguous,
				Alignment:   layout.InnerTop,
			}
			insulationCounter++
		} else {
			w := in.Windings[runs[i].WindingIndex]
			occurrence[runs[i].WindingIndex]++
			totalPhysical := w.Turns * w.Parallels
			runs[i].Section = section.Section{
				Name:            fmt.Sprintf("%s planar section %d", w.Name, occurrence[runs[i].WindingIndex]),
				CoordSystem:     layout.Cartesian,
				Rect:            rect,
				Type:            layout.Conduction,
				Orientation:     layout.Contiguous,
				Alignment:       layout.InnerTop,
				FillingFactor:   fillingFactor,
				PartialWindings: partialWindingFor(w, runs[i].assignedTurns, totalPhysical),
			}
		}

		offset += extent
	}

	return SectionsResult{Runs: runs}, nil
}

// partialWindingFor builds the single-member PartialWinding a planar run
// carries for winding w, spreading assignedTurns evenly across w's
// parallels.
func partialWindingFor(w winding.Winding, assignedTurns, totalPhysical int) []winding.PartialWinding {
	if totalPhysical == 0 {
		return nil
	}

	proportion := float64(assignedTurns) / float64(totalPhysical)
	props := make([]float64, w.Parallels)
	for i := range props {
		props[i] = proportion
	}

	return []winding.PartialWinding{{WindingName: w.Name, ParallelsProportion: props}}
}

// collapseRuns groups stackUp into maximal runs of equal winding index.
func collapseRuns(stackUp []int) []Run {
	var runs []Run
	for _, idx := range stackUp {
		if n := len(runs); n > 0 && runs[n-1].WindingIndex == idx {
			runs[n-1].CopperLayers++

			continue
		}
		runs = append(runs, Run{WindingIndex: idx, CopperLayers: 1})
	}

	return runs
}

// assignTurns splits each winding's total (turns * parallels) physical
// turns across its runs, any remainder landing on the last run (mirrors
// section.distributeTurns' per-occurrence rule, spec.md §9 decision 4).
func assignTurns(windings []winding.Winding, runs []Run) {
	byWinding := make(map[int][]int)
	for i, r := range runs {
		byWinding[r.WindingIndex] = append(byWinding[r.WindingIndex], i)
	}

	for idx, positions := range byWinding {
		w := windings[idx]
		total := w.Turns * w.Parallels
		count := len(positions)

		base := int(math.Floor(float64(total) / float64(count)))
		sum := 0
		for _, pos := range positions {
			runs[pos].assignedTurns = base
			sum += base
		}
		runs[positions[len(positions)-1]].assignedTurns += total - sum
	}
}

// interleaveClearance inserts a clearance run between every pair of
// adjacent runs (every run boundary is, by construction, a different
// winding).
func interleaveClearance(runs []Run) []Run {
	if len(runs) < 2 {
		return runs
	}

	out := make([]Run, 0, len(runs)*2-1)
	for i, r := range runs {
		out = append(out, r)
		if i < len(runs)-1 {
			out = append(out, Run{WindingIndex: -1})
		}
	}

	return out
}
