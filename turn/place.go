package turn

import (
	"fmt"
	"math"

	"github.com/gowind/coilwind/geom"
	"github.com/gowind/coilwind/layer"
	"github.com/gowind/coilwind/layout"
	"github.com/gowind/coilwind/policy"
	"github.com/gowind/coilwind/winding"
)

// Input gathers everything Place needs for one layer (spec.md §4.3).
type Input struct {
	Layer       layer.Layer
	SectionName string

	// Windings is the original functional description.
	Windings []winding.Winding

	WireOuterWidth  map[string]float64
	WireOuterHeight map[string]float64

	// MeanTurnLength estimates one turn's conductor length per winding,
	// supplied by the caller from bobbin geometry (spec.md §3 Turn
	// "estimated length").
	MeanTurnLength map[string]float64

	// Counters tracks the next unassigned turn index per winding per
	// parallel, keyed by winding name. Place mutates the slices in
	// place as it consumes turns, so the caller can thread one Counters
	// map across every layer of the same winding in placement order.
	Counters map[string][]int

	Direction layout.TurnDirection

	Policies policy.Policies
}

// Result is Place's output: the ordered turn list for one layer.
type Result struct {
	Turns         []Turn
	FillingFactor float64
}

// pendingTurn is one not-yet-positioned turn, in emission order.
type pendingTurn struct {
	windingName string
	parallel    int
	index       int
	extent      float64 // wire outer dimension along the turn axis
	stack       float64 // wire outer dimension along the layer's fixed axis
}

// Place implements the placer (spec.md §4.3). It expands the layer's
// partial windings into individual turns honoring the configured winding
// style, then positions them along the layer's turn axis under
// turnsAlignment, in Cartesian or polar coordinates as the layer dictates.
func Place(in Input) (Result, error) {
	if in.Layer.Type == layout.Insulation {
		return Result{FillingFactor: 1.0}, nil
	}

	pending, err := expandPartialWindings(in)
	if err != nil {
		return Result{}, err
	}
	if len(pending) == 0 {
		return Result{}, nil
	}

	if in.Layer.CoordSystem == layout.Polar {
		return placePolar(in, pending)
	}

	return placeCartesian(in, pending)
}

// expandPartialWindings turns each layer.PartialWinding entry into an
// ordered list of pendingTurn values, honoring the layer's WindingStyle
// (spec.md §4.2 "Winding styles").
func expandPartialWindings(in Input) ([]pendingTurn, error) {
	var pending []pendingTurn

	for _, pw := range in.Layer.PartialWindings {
		w := findWinding(in.Windings, pw.WindingName)
		extent, stack, err := wireExtents(in, pw.WindingName)
		if err != nil {
			return nil, err
		}

		counter := in.Counters[pw.WindingName]
		if counter == nil {
			counter = make([]int, w.Parallels)
			in.Counters[pw.WindingName] = counter
		}

		counts := make([]int, len(pw.ParallelsProportion))
		for p, frac := range pw.ParallelsProportion {
			counts[p] = int(math.Round(frac * float64(w.Turns)))
			if rem := w.Turns - counter[p]; counts[p] > rem {
				counts[p] = rem
			}
		}

		if in.Layer.WindingStyle == layout.ConsecutiveParallels {
			maxCount := 0
			for _, c := range counts {
				if c > maxCount {
					maxCount = c
				}
			}
			for t := 0; t < maxCount; t++ {
				for p, c := range counts {
					if t >= c {
						continue
					}
					pending = append(pending, pendingTurn{
						windingName: pw.WindingName,
						parallel:    p,
						index:       counter[p],
						extent:      extent,
						stack:       stack,
					})
					counter[p]++
				}
			}
		} else {
			for p, c := range counts {
				for t := 0; t < c; t++ {
					pending = append(pending, pendingTurn{
						windingName: pw.WindingName,
						parallel:    p,
						index:       counter[p],
						extent:      extent,
						stack:       stack,
					})
					counter[p]++
				}
			}
		}
	}

	return pending, nil
}

func wireExtents(in Input, windingName string) (turnAxisExtent, stackAxisExtent float64, err error) {
	width := in.WireOuterWidth[windingName]
	height := in.WireOuterHeight[windingName]
	if width <= 0 || height <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownWireDimension, windingName)
	}

	if in.Layer.CoordSystem == layout.Polar || in.Layer.Orientation == layout.Overlapping {
		return height, width, nil
	}

	return width, height, nil
}

func findWinding(ws []winding.Winding, name string) winding.Winding {
	for _, w := range ws {
		if w.Name == name {
			return w
		}
	}

	return winding.Winding{}
}

// placeCartesian lays pending turns sequentially along the layer's turn
// axis (Rect.Height for Overlapping orientation, Rect.Width for
// Contiguous), under turnsAlignment.
func placeCartesian(in Input, pending []pendingTurn) (Result, error) {
	axisLen := in.Layer.Rect.Width
	if in.Layer.Orientation == layout.Overlapping {
		axisLen = in.Layer.Rect.Height
	}

	total := 0.0
	for _, p := range pending {
		total += p.extent
	}

	fillingFactor := 1.0
	if total > axisLen+geom.Epsilon {
		if !in.Policies.WindEvenIfNotFit {
			return Result{}, ErrDoesNotFit
		}
		fillingFactor = total / axisLen
	}

	start := turnAxisStartOffset(in.Layer.TurnsAlignment, total, axisLen, len(pending))
	gap := 0.0
	if in.Layer.TurnsAlignment == layout.Spread && len(pending) > 1 && total < axisLen {
		gap = (axisLen - total) / float64(len(pending)-1)
	}

	turns := make([]Turn, len(pending))
	offset := start
	for i, p := range pending {
		var center geom.Point
		var width, height float64
		if in.Layer.Orientation == layout.Overlapping {
			width = p.stack
			height = p.extent
			center = geom.Point{X: in.Layer.Rect.Center.X, Y: in.Layer.Rect.MinY() + offset + p.extent/2}
		} else {
			width = p.extent
			height = p.stack
			center = geom.Point{X: in.Layer.Rect.MinX() + offset + p.extent/2, Y: in.Layer.Rect.Center.Y}
		}

		turns[i] = Turn{
			Name:            fmt.Sprintf("%s parallel %d turn %d", p.windingName, p.parallel, p.index),
			WindingName:     p.windingName,
			Parallel:        p.parallel,
			Index:           p.index,
			SectionName:     in.SectionName,
			LayerName:       in.Layer.Name,
			CoordSystem:     layout.Cartesian,
			Center:          center,
			Width:           width,
			Height:          height,
			Orientation:     in.Direction,
			EstimatedLength: in.MeanTurnLength[p.windingName],
		}

		offset += p.extent + gap
	}

	return Result{Turns: turns, FillingFactor: fillingFactor}, nil
}

// placePolar lays pending turns sequentially along the layer's angular
// span, from the layer's start angle, under turnsAlignment, all at the
// layer's mid-radius (spec.md §4.3 "Polar mode").
func placePolar(in Input, pending []pendingTurn) (Result, error) {
	radius := in.Layer.Sector.MidRadius()

	spans := make([]float64, len(pending))
	total := 0.0
	for i, p := range pending {
		spans[i] = geom.ArcSpanForChord(p.extent, radius)
		total += spans[i]
	}

	axisLen := in.Layer.Sector.SpanAngle

	fillingFactor := 1.0
	if total > axisLen+geom.Epsilon {
		if !in.Policies.WindEvenIfNotFit {
			return Result{}, ErrDoesNotFit
		}
		fillingFactor = total / axisLen
	}

	start := turnAxisStartOffset(in.Layer.TurnsAlignment, total, axisLen, len(pending))
	gap := 0.0
	if in.Layer.TurnsAlignment == layout.Spread && len(pending) > 1 && total < axisLen {
		gap = (axisLen - total) / float64(len(pending)-1)
	}

	turns := make([]Turn, len(pending))
	offset := start
	for i, p := range pending {
		span := spans[i]
		centerAngle := geom.NormalizeAngle(in.Layer.Sector.StartAngle + offset + span/2)

		center := geom.PointAtRadius(in.Layer.Sector.Center, radius, centerAngle)
		left := geom.PointAtRadius(in.Layer.Sector.Center, radius, geom.NormalizeAngle(in.Layer.Sector.StartAngle+offset))
		right := geom.PointAtRadius(in.Layer.Sector.Center, radius, geom.NormalizeAngle(in.Layer.Sector.StartAngle+offset+span))

		turns[i] = Turn{
			Name:                  fmt.Sprintf("%s parallel %d turn %d", p.windingName, p.parallel, p.index),
			WindingName:           p.windingName,
			Parallel:              p.parallel,
			Index:                 p.index,
			SectionName:           in.SectionName,
			LayerName:             in.Layer.Name,
			CoordSystem:           layout.Polar,
			Center:                center,
			Width:                 p.extent,
			Height:                p.stack,
			Orientation:           in.Direction,
			RotationAngle:         centerAngle,
			EstimatedLength:       in.MeanTurnLength[p.windingName],
			AdditionalCoordinates: &[2]geom.Point{left, right},
		}

		offset += span + gap
	}

	return Result{Turns: turns, FillingFactor: fillingFactor}, nil
}

// turnAxisStartOffset mirrors section.startOffset's alignment rule,
// applied to one layer's turn axis (spec.md §4.3's four alignments are the
// same rule §4.1 applies to sections, one level deeper).
func turnAxisStartOffset(alignment layout.Alignment, total, axisLen float64, n int) float64 {
	switch alignment {
	case layout.InnerTop:
		return 0
	case layout.OuterBottom:
		return axisLen - total
	case layout.Spread:
		if n <= 1 {
			return (axisLen - total) / 2 // single turn: treated as centered (spec.md §9 Open Question)
		}

		return 0
	default: // Centered
		return (axisLen - total) / 2
	}
}
