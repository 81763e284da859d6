package coil

import (
	"fmt"

	"github.com/gowind/coilwind/geom"
	"github.com/gowind/coilwind/layer"
	"github.com/gowind/coilwind/layout"
	"github.com/gowind/coilwind/section"
	"github.com/gowind/coilwind/turn"
)

// SectionsOption overrides one field of the pattern/repetitions/
// proportions triple for a single WindBySections call (spec.md §6
// "windBySections(proportions?, pattern?, repetitions?)"), without
// disturbing the values SetInterleavingLevel/SetPattern left in place for
// later calls.
type SectionsOption func(*Coil)

// WithPattern overrides the winding pattern for one WindBySections call.
func WithPattern(pattern []int) SectionsOption {
	return func(c *Coil) { c.pattern = append([]int(nil), pattern...) }
}

// WithRepetitions overrides the pattern repetition count for one
// WindBySections call.
func WithRepetitions(n int) SectionsOption {
	return func(c *Coil) { c.repetitions = n }
}

// WithProportions overrides the per-virtual-winding proportions for one
// WindBySections call.
func WithProportions(p []float64) SectionsOption {
	return func(c *Coil) { c.proportions = append([]float64(nil), p...) }
}

// WindBySections runs the partitioner (spec.md §4.1), overwriting any
// previously built sections/layers/turns. Section.Orientation defaults to
// the partitioner's Contiguous baseline and is then overridden per
// SetLayersOrientation; Section.Alignment keeps the partitioner's Centered
// value (SetSectionAlignment acts through the bobbin's SectionsAlignment
// instead). Section.Margin is filled in from any PreloadMargins calls.
func (c *Coil) WindBySections(opts ...SectionsOption) error {
	if len(opts) > 0 {
		pattern, repetitions, proportions := c.pattern, c.repetitions, c.proportions
		defer func() { c.pattern, c.repetitions, c.proportions = pattern, repetitions, proportions }()
	}
	for _, opt := range opts {
		opt(c)
	}

	res, err := section.Partition(section.Input{
		Windings:          c.windings,
		VirtualWindings:   c.virtual,
		WireOuterWidth:    c.wireOuterWidth,
		WireOuterHeight:   c.wireOuterHeight,
		Pattern:           c.pattern,
		Repetitions:       c.repetitions,
		Proportions:       c.proportions,
		Bobbin:            c.bobbin,
		Policies:          c.policies,
		InsulationPlanner: c.insulation,
	})
	if err != nil {
		return newError(err)
	}

	for i := range res.Sections {
		sec := &res.Sections[i]
		if o, ok := c.perSectionLayersOrientation[sec.Name]; ok {
			sec.Orientation = o
		} else {
			sec.Orientation = c.globalLayersOrientation
		}
		if m, ok := c.preloadedMargins[sec.Name]; ok {
			sec.Margin = m
		}
	}

	c.sections = res.Sections
	c.layers = nil
	c.turns = nil
	c.layerSection = nil
	c.counters = make(map[string][]int)

	return nil
}

// WindByLayers runs the packer (spec.md §4.2) over every section built by
// WindBySections, in section order. A section's chosen WindingStyle is
// pinned on first success and reproduced on any later call (rewind or
// otherwise) for the same section (spec.md §4.2).
func (c *Coil) WindByLayers() error {
	if len(c.sections) == 0 {
		return newError(ErrSectionsNotBuilt)
	}

	var layers []layer.Layer
	var owners []string

	for _, sec := range c.sections {
		var stylePtr *layout.WindingStyle
		if s, ok := c.pinnedStyles[sec.Name]; ok {
			stylePtr = &s
		}

		alignment := c.globalTurnsAlignment
		if a, ok := c.perSectionTurnsAlignment[sec.Name]; ok {
			alignment = a
		}

		res, err := layer.Pack(layer.Input{
			Section:           sec,
			Windings:          c.windings,
			WireOuterWidth:    c.wireOuterWidth,
			WireOuterHeight:   c.wireOuterHeight,
			TurnsAlignment:    alignment,
			WindingStyle:      stylePtr,
			Policies:          c.policies,
			InsulationPlanner: c.insulation,
		})
		if err != nil {
			return newError(err)
		}

		if sec.Type == layout.Conduction && stylePtr == nil {
			if style, ok := observedStyle(res.Layers); ok {
				c.pinnedStyles[sec.Name] = style
			}
		}

		for _, l := range res.Layers {
			layers = append(layers, l)
			owners = append(owners, sec.Name)
		}
	}

	c.layers = layers
	c.layerSection = owners
	c.turns = nil
	c.counters = make(map[string][]int)

	return nil
}

// observedStyle recovers the WindingStyle layer.Pack auto-selected, read
// back off the first conduction layer it produced. The bool reports
// whether any conduction layer was found at all.
func observedStyle(layers []layer.Layer) (layout.WindingStyle, bool) {
	for _, l := range layers {
		if l.Type == layout.Conduction {
			return l.WindingStyle, true
		}
	}

	return 0, false
}

// WindByTurns runs the placer (spec.md §4.3) over every layer built by
// WindByLayers, in layer order, threading one Counters map across the
// whole pass so per-winding turn indices advance monotonically regardless
// of which section/layer they land in.
func (c *Coil) WindByTurns() error {
	if len(c.layers) == 0 {
		return newError(ErrLayersNotBuilt)
	}

	counters := make(map[string][]int)
	var turns []turn.Turn

	for i, l := range c.layers {
		if l.Type != layout.Conduction {
			continue
		}

		res, err := turn.Place(turn.Input{
			Layer:           l,
			SectionName:     c.layerSection[i],
			Windings:        c.windings,
			WireOuterWidth:  c.wireOuterWidth,
			WireOuterHeight: c.wireOuterHeight,
			MeanTurnLength:  c.meanTurnLength,
			Counters:        counters,
			Direction:       c.direction,
			Policies:        c.policies,
		})
		if err != nil {
			return newError(err)
		}

		turns = append(turns, res.Turns...)
	}

	c.turns = turns
	c.counters = counters

	if c.policies.DelimitAndCompact {
		c.compactSections()
	}

	return nil
}

// Wind runs the full sections -> layers -> turns pipeline, retrying with
// WindEvenIfNotFit relaxed on a DoesNotFit failure, up to
// Policies.MaxRewinds times (spec.md §4.3, §9). The rewind trace returned
// by Attempts is cleared on entry, and every failed attempt is appended to
// it; a successful attempt adds no entry.
func (c *Coil) Wind() error {
	c.attempts = nil
	limit := c.policies.MaxRewinds
	if limit <= 0 {
		limit = 1
	}

	var lastErr error
	relaxed := false

	for i := 0; i < limit; i++ {
		err := c.windOnce()
		if err == nil {
			return nil
		}

		lastErr = err

		var ce *Error
		stage, ok := errorStage(err, &ce)
		reason := err.Error()
		if ok {
			reason = ce.Reason
		}

		if !ok || ce.Kind != DoesNotFit || !c.policies.TryRewind || relaxed {
			c.attempts = append(c.attempts, Attempt{Stage: stage, Reason: reason})
			return err
		}

		c.attempts = append(c.attempts, Attempt{Stage: stage, Reason: reason, Relaxation: "windEvenIfNotFit"})
		c.policies.WindEvenIfNotFit = true
		relaxed = true
	}

	return lastErr
}

// windOnce runs one sections -> layers -> turns pass, reporting which
// stage failed via the returned error's wrapped stage tag.
func (c *Coil) windOnce() error {
	if err := c.WindBySections(); err != nil {
		return fmt.Errorf("sections: %w", err)
	}
	if err := c.WindByLayers(); err != nil {
		return fmt.Errorf("layers: %w", err)
	}
	if err := c.WindByTurns(); err != nil {
		return fmt.Errorf("turns: %w", err)
	}

	return nil
}

// errorStage recovers the "sections"/"layers"/"turns" stage tag windOnce
// wrapped its error with, and the underlying *Error via errors.As.
func errorStage(err error, out **Error) (string, bool) {
	msg := err.Error()
	stage := "turns"
	switch {
	case len(msg) >= 8 && msg[:8] == "sections":
		stage = "sections"
	case len(msg) >= 6 && msg[:6] == "layers":
		stage = "layers"
	}

	var ce *Error
	if !asError(err, &ce) {
		return stage, false
	}

	*out = ce

	return stage, true
}

// asError is errors.As specialized for *Error, kept local to avoid an
// import cycle concern between this file and types.go's Error.
func asError(err error, target **Error) bool {
	for err != nil {
		if ce, ok := err.(*Error); ok {
			*target = ce
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}

	return false
}

// AddMarginToSectionByIndex preloads a margin for the section currently at
// sectionIndex and reruns the full sections -> layers -> turns pipeline
// (spec.md glossary "Margin"). A partial re-pack of one section alone
// cannot be done safely: turn.Place's Counters accumulate per-winding
// turn indices monotonically across every layer of a winding in placement
// order, so repacking one section in isolation would desync counters for
// any other section sharing a winding.
func (c *Coil) AddMarginToSectionByIndex(sectionIndex int, low, high float64) error {
	if sectionIndex < 0 || sectionIndex >= len(c.sections) {
		return newError(ErrSectionIndexOutOfRange)
	}

	c.PreloadMargins(c.sections[sectionIndex].Name, low, high)

	return c.windOnce()
}

// compactSections tightens each conduction section's geometry to its own
// turns' bounding box (spec.md §4.3 DelimitAndCompact). Cartesian
// sections reuse geom.BoundRects; polar sections shrink only in angle, to
// the span between their first and last turn centres, and keep their
// radial extent unchanged. This does not re-center alignment or widen
// neighboring sections to fill the freed space — a fuller
// edge-to-edge-accurate compaction is out of scope here.
func (c *Coil) compactSections() {
	bySection := make(map[string][]turn.Turn)
	for _, t := range c.turns {
		bySection[t.SectionName] = append(bySection[t.SectionName], t)
	}

	for i := range c.sections {
		sec := &c.sections[i]
		ts := bySection[sec.Name]
		if sec.Type != layout.Conduction || len(ts) == 0 {
			continue
		}

		switch sec.CoordSystem {
		case layout.Cartesian:
			rects := make([]geom.Rect, len(ts))
			for j, t := range ts {
				rects[j] = geom.Rect{Center: t.Center, Width: t.Width, Height: t.Height}
			}
			sec.Rect = geom.BoundRects(rects)
		case layout.Polar:
			sec.Sector = compactSector(sec.Sector, ts)
		}
	}
}

// compactSector shrinks sector's StartAngle/SpanAngle to the range of ts'
// turn centre angles. The sector's radial extent is not changed, and the
// turns' own angular width beyond their centres is not included.
func compactSector(sector geom.Sector, ts []turn.Turn) geom.Sector {
	minAngle, maxAngle := ts[0].RotationAngle, ts[0].RotationAngle
	for _, t := range ts[1:] {
		if t.RotationAngle < minAngle {
			minAngle = t.RotationAngle
		}
		if t.RotationAngle > maxAngle {
			maxAngle = t.RotationAngle
		}
	}

	sector.StartAngle = minAngle
	sector.SpanAngle = maxAngle - minAngle

	return sector
}
