package coil

import (
	"github.com/gowind/coilwind/insul"
	"github.com/gowind/coilwind/layout"
	"github.com/gowind/coilwind/planar"
)

// SetPattern sets the section partitioner's winding pattern, repetition
// count and optional per-virtual-winding proportions (spec.md §4.1). It
// invalidates any previously built sections/layers/turns.
func (c *Coil) SetPattern(pattern []int, repetitions int, proportions ...float64) {
	c.pattern = append([]int(nil), pattern...)
	c.repetitions = repetitions
	if len(proportions) > 0 {
		c.proportions = append([]float64(nil), proportions...)
	} else {
		c.proportions = nil
	}

	c.invalidate()
}

// SetInterleavingLevel is an alias for SetPattern, named for the common
// case of an interleaved primary/secondary pattern (spec.md glossary
// "Interleaving").
func (c *Coil) SetInterleavingLevel(pattern []int, repetitions int, proportions ...float64) {
	c.SetPattern(pattern, repetitions, proportions...)
}

// SetSectionAlignment overrides how sections sit within the bobbin
// window, replacing Bobbin.SectionsAlignment for subsequent winds.
func (c *Coil) SetSectionAlignment(a layout.Alignment) {
	c.bobbin.SectionsAlignment = a
}

// SetWindingOrientation overrides Bobbin.SectionsOrientation: how
// sections lay out across the bobbin window (spec.md §3).
func (c *Coil) SetWindingOrientation(o layout.Orientation) {
	c.bobbin.SectionsOrientation = o
}

// SetLayersOrientation overrides how a section's own layers stack
// (Section.Orientation, a different axis than SetWindingOrientation). With
// no sectionName it applies to every section built from now on; with one
// name it applies only to that section. ErrAmbiguousSectionName is
// returned for more than one name.
func (c *Coil) SetLayersOrientation(o layout.Orientation, sectionName ...string) error {
	if len(sectionName) > 1 {
		return newError(ErrAmbiguousSectionName)
	}
	if len(sectionName) == 0 {
		c.globalLayersOrientation = o
		return nil
	}

	c.perSectionLayersOrientation[sectionName[0]] = o

	return nil
}

// SetTurnsAlignment overrides how turns are arranged along a layer's turn
// axis (spec.md §4.3), globally or for one named section.
func (c *Coil) SetTurnsAlignment(a layout.Alignment, sectionName ...string) error {
	if len(sectionName) > 1 {
		return newError(ErrAmbiguousSectionName)
	}
	if len(sectionName) == 0 {
		c.globalTurnsAlignment = a
		return nil
	}

	c.perSectionTurnsAlignment[sectionName[0]] = a

	return nil
}

// ensurePlanner lazily allocates the insulation planner so the Set*
// Insulation setters work even when the caller never passed
// WithInsulationPlanner.
func (c *Coil) ensurePlanner() *insul.Planner {
	if c.insulation == nil {
		c.insulation = insul.NewPlanner(nil)
	}

	return c.insulation
}

// SetInterlayerInsulation configures the fixed interlayer insulation
// thickness (spec.md §4.2), optionally scoped to a single winding via
// insul.ApplyToWinding. Only an unscoped call also sets the policy-wide
// InterlayerInsulationThickness.
func (c *Coil) SetInterlayerInsulation(thickness float64, opts ...insul.InsulationOption) {
	c.ensurePlanner().InterlayerInsulation(thickness, opts...)
	if len(opts) == 0 {
		c.policies.InterlayerInsulationThickness = thickness
	}
}

// SetIntersectionInsulation configures the fixed intersection (between
// differing isolation sides) insulation thickness (spec.md §4.1),
// optionally scoped to a single winding via insul.ApplyToWinding. Only an
// unscoped call also sets the policy-wide IntersectionInsulationThickness.
func (c *Coil) SetIntersectionInsulation(thickness float64, opts ...insul.InsulationOption) {
	c.ensurePlanner().IntersectionInsulation(thickness, opts...)
	if len(opts) == 0 {
		c.policies.IntersectionInsulationThickness = thickness
	}
}

// CalculateCustomThicknessInsulation overrides both interlayer and
// intersection thickness with a single custom value (spec.md §4.2).
func (c *Coil) CalculateCustomThicknessInsulation(thickness float64) {
	c.ensurePlanner().CustomThicknessInsulation(thickness)
	c.policies.InterlayerInsulationThickness = thickness
	c.policies.IntersectionInsulationThickness = thickness
}

// PreloadMargins records a [low, high] margin pair to apply to a named
// section the next time sections are (re)built (spec.md glossary
// "Margin"). It does not itself trigger a rebuild.
func (c *Coil) PreloadMargins(sectionName string, low, high float64) {
	c.preloadedMargins[sectionName] = [2]float64{low, high}
}

// invalidate drops previously built sections/layers/turns and resets the
// placement counters, called whenever a setter changes configuration that
// would make stale results misleading.
func (c *Coil) invalidate() {
	c.sections = nil
	c.layers = nil
	c.turns = nil
	c.layerSection = nil
	c.planarRuns = nil
	c.planarLayersResult = planar.LayersResult{}
	c.counters = make(map[string][]int)
	c.attempts = nil
}
