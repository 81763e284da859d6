package coil

import (
	"github.com/gowind/coilwind/layout"
	"github.com/gowind/coilwind/planar"
	"github.com/gowind/coilwind/section"
)

// WindByPlanarSections runs the planar partitioner (spec.md §4.5
// "windByPlanarSections(stackUp, interWindingInsulation, insulationToCore)"),
// replacing the pattern-driven partitioner for PCB/planar windings.
func (c *Coil) WindByPlanarSections(stackUp []int, interWindingInsulation, insulationToCore float64) error {
	res, err := planar.Sections(planar.SectionsInput{
		StackUp:                stackUp,
		Windings:               c.windings,
		WireOuterHeight:        c.wireOuterHeight,
		InterWindingInsulation: interWindingInsulation,
		InsulationToCore:       insulationToCore,
		Bobbin:                 c.bobbin,
		Policies:               c.policies,
	})
	if err != nil {
		return newError(err)
	}

	sections := make([]section.Section, len(res.Runs))
	for i, r := range res.Runs {
		sections[i] = r.Section
	}

	c.planarRuns = res.Runs
	c.sections = sections
	c.planarLayersResult = planar.LayersResult{}
	c.layers = nil
	c.turns = nil
	c.layerSection = nil
	c.counters = make(map[string][]int)

	return nil
}

// WindByPlanarLayers runs the planar packer (spec.md §4.5
// "windByPlanarLayers()") over the runs built by WindByPlanarSections.
func (c *Coil) WindByPlanarLayers() error {
	if len(c.planarRuns) == 0 {
		return newError(ErrSectionsNotBuilt)
	}

	res := planar.Layers(planar.LayersInput{
		Runs:            c.planarRuns,
		WireOuterHeight: c.wireOuterHeight,
		TurnsAlignment:  c.globalTurnsAlignment,
		WindingStyle:    layout.ConsecutiveTurns,
	})

	c.planarLayersResult = res
	c.layers = res.Layers
	c.layerSection = res.SectionNames
	c.turns = nil
	c.counters = make(map[string][]int)

	return nil
}

// WindByPlanarTurns runs the planar placer (spec.md §4.5
// "windByPlanarTurns(interLayerInsulation, distanceToCore)") over the
// layers built by WindByPlanarLayers.
func (c *Coil) WindByPlanarTurns(interLayerInsulation, distanceToCore float64) error {
	if len(c.planarLayersResult.Layers) == 0 {
		return newError(ErrLayersNotBuilt)
	}

	res, err := planar.Turns(planar.TurnsInput{
		LayersResult:         c.planarLayersResult,
		Windings:             c.windings,
		WireOuterWidth:       c.wireOuterWidth,
		WireOuterHeight:      c.wireOuterHeight,
		MeanTurnLength:       c.meanTurnLength,
		InterLayerInsulation: interLayerInsulation,
		DistanceToCore:       distanceToCore,
		TurnsAlignment:       c.globalTurnsAlignment,
		Direction:            c.direction,
		Counters:             c.counters,
		Policies:             c.policies,
	})
	if err != nil {
		return newError(err)
	}

	c.layers = res.Layers
	c.turns = res.Turns

	return nil
}
