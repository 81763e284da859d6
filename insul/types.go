package insul

import (
	"errors"

	"github.com/gowind/coilwind/layout"
)

// ErrInsulationLookupFailed indicates the MaterialTable has no entry for
// a required (isolationSideA, isolationSideB, requiredBreakdownVolts)
// triple (spec.md §7).
var ErrInsulationLookupFailed = errors.New("insul: no material satisfies the required isolation and breakdown voltage")

// MaterialTable maps an isolation-side pair and a required breakdown
// voltage to a material name and the minimum thickness it needs to
// achieve that breakdown rating. Owned and supplied by the caller
// (spec.md §6); the planner never guesses values it is missing.
type MaterialTable interface {
	Lookup(sideA, sideB layout.IsolationSide, requiredBreakdownVolts float64) (material string, minThickness float64, err error)
}

// Planner is the insulation planner described in spec.md §4.4. The zero
// value is ready to use (no material table, zero default thicknesses);
// NewPlanner lets a caller attach a MaterialTable and initial thicknesses
// up front.
type Planner struct {
	table MaterialTable

	intersectionDefault float64
	interlayerDefault   float64

	perWindingIntersection map[string]float64
	perWindingInterlayer   map[string]float64
}

// NewPlanner returns a Planner backed by table, with zero default
// thicknesses. table may be nil if ResolveInsulationLayerMaterial will
// never be called.
func NewPlanner(table MaterialTable) *Planner {
	return &Planner{
		table:                  table,
		perWindingIntersection: make(map[string]float64),
		perWindingInterlayer:   make(map[string]float64),
	}
}

// InsulationOption scopes an insulation-thickness call to a specific
// winding instead of applying it globally.
type InsulationOption func(*insulationConfig)

type insulationConfig struct {
	applyToWinding string
}

// ApplyToWinding restricts the thickness constraint to section/layer
// pairs involving the named winding (spec.md §4.4).
func ApplyToWinding(windingName string) InsulationOption {
	return func(c *insulationConfig) { c.applyToWinding = windingName }
}

// IntersectionInsulation sets the minimum thickness between any two
// sections, or between sections involving a specific winding if
// ApplyToWinding is given.
func (p *Planner) IntersectionInsulation(thickness float64, opts ...InsulationOption) {
	cfg := insulationConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.applyToWinding == "" {
		p.intersectionDefault = thickness
	} else {
		if p.perWindingIntersection == nil {
			p.perWindingIntersection = make(map[string]float64)
		}
		p.perWindingIntersection[cfg.applyToWinding] = thickness
	}
}

// InterlayerInsulation is the per-layer-gap equivalent of
// IntersectionInsulation.
func (p *Planner) InterlayerInsulation(thickness float64, opts ...InsulationOption) {
	cfg := insulationConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.applyToWinding == "" {
		p.interlayerDefault = thickness
	} else {
		if p.perWindingInterlayer == nil {
			p.perWindingInterlayer = make(map[string]float64)
		}
		p.perWindingInterlayer[cfg.applyToWinding] = thickness
	}
}

// CustomThicknessInsulation overrides both the intersection and
// interlayer default thickness uniformly (spec.md §4.4).
func (p *Planner) CustomThicknessInsulation(thickness float64) {
	p.intersectionDefault = thickness
	p.interlayerDefault = thickness
}

// IntersectionThickness returns the minimum intersection-insulation
// thickness that applies when any of windingNames is involved: the
// larger of the global default and any matching per-winding override.
func (p *Planner) IntersectionThickness(windingNames ...string) float64 {
	thickness := p.intersectionDefault
	for _, name := range windingNames {
		if t, ok := p.perWindingIntersection[name]; ok && t > thickness {
			thickness = t
		}
	}

	return thickness
}

// InterlayerThickness is the per-layer-gap equivalent of
// IntersectionThickness.
func (p *Planner) InterlayerThickness(windingNames ...string) float64 {
	thickness := p.interlayerDefault
	for _, name := range windingNames {
		if t, ok := p.perWindingInterlayer[name]; ok && t > thickness {
			thickness = t
		}
	}

	return thickness
}

// ResolveInsulationLayerMaterial picks the material for an insulation
// layer separating sides sideA and sideB under requiredBreakdownVolts, by
// delegating to the configured MaterialTable. Returns
// ErrInsulationLookupFailed if no table is configured or the table finds
// no entry.
func (p *Planner) ResolveInsulationLayerMaterial(sideA, sideB layout.IsolationSide, requiredBreakdownVolts float64) (string, float64, error) {
	if p.table == nil {
		return "", 0, ErrInsulationLookupFailed
	}

	material, thickness, err := p.table.Lookup(sideA, sideB, requiredBreakdownVolts)
	if err != nil {
		return "", 0, err
	}

	return material, thickness, nil
}

// StaticMaterialTable is a simple in-memory MaterialTable backed by a
// map keyed on (sideA, sideB, requiredBreakdownVolts), useful for tests
// and standalone use.
type StaticMaterialTable struct {
	entries map[materialKey]materialEntry
}

type materialKey struct {
	sideA, sideB           layout.IsolationSide
	requiredBreakdownVolts float64
}

type materialEntry struct {
	material  string
	thickness float64
}

// NewStaticMaterialTable returns an empty StaticMaterialTable.
func NewStaticMaterialTable() *StaticMaterialTable {
	return &StaticMaterialTable{entries: make(map[materialKey]materialEntry)}
}

// Add registers the material/thickness for an (sideA, sideB,
// requiredBreakdownVolts) triple. The pair is order-independent: Add is
// also indexed under (sideB, sideA).
func (s *StaticMaterialTable) Add(sideA, sideB layout.IsolationSide, requiredBreakdownVolts float64, material string, thickness float64) {
	s.entries[materialKey{sideA, sideB, requiredBreakdownVolts}] = materialEntry{material, thickness}
	s.entries[materialKey{sideB, sideA, requiredBreakdownVolts}] = materialEntry{material, thickness}
}

// Lookup implements MaterialTable.
func (s *StaticMaterialTable) Lookup(sideA, sideB layout.IsolationSide, requiredBreakdownVolts float64) (string, float64, error) {
	entry, ok := s.entries[materialKey{sideA, sideB, requiredBreakdownVolts}]
	if !ok {
		return "", 0, ErrInsulationLookupFailed
	}

	return entry.material, entry.thickness, nil
}
