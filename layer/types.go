package layer

import (
	"errors"

	"github.com/gowind/coilwind/geom"
	"github.com/gowind/coilwind/layout"
	"github.com/gowind/coilwind/winding"
)

// Sentinel errors for the packer.
var (
	// ErrDoesNotFit indicates a section's turns exceed its turn-axis
	// capacity and Policies.WindEvenIfNotFit is false.
	ErrDoesNotFit = errors.New("layer: section turns do not fit under the configured layer orientation")

	// ErrNoPartialWindings indicates a conduction section carries no
	// partial windings; the packer has nothing to lay out.
	ErrNoPartialWindings = errors.New("layer: conduction section carries no partial windings")

	// ErrUnknownWireDimension indicates a partial winding's wire
	// footprint was not supplied.
	ErrUnknownWireDimension = errors.New("layer: no wire outer dimension supplied for a partial winding")
)

// Layer is a single radial/axial band of turns inside a section (spec.md
// §3).
type Layer struct {
	Name string

	CoordSystem layout.CoordinateSystem
	Rect        geom.Rect   // valid when CoordSystem == layout.Cartesian
	Sector      geom.Sector // valid when CoordSystem == layout.Polar

	Type layout.EntityType

	// Orientation is this layer's turn orientation, inherited from the
	// owning section.
	Orientation layout.Orientation

	// TurnsAlignment governs how the Placer arranges turns along this
	// layer's turn axis (spec.md §4.3).
	TurnsAlignment layout.Alignment

	// WindingStyle records how parallels and turns are interleaved when
	// emitting this layer's turns (spec.md §4.2).
	WindingStyle layout.WindingStyle

	// PartialWindings is this layer's further subdivision of its
	// section's partial windings. Empty for insulation layers.
	PartialWindings []winding.PartialWinding

	// InsulationMaterial names the material for an insulation layer.
	InsulationMaterial string

	// FillingFactor ∈ [0, 1+ε]; > 1 reports overflow permitted by policy.
	FillingFactor float64
}
