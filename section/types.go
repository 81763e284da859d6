package section

import (
	"errors"

	"github.com/gowind/coilwind/geom"
	"github.com/gowind/coilwind/layout"
	"github.com/gowind/coilwind/winding"
)

// Sentinel errors for the partitioner.
var (
	// ErrEmptyPattern indicates Input.Pattern has no entries.
	ErrEmptyPattern = errors.New("section: pattern is empty")

	// ErrPatternIndexOutOfRange indicates a pattern entry names a winding
	// index outside [0, len(windings)).
	ErrPatternIndexOutOfRange = errors.New("section: pattern references an out-of-range winding index")

	// ErrInvalidRepetitions indicates Input.Repetitions is not >= 1.
	ErrInvalidRepetitions = errors.New("section: repetitions must be >= 1")

	// ErrProportionsLength indicates Input.Proportions is non-empty but
	// does not have one entry per winding.
	ErrProportionsLength = errors.New("section: proportions must have one entry per winding")

	// ErrProportionsSum indicates Input.Proportions does not sum to 1.0.
	ErrProportionsSum = errors.New("section: proportions must sum to 1.0")

	// ErrDoesNotFit indicates the sum of required section extents
	// exceeds the winding window and Policies.WindEvenIfNotFit is false.
	ErrDoesNotFit = errors.New("section: required sections do not fit in the winding window")

	// ErrWindingNotInPattern indicates a virtual winding never appears
	// in the expanded pattern sequence, so it would receive no turns.
	ErrWindingNotInPattern = errors.New("section: a virtual winding never appears in the pattern")
)

// Section is a rectangular (Cartesian) or annular-sector (polar) region
// of a winding window (spec.md §3).
type Section struct {
	Name string

	CoordSystem layout.CoordinateSystem
	Rect        geom.Rect   // valid when CoordSystem == layout.Cartesian
	Sector      geom.Sector // valid when CoordSystem == layout.Polar

	Type        layout.EntityType
	Orientation layout.Orientation // orientation of this section's layers
	Alignment   layout.Alignment   // alignment of this section's layers

	// Margin is [low, high] dead-zone offsets along the layer axis.
	Margin [2]float64

	// PartialWindings names the (virtual) windings this section carries
	// and each one's parallels proportion. Empty for insulation sections.
	PartialWindings []winding.PartialWinding

	// FillingFactor reports section overflow: > 1 means the section was
	// allocated more turns than its geometry can ideally hold and
	// Policies.WindEvenIfNotFit permitted the overflow.
	FillingFactor float64

	// InsulationMaterial names the material for an insulation section,
	// set by the caller via insul.Planner.ResolveInsulationLayerMaterial.
	// Empty for conduction sections or when no material table is wired.
	InsulationMaterial string
}

// TurnsForMember returns the number of physical (turn, parallel) turn
// instances of windingName this section carries, recovered from the
// ParallelsProportion entry Partition recorded for it and the member's
// own (turns, parallels) from the original functional description.
func TurnsForMember(pw winding.PartialWinding, memberTurns, memberParallels int) int {
	if len(pw.ParallelsProportion) == 0 {
		return 0
	}

	total := 0
	for _, prop := range pw.ParallelsProportion {
		total += int(roundHalfUp(prop * float64(memberTurns)))
	}
	_ = memberParallels // parallels count is len(pw.ParallelsProportion); kept for symmetry with the functional description.

	return total
}

func roundHalfUp(v float64) float64 {
	if v < 0 {
		return -roundHalfUp(-v)
	}

	return float64(int64(v + 0.5))
}
