package planar

import (
	"errors"

	"github.com/gowind/coilwind/section"
)

// Sentinel errors for the planar specialization.
var (
	// ErrEmptyStackUp indicates SectionsInput.StackUp has no entries.
	ErrEmptyStackUp = errors.New("planar: stack-up is empty")

	// ErrStackUpIndexOutOfRange indicates a stack-up entry names a winding
	// index outside [0, len(windings)).
	ErrStackUpIndexOutOfRange = errors.New("planar: stack-up references an out-of-range winding index")

	// ErrDoesNotFit indicates the stack-up's required board height exceeds
	// the bobbin's usable window and Policies.WindEvenIfNotFit is false.
	ErrDoesNotFit = errors.New("planar: stack-up does not fit in the winding window")

	// ErrUnknownWireDimension indicates a winding named in the stack-up has
	// no wire outer width or height supplied.
	ErrUnknownWireDimension = errors.New("planar: no wire outer dimension supplied for a stack-up winding")
)

// Run is one maximal group of consecutive equal stack-up entries: a single
// winding occupying CopperLayers consecutive PCB copper layers, realized as
// one conduction section (spec.md §4.5: "repetitions of the same winding
// index on consecutive positions mean multiple copper layers for that
// winding"). An inserted clearance run between differing windings has
// WindingIndex -1 and CopperLayers 0.
type Run struct {
	Section      section.Section
	WindingIndex int
	CopperLayers int

	// assignedTurns is this run's share of its winding's total physical
	// (turns * parallels) turn count, computed by assignTurns.
	assignedTurns int
}
