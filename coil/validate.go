package coil

import (
	"math"

	"github.com/gowind/coilwind/bobbin"
	"github.com/gowind/coilwind/section"
)

// ErrPatternIndexOutOfRange indicates a configured pattern entry names a
// virtual winding index outside the current functional description.
var ErrPatternIndexOutOfRange = errInvalidConfig("coil: pattern references an out-of-range winding index")

// ErrProportionsLength indicates a configured proportions slice does not
// have one entry per virtual winding.
var ErrProportionsLength = errInvalidConfig("coil: proportions must have one entry per virtual winding")

// ErrInvalidRepetitions indicates a repetition count below 1.
var ErrInvalidRepetitions = errInvalidConfig("coil: repetitions must be >= 1")

// ErrToroidalShapeMismatch indicates Policies.UseToroidalCores is set but
// the resolved bobbin window is not a round (toroidal) shape.
var ErrToroidalShapeMismatch = errInvalidConfig("coil: useToroidalCores is set but the bobbin window is not round")

// errInvalidConfig is a small helper to declare a sentinel classify()
// falls through to InvalidConfiguration for, matching section/layer/
// turn/planar's own error-declaration style.
func errInvalidConfig(msg string) error {
	return configError(msg)
}

// configError implements error directly rather than via errors.New so
// every instance keeps its own message without an extra allocation site.
type configError string

func (e configError) Error() string { return string(e) }

// Validate checks the Coil's current configuration for internal
// consistency without running any stage (spec.md §9 "coil.Validate()").
// Every woundWith reference was already validated at New time via
// winding.Virtualize; this checks the pattern/proportions/bobbin
// consistency a caller can verify before committing to a full Wind.
func (c *Coil) Validate() error {
	if err := c.bobbin.Validate(); err != nil {
		return newError(err)
	}

	for _, idx := range c.pattern {
		if idx < 0 || idx >= len(c.virtual) {
			return newError(ErrPatternIndexOutOfRange)
		}
	}

	if len(c.proportions) > 0 {
		if len(c.proportions) != len(c.virtual) {
			return newError(ErrProportionsLength)
		}
		sum := 0.0
		for _, p := range c.proportions {
			sum += p
		}
		if math.Abs(sum-1) > 1e-6 {
			return newError(section.ErrProportionsSum)
		}
	}

	if c.repetitions < 1 {
		return newError(ErrInvalidRepetitions)
	}

	if c.policies.UseToroidalCores && c.bobbin.Window.Shape != bobbin.RoundShape {
		return newError(ErrToroidalShapeMismatch)
	}

	return nil
}
