package turn

import (
	"errors"

	"github.com/gowind/coilwind/geom"
	"github.com/gowind/coilwind/layout"
)

// Sentinel errors for the placer.
var (
	// ErrDoesNotFit indicates a layer's turns cannot be placed along its
	// turn axis without overlap, and Policies.WindEvenIfNotFit is false.
	ErrDoesNotFit = errors.New("turn: layer turns do not fit along the turn axis without overlap")

	// ErrUnknownWireDimension indicates a partial winding's wire
	// footprint was not supplied.
	ErrUnknownWireDimension = errors.New("turn: no wire outer dimension supplied for a partial winding")
)

// Turn is a single geometric conductor placement (spec.md §3).
type Turn struct {
	// Name is "{winding} parallel {p} turn {t}".
	Name string

	WindingName string
	Parallel    int // 0 <= Parallel < P
	Index       int // 0 <= Index < N

	SectionName string
	LayerName   string

	CoordSystem layout.CoordinateSystem
	Center      geom.Point

	// Width, Height are the wire's outer footprint dimensions.
	Width  float64
	Height float64

	Orientation layout.TurnDirection

	// RotationAngle is the turn's angle in degrees, [0, 360); valid in
	// polar mode.
	RotationAngle float64

	EstimatedLength float64

	// AdditionalCoordinates holds the Cartesian midpoints of the turn's
	// left and right annular arc endpoints; valid in polar mode only.
	AdditionalCoordinates *[2]geom.Point
}
