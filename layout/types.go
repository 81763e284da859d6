package layout

// Orientation selects how a section lays out its layers, or how a layer
// lays out its turns, relative to the winding window's axes (spec.md
// §4.1, §4.2).
type Orientation int

const (
	// Overlapping stacks elements along the window's width axis, each
	// spanning the full cross-axis extent.
	Overlapping Orientation = iota
	// Contiguous lays elements along the window's height (Cartesian) or
	// angular (polar) axis, each spanning the full radial/depth extent.
	Contiguous
)

// String renders the Orientation for diagnostics and persisted-form round trips.
func (o Orientation) String() string {
	if o == Contiguous {
		return "contiguous"
	}

	return "overlapping"
}

// Alignment selects cross-axis (sections) or along-axis (layers/turns)
// placement within the available space (spec.md §4.1, §4.3).
type Alignment int

const (
	// Centered places elements symmetrically about the midpoint.
	Centered Alignment = iota
	// InnerTop aligns the first element's inner/top edge to the
	// available space's inner/top boundary.
	InnerTop
	// OuterBottom aligns the last element's outer/bottom edge to the
	// available space's outer/bottom boundary.
	OuterBottom
	// Spread distributes elements so the first and last touch the
	// boundaries and inter-element spacing is equal.
	Spread
)

// String renders the Alignment for diagnostics and persisted-form round trips.
func (a Alignment) String() string {
	switch a {
	case InnerTop:
		return "innerOrTop"
	case OuterBottom:
		return "outerOrBottom"
	case Spread:
		return "spread"
	default:
		return "centered"
	}
}

// EntityType distinguishes sections and layers that carry turns from ones
// that exist purely to provide clearance.
type EntityType int

const (
	// Conduction sections/layers carry one or more partial windings.
	Conduction EntityType = iota
	// Insulation sections/layers carry no turns; they exist for clearance.
	Insulation
)

// String renders the EntityType for diagnostics and persisted-form round trips.
func (e EntityType) String() string {
	if e == Insulation {
		return "insulation"
	}

	return "conduction"
}

// TurnDirection records the winding sense of a single turn (spec.md §3).
type TurnDirection int

const (
	// Clockwise turns wind clockwise as seen from the section's reference face.
	Clockwise TurnDirection = iota
	// CounterClockwise turns wind counter-clockwise.
	CounterClockwise
)

// String renders the TurnDirection for diagnostics and persisted-form round trips.
func (d TurnDirection) String() string {
	if d == CounterClockwise {
		return "counterClockwise"
	}

	return "clockwise"
}

// WindingStyle controls the order turns and parallels are emitted into a
// layer (spec.md §4.2).
type WindingStyle int

const (
	// ConsecutiveTurns emits all N turns of one parallel before advancing
	// to the next parallel.
	ConsecutiveTurns WindingStyle = iota
	// ConsecutiveParallels emits all P parallels of one turn index before
	// advancing to the next turn index.
	ConsecutiveParallels
)

// String renders the WindingStyle for diagnostics and persisted-form round trips.
func (w WindingStyle) String() string {
	if w == ConsecutiveParallels {
		return "windByConsecutiveParallels"
	}

	return "windByConsecutiveTurns"
}

// IsolationSide is the safety class of a winding. The enumeration is
// open-ended (spec.md §3: "primary | secondary | tertiary | …"); common
// values are provided as constants, but any non-empty string is valid.
type IsolationSide string

// Common isolation sides. Callers may use any other non-empty string.
const (
	Primary   IsolationSide = "primary"
	Secondary IsolationSide = "secondary"
	Tertiary  IsolationSide = "tertiary"
)

// CoordinateSystem identifies which geometry a turn, layer, or section is
// expressed in.
type CoordinateSystem int

const (
	// Cartesian geometry applies to rectangular bobbin windows.
	Cartesian CoordinateSystem = iota
	// Polar geometry applies to round (toroidal) bobbin windows.
	Polar
)

// String renders the CoordinateSystem for diagnostics and persisted-form round trips.
func (c CoordinateSystem) String() string {
	if c == Polar {
		return "polar"
	}

	return "cartesian"
}
