package coil

import (
	"errors"
	"fmt"

	"github.com/gowind/coilwind/bobbin"
	"github.com/gowind/coilwind/insul"
	"github.com/gowind/coilwind/layer"
	"github.com/gowind/coilwind/layout"
	"github.com/gowind/coilwind/planar"
	"github.com/gowind/coilwind/policy"
	"github.com/gowind/coilwind/section"
	"github.com/gowind/coilwind/turn"
	"github.com/gowind/coilwind/winding"
	"github.com/gowind/coilwind/wire"
)

// Sentinel errors owned by coil itself (as opposed to errors surfaced from
// section/layer/turn/planar and wrapped into *Error).
var (
	ErrSectionsNotBuilt       = errors.New("coil: no sections built yet")
	ErrLayersNotBuilt         = errors.New("coil: no layers built yet")
	ErrSectionIndexOutOfRange = errors.New("coil: section index out of range")
	ErrAmbiguousSectionName   = errors.New("coil: at most one section name may be given")
	ErrNoWireMeetsResistance  = errors.New("coil: no catalog wire meets the target resistance")
)

// Kind classifies a coil placement failure into one of spec.md §7's five
// abstract error kinds.
type Kind int

const (
	// DoesNotFit: required turns exceed window capacity and overflow is
	// disallowed.
	DoesNotFit Kind = iota
	// InvalidConfiguration: contradictory policies or functional
	// description (unknown winding reference, out-of-range pattern index,
	// proportions not summing to 1, ...).
	InvalidConfiguration
	// InvalidGrouping: woundWith is not a valid symmetric/transitive
	// equivalence class, or crosses isolation sides.
	InvalidGrouping
	// UnresolvedBobbin: core shape unknown and no bobbin supplied, or the
	// resolved/explicit bobbin has a non-positive window dimension.
	UnresolvedBobbin
	// InsulationLookupFailed: the isolation-side material table has no
	// entry for a required breakdown voltage.
	InsulationLookupFailed
)

// String renders the Kind for diagnostics.
func (k Kind) String() string {
	switch k {
	case DoesNotFit:
		return "doesNotFit"
	case InvalidGrouping:
		return "invalidGrouping"
	case UnresolvedBobbin:
		return "unresolvedBobbin"
	case InsulationLookupFailed:
		return "insulationLookupFailed"
	default:
		return "invalidConfiguration"
	}
}

// Error is the error type every Coil method returns, directly or wrapped
// with a stage prefix, on failure (spec.md §9
// Design Notes: callers get "the error kind, a human-readable reason"). It
// wraps the specific sentinel that produced it, reachable via Unwrap.
type Error struct {
	Kind   Kind
	Reason string

	err error
}

// Error implements error.
func (e *Error) Error() string {
	return fmt.Sprintf("coil: %s: %s", e.Kind, e.Reason)
}

// Unwrap exposes the wrapped sentinel for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.err
}

// classify maps a sentinel from section/layer/turn/planar/winding/bobbin/
// insul/wire into the Kind it represents.
func classify(err error) Kind {
	switch {
	case errors.Is(err, section.ErrDoesNotFit),
		errors.Is(err, layer.ErrDoesNotFit),
		errors.Is(err, turn.ErrDoesNotFit),
		errors.Is(err, planar.ErrDoesNotFit):
		return DoesNotFit
	case errors.Is(err, winding.ErrInvalidGrouping):
		return InvalidGrouping
	case errors.Is(err, bobbin.ErrUnresolvedBobbin),
		errors.Is(err, bobbin.ErrInvalidWindow):
		return UnresolvedBobbin
	case errors.Is(err, insul.ErrInsulationLookupFailed):
		return InsulationLookupFailed
	default:
		return InvalidConfiguration
	}
}

// newError wraps err into a *Error carrying its classified Kind.
func newError(err error) *Error {
	if err == nil {
		return nil
	}

	return &Error{Kind: classify(err), Reason: err.Error(), err: err}
}

// Attempt records one rewind-loop iteration's relaxation (spec.md §9
// "coil.Attempt rewind trace"): which stage failed, why, and what policy
// bit was relaxed before retrying.
type Attempt struct {
	Stage      string
	Reason     string
	Relaxation string
}

// Option configures a Coil at construction time.
type Option func(*Coil)

// WithPolicies overrides the engine-default Policies snapshot (otherwise
// policy.Global() is captured at construction).
func WithPolicies(p policy.Policies) Option {
	return func(c *Coil) { c.policies = p }
}

// WithInsulationPlanner attaches an insul.Planner so §4.1/§4.2 insulation
// insertion is active from the first wind pass.
func WithInsulationPlanner(p *insul.Planner) Option {
	return func(c *Coil) { c.insulation = p }
}

// WithMeanTurnLength supplies each winding's estimated per-turn conductor
// length, keyed by Winding.Name, recorded on every placed Turn.
func WithMeanTurnLength(m map[string]float64) Option {
	return func(c *Coil) {
		for k, v := range m {
			c.meanTurnLength[k] = v
		}
	}
}

// WithDirection sets the winding sense recorded on every placed turn.
// Defaults to layout.Clockwise.
func WithDirection(d layout.TurnDirection) Option {
	return func(c *Coil) { c.direction = d }
}

// Coil is the placement engine orchestrator (spec.md §6). The zero value
// is not usable; construct with New.
type Coil struct {
	windings []winding.Winding
	virtual  []winding.VirtualWinding

	wireOuterWidth  map[string]float64
	wireOuterHeight map[string]float64
	meanTurnLength  map[string]float64

	bobbin     bobbin.Bobbin
	policies   policy.Policies
	insulation *insul.Planner
	direction  layout.TurnDirection

	pattern     []int
	repetitions int
	proportions []float64

	globalLayersOrientation     layout.Orientation
	perSectionLayersOrientation map[string]layout.Orientation
	globalTurnsAlignment        layout.Alignment
	perSectionTurnsAlignment    map[string]layout.Alignment

	preloadedMargins map[string][2]float64

	// pinnedStyles remembers the winding style layer.Pack auto-selected
	// for a section on its first successful pack, so a rewind reproduces
	// it rather than letting it flip (spec.md §4.2).
	pinnedStyles map[string]layout.WindingStyle

	sections []section.Section
	layers   []layer.Layer
	turns    []turn.Turn

	// layerSection[i] names layers[i]'s owning section, parallel to layers.
	layerSection []string

	// planar-path state; populated only by WindByPlanar*.
	planarRuns         []planar.Run
	planarLayersResult planar.LayersResult

	counters map[string][]int

	attempts []Attempt
}

// New constructs a Coil from a functional description. It resolves every
// winding's wire record up front and virtualizes the windings (spec.md
// §4.1), returning an *Error with the appropriate Kind on any validation
// failure.
func New(windings []winding.Winding, registry wire.Registry, b bobbin.Bobbin, opts ...Option) (*Coil, error) {
	c := &Coil{
		windings:                    append([]winding.Winding(nil), windings...),
		wireOuterWidth:              make(map[string]float64),
		wireOuterHeight:             make(map[string]float64),
		meanTurnLength:              make(map[string]float64),
		bobbin:                      b,
		policies:                    policy.Global(),
		globalLayersOrientation:     layout.Contiguous,
		perSectionLayersOrientation: make(map[string]layout.Orientation),
		globalTurnsAlignment:        layout.Centered,
		perSectionTurnsAlignment:    make(map[string]layout.Alignment),
		pinnedStyles:                make(map[string]layout.WindingStyle),
		preloadedMargins:            make(map[string][2]float64),
		counters:                    make(map[string][]int),
		repetitions:                 1,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := b.Validate(); err != nil {
		return nil, newError(err)
	}

	for _, w := range c.windings {
		if err := w.Validate(); err != nil {
			return nil, newError(err)
		}

		rec, err := registry.Lookup(w.WireName)
		if err != nil {
			return nil, newError(err)
		}
		if err := rec.Validate(); err != nil {
			return nil, newError(err)
		}

		c.wireOuterWidth[w.Name] = rec.OuterWidth()
		c.wireOuterHeight[w.Name] = rec.OuterHeight()
	}

	vw, err := winding.Virtualize(c.windings)
	if err != nil {
		return nil, newError(err)
	}

	c.virtual = vw

	return c, nil
}
