package policy

import "sync"

// DefaultMaxRewinds is the default iteration bound for the rewind loop
// (spec.md §6 maxRewinds, §5 "the default iteration bound is 3").
const DefaultMaxRewinds = 3

// Policies is an immutable-by-convention snapshot of the placement
// engine's tunable parameters (spec.md §6). Callers build one with
// NewPolicies and zero or more PolicyOption values; a placement pass
// captures its own copy and never observes later mutation.
type Policies struct {
	// WindEvenIfNotFit allows overflow (fillingFactor > 1) instead of
	// failing with DoesNotFit when required turns exceed the window.
	WindEvenIfNotFit bool

	// TryRewind enables the rewind loop (§4.3). If false, the first
	// Packer/Placer attempt is final.
	TryRewind bool

	// DelimitAndCompact runs the post-placement compaction pass (§4.3).
	DelimitAndCompact bool

	// FillSectionsWithMarginTape renders margins as insulation layers
	// instead of leaving them as dead space (§4.1).
	FillSectionsWithMarginTape bool

	// EqualizeMargins is carried in the snapshot, but no stage reads it:
	// margins are applied exactly as preloaded, without balancing.
	EqualizeMargins bool

	// UseToroidalCores is checked only by coil.Validate, which rejects it
	// when the bobbin window is not round. It does not select the geometry
	// path: the stages choose polar or Cartesian from the window's shape.
	UseToroidalCores bool

	// MaxRewinds bounds the rewind loop's iteration count.
	MaxRewinds int

	// IntersectionInsulationThickness is the floor applied between
	// adjacent sections of differing isolation side (§4.1). section.Partition
	// uses whichever of this value and the attached insul.Planner's
	// resolved thickness is greater, so this alone is enough to get
	// insulation sections inserted without a Planner.
	IntersectionInsulationThickness float64

	// InterlayerInsulationThickness is the floor applied between adjacent
	// conduction layers inside one section (§4.2), and also the distance
	// layer.interTurnClearance projects onto the turn axis when layers lay
	// out contiguously. layer.Pack uses whichever of this value and the
	// attached insul.Planner's resolved thickness is greater.
	InterlayerInsulationThickness float64
}

// PolicyOption mutates a Policies value during construction.
type PolicyOption func(*Policies)

// NewPolicies returns a Policies snapshot seeded with engine defaults,
// then applies each opt in order. Defaults: TryRewind=true,
// MaxRewinds=DefaultMaxRewinds, every other bool false, both insulation
// thicknesses 0.
func NewPolicies(opts ...PolicyOption) Policies {
	p := Policies{
		TryRewind:  true,
		MaxRewinds: DefaultMaxRewinds,
	}

	for _, opt := range opts {
		opt(&p)
	}

	return p
}

// WithWindEvenIfNotFit sets WindEvenIfNotFit.
func WithWindEvenIfNotFit(v bool) PolicyOption {
	return func(p *Policies) { p.WindEvenIfNotFit = v }
}

// WithTryRewind sets TryRewind.
func WithTryRewind(v bool) PolicyOption {
	return func(p *Policies) { p.TryRewind = v }
}

// WithDelimitAndCompact sets DelimitAndCompact.
func WithDelimitAndCompact(v bool) PolicyOption {
	return func(p *Policies) { p.DelimitAndCompact = v }
}

// WithFillSectionsWithMarginTape sets FillSectionsWithMarginTape.
func WithFillSectionsWithMarginTape(v bool) PolicyOption {
	return func(p *Policies) { p.FillSectionsWithMarginTape = v }
}

// WithEqualizeMargins sets EqualizeMargins.
func WithEqualizeMargins(v bool) PolicyOption {
	return func(p *Policies) { p.EqualizeMargins = v }
}

// WithToroidalCores sets UseToroidalCores.
func WithToroidalCores(v bool) PolicyOption {
	return func(p *Policies) { p.UseToroidalCores = v }
}

// WithMaxRewinds sets MaxRewinds. Values <= 0 are clamped to 0 (no
// retries, the first attempt is final regardless of TryRewind).
func WithMaxRewinds(n int) PolicyOption {
	return func(p *Policies) {
		if n < 0 {
			n = 0
		}
		p.MaxRewinds = n
	}
}

// WithIntersectionInsulationThickness sets IntersectionInsulationThickness.
func WithIntersectionInsulationThickness(t float64) PolicyOption {
	return func(p *Policies) { p.IntersectionInsulationThickness = t }
}

// WithInterlayerInsulationThickness sets InterlayerInsulationThickness.
func WithInterlayerInsulationThickness(t float64) PolicyOption {
	return func(p *Policies) { p.InterlayerInsulationThickness = t }
}

// WithCustomThickness sets both IntersectionInsulationThickness and
// InterlayerInsulationThickness to the same value (spec.md §4.4
// customThicknessInsulation).
func WithCustomThickness(t float64) PolicyOption {
	return func(p *Policies) {
		p.IntersectionInsulationThickness = t
		p.InterlayerInsulationThickness = t
	}
}

var (
	globalMu  sync.RWMutex
	globalPol = NewPolicies()
)

// Global returns a copy of the current process-wide default Policies.
func Global() Policies {
	globalMu.RLock()
	defer globalMu.RUnlock()

	return globalPol
}

// SetGlobal replaces the process-wide default Policies. Callers must
// externally serialize calls to SetGlobal against concurrent placement
// passes that read Global (spec.md §5); SetGlobal itself is safe to call
// from multiple goroutines.
func SetGlobal(p Policies) {
	globalMu.Lock()
	defer globalMu.Unlock()

	globalPol = p
}
