package bobbin

import (
	"errors"

	"github.com/gowind/coilwind/geom"
	"github.com/gowind/coilwind/layout"
)

// Sentinel errors for bobbin resolution.
var (
	// ErrUnresolvedBobbin indicates the core shape is unknown to the
	// CoreGeometryProvider and no explicit Bobbin was supplied.
	ErrUnresolvedBobbin = errors.New("bobbin: core shape unknown and no bobbin supplied")

	// ErrInvalidWindow indicates a resolved window has a non-positive
	// dimension.
	ErrInvalidWindow = errors.New("bobbin: winding window has a non-positive dimension")
)

// Shape identifies the geometry of a winding window.
type Shape int

const (
	// RectangularShape windows are Cartesian, sized by width and height.
	RectangularShape Shape = iota
	// RoundShape windows are polar/toroidal, sized by radial height and
	// total angular span.
	RoundShape
)

// CoreGeometry is what a CoreGeometryProvider returns for a known core
// shape name: its column dimensions and its available winding window(s).
// The placement engine treats every field here as opaque input.
type CoreGeometry struct {
	ColumnDepth     float64
	ColumnWidth     float64
	ColumnThickness float64
	WallThickness   float64
	Windows         []Window
}

// Window describes one available winding window on a core, before any
// bobbin-level orientation/alignment policy is applied.
type Window struct {
	Shape  Shape
	Center geom.Point

	// Width, Height are used when Shape == RectangularShape.
	Width  float64
	Height float64

	// RadialHeight, Angle are used when Shape == RoundShape. Angle is
	// the total angular span available, in degrees (360 for a full
	// toroid).
	RadialHeight float64
	Angle        float64
}

// CoreGeometryProvider resolves a core shape name to its CoreGeometry.
// Implementations are supplied by the caller (spec.md §6); the engine
// treats it as opaque and never inspects how it was built.
type CoreGeometryProvider interface {
	Resolve(coreShape string) (CoreGeometry, error)
}

// StaticCoreGeometryProvider is a simple in-memory CoreGeometryProvider
// backed by a map, useful for tests and standalone use.
type StaticCoreGeometryProvider struct {
	geometries map[string]CoreGeometry
}

// NewStaticCoreGeometryProvider returns a StaticCoreGeometryProvider
// seeded with geometries.
func NewStaticCoreGeometryProvider(geometries map[string]CoreGeometry) *StaticCoreGeometryProvider {
	cp := make(map[string]CoreGeometry, len(geometries))
	for k, v := range geometries {
		cp[k] = v
	}

	return &StaticCoreGeometryProvider{geometries: cp}
}

// Resolve implements CoreGeometryProvider.
func (s *StaticCoreGeometryProvider) Resolve(coreShape string) (CoreGeometry, error) {
	geo, ok := s.geometries[coreShape]
	if !ok {
		return CoreGeometry{}, ErrUnresolvedBobbin
	}

	return geo, nil
}

// Bobbin is the resolved, placement-ready description of a winding
// window: its geometry plus the section-layout policy knobs spec.md §3
// attaches to it.
type Bobbin struct {
	Window Window

	ColumnDepth     float64
	ColumnWidth     float64
	ColumnThickness float64
	WallThickness   float64

	SectionsOrientation layout.Orientation
	SectionsAlignment   layout.Alignment
}

// Validate reports ErrInvalidWindow if b's window has a non-positive
// dimension for its shape.
func (b Bobbin) Validate() error {
	switch b.Window.Shape {
	case RectangularShape:
		if b.Window.Width <= 0 || b.Window.Height <= 0 {
			return ErrInvalidWindow
		}
	case RoundShape:
		if b.Window.RadialHeight <= 0 || b.Window.Angle <= 0 {
			return ErrInvalidWindow
		}
	}

	return nil
}

// Resolve produces a placement-ready Bobbin. If explicit is non-nil, it is
// used directly (its Window is trusted as-is). Otherwise coreShape is
// looked up through provider and a default Bobbin is synthesized from its
// first window: SectionsOrientation defaults to Contiguous,
// SectionsAlignment to Centered.
func Resolve(coreShape string, explicit *Bobbin, provider CoreGeometryProvider) (Bobbin, error) {
	if explicit != nil {
		return *explicit, explicit.Validate()
	}

	if provider == nil {
		return Bobbin{}, ErrUnresolvedBobbin
	}

	geo, err := provider.Resolve(coreShape)
	if err != nil {
		return Bobbin{}, err
	}

	if len(geo.Windows) == 0 {
		return Bobbin{}, ErrUnresolvedBobbin
	}

	b := Bobbin{
		Window:              geo.Windows[0],
		ColumnDepth:         geo.ColumnDepth,
		ColumnWidth:         geo.ColumnWidth,
		ColumnThickness:     geo.ColumnThickness,
		WallThickness:       geo.WallThickness,
		SectionsOrientation: layout.Contiguous,
		SectionsAlignment:   layout.Centered,
	}

	return b, b.Validate()
}

// UsableRect returns the Cartesian area available for sections: the
// window minus wall thickness on every side. Only meaningful for
// RectangularShape windows.
func (b Bobbin) UsableRect() geom.Rect {
	return geom.Rect{
		Center: b.Window.Center,
		Width:  b.Window.Width - 2*b.WallThickness,
		Height: b.Window.Height - 2*b.WallThickness,
	}
}

// UsableSector returns the polar area available for sections: the window's
// full RadialHeight, starting WallThickness out from the centre, over the
// window's Angle. Only meaningful for RoundShape windows.
func (b Bobbin) UsableSector() geom.Sector {
	return geom.Sector{
		Center:      b.Window.Center,
		InnerRadius: b.WallThickness,
		OuterRadius: b.WallThickness + b.Window.RadialHeight,
		StartAngle:  0,
		SpanAngle:   b.Window.Angle,
	}
}
