package coil

import (
	"math"

	"github.com/gowind/coilwind/layer"
	"github.com/gowind/coilwind/layout"
	"github.com/gowind/coilwind/section"
	"github.com/gowind/coilwind/turn"
	"github.com/gowind/coilwind/winding"
)

// Attempts returns the rewind trace accumulated by the most recent Wind
// call: one Attempt per failed iteration; a successful iteration adds none
// (spec.md §9 rewind trace).
func (c *Coil) Attempts() []Attempt {
	return append([]Attempt(nil), c.attempts...)
}

// GetSectionsDescription returns the sections built by the most recent
// WindBySections/WindByPlanarSections call, in build order. The returned
// slice is a copy; mutating it does not affect the Coil.
func (c *Coil) GetSectionsDescription() []section.Section {
	return append([]section.Section(nil), c.sections...)
}

// GetSectionsDescriptionConduction is GetSectionsDescription filtered to
// conduction sections only.
func (c *Coil) GetSectionsDescriptionConduction() []section.Section {
	out := make([]section.Section, 0, len(c.sections))
	for _, sec := range c.sections {
		if sec.Type == layout.Conduction {
			out = append(out, sec)
		}
	}

	return out
}

// GetLayersDescription returns the layers built by the most recent
// WindByLayers/WindByPlanarLayers call, in build order.
func (c *Coil) GetLayersDescription() []layer.Layer {
	return append([]layer.Layer(nil), c.layers...)
}

// GetTurnsDescription returns the turns placed by the most recent
// WindByTurns/WindByPlanarTurns call, in placement order.
func (c *Coil) GetTurnsDescription() []turn.Turn {
	return append([]turn.Turn(nil), c.turns...)
}

// VirtualizeFunctionalDescription returns the virtual-winding view built
// at construction time (spec.md §4.1 Virtualization).
func (c *Coil) VirtualizeFunctionalDescription() []winding.VirtualWinding {
	return append([]winding.VirtualWinding(nil), c.virtual...)
}

// PolarCoordinate is one turn's position re-expressed as a radius and
// angle about the bobbin window's center (spec.md §6
// "convertTurnsToPolarCoordinates()").
type PolarCoordinate struct {
	TurnName string
	Radius   float64
	AngleDeg float64
}

// ConvertTurnsToPolarCoordinates re-expresses every placed turn's
// position as a radius and angle about the bobbin window's center, for
// debugging/reporting. A turn already placed in polar mode reuses its own
// RotationAngle rather than recomputing it through atan2.
func (c *Coil) ConvertTurnsToPolarCoordinates() []PolarCoordinate {
	center := c.bobbin.Window.Center

	out := make([]PolarCoordinate, len(c.turns))
	for i, t := range c.turns {
		dx := t.Center.X - center.X
		dy := t.Center.Y - center.Y
		radius := math.Hypot(dx, dy)

		angle := t.RotationAngle
		if t.CoordSystem != layout.Polar {
			angle = layoutAngle(dx, dy)
		}

		out[i] = PolarCoordinate{TurnName: t.Name, Radius: radius, AngleDeg: angle}
	}

	return out
}

// layoutAngle converts a Cartesian offset into a [0, 360) degree angle,
// matching geom's own normalization convention.
func layoutAngle(dx, dy float64) float64 {
	deg := math.Atan2(dy, dx) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}

	return deg
}
