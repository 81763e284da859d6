// Package bobbin resolves a core shape and an optional explicit bobbin
// description into the winding-window geometry the rest of the engine
// packs turns into: shape (rectangular or round), center, window
// dimensions, column geometry, wall thickness, and the section layout
// knobs (orientation/alignment) spec.md §3 attaches to a Bobbin.
//
// A CoreGeometryProvider is the opaque, caller-owned function from core
// shape name to column/window geometry described in spec.md §6; this
// package treats it as such and never inspects its internals beyond the
// CoreGeometry it returns. When no bobbin is supplied and the provider
// does not know the shape, resolution fails with ErrUnresolvedBobbin
// (spec.md §7); otherwise this package synthesizes sensible window
// defaults from the core geometry alone.
package bobbin
