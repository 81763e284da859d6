// Package wire resolves a wire specification — round, rectangular, litz,
// planar, or foil — into the conducting and outer dimensions the geometry
// packages need: a per-turn outer width and height (OuterWidth/OuterHeight,
// the size the placer reserves inside a layer) and an estimated conductor
// length for a given mean turn length.
//
// A Record mirrors the fields spec.md §6 says the engine is allowed to
// read from the wire registry and nothing else: Type,
// NominalConductingDiameter/Width/Height,
// NominalOuterDiameter/Width/Height, Material, NumberConductors. The
// registry itself (a name → Record lookup) is owned by the caller; this
// package only defines the Registry interface and a small in-memory
// reference implementation for tests and standalone use.
package wire
