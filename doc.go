// Package coilwind is a coil placement engine: given a functional
// description of one or more windings, a wire catalog, and a bobbin
// window, it computes the physical layout of every turn inside that
// window.
//
// The engine is organized as three pure stages, one package each:
//
//	section/ — partitions the winding window into sections, one per
//	           (virtual) winding or insulation gap
//	layer/   — packs each section's turns into radial/axial layers
//	turn/    — places each layer's turns at their final coordinates
//
// planar/ specializes the same three stages for an explicit PCB
// stack-up. winding/ merges windings that share a physical section,
// insul/ resolves insulation thickness and material, bobbin/ resolves a
// core shape to its usable winding window, wire/ looks up a wire's outer
// footprint, geom/ holds the shared Cartesian/polar primitives, layout/
// holds the shared enumerations, and policy/ holds the tunable knobs
// that bias every stage's behavior.
//
// coil/ ties the stages together: a Coil owns a functional description
// and drives WindBySections, WindByLayers, and WindByTurns (or their
// planar equivalents) in order, retrying with relaxed policy on a
// recoverable failure.
//
//	go get github.com/gowind/coilwind
package coilwind
