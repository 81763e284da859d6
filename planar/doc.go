// Package planar implements the planar/PCB specialization (spec.md §4.5):
// an explicit copper stack-up replaces the pattern-driven partitioner, but
// the resulting sections, layers, and turns are the same types §4.1–§4.3
// produce, and turn placement within a copper layer reuses the turn
// package's Cartesian placer unchanged. Only the Sections stage's geometry
// assembly and the Layers stage's copper-layer split are specific to this
// path.
package planar
