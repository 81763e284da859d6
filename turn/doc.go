// Package turn implements the placer (spec.md §4.3): it assigns per-turn
// coordinates within one conduction layer along the layer's turn axis,
// under the layer's turnsAlignment, in both Cartesian and polar
// (toroidal) coordinate systems. An insulation layer places no turns.
package turn
