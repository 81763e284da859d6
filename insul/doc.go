// Package insul implements the insulation planner (spec.md §4.4), a
// dependent service consulted by the partitioner and the packer. It
// tracks the minimum inter-section and inter-layer insulation thickness
// — globally or scoped to one winding — and resolves the material for an
// already-planned insulation layer by looking up the isolation sides of
// its neighbors in a caller-supplied MaterialTable.
package insul
