// Package geom provides the two coordinate systems the coil placement
// engine lays turns out in: axis-aligned rectangles for Cartesian bobbin
// windows, and annular sectors for polar (toroidal) ones.
//
// What:
//
//   - Rect: an axis-aligned rectangle given by center, width, and height.
//   - Sector: an annular sector given by center, inner/outer radius, a
//     start angle on [0, 360), and a span of up to 360, in degrees.
//   - Containment, overlap, and bounding-box helpers for both shapes,
//     used by the partitioner, packer, and placer to enforce spec.md's
//     universal invariants (turns fit inside layers fit inside sections
//     fit inside the winding window; no two conduction footprints
//     overlap unless overflow is explicitly permitted).
//
// Units: SI metres for lengths, degrees for angles, matching the
// persisted-form contract in spec.md §6.
//
// Complexity: every operation here is O(1) except BoundRects, which is
// linear in the number of rectangles it bounds.
package geom
