// Package section implements the partitioner (spec.md §4.1): it splits a
// winding window into an ordered list of Sections by interleaving a
// pattern of (virtual) windings R times, distributing each winding's
// physical turns across its occurrences in the resulting sequence, and
// allocating Cartesian or polar geometry to each resulting conduction
// section under the bobbin's orientation and alignment. Insulation
// sections are inserted between adjacent conduction sections whose
// windings differ in isolation side.
package section
