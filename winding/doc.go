// Package winding defines the electrical functional description the
// placement engine consumes — a Winding's turn count, parallel count,
// isolation side, and wire reference — and the woundWith virtualization
// that merges windings sharing a physical section into a VirtualWinding
// (spec.md §3, §4.1).
package winding
