// Package coil implements the placement engine's orchestrator (spec.md §6):
// a stateful Coil value that owns a functional description (windings, wire
// registry, bobbin) and drives the partition/pack/place stages in section,
// layer, and turn, plus the planar specialization in planar. Every
// configuration setter and Wind* entry point mutates Coil's own arenas
// directly, so partial results stay readable through the Get*Description
// accessors even after a later stage fails (spec.md §7 "partial outputs
// remain readable after a failed stage").
//
// Errors surfaced by Coil's methods are, or wrap, a *coil.Error (Wind and
// AddMarginToSectionByIndex add a stage prefix), reachable via errors.As and
// carrying one of
// the five abstract kinds spec.md §7 names plus the specific sentinel
// (section.ErrDoesNotFit, winding.ErrInvalidGrouping, ...) that produced it,
// reachable through errors.Is/errors.As against either.
package coil
