// Package policy holds the tunable parameters that drive the placement
// engine's fitness-vs-strictness trade-offs (spec.md §6).
//
// Policies is a value type, not a mutable singleton: the source's shared
// settings object is replaced here with a snapshot captured once at the
// start of a placement pass (spec.md §5, §9 Design Notes), built with
// functional PolicyOption closures exactly as builderConfig is built from
// BuilderOption in the teacher's builder package. A placement pass never
// re-reads anything after capturing its snapshot, so concurrent mutation
// of the process-wide default (via SetGlobal) cannot tear one pass
// mid-flight.
//
// A process-wide default lives behind Global/SetGlobal, guarded by a
// sync.RWMutex the way core.Graph guards its vertex and edge maps; writes
// to it must be externally serialized by the caller (spec.md §5).
package policy
