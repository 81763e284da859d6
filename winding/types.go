package winding

import (
	"errors"
	"sort"
	"strings"

	"github.com/gowind/coilwind/layout"
)

// Sentinel errors for winding validation and virtualization.
var (
	// ErrInvalidTurns indicates a Winding's turn count is not >= 1.
	ErrInvalidTurns = errors.New("winding: turn count must be >= 1")

	// ErrInvalidParallels indicates a Winding's parallel count is not >= 1.
	ErrInvalidParallels = errors.New("winding: parallel count must be >= 1")

	// ErrEmptyWireRef indicates a Winding has no wire reference.
	ErrEmptyWireRef = errors.New("winding: wire reference is empty")

	// ErrUnknownWindingName indicates a woundWith entry names a winding
	// not present in the functional description.
	ErrUnknownWindingName = errors.New("winding: woundWith names an unknown winding")

	// ErrInvalidGrouping indicates a woundWith relation is not symmetric
	// and transitive, or crosses isolation sides, or mismatches parallel
	// counts within one group (spec.md §3, §4.1, §7).
	ErrInvalidGrouping = errors.New("winding: woundWith grouping is not a valid equivalence class")
)

// Winding is one electrically distinct coil of the component (spec.md §3).
type Winding struct {
	Name          string
	Turns         int
	Parallels     int
	IsolationSide layout.IsolationSide
	WireName      string
	// WoundWith names other windings sharing this winding's physical
	// section. Must be symmetric and transitive across the whole
	// functional description, and every member must share IsolationSide.
	WoundWith []string
}

// Validate checks the fields Winding owns in isolation (not its
// relationship to other windings — see Virtualize for that).
func (w Winding) Validate() error {
	if w.Turns < 1 {
		return ErrInvalidTurns
	}
	if w.Parallels < 1 {
		return ErrInvalidParallels
	}
	if w.WireName == "" {
		return ErrEmptyWireRef
	}

	return nil
}

// PartialWinding is the portion of a winding's parallels that one
// section or layer holds (spec.md §3 Glossary: "Partial winding").
// ParallelsProportion has length Parallels and entries in [0, 1]; for a
// Section, entries across all sections holding the winding sum to 1.0
// per parallel (spec.md §3 invariant, §8 invariant 2). For a Layer,
// ParallelsProportion is a further subdivision of its Section's
// proportion for the same winding (spec.md §3).
type PartialWinding struct {
	WindingName         string
	ParallelsProportion []float64
}

// VirtualWinding is the merged view of one or more Windings that share a
// physical section through woundWith (spec.md §4.1 Virtualization).
type VirtualWinding struct {
	// Name identifies the virtual winding; for a single-member group it
	// equals that Winding's Name, otherwise members joined by "+".
	Name string
	// Members lists the source winding names, in input order.
	Members []string
	// Turns is the sum of member turn counts.
	Turns int
	// Parallels is the shared parallel count across members.
	Parallels int
	// IsolationSide is the shared isolation side across members.
	IsolationSide layout.IsolationSide
}

// PhysicalTurns returns Turns * Parallels: the total number of conductor
// turns this virtual winding must be allocated space for.
func (v VirtualWinding) PhysicalTurns() int {
	return v.Turns * v.Parallels
}

// Virtualize merges windings that name each other through WoundWith into
// VirtualWinding groups (spec.md §4.1). Windings not named in any
// WoundWith list become singleton VirtualWindings. The returned slice
// preserves the input order: each VirtualWinding appears at the position
// of the first of its members in windings.
//
// Returns ErrUnknownWindingName if a WoundWith entry names a winding not
// present in windings, and ErrInvalidGrouping if the relation named is
// not a valid equivalence class (not symmetric, not transitive, crosses
// isolation sides, or mismatches parallel counts within one group).
func Virtualize(windings []Winding) ([]VirtualWinding, error) {
	index := make(map[string]int, len(windings))
	for i, w := range windings {
		index[w.Name] = i
	}

	adjacency := make([]map[string]bool, len(windings))
	for i, w := range windings {
		set := make(map[string]bool, len(w.WoundWith))
		for _, other := range w.WoundWith {
			if _, ok := index[other]; !ok {
				return nil, ErrUnknownWindingName
			}
			set[other] = true
		}
		adjacency[i] = set
	}

	// Symmetry: if A lists B, B must list A.
	for i, w := range windings {
		for other := range adjacency[i] {
			j := index[other]
			if !adjacency[j][w.Name] {
				return nil, ErrInvalidGrouping
			}
		}
	}

	// Union-find to discover connected components.
	parent := make([]int, len(windings))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}

		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}
	for i := range windings {
		for other := range adjacency[i] {
			union(i, index[other])
		}
	}

	groups := make(map[int][]int)
	for i := range windings {
		root := find(i)
		groups[root] = append(groups[root], i)
	}

	result := make([]VirtualWinding, 0, len(groups))
	for _, members := range groups {
		sort.Ints(members)

		first := windings[members[0]]
		if len(members) > 1 {
			// Transitivity: every member must directly list every other
			// member of its component (a declared clique, not an
			// inferred closure).
			memberSet := make(map[string]bool, len(members))
			for _, m := range members {
				memberSet[windings[m].Name] = true
			}
			for _, m := range members {
				w := windings[m]
				if w.IsolationSide != first.IsolationSide {
					return nil, ErrInvalidGrouping
				}
				if w.Parallels != first.Parallels {
					return nil, ErrInvalidGrouping
				}
				for other := range memberSet {
					if other == w.Name {
						continue
					}
					if !adjacency[m][other] {
						return nil, ErrInvalidGrouping
					}
				}
			}
		}

		names := make([]string, len(members))
		turns := 0
		for i, m := range members {
			names[i] = windings[m].Name
			turns += windings[m].Turns
		}

		name := names[0]
		if len(names) > 1 {
			name = strings.Join(names, "+")
		}

		result = append(result, VirtualWinding{
			Name:          name,
			Members:       names,
			Turns:         turns,
			Parallels:     first.Parallels,
			IsolationSide: first.IsolationSide,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return index[result[i].Members[0]] < index[result[j].Members[0]]
	})

	return result, nil
}
