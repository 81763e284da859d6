package winding_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowind/coilwind/layout"
	"github.com/gowind/coilwind/winding"
)

func TestVirtualizeSingletons(t *testing.T) {
	ws := []winding.Winding{
		{Name: "primary", Turns: 60, Parallels: 1, IsolationSide: layout.Primary, WireName: "w1"},
		{Name: "secondary", Turns: 42, Parallels: 1, IsolationSide: layout.Secondary, WireName: "w2"},
	}
	vs, err := winding.Virtualize(ws)
	require.NoError(t, err)
	require.Len(t, vs, 2)
	require.Equal(t, "primary", vs[0].Name)
	require.Equal(t, 60, vs[0].Turns)
}

func TestVirtualizeGroup(t *testing.T) {
	ws := []winding.Winding{
		{Name: "a", Turns: 5, Parallels: 1, IsolationSide: layout.Primary, WireName: "w", WoundWith: []string{"b"}},
		{Name: "b", Turns: 5, Parallels: 1, IsolationSide: layout.Primary, WireName: "w", WoundWith: []string{"a"}},
	}
	vs, err := winding.Virtualize(ws)
	require.NoError(t, err)
	require.Len(t, vs, 1)
	require.Equal(t, 10, vs[0].Turns)
	require.Equal(t, "a+b", vs[0].Name)
}

func TestVirtualizeUnknownName(t *testing.T) {
	ws := []winding.Winding{
		{Name: "a", Turns: 5, Parallels: 1, WireName: "w", WoundWith: []string{"ghost"}},
	}
	_, err := winding.Virtualize(ws)
	require.ErrorIs(t, err, winding.ErrUnknownWindingName)
}

func TestVirtualizeAsymmetric(t *testing.T) {
	ws := []winding.Winding{
		{Name: "a", Turns: 5, Parallels: 1, WireName: "w", WoundWith: []string{"b"}},
		{Name: "b", Turns: 5, Parallels: 1, WireName: "w"},
	}
	_, err := winding.Virtualize(ws)
	require.ErrorIs(t, err, winding.ErrInvalidGrouping)
}

func TestVirtualizeCrossIsolation(t *testing.T) {
	ws := []winding.Winding{
		{Name: "a", Turns: 5, Parallels: 1, IsolationSide: layout.Primary, WireName: "w", WoundWith: []string{"b"}},
		{Name: "b", Turns: 5, Parallels: 1, IsolationSide: layout.Secondary, WireName: "w", WoundWith: []string{"a"}},
	}
	_, err := winding.Virtualize(ws)
	require.ErrorIs(t, err, winding.ErrInvalidGrouping)
}

func TestVirtualizeNonTransitive(t *testing.T) {
	// a-b and b-c listed, but a-c not listed: not a declared clique.
	ws := []winding.Winding{
		{Name: "a", Turns: 5, Parallels: 1, WireName: "w", WoundWith: []string{"b"}},
		{Name: "b", Turns: 5, Parallels: 1, WireName: "w", WoundWith: []string{"a", "c"}},
		{Name: "c", Turns: 5, Parallels: 1, WireName: "w", WoundWith: []string{"b"}},
	}
	_, err := winding.Virtualize(ws)
	require.ErrorIs(t, err, winding.ErrInvalidGrouping)
}

func TestWindingValidate(t *testing.T) {
	w := winding.Winding{Turns: 0, Parallels: 1, WireName: "w"}
	require.ErrorIs(t, w.Validate(), winding.ErrInvalidTurns)
}
