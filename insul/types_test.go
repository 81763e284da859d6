package insul_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowind/coilwind/insul"
	"github.com/gowind/coilwind/layout"
)

func TestIntersectionThicknessGlobalAndOverride(t *testing.T) {
	p := insul.NewPlanner(nil)
	p.IntersectionInsulation(0.1)
	p.IntersectionInsulation(0.5, insul.ApplyToWinding("secondary"))

	require.Equal(t, 0.1, p.IntersectionThickness("primary"))
	require.Equal(t, 0.5, p.IntersectionThickness("secondary"))
	require.Equal(t, 0.5, p.IntersectionThickness("primary", "secondary"))
}

func TestCustomThicknessUniform(t *testing.T) {
	p := insul.NewPlanner(nil)
	p.CustomThicknessInsulation(0.3)
	require.Equal(t, 0.3, p.IntersectionThickness())
	require.Equal(t, 0.3, p.InterlayerThickness())
}

func TestResolveInsulationLayerMaterial(t *testing.T) {
	table := insul.NewStaticMaterialTable()
	table.Add(layout.Primary, layout.Secondary, 400, "polyester film", 0.15)
	p := insul.NewPlanner(table)

	material, thickness, err := p.ResolveInsulationLayerMaterial(layout.Secondary, layout.Primary, 400)
	require.NoError(t, err)
	require.Equal(t, "polyester film", material)
	require.Equal(t, 0.15, thickness)

	_, _, err = p.ResolveInsulationLayerMaterial(layout.Primary, layout.Tertiary, 400)
	require.ErrorIs(t, err, insul.ErrInsulationLookupFailed)
}

func TestResolveInsulationLayerMaterialNoTable(t *testing.T) {
	p := insul.NewPlanner(nil)
	_, _, err := p.ResolveInsulationLayerMaterial(layout.Primary, layout.Secondary, 400)
	require.ErrorIs(t, err, insul.ErrInsulationLookupFailed)
}
