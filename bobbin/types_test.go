package bobbin_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowind/coilwind/bobbin"
)

func TestResolveExplicit(t *testing.T) {
	b := bobbin.Bobbin{
		Window: bobbin.Window{Shape: bobbin.RectangularShape, Width: 10, Height: 10},
	}
	got, err := bobbin.Resolve("ignored", &b, nil)
	require.NoError(t, err)
	require.Equal(t, 10.0, got.Window.Width)
}

func TestResolveUnknownShape(t *testing.T) {
	provider := bobbin.NewStaticCoreGeometryProvider(nil)
	_, err := bobbin.Resolve("T 20/10/7", nil, provider)
	require.ErrorIs(t, err, bobbin.ErrUnresolvedBobbin)
}

func TestResolveFromProvider(t *testing.T) {
	provider := bobbin.NewStaticCoreGeometryProvider(map[string]bobbin.CoreGeometry{
		"T 20/10/7": {
			WallThickness: 0.5,
			Windows: []bobbin.Window{
				{Shape: bobbin.RoundShape, RadialHeight: 3.5, Angle: 360},
			},
		},
	})
	got, err := bobbin.Resolve("T 20/10/7", nil, provider)
	require.NoError(t, err)
	require.Equal(t, bobbin.RoundShape, got.Window.Shape)

	sector := got.UsableSector()
	require.InDelta(t, 3.5, sector.OuterRadius-sector.InnerRadius, 1e-9)
}

func TestBobbinValidate(t *testing.T) {
	b := bobbin.Bobbin{Window: bobbin.Window{Shape: bobbin.RectangularShape}}
	require.ErrorIs(t, b.Validate(), bobbin.ErrInvalidWindow)
}
