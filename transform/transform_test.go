package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeographicAdapterIsIdentity(t *testing.T) {
	a := NewGeographic()
	assert.True(t, a.IsGeographic())

	lon, lat, z, err := a.ToGeographic(12.5, 41.9, 10)
	require.NoError(t, err)
	assert.Equal(t, 12.5, lon)
	assert.Equal(t, 41.9, lat)
	assert.Equal(t, 10.0, z)

	x, y, z, err := a.FromGeographic(lon, lat, z)
	require.NoError(t, err)
	assert.Equal(t, 12.5, x)
	assert.Equal(t, 41.9, y)
	assert.Equal(t, 10.0, z)
}

func TestEPSGAdapterRoundTrips(t *testing.T) {
	a, err := NewEPSG(3857) // Web Mercator
	require.NoError(t, err)
	assert.False(t, a.IsGeographic())
	assert.Equal(t, "EPSG:3857", a.String())

	x, y := 1113194.9, 5179668.0 // roughly (10, 42) in Web Mercator
	lon, lat, _, err := a.ToGeographic(x, y, 0)
	require.NoError(t, err)

	x2, y2, _, err := a.FromGeographic(lon, lat, 0)
	require.NoError(t, err)
	assert.InDelta(t, x, x2, 1e-3)
	assert.InDelta(t, y, y2, 1e-3)
}

func TestEPSGUnknownCodeErrors(t *testing.T) {
	_, err := NewEPSG(999999999)
	require.Error(t, err)
}
