package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-polyline"
)

func TestNotBlank(t *testing.T) {
	assert.True(t, NotBlank("x"))
	assert.False(t, NotBlank(""))
	assert.False(t, NotBlank("   "))
}

func TestGenerateShortCode(t *testing.T) {
	code := GenerateShortCode(6)
	assert.Len(t, code, 6)
	assert.Regexp(t, "^[A-Z0-9]{6}$", code)
}

func TestPointRoundTrip(t *testing.T) {
	lat, lon := PointToLatLon(PointFromLatLon(41.8781, -87.6298))
	assert.Equal(t, 41.8781, lat)
	assert.Equal(t, -87.6298, lon)
}

func TestEncodeRoutePolyline(t *testing.T) {
	coords := []Coordinate{
		{Lat: 41.8781, Lon: -87.6298},
		{Lat: 41.9171, Lon: -87.6768},
		{Lat: 41.9484, Lon: -87.6553},
	}

	encoded := EncodeRoutePolyline(coords)
	require.NotEmpty(t, encoded)

	decoded, _, err := polyline.DecodeCoords([]byte(encoded))
	require.NoError(t, err)
	require.Len(t, decoded, len(coords))
	for i, pair := range decoded {
		assert.InDelta(t, coords[i].Lat, pair[0], 1e-5)
		assert.InDelta(t, coords[i].Lon, pair[1], 1e-5)
	}
}

func TestEncodeRoutePolylineEmpty(t *testing.T) {
	assert.Empty(t, EncodeRoutePolyline(nil))
}
