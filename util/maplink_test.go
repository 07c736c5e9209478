package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMapCoordinates(t *testing.T) {
	testCases := []struct {
		name string
		url  string
		lat  float64
		lng  float64
	}{
		{
			"q parameter",
			"https://maps.google.com/maps?q=40.7128,-74.0060",
			40.7128, -74.0060,
		},
		{
			"at-pair with zoom wins over place path",
			"https://maps.google.com/maps/place/X/@51.5074,-0.1278,17z",
			51.5074, -0.1278,
		},
		{
			"bang 3d 4d pair",
			"https://maps.google.com/maps?pb=!3d48.8584!4d2.2945",
			48.8584, 2.2945,
		},
		{
			"ll parameter",
			"https://maps.google.com/?ll=35.6762,139.6503",
			35.6762, 139.6503,
		},
		{
			"center parameter",
			"https://www.google.com/maps/embed/v1/view?center=-33.8688,151.2093",
			-33.8688, 151.2093,
		},
		{
			"directions path",
			"https://www.google.com/maps/dir/Current+Location/@41.8781,-87.6298,15z",
			41.8781, -87.6298,
		},
		{
			"short link with at-pair",
			"https://maps.app.goo.gl/abc@52.3676,4.9041",
			52.3676, 4.9041,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			coord, err := ExtractMapCoordinates(tc.url)
			require.NoError(t, err)
			assert.InDelta(t, tc.lat, coord.Lat, 1e-9)
			assert.InDelta(t, tc.lng, coord.Lon, 1e-9)
		})
	}
}

func TestExtractMapCoordinatesNotMapURL(t *testing.T) {
	for _, url := range []string{
		"https://example.com/?q=40.7128,-74.0060",
		"not a url at all",
		"",
	} {
		_, err := ExtractMapCoordinates(url)
		assert.ErrorIs(t, err, ErrNotMapURL, "url %q", url)
	}
}

func TestExtractMapCoordinatesNoPattern(t *testing.T) {
	for _, url := range []string{
		"https://www.google.com/maps",
		"https://maps.google.com/maps?q=Chicago",
	} {
		_, err := ExtractMapCoordinates(url)
		assert.ErrorIs(t, err, ErrNoCoordinates, "url %q", url)
	}
}

func TestBuildDirectionsURL(t *testing.T) {
	got := BuildDirectionsURL(51.5074, -0.1278)

	assert.Equal(t,
		"https://www.google.com/maps/dir/?api=1&destination=51.507400%2C-0.127800&travelmode=walking",
		got,
	)
}
