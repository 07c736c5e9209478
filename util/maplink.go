package util

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/go-querystring/query"
)

var (
	// ErrNotMapURL is returned when the pasted text does not look like a
	// map-service link at all.
	ErrNotMapURL = errors.New("not a recognized map-service URL")
	// ErrNoCoordinates is returned for a recognized map link in which no
	// coordinate pattern matched.
	ErrNoCoordinates = errors.New("no coordinate pattern matched in map URL")
)

var mapHostTokens = []string{
	"google.com/maps",
	"maps.google.",
	"goo.gl/maps",
	"maps.app.goo.gl",
}

var (
	rgxAtPair      = regexp.MustCompile(`@(-?\d+\.?\d*),(-?\d+\.?\d*)(?:,(\d+\.?\d*)z)?`)
	rgxBangPair    = regexp.MustCompile(`!3d(-?\d+\.?\d*)!4d(-?\d+\.?\d*)`)
	rgxLLParam     = regexp.MustCompile(`[?&]ll=(-?\d+\.?\d*),(-?\d+\.?\d*)`)
	rgxQParam      = regexp.MustCompile(`[?&]q=(-?\d+\.?\d*),(-?\d+\.?\d*)`)
	rgxCenterParam = regexp.MustCompile(`[?&]center=(-?\d+\.?\d*),(-?\d+\.?\d*)`)
	rgxPlaceAt     = regexp.MustCompile(`/place/[^/]+/@(-?\d+\.?\d*),(-?\d+\.?\d*)`)
	rgxDirAt       = regexp.MustCompile(`/dir/.*@(-?\d+\.?\d*),(-?\d+\.?\d*)`)
	rgxDataPair    = regexp.MustCompile(`[?&]data=[^&]*?(-?\d+\.\d+),(-?\d+\.\d+)`)
)

// coordinateMatchers is tried strictly in order; the first hit wins and no
// attempt is made to reconcile later, conflicting matches.
var coordinateMatchers = []*regexp.Regexp{
	rgxAtPair,
	rgxBangPair,
	rgxLLParam,
	rgxQParam,
	rgxCenterParam,
	rgxPlaceAt,
	rgxDirAt,
	rgxDataPair,
}

// ExtractMapCoordinates pulls a latitude/longitude pair out of a pasted
// map-service URL without any network lookup.
func ExtractMapCoordinates(rawURL string) (Coordinate, error) {
	if !isMapURL(rawURL) {
		return Coordinate{}, ErrNotMapURL
	}

	for _, rgx := range coordinateMatchers {
		match := rgx.FindStringSubmatch(rawURL)
		if match == nil {
			continue
		}
		lat, errLat := strconv.ParseFloat(match[1], 64)
		lng, errLng := strconv.ParseFloat(match[2], 64)
		if errLat != nil || errLng != nil {
			continue
		}
		return Coordinate{Lat: lat, Lon: lng}, nil
	}

	return Coordinate{}, ErrNoCoordinates
}

func isMapURL(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	for _, token := range mapHostTokens {
		if strings.Contains(lower, token) {
			return true
		}
	}
	return false
}

type directionsQuery struct {
	API         int    `url:"api"`
	Destination string `url:"destination"`
	TravelMode  string `url:"travelmode,omitempty"`
}

// BuildDirectionsURL builds the Google Maps deep link ticket holders are
// sent to for a stop. The inverse of ExtractMapCoordinates.
func BuildDirectionsURL(lat, lng float64) string {
	v, err := query.Values(directionsQuery{
		API:         1,
		Destination: fmt.Sprintf("%.6f,%.6f", lat, lng),
		TravelMode:  "walking",
	})
	if err != nil {
		return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%.6f,%.6f", lat, lng)
	}
	return "https://www.google.com/maps/dir/?" + v.Encode()
}
