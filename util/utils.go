package util

import (
	"math/rand"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/twpayne/go-polyline"
)

var shortCodeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// GenerateShortCode builds the door code staff use to check tickets at an
// event. Not cryptographic.
func GenerateShortCode(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = shortCodeCharset[rand.Intn(len(shortCodeCharset))]
	}
	return string(b)
}

func PointToLatLon(point pgtype.Point) (float64, float64) {
	return point.P.Y, point.P.X
}

// PointFromLatLon creates a pgtype.Point from latitude and longitude.
func PointFromLatLon(lat, lon float64) pgtype.Point {
	return pgtype.Point{
		P: pgtype.Vec2{
			X: lon,
			Y: lat,
		},
	}
}

// Coordinate represents a latitude/longitude pair.
type Coordinate struct {
	Lat float64
	Lon float64
}

// EncodeRoutePolyline encodes the ordered stop coordinates of a route into
// a Google polyline string for the dashboard map preview.
func EncodeRoutePolyline(coords []Coordinate) string {
	pairs := make([][]float64, len(coords))
	for i, c := range coords {
		pairs[i] = []float64{c.Lat, c.Lon}
	}
	return string(polyline.EncodeCoords(pairs))
}
