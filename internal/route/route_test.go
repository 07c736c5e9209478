package route

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartrekker/bartrekker_api/internal/model"
)

func testVenue(name string) model.Venue {
	return model.Venue{
		ID:        uuid.New(),
		Name:      name,
		Address:   "1 " + name + " St",
		Latitude:  41.8781,
		Longitude: -87.6298,
		Phone:     "555-0100",
		Email:     name + "@example.com",
	}
}

// assertRouteInvariants checks the two aggregate invariants every operation
// must maintain: order values are exactly 0..N-1 in sequence position, and
// the duration total equals the sum over all stops.
func assertRouteInvariants(t *testing.T, r *model.Route) {
	t.Helper()
	require.NotNil(t, r)

	sum := 0
	for i, loc := range r.Locations {
		assert.Equal(t, i, loc.Order, "stop %s has wrong order", loc.ID)
		sum += loc.StayDuration
	}
	assert.Equal(t, sum, r.TotalDuration)
	assert.True(t, r.IsActive)
}

func TestStartFromVenue(t *testing.T) {
	v := testVenue("Hopleaf")

	r := StartFromVenue(v)

	assertRouteInvariants(t, r)
	require.Len(t, r.Locations, 1)

	loc := r.Locations[0]
	assert.Equal(t, "venue-"+v.ID.String(), loc.ID)
	assert.Equal(t, 0, loc.Order)
	assert.Equal(t, StartStayDuration, loc.StayDuration)
	assert.Equal(t, v.Name, loc.Name)
	assert.Equal(t, v.Address, loc.Address)
	assert.Equal(t, v.Latitude, loc.Coordinates.Latitude)
	assert.Equal(t, v.Longitude, loc.Coordinates.Longitude)
	assert.Equal(t, v.Name, loc.BarName)
	assert.Equal(t, v.Phone, loc.BarPhone)
	assert.Equal(t, v.Email, loc.BarEmail)

	// The starting stop id carries no timestamp, so it is stable per venue.
	again := StartFromVenue(v)
	assert.Equal(t, loc.ID, again.Locations[0].ID)
}

func TestAppendVenueStop(t *testing.T) {
	v1 := testVenue("Hopleaf")
	v2 := testVenue("Map Room")

	r := StartFromVenue(v1)
	r2 := AppendVenueStop(r, v2)

	assertRouteInvariants(t, r2)
	require.Len(t, r2.Locations, 2)
	assert.Equal(t, AppendStayDuration, r2.Locations[1].StayDuration)
	assert.True(t, strings.HasPrefix(r2.Locations[1].ID, "venue-"+v2.ID.String()+"-"))
	assert.Equal(t, StartStayDuration+AppendStayDuration, r2.TotalDuration)

	// Input route untouched.
	assert.Len(t, r.Locations, 1)
	assert.Equal(t, StartStayDuration, r.TotalDuration)
}

func TestAppendVenueStopCreatesRoute(t *testing.T) {
	v := testVenue("Hopleaf")

	r := AppendVenueStop(nil, v)

	assertRouteInvariants(t, r)
	require.Len(t, r.Locations, 1)
	assert.Equal(t, 0, r.Locations[0].Order)
	assert.Equal(t, AppendStayDuration, r.Locations[0].StayDuration)
}

func TestAppendSameVenueTwice(t *testing.T) {
	v := testVenue("Hopleaf")

	r := AppendVenueStop(AppendVenueStop(nil, v), v)

	assertRouteInvariants(t, r)
	require.Len(t, r.Locations, 2)
}

func TestAddCustomStop(t *testing.T) {
	r := AddCustomStop(nil)

	assertRouteInvariants(t, r)
	require.Len(t, r.Locations, 1)

	loc := r.Locations[0]
	assert.True(t, strings.HasPrefix(loc.ID, "custom-"))
	assert.Empty(t, loc.Name)
	assert.Empty(t, loc.Address)
	assert.Zero(t, loc.Coordinates.Latitude)
	assert.Zero(t, loc.Coordinates.Longitude)
	assert.Equal(t, CustomStayDuration, loc.StayDuration)
	assert.Empty(t, loc.BarName)
}

func TestRemoveStopReindexes(t *testing.T) {
	r := StartFromVenue(testVenue("A"))
	r = AppendVenueStop(r, testVenue("B"))
	r = AppendVenueStop(r, testVenue("C"))

	removed := RemoveStop(r, r.Locations[1].ID)

	assertRouteInvariants(t, removed)
	require.Len(t, removed.Locations, 2)
	assert.Equal(t, "A", removed.Locations[0].Name)
	assert.Equal(t, "C", removed.Locations[1].Name)
}

func TestRemoveLastStopCollapsesRoute(t *testing.T) {
	r := StartFromVenue(testVenue("A"))

	assert.Nil(t, RemoveStop(r, r.Locations[0].ID))
}

func TestRemoveStopUnknownID(t *testing.T) {
	r := StartFromVenue(testVenue("A"))

	after := RemoveStop(r, "no-such-stop")

	assertRouteInvariants(t, after)
	assert.Len(t, after.Locations, 1)
}

func TestRemoveStopNilRoute(t *testing.T) {
	assert.Nil(t, RemoveStop(nil, "anything"))
}

func TestUpdateStop(t *testing.T) {
	r := StartFromVenue(testVenue("A"))
	r = AppendVenueStop(r, testVenue("B"))
	target := r.Locations[0].ID

	name := "Renamed"
	stay := 30
	updated := UpdateStop(r, target, model.LocationPatch{Name: &name, StayDuration: &stay})

	assertRouteInvariants(t, updated)
	assert.Equal(t, "Renamed", updated.Locations[0].Name)
	assert.Equal(t, 30, updated.Locations[0].StayDuration)
	assert.Equal(t, 30+AppendStayDuration, updated.TotalDuration)

	// The other stop is untouched, as is the input route.
	assert.Equal(t, r.Locations[1], updated.Locations[1])
	assert.Equal(t, "A", r.Locations[0].Name)
}

func TestUpdateStopUnknownIDIsNoop(t *testing.T) {
	r := StartFromVenue(testVenue("A"))

	assert.Same(t, r, UpdateStop(r, "no-such-stop", model.LocationPatch{}))
}

func TestUpdateStopNilRouteIsNoop(t *testing.T) {
	assert.Nil(t, UpdateStop(nil, "anything", model.LocationPatch{}))
}

func TestUpdateStopCoordinates(t *testing.T) {
	r := StartFromVenue(testVenue("A"))

	updated := UpdateStopCoordinates(r, r.Locations[0].ID, 51.5074, -0.1278)

	assertRouteInvariants(t, updated)
	assert.Equal(t, 51.5074, updated.Locations[0].Coordinates.Latitude)
	assert.Equal(t, -0.1278, updated.Locations[0].Coordinates.Longitude)
	// Only the coordinate pair changes.
	assert.Equal(t, r.Locations[0].Name, updated.Locations[0].Name)
	assert.Equal(t, r.TotalDuration, updated.TotalDuration)
}

func TestClassifyRoute(t *testing.T) {
	testCases := []struct {
		stopCount int
		expected  string
	}{
		{0, ClassSingleLocation},
		{1, ClassSingleLocation},
		{2, ClassMiniTour},
		{3, ClassMiniTour},
		{4, ClassFullPubCrawl},
		{9, ClassFullPubCrawl},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ClassifyRoute(tc.stopCount), "count %d", tc.stopCount)
	}
}

func TestParseStayDuration(t *testing.T) {
	testCases := []struct {
		input    string
		expected int
	}{
		{"45", 45},
		{" 30 ", 30},
		{"0", 0},
		{"-5", -5},
		{"", 0},
		{"abc", 0},
		{"12.5", 0},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, ParseStayDuration(tc.input), "input %q", tc.input)
	}
}
