// Package route maintains the structural and aggregate invariants of a
// multi-stop event route as the organizer edits it. Every operation is a
// pure function from the old route value to a new one; the caller owns the
// canonical value and persists the result.
package route

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bartrekker/bartrekker_api/internal/model"
)

const (
	// Dwell time defaults in minutes. Mid-tour stops default longer than the
	// starting stop to reflect typical crawl pacing.
	StartStayDuration  = 60
	AppendStayDuration = 75
	CustomStayDuration = 60
)

// Route size classes, derived at display time and never persisted.
const (
	ClassSingleLocation = "Single Location"
	ClassMiniTour       = "Mini Tour"
	ClassFullPubCrawl   = "Full Pub Crawl"
)

// StartingStopFromVenue builds the first stop of a route from a known venue.
// The id is namespaced to the venue id alone, so building the starting stop
// twice for the same venue yields the same id.
func StartingStopFromVenue(v model.Venue) model.Location {
	return model.Location{
		ID:   "venue-" + v.ID.String(),
		Name: v.Name,
		Coordinates: model.Coordinates{
			Latitude:  v.Latitude,
			Longitude: v.Longitude,
		},
		Address:      v.Address,
		Order:        0,
		StayDuration: StartStayDuration,
		BarName:      v.Name,
		BarAddress:   v.Address,
		BarPhone:     v.Phone,
		BarEmail:     v.Email,
	}
}

// StartFromVenue creates a fresh one-stop route whose starting stop is
// derived from the venue.
func StartFromVenue(v model.Venue) *model.Route {
	return rebuild([]model.Location{StartingStopFromVenue(v)})
}

// AppendVenueStop appends a stop derived from a known venue. The id carries
// the current timestamp so the same venue can appear on the route more than
// once. A nil route is created on first append.
func AppendVenueStop(r *model.Route, v model.Venue) *model.Route {
	locs := copyLocations(r)
	locs = append(locs, model.Location{
		ID:   fmt.Sprintf("venue-%s-%d", v.ID.String(), time.Now().UnixMilli()),
		Name: v.Name,
		Coordinates: model.Coordinates{
			Latitude:  v.Latitude,
			Longitude: v.Longitude,
		},
		Address:      v.Address,
		Order:        len(locs),
		StayDuration: AppendStayDuration,
		BarName:      v.Name,
		BarAddress:   v.Address,
		BarPhone:     v.Phone,
		BarEmail:     v.Email,
	})
	return rebuild(locs)
}

// AddCustomStop appends an empty, manually-entered stop with zero
// coordinates and no venue provenance.
func AddCustomStop(r *model.Route) *model.Route {
	locs := copyLocations(r)
	locs = append(locs, model.Location{
		ID:           fmt.Sprintf("custom-%d", time.Now().UnixMilli()),
		Order:        len(locs),
		StayDuration: CustomStayDuration,
	})
	return rebuild(locs)
}

// RemoveStop filters the stop with the given id out of the route and
// reindexes the remaining stops. Removing the last stop collapses the route
// to nil rather than leaving an empty active route.
func RemoveStop(r *model.Route, id string) *model.Route {
	if r == nil {
		return nil
	}
	locs := make([]model.Location, 0, len(r.Locations))
	for _, loc := range r.Locations {
		if loc.ID != id {
			locs = append(locs, loc)
		}
	}
	if len(locs) == 0 {
		return nil
	}
	return rebuild(locs)
}

// UpdateStop applies a partial update to the one matching stop. Unknown ids
// and nil routes are no-ops.
func UpdateStop(r *model.Route, id string, patch model.LocationPatch) *model.Route {
	if r == nil {
		return nil
	}
	locs := copyLocations(r)
	found := false
	for i := range locs {
		if locs[i].ID != id {
			continue
		}
		found = true
		if patch.Name != nil {
			locs[i].Name = *patch.Name
		}
		if patch.Address != nil {
			locs[i].Address = *patch.Address
		}
		if patch.Coordinates != nil {
			locs[i].Coordinates = *patch.Coordinates
		}
		if patch.StayDuration != nil {
			locs[i].StayDuration = *patch.StayDuration
		}
		if patch.Description != nil {
			locs[i].Description = *patch.Description
		}
		break
	}
	if !found {
		return r
	}
	return rebuild(locs)
}

// UpdateStopCoordinates is UpdateStop restricted to the coordinate pair.
func UpdateStopCoordinates(r *model.Route, id string, lat, lng float64) *model.Route {
	return UpdateStop(r, id, model.LocationPatch{
		Coordinates: &model.Coordinates{Latitude: lat, Longitude: lng},
	})
}

// ClassifyRoute names the route size class for the given stop count.
func ClassifyRoute(stopCount int) string {
	switch {
	case stopCount <= 1:
		return ClassSingleLocation
	case stopCount <= 3:
		return ClassMiniTour
	default:
		return ClassFullPubCrawl
	}
}

// ParseStayDuration parses a dwell-time form field. Values that fail to
// parse as an integer are coerced to 0; the dashboard re-surfaces the wrong
// value visually instead of blocking input.
func ParseStayDuration(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// TotalDuration sums the stay durations of all stops.
func TotalDuration(locs []model.Location) int {
	total := 0
	for _, loc := range locs {
		total += loc.StayDuration
	}
	return total
}

func copyLocations(r *model.Route) []model.Location {
	if r == nil {
		return nil
	}
	locs := make([]model.Location, len(r.Locations))
	copy(locs, r.Locations)
	return locs
}

// rebuild reindexes order 0..N-1, recomputes the duration total and marks
// the route active.
func rebuild(locs []model.Location) *model.Route {
	for i := range locs {
		locs[i].Order = i
	}
	return &model.Route{
		Locations:     locs,
		TotalDuration: TotalDuration(locs),
		IsActive:      true,
	}
}
