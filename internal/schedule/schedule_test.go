package schedule

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartrekker/bartrekker_api/internal/model"
)

func weeklyEvent() model.Event {
	// Friday evening crawl, repeating weekly.
	return model.Event{
		ID:             uuid.New(),
		Name:           "Friday Night Crawl",
		StartsAt:       time.Date(2025, 6, 6, 18, 0, 0, 0, time.UTC),
		Timezone:       "UTC",
		RecurrenceRule: "FREQ=WEEKLY",
	}
}

func TestUpcomingOccurrencesWeekly(t *testing.T) {
	ev := weeklyEvent()
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	occ, err := UpcomingOccurrences(ev, from, 4)
	require.NoError(t, err)
	require.Len(t, occ, 4)

	for i, o := range occ {
		assert.Equal(t, time.Friday, o.Weekday())
		if i > 0 {
			assert.Equal(t, 7*24*time.Hour, o.Sub(occ[i-1]))
		}
	}
	assert.Equal(t, ev.StartsAt, occ[0])
}

func TestUpcomingOccurrencesNoRule(t *testing.T) {
	ev := weeklyEvent()
	ev.RecurrenceRule = ""

	occ, err := UpcomingOccurrences(ev, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 0)
	require.NoError(t, err)
	require.Len(t, occ, 1)
	assert.Equal(t, ev.StartsAt, occ[0])

	// A one-off event already in the past has no upcoming occurrences.
	occ, err = UpcomingOccurrences(ev, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), 0)
	require.NoError(t, err)
	assert.Empty(t, occ)
}

func TestUpcomingOccurrencesBadInput(t *testing.T) {
	ev := weeklyEvent()
	ev.Timezone = "Not/AZone"
	_, err := UpcomingOccurrences(ev, time.Now(), 0)
	assert.Error(t, err)

	ev = weeklyEvent()
	ev.RecurrenceRule = "FREQ=SOMETIMES"
	_, err = UpcomingOccurrences(ev, time.Now(), 0)
	assert.Error(t, err)
}

func TestEventCalendar(t *testing.T) {
	ev := weeklyEvent()
	ev.Description = "Five bars, one night"
	ev.Route = &model.Route{
		Locations: []model.Location{
			{ID: "s1", Name: "Hopleaf", Address: "5148 N Clark St", StayDuration: 60, Order: 0},
			{ID: "s2", Name: "Map Room", Address: "1949 N Hoyne Ave", StayDuration: 75, Order: 1},
		},
		TotalDuration: 135,
		IsActive:      true,
	}

	occ, err := UpcomingOccurrences(ev, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), 2)
	require.NoError(t, err)

	cal := EventCalendar(ev, occ)

	assert.True(t, strings.HasPrefix(cal, "BEGIN:VCALENDAR"))
	assert.Equal(t, 2, strings.Count(cal, "BEGIN:VEVENT"))
	assert.Contains(t, cal, "SUMMARY:Friday Night Crawl")
	assert.Contains(t, cal, "5148 N Clark St")
}
