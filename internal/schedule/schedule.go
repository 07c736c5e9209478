// Package schedule expands an event's recurrence rule into concrete
// upcoming dates for the dashboard and exports them as an iCalendar feed.
package schedule

import (
	"errors"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/bartrekker/bartrekker_api/internal/model"
)

const defaultMaxOccurrences = 52

// UpcomingOccurrences returns the event's next start times within one year
// of from, expressed in the event's own timezone. Events without a
// recurrence rule yield at most their single start time. The count cap
// guards against runaway rules; zero means the default cap.
func UpcomingOccurrences(ev model.Event, from time.Time, count int) ([]time.Time, error) {
	if count <= 0 {
		count = defaultMaxOccurrences
	}

	loc, err := time.LoadLocation(ev.Timezone)
	if err != nil {
		return nil, errors.New("schedule: unknown event timezone " + ev.Timezone)
	}

	if ev.RecurrenceRule == "" {
		start := ev.StartsAt.In(loc)
		if start.Before(from) {
			return nil, nil
		}
		return []time.Time{start}, nil
	}

	r, err := rrule.StrToRRule(ev.RecurrenceRule)
	if err != nil {
		return nil, err
	}
	r.DTStart(ev.StartsAt.In(loc))

	occ := r.Between(from.In(loc), from.AddDate(1, 0, 0).In(loc), true)
	if len(occ) > count {
		occ = occ[:count]
	}
	for i := range occ {
		occ[i] = occ[i].In(loc)
	}
	return occ, nil
}
