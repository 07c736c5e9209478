package schedule

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"github.com/bartrekker/bartrekker_api/internal/model"
)

// Fallback crawl length when the event has no route yet.
const defaultEventMinutes = 120

// EventCalendar renders the given occurrences of an event as an iCalendar
// feed organizers can subscribe to. Each occurrence's duration follows the
// route's total stay time.
func EventCalendar(ev model.Event, occurrences []time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//BarTrekker//Admin Dashboard//EN")

	minutes := defaultEventMinutes
	location := ""
	if ev.Route != nil && len(ev.Route.Locations) > 0 {
		minutes = ev.Route.TotalDuration
		location = ev.Route.Locations[0].Address
	}

	now := time.Now()
	for i, start := range occurrences {
		e := cal.AddEvent(fmt.Sprintf("%s-%d@bartrekker", ev.ID.String(), i))
		e.SetDtStampTime(now)
		e.SetStartAt(start)
		e.SetEndAt(start.Add(time.Duration(minutes) * time.Minute))
		e.SetSummary(ev.Name)
		if ev.Description != "" {
			e.SetDescription(ev.Description)
		}
		if location != "" {
			e.SetLocation(location)
		}
	}

	return cal.Serialize()
}
