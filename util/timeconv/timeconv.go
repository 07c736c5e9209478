// Package timeconv converts "HH:MM" wall-clock strings between a named IANA
// zone and UTC. Recurring notification times are stored in UTC and shown to
// the organizer in their own zone.
//
// Known limitation: the local-to-UTC direction uses the zone's offset at the
// current instant, not the offset on the date the stored time will actually
// fire. A daily notification scheduled across a daylight-saving transition
// can therefore drift by an hour until it is re-saved. This matches the
// behavior the dashboard has always had and is kept deliberately.
package timeconv

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var rgxHHMM = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

const minutesPerDay = 24 * 60

// LocalToUTC converts an "HH:MM" time in the named zone to "HH:MM" UTC.
// On any parse failure the original input is returned together with a
// non-nil error, so callers may either surface the failure or keep the
// unconverted value.
func LocalToUTC(hhmm, zone string) (string, error) {
	return localToUTCAt(hhmm, zone, time.Now())
}

// UTCToLocal converts an "HH:MM" UTC time to the named zone for display.
// It fails soft the same way LocalToUTC does.
func UTCToLocal(hhmm, zone string) (string, error) {
	return utcToLocalAt(hhmm, zone, time.Now())
}

func localToUTCAt(hhmm, zone string, now time.Time) (string, error) {
	h, m, err := parseHHMM(hhmm)
	if err != nil {
		return hhmm, err
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return hhmm, fmt.Errorf("unknown timezone %q: %w", zone, err)
	}

	// Offset of the zone right now, taken by formatting the same instant in
	// both zones and differencing the wall-clock minutes.
	localNow := now.In(loc)
	utcNow := now.UTC()
	offset := (localNow.Hour()*60 + localNow.Minute()) - (utcNow.Hour()*60 + utcNow.Minute())

	// Normalize into (-12h, +12h]; the naive difference rolls over when the
	// two zones are on different calendar dates.
	if offset > minutesPerDay/2 {
		offset -= minutesPerDay
	} else if offset <= -minutesPerDay/2 {
		offset += minutesPerDay
	}

	utcMinutes := (h*60 + m - offset) % minutesPerDay
	if utcMinutes < 0 {
		utcMinutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", utcMinutes/60, utcMinutes%60), nil
}

func utcToLocalAt(hhmm, zone string, now time.Time) (string, error) {
	h, m, err := parseHHMM(hhmm)
	if err != nil {
		return hhmm, err
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return hhmm, fmt.Errorf("unknown timezone %q: %w", zone, err)
	}

	// Reference instant: today's date with the given UTC hour/minute. The
	// display direction is exact for "now", unlike the storage direction.
	utcNow := now.UTC()
	ref := time.Date(utcNow.Year(), utcNow.Month(), utcNow.Day(), h, m, 0, 0, time.UTC)
	return ref.In(loc).Format("15:04"), nil
}

func parseHHMM(s string) (int, int, error) {
	match := rgxHHMM.FindStringSubmatch(s)
	if match == nil {
		return 0, 0, fmt.Errorf("invalid time %q, want HH:MM", s)
	}
	h, _ := strconv.Atoi(match[1])
	m, _ := strconv.Atoi(match[2])
	if h > 23 || m > 59 {
		return 0, 0, fmt.Errorf("time %q out of range", s)
	}
	return h, m, nil
}
