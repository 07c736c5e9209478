package notify

import (
	"strings"

	"github.com/bartrekker/bartrekker_api/internal/model"
	"github.com/bartrekker/bartrekker_api/util/timeconv"
	"github.com/google/uuid"
)

// AddRecurring appends a new daily notification to the list. The supplied
// time is the organizer's local wall clock and is converted to UTC before
// storage. Blank title, blank body or a missing time leave the list
// unchanged with no error; the dashboard disables the Add control in those
// states, so this guard is a second layer, not a reported failure.
func AddRecurring(list []model.RecurringNotification, req model.AddRecurringNotificationRequest, zone string) []model.RecurringNotification {
	title := strings.TrimSpace(req.Title)
	body := strings.TrimSpace(req.Body)
	if title == "" || body == "" || req.LocalTime == "" {
		return list
	}

	// Soft-fail conversion: a bad zone or time string stores the input
	// unconverted rather than dropping the notification.
	utcTime, _ := timeconv.LocalToUTC(req.LocalTime, zone)

	out := copyList(list)
	return append(out, model.RecurringNotification{
		ID:       uuid.New().String(),
		Time:     utcTime,
		Title:    title,
		Body:     body,
		MapURL:   req.MapURL,
		IsActive: true,
	})
}

// UpdateRecurring applies a partial update to the one matching entry.
func UpdateRecurring(list []model.RecurringNotification, id string, patch model.RecurringNotificationPatch) []model.RecurringNotification {
	out := copyList(list)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if patch.Time != nil {
			out[i].Time = *patch.Time
		}
		if patch.Title != nil {
			out[i].Title = *patch.Title
		}
		if patch.Body != nil {
			out[i].Body = *patch.Body
		}
		if patch.MapURL != nil {
			out[i].MapURL = *patch.MapURL
		}
		if patch.IsActive != nil {
			out[i].IsActive = *patch.IsActive
		}
		break
	}
	return out
}

// RemoveRecurring filters the matching entry out of the list.
func RemoveRecurring(list []model.RecurringNotification, id string) []model.RecurringNotification {
	out := make([]model.RecurringNotification, 0, len(list))
	for _, n := range list {
		if n.ID != id {
			out = append(out, n)
		}
	}
	return out
}

// ToggleRecurring flips exactly the matching entry's IsActive flag.
func ToggleRecurring(list []model.RecurringNotification, id string) []model.RecurringNotification {
	out := copyList(list)
	for i := range out {
		if out[i].ID == id {
			out[i].IsActive = !out[i].IsActive
			break
		}
	}
	return out
}

func copyList(list []model.RecurringNotification) []model.RecurringNotification {
	out := make([]model.RecurringNotification, len(list))
	copy(out, list)
	return out
}
