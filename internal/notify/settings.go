// Package notify holds the pure update logic for per-event notification
// settings and the daily recurring notification list. Every operation
// returns a new value; the caller persists it.
package notify

import (
	"github.com/bartrekker/bartrekker_api/internal/model"
)

const (
	DefaultStartReminder     = 15 // minutes before the event starts
	DefaultLocationReminders = 5  // minutes before each stop
)

// DefaultSettings is the base layer every settings merge starts from.
func DefaultSettings() model.NotificationSettings {
	return model.NotificationSettings{
		StartReminder:          DefaultStartReminder,
		LocationReminders:      DefaultLocationReminders,
		ArrivalNotifications:   true,
		DepartureNotifications: true,
	}
}

// MergeSettings produces complete settings from three layers applied field
// by field: hardcoded defaults, then whatever partial document is stored,
// then the incoming update. Later layers win per field, never wholesale.
func MergeSettings(stored, update model.NotificationSettingsPatch) model.NotificationSettings {
	merged := DefaultSettings()
	applySettingsPatch(&merged, stored)
	applySettingsPatch(&merged, update)
	return merged
}

// StoredSettingsPatch lifts previously stored settings into the middle merge
// layer. A nil stored value contributes nothing, leaving defaults in place.
func StoredSettingsPatch(s *model.NotificationSettings) model.NotificationSettingsPatch {
	if s == nil {
		return model.NotificationSettingsPatch{}
	}
	return model.NotificationSettingsPatch{
		StartReminder:           &s.StartReminder,
		LocationReminders:       &s.LocationReminders,
		ArrivalNotifications:    &s.ArrivalNotifications,
		DepartureNotifications:  &s.DepartureNotifications,
		CustomMapConfirmMessage: &s.CustomMapConfirmMessage,
	}
}

func applySettingsPatch(s *model.NotificationSettings, p model.NotificationSettingsPatch) {
	if p.StartReminder != nil {
		s.StartReminder = *p.StartReminder
	}
	if p.LocationReminders != nil {
		s.LocationReminders = *p.LocationReminders
	}
	if p.ArrivalNotifications != nil {
		s.ArrivalNotifications = *p.ArrivalNotifications
	}
	if p.DepartureNotifications != nil {
		s.DepartureNotifications = *p.DepartureNotifications
	}
	if p.CustomMapConfirmMessage != nil {
		s.CustomMapConfirmMessage = *p.CustomMapConfirmMessage
	}
}
