package model

// NotificationSettings holds the per-event reminder configuration shown to
// ticket holders. Lead times are minutes before the event / next stop.
type NotificationSettings struct {
	StartReminder           int    `json:"start_reminder"`
	LocationReminders       int    `json:"location_reminders"`
	ArrivalNotifications    bool   `json:"arrival_notifications"`
	DepartureNotifications  bool   `json:"departure_notifications"`
	CustomMapConfirmMessage string `json:"custom_map_confirm_message,omitempty"`
}

// NotificationSettingsPatch is a partial settings update. Nil fields fall
// through to the stored settings, which in turn fall through to defaults.
type NotificationSettingsPatch struct {
	StartReminder           *int    `json:"start_reminder,omitempty"`
	LocationReminders       *int    `json:"location_reminders,omitempty"`
	ArrivalNotifications    *bool   `json:"arrival_notifications,omitempty"`
	DepartureNotifications  *bool   `json:"departure_notifications,omitempty"`
	CustomMapConfirmMessage *string `json:"custom_map_confirm_message,omitempty"`
}

// RecurringNotification is a daily-repeating push message tied to an event.
// Time is an "HH:MM" 24-hour string, always stored in UTC regardless of the
// organizer's timezone.
type RecurringNotification struct {
	ID       string `json:"id"`
	Time     string `json:"time"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	MapURL   string `json:"map_url,omitempty"`
	IsActive bool   `json:"is_active"`
}

// RecurringNotificationPatch is a partial update for one list entry.
type RecurringNotificationPatch struct {
	Time     *string `json:"time,omitempty"`
	Title    *string `json:"title,omitempty"`
	Body     *string `json:"body,omitempty"`
	MapURL   *string `json:"map_url,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// AddRecurringNotificationRequest carries the organizer-local time; it is
// converted to UTC before the entry is stored.
type AddRecurringNotificationRequest struct {
	LocalTime string `json:"local_time" validate:"required"`
	Title     string `json:"title" validate:"required"`
	Body      string `json:"body" validate:"required"`
	MapURL    string `json:"map_url,omitempty"`
}
