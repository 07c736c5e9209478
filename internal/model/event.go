package model

import (
	"time"

	"github.com/google/uuid"
)

// Event is one pub-crawl event. Route, NotificationSettings and
// RecurringNotifications are stored as JSONB documents mirroring the nested
// shapes the dashboard reads and writes verbatim.
type Event struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	StartsAt    time.Time `json:"starts_at"`
	// Timezone is the organizer's IANA zone name, used to display recurring
	// notification times and to convert them to UTC for storage.
	Timezone string `json:"timezone"`
	// RecurrenceRule is an optional RRULE string for repeating events,
	// e.g. "FREQ=WEEKLY;BYDAY=FR".
	RecurrenceRule string `json:"recurrence_rule,omitempty"`
	Status         string `json:"status"` // DRAFT, PUBLISHED, CANCELLED

	Route                  *Route                  `json:"route,omitempty"`
	NotificationSettings   *NotificationSettings   `json:"notification_settings,omitempty"`
	RecurringNotifications []RecurringNotification `json:"recurring_notifications"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateEventRequest struct {
	Name           string    `json:"name" validate:"required,min=1,max=100"`
	Description    string    `json:"description,omitempty"`
	StartsAt       time.Time `json:"starts_at" validate:"required"`
	Timezone       string    `json:"timezone" validate:"required"`
	RecurrenceRule string    `json:"recurrence_rule,omitempty"`
}

type UpdateEventRequest struct {
	Name           *string    `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description    *string    `json:"description,omitempty"`
	StartsAt       *time.Time `json:"starts_at,omitempty"`
	Timezone       *string    `json:"timezone,omitempty"`
	RecurrenceRule *string    `json:"recurrence_rule,omitempty"`
	Status         *string    `json:"status,omitempty" validate:"omitempty,oneof=DRAFT PUBLISHED CANCELLED"`
}
