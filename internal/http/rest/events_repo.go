package rest

import (
	"context"
	"errors"

	"github.com/bartrekker/bartrekker_api/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrEventUpdateFailed = errors.New("failed to update event")
	ErrEventDeleteFailed = errors.New("failed to delete event")
)

const eventColumns = `
        id, name, description, starts_at, timezone, recurrence_rule, status,
        share_code, route, notification_settings, recurring_notifications,
        created_at, updated_at
`

func scanEvent(row pgx.Row) (model.Event, error) {
	var ev model.Event
	var shareCode string
	err := row.Scan(
		&ev.ID, &ev.Name, &ev.Description, &ev.StartsAt, &ev.Timezone,
		&ev.RecurrenceRule, &ev.Status, &shareCode, &ev.Route,
		&ev.NotificationSettings, &ev.RecurringNotifications,
		&ev.CreatedAt, &ev.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return model.Event{}, ErrEventNotFound
	}
	if err != nil {
		return model.Event{}, err
	}
	if ev.RecurringNotifications == nil {
		ev.RecurringNotifications = []model.RecurringNotification{}
	}
	return ev, nil
}

// CreateEventRepo inserts a new event. Route and notification documents
// start absent; recurring notifications start as an empty list.
func (api *API) CreateEventRepo(ctx context.Context, ev model.Event, shareCode string) (model.Event, error) {
	query := `
        INSERT INTO events (
            id, name, description, starts_at, timezone, recurrence_rule,
            status, share_code, recurring_notifications
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, '[]'::jsonb
        ) RETURNING ` + eventColumns
	return scanEvent(api.DB.QueryRow(ctx, query,
		ev.ID, ev.Name, ev.Description, ev.StartsAt, ev.Timezone,
		ev.RecurrenceRule, ev.Status, shareCode,
	))
}

func (api *API) GetEventByIDRepo(ctx context.Context, id uuid.UUID) (model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	return scanEvent(api.DB.QueryRow(ctx, query, id))
}

func (api *API) ListEventsRepo(ctx context.Context) ([]model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY starts_at DESC`
	rows, err := api.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []model.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

func (api *API) UpdateEventRepo(ctx context.Context, ev model.Event) error {
	query := `
        UPDATE events
        SET
            name = $1,
            description = $2,
            starts_at = $3,
            timezone = $4,
            recurrence_rule = $5,
            status = $6,
            updated_at = NOW()
        WHERE id = $7
    `
	result, err := api.DB.Exec(ctx, query,
		ev.Name, ev.Description, ev.StartsAt, ev.Timezone,
		ev.RecurrenceRule, ev.Status, ev.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrEventUpdateFailed
	}
	return nil
}

func (api *API) DeleteEventRepo(ctx context.Context, id uuid.UUID) error {
	result, err := api.DB.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrEventDeleteFailed
	}
	return nil
}

// UpdateEventRouteRepo writes the route document back. A nil route is
// stored as NULL: a collapsed route is absent, not empty.
func (api *API) UpdateEventRouteRepo(ctx context.Context, tx pgx.Tx, id uuid.UUID, route *model.Route) error {
	result, err := tx.Exec(ctx, `
        UPDATE events
        SET route = $1, updated_at = NOW()
        WHERE id = $2
    `, route, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrEventUpdateFailed
	}
	return nil
}

// GetEventForUpdateRepo loads an event inside a transaction with a row lock,
// so concurrent dashboard edits serialize at the database.
func (api *API) GetEventForUpdateRepo(ctx context.Context, tx pgx.Tx, id uuid.UUID) (model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1 FOR UPDATE`
	return scanEvent(tx.QueryRow(ctx, query, id))
}

func (api *API) UpdateEventNotificationSettingsRepo(ctx context.Context, id uuid.UUID, settings model.NotificationSettings) error {
	result, err := api.DB.Exec(ctx, `
        UPDATE events
        SET notification_settings = $1, updated_at = NOW()
        WHERE id = $2
    `, settings, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrEventUpdateFailed
	}
	return nil
}

func (api *API) UpdateEventRecurringRepo(ctx context.Context, id uuid.UUID, list []model.RecurringNotification) error {
	result, err := api.DB.Exec(ctx, `
        UPDATE events
        SET recurring_notifications = $1, updated_at = NOW()
        WHERE id = $2
    `, list, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrEventUpdateFailed
	}
	return nil
}
