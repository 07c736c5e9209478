package rest

import (
	"context"
	"errors"

	"github.com/bartrekker/bartrekker_api/internal/model"
	"github.com/bartrekker/bartrekker_api/util"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var (
	ErrVenueNotFound     = errors.New("venue not found")
	ErrVenueUpdateFailed = errors.New("failed to update venue")
	ErrVenueDeleteFailed = errors.New("failed to delete venue")
)

// CreateVenueRepo inserts a new venue. Coordinates are stored as a native
// point column (lon, lat).
func (api *API) CreateVenueRepo(ctx context.Context, venue model.Venue) (model.Venue, error) {
	query := `
        INSERT INTO venues (
            id, name, address, location, phone, email, description, active
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8
        ) RETURNING created_at, updated_at
    `
	err := api.DB.QueryRow(ctx, query,
		venue.ID, venue.Name, venue.Address,
		util.PointFromLatLon(venue.Latitude, venue.Longitude),
		venue.Phone, venue.Email, venue.Description, venue.Active,
	).Scan(&venue.CreatedAt, &venue.UpdatedAt)
	if err != nil {
		return model.Venue{}, err
	}
	return venue, nil
}

func (api *API) GetVenueByIDRepo(ctx context.Context, id uuid.UUID) (model.Venue, error) {
	query := `
        SELECT id, name, address, location, phone, email, description, active,
            created_at, updated_at
        FROM venues
        WHERE id = $1
    `
	var venue model.Venue
	var location pgtype.Point
	err := api.DB.QueryRow(ctx, query, id).Scan(
		&venue.ID, &venue.Name, &venue.Address, &location, &venue.Phone,
		&venue.Email, &venue.Description, &venue.Active,
		&venue.CreatedAt, &venue.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return model.Venue{}, ErrVenueNotFound
	}
	if err != nil {
		return model.Venue{}, err
	}
	venue.Latitude, venue.Longitude = util.PointToLatLon(location)
	return venue, nil
}

func (api *API) ListVenuesRepo(ctx context.Context) ([]model.Venue, error) {
	query := `
        SELECT id, name, address, location, phone, email, description, active,
            created_at, updated_at
        FROM venues
        WHERE active = true
        ORDER BY name
    `
	rows, err := api.DB.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var venues []model.Venue
	for rows.Next() {
		var venue model.Venue
		var location pgtype.Point
		err := rows.Scan(
			&venue.ID, &venue.Name, &venue.Address, &location, &venue.Phone,
			&venue.Email, &venue.Description, &venue.Active,
			&venue.CreatedAt, &venue.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		venue.Latitude, venue.Longitude = util.PointToLatLon(location)
		venues = append(venues, venue)
	}
	return venues, rows.Err()
}

func (api *API) UpdateVenueRepo(ctx context.Context, venue model.Venue) error {
	query := `
        UPDATE venues
        SET
            name = $1,
            address = $2,
            location = $3,
            phone = $4,
            email = $5,
            description = $6,
            active = $7,
            updated_at = NOW()
        WHERE id = $8
    `
	result, err := api.DB.Exec(ctx, query,
		venue.Name, venue.Address,
		util.PointFromLatLon(venue.Latitude, venue.Longitude),
		venue.Phone, venue.Email, venue.Description, venue.Active,
		venue.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrVenueUpdateFailed
	}
	return nil
}

// DeleteVenueRepo soft deletes a venue by setting active to false. Routes
// already built from the venue keep their copied provenance fields.
func (api *API) DeleteVenueRepo(ctx context.Context, id uuid.UUID) error {
	query := `
        UPDATE venues
        SET active = false, updated_at = NOW()
        WHERE id = $1
    `
	result, err := api.DB.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return ErrVenueDeleteFailed
	}
	return nil
}
