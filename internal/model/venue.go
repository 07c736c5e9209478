package model

import (
	"time"

	"github.com/google/uuid"
)

// Venue is a registered bar/establishment, distinct from a custom ad hoc
// location typed into a route by hand.
type Venue struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Address     string    `json:"address"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateVenueRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Address     string  `json:"address" validate:"required,min=1,max=255"`
	Latitude    float64 `json:"latitude" validate:"required,latitude"`
	Longitude   float64 `json:"longitude" validate:"required,longitude"`
	Phone       string  `json:"phone,omitempty"`
	Email       string  `json:"email,omitempty" validate:"omitempty,email"`
	Description string  `json:"description,omitempty"`
}

type UpdateVenueRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Address     *string  `json:"address,omitempty" validate:"omitempty,min=1,max=255"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	Phone       *string  `json:"phone,omitempty"`
	Email       *string  `json:"email,omitempty" validate:"omitempty,email"`
	Description *string  `json:"description,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}
