package rest

import (
	"context"

	"github.com/bartrekker/bartrekker_api/internal/model"
	"github.com/bartrekker/bartrekker_api/internal/route"
	"github.com/bartrekker/bartrekker_api/util/values"
	"github.com/bartrekker/bartrekker_api/util/websockets"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// mutateEventRoute loads the event under a row lock, applies a pure route
// transform, persists the result and returns the updated event. Concurrent
// dashboard edits serialize on the lock, so each transform always sees the
// latest stored route.
func (api *API) mutateEventRoute(ctx context.Context, eventID uuid.UUID, transform func(model.Event) *model.Route) (model.Event, string, string, error) {
	var updated model.Event

	err := api.Deps.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		ev, err := api.GetEventForUpdateRepo(ctx, tx, eventID)
		if err != nil {
			return err
		}

		newRoute := transform(ev)
		if err := api.UpdateEventRouteRepo(ctx, tx, eventID, newRoute); err != nil {
			return err
		}

		ev.Route = newRoute
		updated = ev
		return nil
	})
	if err == ErrEventNotFound {
		return model.Event{}, values.NotFound, "event not found", err
	}
	if err != nil {
		return model.Event{}, values.Error, "failed to update route", err
	}

	api.Deps.WebSocket.BroadcastEventUpdate(websockets.EventUpdate{
		Type:    websockets.MsgTypeRouteUpdate,
		EventID: eventID.String(),
		Payload: updated.Route,
	})

	return updated, values.Success, "", nil
}

// AddStopRequest adds either a stop derived from a known venue or a blank
// custom stop the organizer fills in by hand.
type AddStopRequest struct {
	VenueID *uuid.UUID `json:"venue_id,omitempty"`
	Custom  bool       `json:"custom,omitempty"`
}

// UpdateStopRequest is the wire form of a stop patch. StayDuration arrives
// as the raw form field text; values that fail to parse store 0.
type UpdateStopRequest struct {
	Name         *string  `json:"name,omitempty"`
	Address      *string  `json:"address,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude    *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	StayDuration *string  `json:"stay_duration,omitempty"`
	Description  *string  `json:"description,omitempty"`
}

func (req UpdateStopRequest) toPatch() model.LocationPatch {
	patch := model.LocationPatch{
		Name:        req.Name,
		Address:     req.Address,
		Description: req.Description,
	}
	if req.Latitude != nil && req.Longitude != nil {
		patch.Coordinates = &model.Coordinates{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
		}
	}
	if req.StayDuration != nil {
		minutes := route.ParseStayDuration(*req.StayDuration)
		patch.StayDuration = &minutes
	}
	return patch
}

// UpdateStopCoordinatesRequest sets a stop's coordinates either explicitly
// or by pasting a map-service link.
type UpdateStopCoordinatesRequest struct {
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	MapURL    string   `json:"map_url,omitempty"`
}
