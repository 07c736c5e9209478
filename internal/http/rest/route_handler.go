package rest

import (
	"errors"
	"net/http"

	"github.com/bartrekker/bartrekker_api/internal/model"
	"github.com/bartrekker/bartrekker_api/internal/route"
	"github.com/bartrekker/bartrekker_api/util"
	"github.com/bartrekker/bartrekker_api/util/tracing"
	"github.com/bartrekker/bartrekker_api/util/values"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (api *API) RouteEditorRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodPost, "/stops", Handler(api.AddStop))
	mux.Method(http.MethodPatch, "/stops/{stopID}", Handler(api.UpdateStop))
	mux.Method(http.MethodPatch, "/stops/{stopID}/coordinates", Handler(api.UpdateStopCoordinates))
	mux.Method(http.MethodDelete, "/stops/{stopID}", Handler(api.RemoveStop))
	mux.Method(http.MethodGet, "/preview", Handler(api.GetRoutePreview))

	return mux
}

func (api *API) AddStop(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	eventID, err := uuid.Parse(chi.URLParam(r, "eventID"))
	if err != nil {
		return respondWithError(err, "invalid event ID format", values.BadRequestBody, &tc)
	}

	var req AddStopRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if req.VenueID == nil && !req.Custom {
		err := errors.New("either venue_id or custom must be set")
		return respondWithError(err, err.Error(), values.BadRequestBody, &tc)
	}

	var venue model.Venue
	if req.VenueID != nil {
		venue, err = api.GetVenueByIDRepo(r.Context(), *req.VenueID)
		if err == ErrVenueNotFound {
			return respondWithError(err, "venue not found", values.NotFound, &tc)
		}
		if err != nil {
			return respondWithError(err, "failed to get venue", values.Error, &tc)
		}
	}

	ev, status, message, err := api.mutateEventRoute(r.Context(), eventID, func(ev model.Event) *model.Route {
		switch {
		case req.VenueID == nil:
			return route.AddCustomStop(ev.Route)
		case ev.Route == nil:
			return route.StartFromVenue(venue)
		default:
			return route.AppendVenueStop(ev.Route, venue)
		}
	})
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    "Stop added successfully",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       ev.Route,
	}
}

func (api *API) UpdateStop(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	eventID, err := uuid.Parse(chi.URLParam(r, "eventID"))
	if err != nil {
		return respondWithError(err, "invalid event ID format", values.BadRequestBody, &tc)
	}
	stopID := chi.URLParam(r, "stopID")

	var req UpdateStopRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	ev, status, message, err := api.mutateEventRoute(r.Context(), eventID, func(ev model.Event) *model.Route {
		return route.UpdateStop(ev.Route, stopID, req.toPatch())
	})
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    "Stop updated successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       ev.Route,
	}
}

func (api *API) UpdateStopCoordinates(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	eventID, err := uuid.Parse(chi.URLParam(r, "eventID"))
	if err != nil {
		return respondWithError(err, "invalid event ID format", values.BadRequestBody, &tc)
	}
	stopID := chi.URLParam(r, "stopID")

	var req UpdateStopCoordinatesRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	var lat, lng float64
	switch {
	case req.MapURL != "":
		// The extraction error message is shown to the organizer as-is.
		coord, extractErr := util.ExtractMapCoordinates(req.MapURL)
		if extractErr != nil {
			return respondWithError(extractErr, extractErr.Error(), values.Unprocessable, &tc)
		}
		lat, lng = coord.Lat, coord.Lon
	case req.Latitude != nil && req.Longitude != nil:
		lat, lng = *req.Latitude, *req.Longitude
	default:
		err := errors.New("either map_url or both latitude and longitude must be set")
		return respondWithError(err, err.Error(), values.BadRequestBody, &tc)
	}

	ev, status, message, err := api.mutateEventRoute(r.Context(), eventID, func(ev model.Event) *model.Route {
		return route.UpdateStopCoordinates(ev.Route, stopID, lat, lng)
	})
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    "Stop coordinates updated successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       ev.Route,
	}
}

func (api *API) RemoveStop(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	eventID, err := uuid.Parse(chi.URLParam(r, "eventID"))
	if err != nil {
		return respondWithError(err, "invalid event ID format", values.BadRequestBody, &tc)
	}
	stopID := chi.URLParam(r, "stopID")

	ev, status, message, err := api.mutateEventRoute(r.Context(), eventID, func(ev model.Event) *model.Route {
		return route.RemoveStop(ev.Route, stopID)
	})
	if err != nil {
		return respondWithError(err, message, status, &tc)
	}

	return &ServerResponse{
		Message:    "Stop removed successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       ev.Route,
	}
}

// GetRoutePreview derives the dashboard's presentation of a route: its size
// class, encoded polyline and per-stop maps deep links. Nothing here is
// persisted.
func (api *API) GetRoutePreview(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	eventID, err := uuid.Parse(chi.URLParam(r, "eventID"))
	if err != nil {
		return respondWithError(err, "invalid event ID format", values.BadRequestBody, &tc)
	}

	ev, err := api.GetEventByIDRepo(r.Context(), eventID)
	if err == ErrEventNotFound {
		return respondWithError(err, "event not found", values.NotFound, &tc)
	}
	if err != nil {
		return respondWithError(err, "failed to get event", values.Error, &tc)
	}

	stopCount := 0
	totalDuration := 0
	var coords []util.Coordinate
	type stopPreview struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		StayDuration  int    `json:"stay_duration"`
		DirectionsURL string `json:"directions_url"`
	}
	var stops []stopPreview

	if ev.Route != nil {
		stopCount = len(ev.Route.Locations)
		totalDuration = ev.Route.TotalDuration
		for _, loc := range ev.Route.Locations {
			coords = append(coords, util.Coordinate{
				Lat: loc.Coordinates.Latitude,
				Lon: loc.Coordinates.Longitude,
			})
			stops = append(stops, stopPreview{
				ID:            loc.ID,
				Name:          loc.Name,
				StayDuration:  loc.StayDuration,
				DirectionsURL: util.BuildDirectionsURL(loc.Coordinates.Latitude, loc.Coordinates.Longitude),
			})
		}
	}

	return &ServerResponse{
		Message:    "Route preview retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data: map[string]interface{}{
			"classification": route.ClassifyRoute(stopCount),
			"stop_count":     stopCount,
			"total_duration": totalDuration,
			"polyline":       util.EncodeRoutePolyline(coords),
			"stops":          stops,
		},
	}
}
