package rest

import (
	"net/http"

	"github.com/bartrekker/bartrekker_api/internal/model"
	"github.com/bartrekker/bartrekker_api/util"
	"github.com/bartrekker/bartrekker_api/util/tracing"
	"github.com/bartrekker/bartrekker_api/util/values"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (api *API) VenueRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Route("/", func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodPost, "/", Handler(api.CreateVenue))
		r.Method(http.MethodGet, "/", Handler(api.ListVenues))
		r.Method(http.MethodGet, "/{venueID}", Handler(api.GetVenue))
		r.Method(http.MethodPut, "/{venueID}", Handler(api.UpdateVenue))
		r.Method(http.MethodDelete, "/{venueID}", Handler(api.DeleteVenue))
	})

	return mux
}

func (api *API) CreateVenue(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.CreateVenueRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	venue := model.Venue{
		ID:          util.GenerateUUID(),
		Name:        req.Name,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Phone:       req.Phone,
		Email:       req.Email,
		Description: req.Description,
		Active:      true,
	}

	created, err := api.CreateVenueRepo(r.Context(), venue)
	if err != nil {
		return respondWithError(err, "failed to create venue", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Venue created successfully",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       created,
	}
}

func (api *API) ListVenues(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	venues, err := api.ListVenuesRepo(r.Context())
	if err != nil {
		return respondWithError(err, "failed to list venues", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Venues retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       venues,
	}
}

func (api *API) GetVenue(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := uuid.Parse(chi.URLParam(r, "venueID"))
	if err != nil {
		return respondWithError(err, "invalid venue ID format", values.BadRequestBody, &tc)
	}

	venue, err := api.GetVenueByIDRepo(r.Context(), id)
	if err == ErrVenueNotFound {
		return respondWithError(err, "venue not found", values.NotFound, &tc)
	}
	if err != nil {
		return respondWithError(err, "failed to get venue", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Venue retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       venue,
	}
}

func (api *API) UpdateVenue(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := uuid.Parse(chi.URLParam(r, "venueID"))
	if err != nil {
		return respondWithError(err, "invalid venue ID format", values.BadRequestBody, &tc)
	}

	var req model.UpdateVenueRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	venue, err := api.GetVenueByIDRepo(r.Context(), id)
	if err == ErrVenueNotFound {
		return respondWithError(err, "venue not found", values.NotFound, &tc)
	}
	if err != nil {
		return respondWithError(err, "failed to get venue", values.Error, &tc)
	}

	applyVenueUpdate(&venue, req)

	if err := api.UpdateVenueRepo(r.Context(), venue); err != nil {
		return respondWithError(err, "failed to update venue", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Venue updated successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       venue,
	}
}

func (api *API) DeleteVenue(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := uuid.Parse(chi.URLParam(r, "venueID"))
	if err != nil {
		return respondWithError(err, "invalid venue ID format", values.BadRequestBody, &tc)
	}

	if err := api.DeleteVenueRepo(r.Context(), id); err != nil {
		return respondWithError(err, "failed to delete venue", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Venue deleted successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}

func applyVenueUpdate(venue *model.Venue, req model.UpdateVenueRequest) {
	if req.Name != nil {
		venue.Name = *req.Name
	}
	if req.Address != nil {
		venue.Address = *req.Address
	}
	if req.Latitude != nil {
		venue.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		venue.Longitude = *req.Longitude
	}
	if req.Phone != nil {
		venue.Phone = *req.Phone
	}
	if req.Email != nil {
		venue.Email = *req.Email
	}
	if req.Description != nil {
		venue.Description = *req.Description
	}
	if req.Active != nil {
		venue.Active = *req.Active
	}
}
