package rest

import (
	"net/http"
	"time"

	"github.com/bartrekker/bartrekker_api/internal/model"
	"github.com/bartrekker/bartrekker_api/internal/schedule"
	"github.com/bartrekker/bartrekker_api/util"
	"github.com/bartrekker/bartrekker_api/util/tracing"
	"github.com/bartrekker/bartrekker_api/util/values"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const eventShareCodeLength = 6

func (api *API) EventRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Route("/", func(r chi.Router) {
		r.Use(api.RequireLogin)
		r.Method(http.MethodPost, "/", Handler(api.CreateEvent))
		r.Method(http.MethodGet, "/", Handler(api.ListEvents))
		r.Method(http.MethodGet, "/{eventID}", Handler(api.GetEvent))
		r.Method(http.MethodPut, "/{eventID}", Handler(api.UpdateEvent))
		r.Method(http.MethodDelete, "/{eventID}", Handler(api.DeleteEvent))
		r.Method(http.MethodGet, "/{eventID}/schedule", Handler(api.GetEventSchedule))
		r.Get("/{eventID}/calendar", api.GetEventCalendar)

		r.Mount("/{eventID}/route", api.RouteEditorRoutes())
		r.Mount("/{eventID}/notifications", api.NotificationRoutes())
	})

	return mux
}

func (api *API) CreateEvent(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	var req model.CreateEventRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	if _, err := time.LoadLocation(req.Timezone); err != nil {
		return respondWithError(err, "unknown timezone", values.Unprocessable, &tc)
	}

	ev := model.Event{
		ID:             util.GenerateUUID(),
		Name:           req.Name,
		Description:    req.Description,
		StartsAt:       req.StartsAt,
		Timezone:       req.Timezone,
		RecurrenceRule: req.RecurrenceRule,
		Status:         "DRAFT",
	}

	created, err := api.CreateEventRepo(r.Context(), ev, util.GenerateShortCode(eventShareCodeLength))
	if err != nil {
		return respondWithError(err, "failed to create event", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Event created successfully",
		Status:     values.Created,
		StatusCode: util.StatusCode(values.Created),
		Data:       created,
	}
}

func (api *API) ListEvents(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	events, err := api.ListEventsRepo(r.Context())
	if err != nil {
		return respondWithError(err, "failed to list events", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Events retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       events,
	}
}

func (api *API) GetEvent(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := uuid.Parse(chi.URLParam(r, "eventID"))
	if err != nil {
		return respondWithError(err, "invalid event ID format", values.BadRequestBody, &tc)
	}

	ev, err := api.GetEventByIDRepo(r.Context(), id)
	if err == ErrEventNotFound {
		return respondWithError(err, "event not found", values.NotFound, &tc)
	}
	if err != nil {
		return respondWithError(err, "failed to get event", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Event retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       ev,
	}
}

func (api *API) UpdateEvent(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := uuid.Parse(chi.URLParam(r, "eventID"))
	if err != nil {
		return respondWithError(err, "invalid event ID format", values.BadRequestBody, &tc)
	}

	var req model.UpdateEventRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	if err := util.ValidateStruct(req); err != nil {
		return respondWithError(err, "validation failed", values.BadRequestBody, &tc)
	}

	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return respondWithError(err, "unknown timezone", values.Unprocessable, &tc)
		}
	}

	ev, err := api.GetEventByIDRepo(r.Context(), id)
	if err == ErrEventNotFound {
		return respondWithError(err, "event not found", values.NotFound, &tc)
	}
	if err != nil {
		return respondWithError(err, "failed to get event", values.Error, &tc)
	}

	applyEventUpdate(&ev, req)

	if err := api.UpdateEventRepo(r.Context(), ev); err != nil {
		return respondWithError(err, "failed to update event", values.Error, &tc)
	}

	return &ServerResponse{
		Message:    "Event updated successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       ev,
	}
}

func (api *API) DeleteEvent(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := uuid.Parse(chi.URLParam(r, "eventID"))
	if err != nil {
		return respondWithError(err, "invalid event ID format", values.BadRequestBody, &tc)
	}

	if err := api.DeleteEventRepo(r.Context(), id); err != nil {
		return respondWithError(err, "failed to delete event", values.Error, &tc)
	}

	if adminID, err := util.GetAdminIDFromContext(r.Context()); err == nil {
		logrus.WithFields(logrus.Fields{
			"event_id": id,
			"admin_id": adminID,
		}).Info("event deleted")
	}

	return &ServerResponse{
		Message:    "Event deleted successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
	}
}

// GetEventSchedule expands the event's recurrence rule into upcoming start
// times for the dashboard calendar strip.
func (api *API) GetEventSchedule(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	id, err := uuid.Parse(chi.URLParam(r, "eventID"))
	if err != nil {
		return respondWithError(err, "invalid event ID format", values.BadRequestBody, &tc)
	}

	ev, err := api.GetEventByIDRepo(r.Context(), id)
	if err == ErrEventNotFound {
		return respondWithError(err, "event not found", values.NotFound, &tc)
	}
	if err != nil {
		return respondWithError(err, "failed to get event", values.Error, &tc)
	}

	occurrences, err := schedule.UpcomingOccurrences(ev, time.Now(), 0)
	if err != nil {
		return respondWithError(err, "failed to expand event schedule", values.Unprocessable, &tc)
	}

	return &ServerResponse{
		Message:    "Event schedule retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data: map[string]interface{}{
			"event_id":    ev.ID,
			"timezone":    ev.Timezone,
			"occurrences": occurrences,
		},
	}
}

// GetEventCalendar serves the event schedule as an iCalendar feed. Served
// raw rather than through the JSON envelope.
func (api *API) GetEventCalendar(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "eventID"))
	if err != nil {
		writeErrorResponse(w, err, values.BadRequestBody, "invalid event ID format")
		return
	}

	ev, err := api.GetEventByIDRepo(r.Context(), id)
	if err == ErrEventNotFound {
		writeErrorResponse(w, err, values.NotFound, "event not found")
		return
	}
	if err != nil {
		writeErrorResponse(w, err, values.Error, "failed to get event")
		return
	}

	occurrences, err := schedule.UpcomingOccurrences(ev, time.Now(), 0)
	if err != nil {
		writeErrorResponse(w, err, values.Unprocessable, "failed to expand event schedule")
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	_, _ = w.Write([]byte(schedule.EventCalendar(ev, occurrences)))
}

func applyEventUpdate(ev *model.Event, req model.UpdateEventRequest) {
	if req.Name != nil {
		ev.Name = *req.Name
	}
	if req.Description != nil {
		ev.Description = *req.Description
	}
	if req.StartsAt != nil {
		ev.StartsAt = *req.StartsAt
	}
	if req.Timezone != nil {
		ev.Timezone = *req.Timezone
	}
	if req.RecurrenceRule != nil {
		ev.RecurrenceRule = *req.RecurrenceRule
	}
	if req.Status != nil {
		ev.Status = *req.Status
	}
}
