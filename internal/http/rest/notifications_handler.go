package rest

import (
	"net/http"

	"github.com/bartrekker/bartrekker_api/internal/model"
	"github.com/bartrekker/bartrekker_api/internal/notify"
	"github.com/bartrekker/bartrekker_api/util"
	"github.com/bartrekker/bartrekker_api/util/timeconv"
	"github.com/bartrekker/bartrekker_api/util/tracing"
	"github.com/bartrekker/bartrekker_api/util/values"
	"github.com/bartrekker/bartrekker_api/util/websockets"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (api *API) NotificationRoutes() chi.Router {
	mux := chi.NewRouter()

	mux.Method(http.MethodGet, "/settings", Handler(api.GetNotificationSettings))
	mux.Method(http.MethodPatch, "/settings", Handler(api.UpdateNotificationSettings))
	mux.Method(http.MethodGet, "/recurring", Handler(api.ListRecurringNotifications))
	mux.Method(http.MethodPost, "/recurring", Handler(api.AddRecurringNotification))
	mux.Method(http.MethodPatch, "/recurring/{notificationID}", Handler(api.UpdateRecurringNotification))
	mux.Method(http.MethodDelete, "/recurring/{notificationID}", Handler(api.RemoveRecurringNotification))
	mux.Method(http.MethodPost, "/recurring/{notificationID}/toggle", Handler(api.ToggleRecurringNotification))

	return mux
}

func (api *API) GetNotificationSettings(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	ev, resp := api.loadEvent(r, &tc)
	if resp != nil {
		return resp
	}

	// Reads show the merged view even before any settings were stored.
	settings := notify.MergeSettings(
		notify.StoredSettingsPatch(ev.NotificationSettings),
		model.NotificationSettingsPatch{},
	)

	return &ServerResponse{
		Message:    "Notification settings retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       settings,
	}
}

func (api *API) UpdateNotificationSettings(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	ev, resp := api.loadEvent(r, &tc)
	if resp != nil {
		return resp
	}

	var patch model.NotificationSettingsPatch
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &patch); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	merged := notify.MergeSettings(notify.StoredSettingsPatch(ev.NotificationSettings), patch)

	if err := api.UpdateEventNotificationSettingsRepo(r.Context(), ev.ID, merged); err != nil {
		return respondWithError(err, "failed to update notification settings", values.Error, &tc)
	}

	api.Deps.WebSocket.BroadcastEventUpdate(websockets.EventUpdate{
		Type:    websockets.MsgTypeSettingsUpdate,
		EventID: ev.ID.String(),
		Payload: merged,
	})

	return &ServerResponse{
		Message:    "Notification settings updated successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       merged,
	}
}

// ListRecurringNotifications returns the stored UTC entries together with
// their wall-clock display time in the event's own timezone.
func (api *API) ListRecurringNotifications(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	ev, resp := api.loadEvent(r, &tc)
	if resp != nil {
		return resp
	}

	type recurringView struct {
		model.RecurringNotification
		LocalTime string `json:"local_time"`
	}
	views := make([]recurringView, 0, len(ev.RecurringNotifications))
	for _, n := range ev.RecurringNotifications {
		// Soft-fail: an unconvertible time is displayed as stored.
		local, _ := timeconv.UTCToLocal(n.Time, ev.Timezone)
		views = append(views, recurringView{RecurringNotification: n, LocalTime: local})
	}

	return &ServerResponse{
		Message:    "Recurring notifications retrieved successfully",
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       views,
	}
}

func (api *API) AddRecurringNotification(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	ev, resp := api.loadEvent(r, &tc)
	if resp != nil {
		return resp
	}

	var req model.AddRecurringNotificationRequest
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &req); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	// An invalid entry leaves the list unchanged without an error; the Add
	// control is disabled client-side, this guard is the second layer.
	list := notify.AddRecurring(ev.RecurringNotifications, req, ev.Timezone)

	return api.persistRecurring(r, ev, list, &tc, "Recurring notification added")
}

func (api *API) UpdateRecurringNotification(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	ev, resp := api.loadEvent(r, &tc)
	if resp != nil {
		return resp
	}

	var patch model.RecurringNotificationPatch
	if decodeErr := util.DecodeJSONBody(&tc, r.Body, &patch); decodeErr != nil {
		return respondWithError(decodeErr, "unable to decode request", values.BadRequestBody, &tc)
	}

	list := notify.UpdateRecurring(ev.RecurringNotifications, chi.URLParam(r, "notificationID"), patch)

	return api.persistRecurring(r, ev, list, &tc, "Recurring notification updated")
}

func (api *API) RemoveRecurringNotification(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	ev, resp := api.loadEvent(r, &tc)
	if resp != nil {
		return resp
	}

	list := notify.RemoveRecurring(ev.RecurringNotifications, chi.URLParam(r, "notificationID"))

	return api.persistRecurring(r, ev, list, &tc, "Recurring notification removed")
}

func (api *API) ToggleRecurringNotification(_ http.ResponseWriter, r *http.Request) *ServerResponse {
	tc := r.Context().Value(values.ContextTracingKey).(tracing.Context)

	ev, resp := api.loadEvent(r, &tc)
	if resp != nil {
		return resp
	}

	list := notify.ToggleRecurring(ev.RecurringNotifications, chi.URLParam(r, "notificationID"))

	return api.persistRecurring(r, ev, list, &tc, "Recurring notification toggled")
}

// loadEvent resolves the {eventID} URL parameter. A non-nil response means
// resolution failed and should be returned as-is.
func (api *API) loadEvent(r *http.Request, tc *tracing.Context) (model.Event, *ServerResponse) {
	id, err := uuid.Parse(chi.URLParam(r, "eventID"))
	if err != nil {
		return model.Event{}, respondWithError(err, "invalid event ID format", values.BadRequestBody, tc)
	}

	ev, err := api.GetEventByIDRepo(r.Context(), id)
	if err == ErrEventNotFound {
		return model.Event{}, respondWithError(err, "event not found", values.NotFound, tc)
	}
	if err != nil {
		return model.Event{}, respondWithError(err, "failed to get event", values.Error, tc)
	}
	return ev, nil
}

func (api *API) persistRecurring(r *http.Request, ev model.Event, list []model.RecurringNotification, tc *tracing.Context, message string) *ServerResponse {
	if err := api.UpdateEventRecurringRepo(r.Context(), ev.ID, list); err != nil {
		return respondWithError(err, "failed to update recurring notifications", values.Error, tc)
	}

	api.Deps.WebSocket.BroadcastEventUpdate(websockets.EventUpdate{
		Type:    websockets.MsgTypeRecurringUpdate,
		EventID: ev.ID.String(),
		Payload: list,
	})

	return &ServerResponse{
		Message:    message,
		Status:     values.Success,
		StatusCode: util.StatusCode(values.Success),
		Data:       list,
	}
}
