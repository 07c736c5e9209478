package rest

import (
	"encoding/json"
	"net/http"

	"github.com/bartrekker/bartrekker_api/util"
	"github.com/bartrekker/bartrekker_api/util/tracing"
	"github.com/sirupsen/logrus"
)

type ServerResponse struct {
	Message    string      `json:"message"`
	Status     string      `json:"status"`
	StatusCode int         `json:"-"`
	Data       interface{} `json:"data,omitempty"`
}

func respondWithError(err error, message string, status string, tc *tracing.Context) *ServerResponse {
	entry := logrus.WithField("status", status)
	if tc != nil {
		entry = entry.WithField("request_id", tc.RequestID)
	}
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Error(message)

	return &ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
}

func writeJSONResponse(w http.ResponseWriter, body []byte, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_, _ = w.Write(body)
}

func writeErrorResponse(w http.ResponseWriter, err error, status string, message string) {
	logrus.WithError(err).Error(message)

	resp := ServerResponse{
		Message:    message,
		Status:     status,
		StatusCode: util.StatusCode(status),
	}
	body, marshalErr := json.Marshal(resp)
	if marshalErr != nil {
		http.Error(w, message, http.StatusInternalServerError)
		return
	}
	writeJSONResponse(w, body, resp.StatusCode)
}
