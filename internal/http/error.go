package http

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

type ErrorResponse struct {
	Error string            `json:"error"`
	Meta  map[string]string `json:"meta,omitempty"`
}

func WriteError(w http.ResponseWriter, status int, msg string, meta map[string]string) {
	WriteJSON(w, status, ErrorResponse{Error: msg, Meta: meta})
}

func BadRequest(w http.ResponseWriter, msg string, meta map[string]string) {
	WriteError(w, http.StatusBadRequest, msg, meta)
}

func NotFound(w http.ResponseWriter, msg string, meta map[string]string) {
	WriteError(w, http.StatusNotFound, msg, meta)
}

func InternalError(w http.ResponseWriter, msg string, meta map[string]string) {
	WriteError(w, http.StatusInternalServerError, msg, meta)
}

func TooManyRequests(w http.ResponseWriter, msg string, meta map[string]string) {
	WriteError(w, http.StatusTooManyRequests, msg, meta)
}

func ServiceUnavailable(w http.ResponseWriter, msg string, meta map[string]string) {
	WriteError(w, http.StatusServiceUnavailable, msg, meta)
}

// requestMeta carries the request id set by chi's RequestID middleware,
// falling back to the inbound header.
func requestMeta(r *http.Request) map[string]string {
	id := middleware.GetReqID(r.Context())
	if id == "" {
		id = r.Header.Get(middleware.RequestIDHeader)
	}
	if id == "" {
		return nil
	}
	return map[string]string{"request_id": id}
}
