package http

import (
	"io"
	"net/http"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/a2a"
)

// AgentHandler exposes one a2a.Server over HTTP.
type AgentHandler struct {
	server *a2a.Server
}

func NewAgentHandler(s *a2a.Server) *AgentHandler {
	return &AgentHandler{server: s}
}

// Card serves the agent card. An empty card URL is filled in from the
// request host.
func (h *AgentHandler) Card(w http.ResponseWriter, r *http.Request) {
	card := h.server.Card()
	if card.URL == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		card.URL = scheme + "://" + r.Host + "/"
	}
	WriteJSON(w, http.StatusOK, card)
}

// RPC answers JSON-RPC requests. Protocol errors travel inside the JSON-RPC
// envelope, so the HTTP status is always 200.
func (h *AgentHandler) RPC(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		BadRequest(w, "read body: "+err.Error(), requestMeta(r))
		return
	}
	WriteJSON(w, http.StatusOK, h.server.Handle(r.Context(), body))
}

func (h *AgentHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"agent":  h.server.Card().Name,
		"tasks":  h.server.Tasks().Len(),
	})
}
