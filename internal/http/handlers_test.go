package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/a2a"
	ht "github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/http"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/models"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/obs"
	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/orchestrator"
)

// ------------------------ MOCKS ------------------------
type mockBooker struct {
	bookFunc    func(ctx context.Context, req models.HolidayBookingRequest) (orchestrator.HolidayBookingResponse, error)
	serviceFunc func(ctx context.Context, service string, req models.ServiceTestRequest) (orchestrator.BookingResult, error)
	calls       int
}

func (m *mockBooker) BookHoliday(ctx context.Context, req models.HolidayBookingRequest) (orchestrator.HolidayBookingResponse, error) {
	m.calls++
	if m.bookFunc != nil {
		return m.bookFunc(ctx, req)
	}
	return orchestrator.HolidayBookingResponse{BookingID: "b-1", Success: true, TotalServices: 3, SuccessfulBookings: 3}, nil
}

func (m *mockBooker) BookService(ctx context.Context, service string, req models.ServiceTestRequest) (orchestrator.BookingResult, error) {
	m.calls++
	if m.serviceFunc != nil {
		return m.serviceFunc(ctx, service, req)
	}
	return orchestrator.BookingResult{Service: service, Status: orchestrator.StatusCompleted}, nil
}

func (m *mockBooker) AgentsStatus(ctx context.Context) map[string]orchestrator.AgentStatus {
	return map[string]orchestrator.AgentStatus{
		"flight": {URL: "http://localhost:5002/", Status: "available", AgentName: "Flight Booking Agent"},
	}
}

func (m *mockBooker) Endpoints() []orchestrator.Endpoint {
	return []orchestrator.Endpoint{
		{Service: "flight", URL: "http://localhost:5002/"},
		{Service: "hotel", URL: "http://localhost:5003/"},
		{Service: "cab", URL: "http://localhost:5001/"},
	}
}

type allowAll struct{ allow bool }

func (a allowAll) Allow(string) bool { return a.allow }

func newRouter(b orchestrator.Booker, allow bool) http.Handler {
	h := ht.NewHandler(b, allowAll{allow}, obs.NewMetrics(prometheus.NewRegistry()), "2.0.0")
	r := chi.NewRouter()
	r.Get("/", h.Info)
	r.Get("/agents/status", h.AgentsStatus)
	r.Post("/book-holiday", h.BookHoliday)
	r.Get("/book-holiday/demo", h.Demo)
	r.Post("/test-{service}", h.TestService)
	return r
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var e ht.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &e))
	return e.Error
}

// ------------------------ TESTS ------------------------
func TestBookHoliday_Success(t *testing.T) {
	var got models.HolidayBookingRequest
	b := &mockBooker{bookFunc: func(ctx context.Context, req models.HolidayBookingRequest) (orchestrator.HolidayBookingResponse, error) {
		got = req
		return orchestrator.HolidayBookingResponse{BookingID: "b-1", Success: true}, nil
	}}

	rec := do(newRouter(b, true), http.MethodPost, "/book-holiday", `{"origin":"Delhi","destination":"Goa","departure_date":"2025-12-24"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp orchestrator.HolidayBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "b-1", resp.BookingID)

	assert.Equal(t, models.DefaultNights, got.Nights)
	assert.Equal(t, models.DefaultPassengers, got.Passengers)
	assert.Equal(t, models.DefaultRoomType, got.RoomType)
}

func TestBookHoliday_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing fields", `{}`, "origin is required, destination is required"},
		{"bad date", `{"origin":"Delhi","destination":"Goa","departure_date":"24/12/2025"}`, "invalid departure_date"},
		{"too many passengers", `{"origin":"Delhi","destination":"Goa","passengers":12}`, "invalid or excessive passengers"},
		{"negative nights", `{"origin":"Delhi","destination":"Goa","nights":-1}`, "invalid or excessive nights"},
		{"malformed json", `{"origin":`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &mockBooker{}
			rec := do(newRouter(b, true), http.MethodPost, "/book-holiday", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, errorOf(t, rec), tt.want)
			assert.Zero(t, b.calls)
		})
	}
}

func TestBookHoliday_RateLimited(t *testing.T) {
	b := &mockBooker{}
	rec := do(newRouter(b, false), http.MethodPost, "/book-holiday", `{"origin":"Delhi","destination":"Goa"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Zero(t, b.calls)
}

func TestBookHoliday_OrchestrationErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		prefix string
	}{
		{"agents down", fmt.Errorf("%w: flight at http://localhost:5002/: refused", orchestrator.ErrAgentsUnavailable), http.StatusServiceUnavailable, "Cannot connect to agents."},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "Orchestration failed: boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &mockBooker{bookFunc: func(context.Context, models.HolidayBookingRequest) (orchestrator.HolidayBookingResponse, error) {
				return orchestrator.HolidayBookingResponse{}, tt.err
			}}
			rec := do(newRouter(b, true), http.MethodPost, "/book-holiday", `{"origin":"Delhi","destination":"Goa"}`)
			assert.Equal(t, tt.status, rec.Code)
			assert.True(t, strings.HasPrefix(errorOf(t, rec), tt.prefix))
		})
	}
}

func TestDemo(t *testing.T) {
	var got models.HolidayBookingRequest
	b := &mockBooker{bookFunc: func(ctx context.Context, req models.HolidayBookingRequest) (orchestrator.HolidayBookingResponse, error) {
		got = req
		return orchestrator.HolidayBookingResponse{}, nil
	}}
	rec := do(newRouter(b, true), http.MethodGet, "/book-holiday/demo", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Delhi", got.Origin)
	assert.Equal(t, "Paris", got.Destination)
	assert.NotEmpty(t, got.DepartureDate)
}

func TestTestService(t *testing.T) {
	var gotService, gotText string
	b := &mockBooker{serviceFunc: func(ctx context.Context, service string, req models.ServiceTestRequest) (orchestrator.BookingResult, error) {
		gotService, gotText = service, req.Text
		if service == "train" {
			return orchestrator.BookingResult{}, fmt.Errorf("%w: %q", orchestrator.ErrUnknownService, service)
		}
		return orchestrator.BookingResult{Service: service, Status: orchestrator.StatusCompleted}, nil
	}}
	r := newRouter(b, true)

	rec := do(r, http.MethodPost, "/test-hotel", `{"origin":"Delhi","destination":"Goa"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hotel", gotService)

	rec = do(r, http.MethodPost, "/test-flight", `{"text":"flight statistics"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "flight statistics", gotText)

	rec = do(r, http.MethodPost, "/test-cab", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(r, http.MethodPost, "/test-train", `{"origin":"Delhi","destination":"Goa"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInfoAndStatus(t *testing.T) {
	r := newRouter(&mockBooker{}, true)

	rec := do(r, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var info ht.Info
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, "Smart Holiday Orchestrator", info.Service)
	assert.Equal(t, "2.0.0", info.Version)
	assert.Equal(t, "http://localhost:5001/", info.Agents["cab"])

	rec = do(r, http.MethodGet, "/agents/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"agent_name":"Flight Booking Agent"`)
}

type echoExecutor struct{}

func (echoExecutor) Execute(ctx context.Context, msg a2a.Message) (a2a.Reply, error) {
	return a2a.Reply{State: a2a.TaskStateCompleted, Text: "echo: " + a2a.ExtractText(msg)}, nil
}

func TestAgentHandler(t *testing.T) {
	card := a2a.AgentCard{Name: "Echo Agent", Version: "1.0.0"}
	h := ht.NewAgentHandler(a2a.NewServer(card, echoExecutor{}, a2a.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))))

	req := httptest.NewRequest(http.MethodGet, "/.well-known/agent.json", nil)
	req.Host = "agents.local:5001"
	rec := httptest.NewRecorder()
	h.Card(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var got a2a.AgentCard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "http://agents.local:5001/", got.URL)

	params, err := json.Marshal(a2a.MessageSendParams{Message: a2a.NewMessage(a2a.RoleUser, a2a.TextPart("hi"))})
	require.NoError(t, err)
	body, err := json.Marshal(a2a.Request{JSONRPC: a2a.JSONRPCVersion, ID: 1, Method: a2a.MethodSendMessage, Params: params})
	require.NoError(t, err)

	rec = httptest.NewRecorder()
	h.RPC(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(string(body))))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp a2a.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Nil(t, resp.Error)
	var task a2a.Task
	require.NoError(t, json.Unmarshal(resp.Result, &task))
	assert.Equal(t, a2a.TaskStateCompleted, task.Status.State)
	assert.Equal(t, "echo: hi", a2a.ExtractText(*task.Status.Message))

	rec = httptest.NewRecorder()
	h.RPC(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"jsonrpc":"2.0","id":2,"method":"nope"}`)))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)

	rec = httptest.NewRecorder()
	h.Healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Contains(t, rec.Body.String(), `"tasks":1`)
}
