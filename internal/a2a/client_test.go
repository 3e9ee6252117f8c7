package a2a_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sudeepkrishnan87/a2a-holiday-booking-system/internal/a2a"
)

type upperExecutor struct{}

func (upperExecutor) Execute(ctx context.Context, msg a2a.Message) (a2a.Reply, error) {
	return a2a.Reply{State: a2a.TaskStateCompleted, Text: "got " + a2a.ExtractText(msg)}, nil
}

func newAgent(t *testing.T, card a2a.AgentCard, exec a2a.Executor, opts ...a2a.ServerOption) *httptest.Server {
	t.Helper()
	var srv *httptest.Server
	mux := http.NewServeMux()
	mux.HandleFunc(a2a.WellKnownCardPath, func(w http.ResponseWriter, r *http.Request) {
		c := card
		if c.URL == "" {
			c.URL = srv.URL + "/"
		}
		_ = json.NewEncoder(w).Encode(c)
	})
	server := a2a.NewServer(card, exec, opts...)
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = json.NewEncoder(w).Encode(server.Handle(r.Context(), body))
	})
	srv = httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_FetchCardAndSend(t *testing.T) {
	srv := newAgent(t, a2a.AgentCard{Name: "Upper Agent", Version: "2.0.0"}, upperExecutor{})
	client := a2a.NewClient(srv.Client())
	ctx := context.Background()

	card, err := client.FetchCard(ctx, srv.URL+"/")
	require.NoError(t, err)
	assert.Equal(t, "Upper Agent", card.Name)

	task, err := client.SendMessage(ctx, card, a2a.NewMessage(a2a.RoleUser, a2a.TextPart("ping")))
	require.NoError(t, err)
	assert.Equal(t, a2a.TaskStateCompleted, task.Status.State)
	assert.Equal(t, "got ping", a2a.ExtractText(*task.Status.Message))

	again, err := client.GetTask(ctx, card, task.ID)
	require.NoError(t, err)
	assert.Equal(t, task.ID, again.ID)
}

func TestClient_FetchCard_Invalid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"description":"nameless"}`))
	}))
	defer srv.Close()

	_, err := a2a.NewClient(srv.Client()).FetchCard(context.Background(), srv.URL)
	assert.ErrorIs(t, err, a2a.ErrInvalidCard)
}

func TestClient_FetchCard_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	_, err := a2a.NewClient(srv.Client()).FetchCard(context.Background(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestClient_SendMessage_RPCError(t *testing.T) {
	srv := newAgent(t, a2a.AgentCard{Name: "Flaky"}, upperExecutor{}, a2a.WithFaults(alwaysFail{}))
	client := a2a.NewClient(srv.Client())

	card, err := client.FetchCard(context.Background(), srv.URL)
	require.NoError(t, err)

	_, err = client.SendMessage(context.Background(), card, a2a.NewMessage(a2a.RoleUser, a2a.TextPart("x")))
	var rpcErr *a2a.RPCError
	require.True(t, errors.As(err, &rpcErr), "got %v", err)
	assert.Equal(t, a2a.CodeInternalError, rpcErr.Code)
}

func TestClient_SendMessage_ConnectionRefused(t *testing.T) {
	card := a2a.AgentCard{Name: "Gone", URL: "http://127.0.0.1:1/"}
	_, err := a2a.NewClient(nil).SendMessage(context.Background(), card, a2a.NewMessage(a2a.RoleUser, a2a.TextPart("x")))
	assert.Error(t, err)
}

type alwaysFail struct{}

func (alwaysFail) Inject(ctx context.Context) error { return errors.New("agent error (simulated)") }

func TestCardURL(t *testing.T) {
	assert.Equal(t, "http://localhost:5002/.well-known/agent.json", a2a.CardURL("http://localhost:5002/"))
	assert.Equal(t, "http://localhost:5002/.well-known/agent.json", a2a.CardURL("http://localhost:5002"))
}
