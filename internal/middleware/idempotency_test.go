package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	mu       sync.Mutex
	reserved map[string]bool
	saved    map[string]StoredResponse
	err      error
}

func newMemStore() *memStore {
	return &memStore{reserved: map[string]bool{}, saved: map[string]StoredResponse{}}
}

func (s *memStore) Lookup(ctx context.Context, key string) (*StoredResponse, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, false, s.err
	}
	if r, ok := s.saved[key]; ok {
		return &r, false, nil
	}
	return nil, s.reserved[key], nil
}

func (s *memStore) Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reserved[key] {
		return false, nil
	}
	s.reserved[key] = true
	return true, nil
}

func (s *memStore) Save(ctx context.Context, key string, resp StoredResponse, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reserved, key)
	s.saved[key] = resp
	return nil
}

func (s *memStore) Release(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reserved, key)
	return nil
}

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func countingHandler(status int, calls *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, `{"booking_id":"b-`+strings.Repeat("1", *calls)+`"}`)
	})
}

func post(h http.Handler, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/book-holiday", strings.NewReader(`{}`))
	if key != "" {
		req.Header.Set(IdempotencyKeyHeader, key)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestIdempotency_ReplaysStoredResponse(t *testing.T) {
	calls := 0
	h := Idempotency(newMemStore(), time.Hour, quiet)(countingHandler(http.StatusOK, &calls))

	first := post(h, "abc")
	second := post(h, "abc")

	assert.Equal(t, 1, calls)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Equal(t, "true", second.Header().Get(IdempotencyHitHeader))
	assert.Equal(t, "application/json", second.Header().Get("Content-Type"))
	assert.Empty(t, first.Header().Get(IdempotencyHitHeader))

	post(h, "other")
	assert.Equal(t, 2, calls)
}

func TestIdempotency_ServerErrorsNotStored(t *testing.T) {
	calls := 0
	h := Idempotency(newMemStore(), time.Hour, quiet)(countingHandler(http.StatusServiceUnavailable, &calls))

	post(h, "abc")
	rec := post(h, "abc")
	assert.Equal(t, 2, calls)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestIdempotency_InProgressConflict(t *testing.T) {
	store := newMemStore()
	store.reserved["idempotency:/book-holiday:abc"] = true
	calls := 0
	h := Idempotency(store, time.Hour, quiet)(countingHandler(http.StatusOK, &calls))

	rec := post(h, "abc")
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, 0, calls)
}

func TestIdempotency_PassThrough(t *testing.T) {
	store := newMemStore()
	calls := 0
	h := Idempotency(store, time.Hour, quiet)(countingHandler(http.StatusOK, &calls))

	post(h, "")
	post(h, "")
	assert.Equal(t, 2, calls)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/book-holiday/demo", nil)
	req.Header.Set(IdempotencyKeyHeader, "abc")
	h.ServeHTTP(rec, req)
	assert.Equal(t, 3, calls)

	store.err = errors.New("redis down")
	post(h, "abc")
	post(h, "abc")
	assert.Equal(t, 5, calls)
}

func TestIdempotency_KeyReusedWithDifferentBody(t *testing.T) {
	calls := 0
	var seen []string
	h := Idempotency(newMemStore(), time.Hour, quiet)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		b, _ := io.ReadAll(r.Body)
		seen = append(seen, string(b))
		w.WriteHeader(http.StatusOK)
	}))

	send := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/book-holiday", strings.NewReader(body))
		req.Header.Set(IdempotencyKeyHeader, "abc")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, send(`{"origin":"Delhi","destination":"Paris"}`).Code)
	assert.Equal(t, []string{`{"origin":"Delhi","destination":"Paris"}`}, seen)

	rec := send(`{"origin":"Delhi","destination":"Goa"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "different request body")

	rec = send(`{"origin":"Delhi","destination":"Paris"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Header().Get(IdempotencyHitHeader))
	assert.Equal(t, 1, calls)
}
