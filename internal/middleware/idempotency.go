package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	IdempotencyKeyHeader = "Idempotency-Key"
	IdempotencyHitHeader = "X-Idempotency-Hit"

	idempotencyLockTTL = time.Minute
	maxFingerprintBody = 1 << 20
)

// StoredResponse is a replayable response kept under an idempotency key.
type StoredResponse struct {
	// RequestHash fingerprints the request body the response was produced for.
	RequestHash string `json:"request_hash,omitempty"`
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// IdempotencyStore keeps one entry per key: either an in-progress marker
// or a completed response.
type IdempotencyStore interface {
	// Lookup returns the stored response, or inProgress when a request with
	// the key is still running. Both are zero when the key is unknown.
	Lookup(ctx context.Context, key string) (resp *StoredResponse, inProgress bool, err error)
	// Reserve marks key as in progress; false means someone else holds it.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Save(ctx context.Context, key string, resp StoredResponse, ttl time.Duration) error
	Release(ctx context.Context, key string) error
}

type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (c *captureWriter) WriteHeader(code int) {
	c.status = code
	c.ResponseWriter.WriteHeader(code)
}

func (c *captureWriter) Write(b []byte) (int, error) {
	if c.status == 0 {
		c.status = http.StatusOK
	}
	c.buf.Write(b)
	return c.ResponseWriter.Write(b)
}

// Idempotency replays the stored response for a repeated POST carrying the
// same Idempotency-Key and body. Reusing a key with a different body is
// answered 422. Server errors are not stored so the client may retry. If
// the store is unreachable requests pass through unprotected.
func Idempotency(store IdempotencyStore, ttl time.Duration, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(IdempotencyKeyHeader)
			if r.Method != http.MethodPost || key == "" {
				next.ServeHTTP(w, r)
				return
			}
			idemKey := "idempotency:" + r.URL.Path + ":" + key
			ctx := r.Context()

			hash, err := fingerprint(r)
			if err != nil {
				writeJSONError(w, http.StatusBadRequest, "read body: "+err.Error())
				return
			}

			stored, inProgress, err := store.Lookup(ctx, idemKey)
			switch {
			case err != nil:
				logger.Warn("idempotency lookup failed", "key", key, "error", err)
				next.ServeHTTP(w, r)
				return
			case stored != nil && stored.RequestHash != "" && stored.RequestHash != hash:
				writeJSONError(w, http.StatusUnprocessableEntity, "Idempotency-Key was already used with a different request body")
				return
			case stored != nil:
				w.Header().Set(IdempotencyHitHeader, "true")
				if stored.ContentType != "" {
					w.Header().Set("Content-Type", stored.ContentType)
				}
				w.WriteHeader(stored.Status)
				_, _ = w.Write(stored.Body)
				return
			case inProgress:
				writeConflict(w)
				return
			}

			acquired, err := store.Reserve(ctx, idemKey, idempotencyLockTTL)
			if err != nil {
				logger.Warn("idempotency reserve failed", "key", key, "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if !acquired {
				writeConflict(w)
				return
			}

			rec := &captureWriter{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			// the request context may already be done
			saveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
			defer cancel()
			if rec.status == 0 || rec.status >= http.StatusInternalServerError {
				if err := store.Release(saveCtx, idemKey); err != nil {
					logger.Warn("idempotency release failed", "key", key, "error", err)
				}
				return
			}
			resp := StoredResponse{RequestHash: hash, Status: rec.status, ContentType: rec.Header().Get("Content-Type"), Body: rec.buf.Bytes()}
			if err := store.Save(saveCtx, idemKey, resp, ttl); err != nil {
				logger.Warn("idempotency save failed", "key", key, "error", err)
			}
		})
	}
}

// fingerprint hashes the request body and puts it back for the handler.
func fingerprint(r *http.Request) (string, error) {
	if r.Body == nil {
		return "", nil
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxFingerprintBody))
	if err != nil {
		return "", err
	}
	r.Body = io.NopCloser(bytes.NewReader(body))
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:]), nil
}

func writeConflict(w http.ResponseWriter) {
	writeJSONError(w, http.StatusConflict, "a request with this Idempotency-Key is already in progress")
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
