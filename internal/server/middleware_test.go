package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/desertthunder/farewell/internal/shared"
	"github.com/desertthunder/farewell/internal/store"
)

func TestRequestID(t *testing.T) {
	t.Run("tags responses and the request context", func(t *testing.T) {
		var ctxID string
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxID = RequestIDFromContext(r.Context())
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		headerID := rec.Header().Get("X-Request-ID")
		if headerID == "" {
			t.Fatal("expected X-Request-ID header")
		}
		if ctxID != headerID {
			t.Errorf("context id %q should match header id %q", ctxID, headerID)
		}
	})

	t.Run("assigns distinct ids per request", func(t *testing.T) {
		handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		first := httptest.NewRecorder()
		second := httptest.NewRecorder()
		handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
		handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))

		if first.Header().Get("X-Request-ID") == second.Header().Get("X-Request-ID") {
			t.Error("expected distinct request ids")
		}
	})
}

func TestRecover(t *testing.T) {
	t.Run("contains panics as 500 responses", func(t *testing.T) {
		logger := shared.NewLogger(&testWriter{})
		handler := Recover(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})

	t.Run("keeps serving after a panic", func(t *testing.T) {
		logger := shared.NewLogger(&testWriter{})
		calls := 0
		handler := Recover(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 1 {
				panic("boom")
			}
			w.WriteHeader(http.StatusOK)
		}))

		first := httptest.NewRecorder()
		handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))
		if first.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500 on the panicking request, got %d", first.Code)
		}

		second := httptest.NewRecorder()
		handler.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/", nil))
		if second.Code != http.StatusOK {
			t.Fatalf("expected the next request to succeed, got %d", second.Code)
		}
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("requests over the limit respond 429", func(t *testing.T) {
		s := store.NewMemStore()
		srv := New(Opts{
			Store:     s,
			BaseURL:   "http://farewell.test",
			RateLimit: 1,
			Burst:     1,
		})

		first := doRequest(t, srv, http.MethodGet, "/api/persons", "")
		if first.Code != http.StatusOK {
			t.Fatalf("expected first request to pass, got %d", first.Code)
		}

		second := doRequest(t, srv, http.MethodGet, "/api/persons", "")
		if second.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", second.Code)
		}
	})

	t.Run("HTML routes are not rate limited", func(t *testing.T) {
		s := store.NewMemStore()
		srv := New(Opts{
			Store:     s,
			BaseURL:   "http://farewell.test",
			RateLimit: 1,
			Burst:     1,
		})

		doRequest(t, srv, http.MethodGet, "/api/persons", "")
		doRequest(t, srv, http.MethodGet, "/api/persons", "")

		rec := doRequest(t, srv, http.MethodGet, "/", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected dashboard to bypass the API limiter, got %d", rec.Code)
		}
	})
}

// testWriter swallows log output during tests.
type testWriter struct{}

func (w *testWriter) Write(p []byte) (int, error) {
	return len(p), nil
}
