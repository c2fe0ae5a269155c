package middlewares

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("mints an ID when none is supplied", func(t *testing.T) {
		var ctxID string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxID = GetRequestID(r.Context())
		})

		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		rec := httptest.NewRecorder()

		RequestIDMiddleware(next).ServeHTTP(rec, req)

		assert.NotEmpty(t, ctxID)
		assert.Equal(t, ctxID, rec.Header().Get("X-Request-ID"))
	})

	t.Run("honors a caller-supplied ID", func(t *testing.T) {
		var ctxID string
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctxID = GetRequestID(r.Context())
		})

		req := httptest.NewRequest(http.MethodGet, "/posts", nil)
		req.Header.Set("X-Request-ID", "caller-id-123")
		rec := httptest.NewRecorder()

		RequestIDMiddleware(next).ServeHTTP(rec, req)

		assert.Equal(t, "caller-id-123", ctxID)
		assert.Equal(t, "caller-id-123", rec.Header().Get("X-Request-ID"))
	})
}

func TestGetRequestID_WithoutMiddleware(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	assert.Empty(t, GetRequestID(req.Context()))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	t.Run("small body passes", func(t *testing.T) {
		called := false
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		})

		req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader("small"))
		rec := httptest.NewRecorder()

		RequestSizeLimitMiddleware(1024)(next).ServeHTTP(rec, req)

		assert.True(t, called)
	})

	t.Run("oversized body gets a JSON 413", func(t *testing.T) {
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("handler must not run for an oversized body")
		})

		req := httptest.NewRequest(http.MethodPost, "/posts", strings.NewReader(strings.Repeat("x", 64)))
		rec := httptest.NewRecorder()

		RequestSizeLimitMiddleware(16)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"error":"request body too large"}`, rec.Body.String())
	})
}
