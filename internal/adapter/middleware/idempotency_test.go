package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

func setupEcho(rdb *redis.Client, ttl time.Duration, handler echo.HandlerFunc) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(IdempotencyMiddleware(rdb, ttl))
	e.POST("/payments", handler)
	e.GET("/payments", handler) // for non-mutating bypass test
	return e
}

func mkJSONBody(t *testing.T, v any) io.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes.NewReader(b)
}

func doReq(t *testing.T, e *echo.Echo, method, path string, body io.Reader, hdr map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func newMiniredisClient(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, rdb
}

func validHeaders() map[string]string {
	return map[string]string{
		"X-Request-Id": strings.Repeat("a", 32),
		"X-Request-At": time.Now().UTC().Format(time.RFC3339),
		"X-User-Id":    "20",
		"X-User-Type":  "tenant",
	}
}

func okCreatedHandler(c echo.Context) error {
	return c.JSON(http.StatusCreated, map[string]any{"ok": true})
}

func Test_BypassOnGET_NoHeadersRequired(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "get ok"})
	})
	rec := doReq(t, e, http.MethodGet, "/payments", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func Test_ValidationFailures(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)

	tests := []struct {
		name   string
		mutate func(h map[string]string)
	}{
		{"missing X-Request-Id", func(h map[string]string) { delete(h, "X-Request-Id") }},
		{"invalid X-Request-Id", func(h map[string]string) { h["X-Request-Id"] = "NOT-VALID" }},
		{"invalid X-Request-At", func(h map[string]string) { h["X-Request-At"] = "not-a-time" }},
		{"skewed X-Request-At", func(h map[string]string) {
			h["X-Request-At"] = time.Now().UTC().Add(-maxClockSkew - time.Minute).Format(time.RFC3339)
		}},
		{"missing X-User-Id", func(h map[string]string) { delete(h, "X-User-Id") }},
		{"non-numeric X-User-Id", func(h map[string]string) { h["X-User-Id"] = "twenty" }},
		{"bad X-User-Type", func(h map[string]string) { h["X-User-Type"] = "admin" }},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h := validHeaders()
			tt.mutate(h)
			rec := doReq(t, e, http.MethodPost, "/payments", mkJSONBody(t, map[string]int{"x": 1}), h)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("want 400, got %d (body=%s)", rec.Code, rec.Body.String())
			}
		})
	}
}

func Test_ReplayCompletedResponse(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()

	var hits int32
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		atomic.AddInt32(&hits, 1)
		return c.JSON(http.StatusCreated, map[string]any{"id": 42})
	})

	body := map[string]any{"lease_id": 301, "amount": 1000.00}
	h := validHeaders()

	first := doReq(t, e, http.MethodPost, "/payments", mkJSONBody(t, body), h)
	if first.Code != http.StatusCreated {
		t.Fatalf("first call: want 201, got %d", first.Code)
	}

	second := doReq(t, e, http.MethodPost, "/payments", mkJSONBody(t, body), h)
	if second.Code != http.StatusCreated {
		t.Fatalf("replay: want 201, got %d", second.Code)
	}
	if second.Body.String() != first.Body.String() {
		t.Fatalf("replay body mismatch: %q vs %q", second.Body.String(), first.Body.String())
	}
	if atomic.LoadInt32(&hits) != 1 {
		t.Fatalf("handler must run once, ran %d times", hits)
	}
}

func Test_SameRequestIdDifferentBodyConflicts(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()
	e := setupEcho(rdb, 30*time.Second, okCreatedHandler)

	h := validHeaders()
	if rec := doReq(t, e, http.MethodPost, "/payments", mkJSONBody(t, map[string]int{"x": 1}), h); rec.Code != http.StatusCreated {
		t.Fatalf("first call: want 201, got %d", rec.Code)
	}

	rec := doReq(t, e, http.MethodPost, "/payments", mkJSONBody(t, map[string]int{"x": 2}), h)
	if rec.Code != http.StatusConflict {
		t.Fatalf("different body under same X-Request-Id: want 409, got %d", rec.Code)
	}
}

func Test_DifferentUsersDoNotCollide(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()

	var hits int32
	e := setupEcho(rdb, 30*time.Second, func(c echo.Context) error {
		atomic.AddInt32(&hits, 1)
		return c.JSON(http.StatusCreated, map[string]any{"ok": true})
	})

	body := map[string]int{"x": 1}

	h1 := validHeaders()
	if rec := doReq(t, e, http.MethodPost, "/payments", mkJSONBody(t, body), h1); rec.Code != http.StatusCreated {
		t.Fatalf("tenant call: want 201, got %d", rec.Code)
	}

	// Same request id, different user: separate idempotency scope.
	h2 := validHeaders()
	h2["X-User-Id"] = "21"
	if rec := doReq(t, e, http.MethodPost, "/payments", mkJSONBody(t, body), h2); rec.Code != http.StatusCreated {
		t.Fatalf("other tenant call: want 201, got %d", rec.Code)
	}

	if atomic.LoadInt32(&hits) != 2 {
		t.Fatalf("handler must run for each user, ran %d times", hits)
	}
}
