package httpkit

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"station_lookup_backend/platform/apperr"
	"station_lookup_backend/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleErrorMapsWrappedDomainError(t *testing.T) {
	engine := gin.New()
	engine.GET("/x", func(c *gin.Context) {
		err := fmt.Errorf("lookup: %w", apperr.NotFound("session not found"))
		HandleError(c, err)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHandleErrorHidesUntypedError(t *testing.T) {
	engine := gin.New()
	engine.GET("/x", func(c *gin.Context) {
		HandleError(c, errors.New("dial tcp: connection refused"))
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); body != `{"error":"internal error"}` {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestRateLimitRejectsAfterBurst(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(0.001), 2, logger.New("development"))
	engine := gin.New()
	engine.Use(limiter.RateLimit())
	engine.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		engine.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("expected first two requests to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected third request to be limited, got %d", codes[2])
	}
}

func TestRequestIDGeneratesAndEchoes(t *testing.T) {
	engine := gin.New()
	engine.Use(RequestID())
	var seen string
	engine.GET("/x", func(c *gin.Context) {
		seen, _ = c.Request.Context().Value(logger.RequestIDKey).(string)
		c.Status(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	if _, err := uuid.Parse(seen); err != nil {
		t.Fatalf("expected generated uuid in context, got %q", seen)
	}
	if rec.Header().Get(RequestIDHeader) != seen {
		t.Fatalf("expected header %q, got %q", seen, rec.Header().Get(RequestIDHeader))
	}

	inbound := uuid.NewString()
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(RequestIDHeader, inbound)
	engine.ServeHTTP(rec, req)
	if seen != inbound {
		t.Fatalf("expected inbound id %q to be reused, got %q", inbound, seen)
	}
}
