package shared

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"
	"github.com/rs/zerolog"

	"todoapi/internal/core/model/response"
)

func limiterRouter(limiter *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/ping", limiter.Middleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router
}

func TestRateLimiterAllowsUpToLimit(t *testing.T) {
	RegisterTestingT(t)

	limiter := NewRateLimiter(RateLimitConfig{Requests: 3, Window: time.Minute}, zerolog.Nop(), nil)
	router := limiterRouter(limiter)

	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest("GET", "/ping", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		Expect(rr.Code).To(Equal(http.StatusOK))
		Expect(rr.Header().Get("X-RateLimit-Limit")).To(Equal("3"))
	}
}

func TestRateLimiterRejectsOverLimit(t *testing.T) {
	RegisterTestingT(t)

	limiter := NewRateLimiter(RateLimitConfig{Requests: 2, Window: time.Minute}, zerolog.Nop(), nil)
	router := limiterRouter(limiter)

	var rr *httptest.ResponseRecorder

	for i := 0; i < 3; i++ {
		req, _ := http.NewRequest("GET", "/ping", nil)
		rr = httptest.NewRecorder()
		router.ServeHTTP(rr, req)
	}

	Expect(rr.Code).To(Equal(http.StatusTooManyRequests))
	Expect(rr.Header().Get("X-RateLimit-Remaining")).To(Equal("0"))

	var envelope response.Envelope
	json.Unmarshal(rr.Body.Bytes(), &envelope)

	Expect(envelope.Success).To(BeFalse())
	Expect(envelope.Message).To(Equal("Too many requests, please try again later."))
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	RegisterTestingT(t)

	limiter := NewRateLimiter(RateLimitConfig{Requests: 1, Window: 50 * time.Millisecond}, zerolog.Nop(), nil)
	router := limiterRouter(limiter)

	req, _ := http.NewRequest("GET", "/ping", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	Expect(rr.Code).To(Equal(http.StatusOK))

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	Expect(rr.Code).To(Equal(http.StatusTooManyRequests))

	time.Sleep(60 * time.Millisecond)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	Expect(rr.Code).To(Equal(http.StatusOK))
}
