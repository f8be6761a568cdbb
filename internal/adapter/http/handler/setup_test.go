package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	adapterhttp "todoapi/internal/adapter/http"
	"todoapi/internal/core/model/response"
	"todoapi/internal/shared"
	"todoapi/pkg/api"
	"todoapi/pkg/auth"
	"todoapi/pkg/test"
)

// capturingMailer records dispatched mail so tests can assert on it. Dispatch
// happens on a background goroutine, so access is guarded.
type capturingMailer struct {
	mu         sync.Mutex
	otps       []int
	resetLinks []string
}

func (m *capturingMailer) SendVerificationMail(to, name string, otp int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.otps = append(m.otps, otp)
	return nil
}

func (m *capturingMailer) SendPasswordResetMail(to, name, link string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetLinks = append(m.resetLinks, link)
	return nil
}

func (m *capturingMailer) ResetLinkCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.resetLinks)
}

type testEnv struct {
	Setup  *test.Setup
	Router *gin.Engine
	Tokens *auth.JWT
	Mailer *capturingMailer
	Config *shared.AppConfig
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	setup := test.NewSetup(t)
	logger := zerolog.Nop()

	cfg := &shared.AppConfig{
		Environment:    "test",
		Port:           "0",
		Domain:         "http://localhost:3000",
		AllowedOrigins: []string{"*"},
		JWTSecret:      "test-secret",
		TokenTTL:       time.Hour,
		ResetTokenTTL:  time.Minute,
		OTPTTL:         time.Minute,
		RateLimit: shared.RateLimitConfig{
			Requests: 1000,
			Window:   15 * time.Minute,
		},
	}

	tokens := auth.New(cfg.JWTSecret, cfg.TokenTTL)
	mailer := &capturingMailer{}
	limiter := shared.NewRateLimiter(cfg.RateLimit, logger, nil)

	container := adapterhttp.NewContainer(setup.Users, setup.Todos, mailer, tokens, cfg, logger, nil)
	router := api.SetupRouter(container, cfg, nil, limiter)

	return &testEnv{
		Setup:  setup,
		Router: router,
		Tokens: tokens,
		Mailer: mailer,
		Config: cfg,
	}
}

func (e *testEnv) request(method, path, body, token string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}

	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	e.Router.ServeHTTP(rr, req)

	return rr
}

func parseEnvelope(rr *httptest.ResponseRecorder) response.Envelope {
	var envelope response.Envelope
	json.Unmarshal(rr.Body.Bytes(), &envelope)
	return envelope
}

func dataField(envelope response.Envelope) map[string]any {
	if data, ok := envelope.Data.(map[string]any); ok {
		return data
	}
	return map[string]any{}
}
