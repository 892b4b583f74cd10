package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"blogapi/internal/config"
	handlers "blogapi/internal/handler"
	"blogapi/internal/service"
)

func createTestHandlers(auth *MockAuthService, tokens *MockTokenService, posts *MockPostService) *handlers.Handlers {
	cfg := &config.Config{
		JWTSecretKey:         "test-secret-key",
		ServerPort:           8080,
		AccessTokenDuration:  15 * time.Minute,
		RefreshTokenDuration: 168 * time.Hour,
	}

	services := &service.Service{
		Auth:  auth,
		Token: tokens,
		Post:  posts,
	}

	return handlers.NewHandlers(services, nil, cfg)
}

func jsonRequest(t *testing.T, method, target string, payload interface{}) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// assertFieldError checks a DRF-style {"field": ["message"]} body
func assertFieldError(t *testing.T, rr *httptest.ResponseRecorder, field, message string) {
	t.Helper()

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var response map[string][]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Contains(t, response[field], message)
}
