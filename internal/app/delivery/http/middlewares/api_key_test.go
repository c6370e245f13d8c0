package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"vitalab-service/internal/app/config"
	"vitalab-service/internal/pkg/constvars"
	"vitalab-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequireAdminAPIKey(t *testing.T) {
	testAPIKey := "test-admin-api-key-12345"
	hash, err := utils.HashAPIKey(testAPIKey)
	require.NoError(t, err)

	middlewares := &Middlewares{
		Log: zap.NewNop(),
		InternalConfig: &config.InternalConfig{
			App: config.App{
				AdminAPIKeyHash: hash,
			},
		},
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKeyAuth, ok := r.Context().Value(constvars.ContextAPIKeyAuthKey).(bool)
		assert.True(t, ok, "ContextAPIKeyAuthKey should be set")
		assert.True(t, apiKeyAuth, "ContextAPIKeyAuthKey should be true")

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	})

	t.Run("Valid API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/assessments", nil)
		req.Header.Set(constvars.HeaderAPIKey, testAPIKey)

		rr := httptest.NewRecorder()
		middlewares.RequireAdminAPIKey(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for valid API key")
		assert.Equal(t, "success", rr.Body.String())
	})

	t.Run("Missing API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/assessments", nil)

		rr := httptest.NewRecorder()
		middlewares.RequireAdminAPIKey(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 for missing API key")
	})

	t.Run("Invalid API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/assessments", nil)
		req.Header.Set(constvars.HeaderAPIKey, "invalid-api-key")

		rr := httptest.NewRecorder()
		middlewares.RequireAdminAPIKey(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 for invalid API key")
	})

	t.Run("Case Sensitivity", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/assessments", nil)
		req.Header.Set(constvars.HeaderAPIKey, "TEST-ADMIN-API-KEY-12345")

		rr := httptest.NewRecorder()
		middlewares.RequireAdminAPIKey(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 for case-mismatched API key")
	})

	t.Run("Whitespace in API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/assessments", nil)
		req.Header.Set(constvars.HeaderAPIKey, " "+testAPIKey+" ")

		rr := httptest.NewRecorder()
		middlewares.RequireAdminAPIKey(testHandler).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 for API key with whitespace")
	})

	t.Run("All Methods", func(t *testing.T) {
		for _, method := range []string{"GET", "POST", "PUT", "DELETE", "PATCH"} {
			req := httptest.NewRequest(method, "/api/v1/assessments", nil)
			req.Header.Set(constvars.HeaderAPIKey, testAPIKey)

			rr := httptest.NewRecorder()
			middlewares.RequireAdminAPIKey(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})).ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code, "should return 200 OK for %s with valid API key", method)
		}
	})
}
