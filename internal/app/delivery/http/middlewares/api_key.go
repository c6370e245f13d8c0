package middlewares

import (
	"context"
	"net/http"

	"vitalab-service/internal/pkg/constvars"
	"vitalab-service/internal/pkg/exceptions"
	"vitalab-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// RequireAdminAPIKey guards assessment management endpoints. The configured
// value is a bcrypt hash, so the plaintext key never sits in the
// environment of a running instance.
func (m *Middlewares) RequireAdminAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey := r.Header.Get(constvars.HeaderAPIKey)
		if apiKey == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrAPIKeyRequired(nil))
			return
		}

		if !utils.CheckAPIKeyHash(apiKey, m.InternalConfig.App.AdminAPIKeyHash) {
			m.Log.Warn("admin API key rejected",
				zap.String("ip", r.RemoteAddr),
				zap.String("endpoint", r.URL.Path),
				zap.String("method", r.Method),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidAPIKey(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextAPIKeyAuthKey, true)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
