package middlewares

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"vitalab-service/internal/app/models"
	"vitalab-service/internal/pkg/constvars"
	"vitalab-service/internal/pkg/exceptions"
	"vitalab-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

// Authenticate resolves the bearer token to a login session held in Redis
// and stores the session payload and user id in the request context. The
// auth service of the platform owns the session; this service only reads it.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, constvars.AuthBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		token := strings.TrimPrefix(authHeader, constvars.AuthBearerPrefix)

		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		sessionKey := fmt.Sprintf(constvars.RedisKeyLoginSessionFormat, sessionID)
		rawSession, err := m.RedisRepository.Get(r.Context(), sessionKey)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if rawSession == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidLoginSession(nil))
			return
		}

		loginSession := new(models.LoginSession)
		if err := json.Unmarshal([]byte(rawSession), loginSession); err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidLoginSession(err))
			return
		}
		if loginSession.UserID == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidLoginSession(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextSessionDataKey, loginSession)
		ctx = context.WithValue(ctx, constvars.ContextUserIDKey, loginSession.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
