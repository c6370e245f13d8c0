package middlewares

import (
	"context"
	"net/http"
	"time"

	"vitalab-service/internal/pkg/constvars"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextRequestIDKey struct{}

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

// RequestID honors a client-supplied X-Request-ID and generates one when
// absent, echoing it back on the response.
func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), contextRequestIDKey{}, requestID)
		w.Header().Set(constvars.HeaderXRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middlewares) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID, _ := r.Context().Value(contextRequestIDKey{}).(string)

		rec := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		m.Log.Info("API request completed",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("endpoint", r.URL.Path),
			zap.String("remote_addr", r.RemoteAddr),
			zap.Int("status_code", rec.statusCode),
			zap.Duration("duration", time.Since(start)),
			zap.Bool("success", rec.statusCode < 400),
		)
	})
}
