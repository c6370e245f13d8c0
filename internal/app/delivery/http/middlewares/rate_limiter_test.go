package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Limit(t *testing.T) {
	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	sendFrom := func(handler http.Handler, remoteAddr string) int {
		req := httptest.NewRequest("POST", "/api/v1/sessions/sess-1/next", nil)
		req.RemoteAddr = remoteAddr

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	t.Run("Allows requests within the bucket", func(t *testing.T) {
		limited := NewRateLimiter(2, time.Second, time.Minute).Limit(testHandler)

		assert.Equal(t, http.StatusOK, sendFrom(limited, "10.0.0.1:51000"))
		assert.Equal(t, http.StatusOK, sendFrom(limited, "10.0.0.1:51000"))
	})

	t.Run("Blocks a client that exhausts the bucket", func(t *testing.T) {
		limited := NewRateLimiter(1, time.Second, time.Minute).Limit(testHandler)

		assert.Equal(t, http.StatusOK, sendFrom(limited, "10.0.0.2:51000"))
		assert.Equal(t, http.StatusTooManyRequests, sendFrom(limited, "10.0.0.2:51000"))
		assert.Equal(t, http.StatusTooManyRequests, sendFrom(limited, "10.0.0.2:51000"),
			"the block persists until its window elapses")
	})

	t.Run("Tracks buckets per client IP", func(t *testing.T) {
		limited := NewRateLimiter(1, time.Second, time.Minute).Limit(testHandler)

		assert.Equal(t, http.StatusOK, sendFrom(limited, "10.0.0.3:51000"))
		assert.Equal(t, http.StatusTooManyRequests, sendFrom(limited, "10.0.0.3:51000"))
		assert.Equal(t, http.StatusOK, sendFrom(limited, "10.0.0.4:51000"),
			"an unrelated client is not affected by the block")
	})

	t.Run("A blocked client is released after the block window", func(t *testing.T) {
		limited := NewRateLimiter(1, time.Millisecond, time.Millisecond).Limit(testHandler)

		assert.Equal(t, http.StatusOK, sendFrom(limited, "10.0.0.5:51000"))
		assert.Equal(t, http.StatusTooManyRequests, sendFrom(limited, "10.0.0.5:51000"))

		time.Sleep(5 * time.Millisecond)
		assert.Equal(t, http.StatusOK, sendFrom(limited, "10.0.0.5:51000"))
	})
}
