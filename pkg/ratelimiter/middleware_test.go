package ratelimiter_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bookingform/pkg/ratelimiter"
)

func byRemoteAddr(r *http.Request) string { return r.RemoteAddr }

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	limiter, _ := newLimiter(t, newFakeClock())
	h := ratelimiter.Middleware(limiter, byRemoteAddr)(okHandler())

	serve := func(addr string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodPost, "/submit", nil)
		r.RemoteAddr = addr
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w
	}

	for i := range testConfig.Capacity {
		w := serve("203.0.113.7:1")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, []string{"2", "1", "0"}[i], w.Header().Get("X-RateLimit-Remaining"))
		assert.Empty(t, w.Header().Get("Retry-After"))
	}

	w := serve("203.0.113.7:1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusOK, serve("198.51.100.1:1").Code)
}

func TestMiddleware_CustomHandlers(t *testing.T) {
	t.Parallel()

	limiter, _ := newLimiter(t, newFakeClock())
	h := ratelimiter.Middleware(limiter, ratelimiter.Prefix("submit"),
		ratelimiter.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request, res *ratelimiter.Result) {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte("slow down"))
		}),
	)(okHandler())

	var last *httptest.ResponseRecorder
	for range testConfig.Capacity + 1 {
		last = httptest.NewRecorder()
		h.ServeHTTP(last, httptest.NewRequest(http.MethodPost, "/", nil))
	}
	assert.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Equal(t, "slow down", last.Body.String())
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (*ratelimiter.Result, error) {
	return nil, ratelimiter.ErrStoreUnavailable
}

func (failingLimiter) AllowN(context.Context, string, int) (*ratelimiter.Result, error) {
	return nil, ratelimiter.ErrStoreUnavailable
}

func TestMiddleware_StoreError(t *testing.T) {
	t.Parallel()

	var got error
	h := ratelimiter.Middleware(failingLimiter{}, byRemoteAddr,
		ratelimiter.WithErrorHandler(func(w http.ResponseWriter, _ *http.Request, err error) {
			got = err
			w.WriteHeader(http.StatusServiceUnavailable)
		}),
	)(okHandler())

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.True(t, errors.Is(got, ratelimiter.ErrStoreUnavailable))
}

func TestComposite(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "203.0.113.7:1"

	empty := func(*http.Request) string { return "" }
	long := func(*http.Request) string { return strings.Repeat("x", 80) }

	assert.Equal(t, "submit:203.0.113.7:1", ratelimiter.Composite(ratelimiter.Prefix("submit"), empty, byRemoteAddr)(r))
	assert.Empty(t, ratelimiter.Composite(empty)(r))

	hashed := ratelimiter.Composite(long)(r)
	assert.LessOrEqual(t, len(hashed), 13)
	assert.Equal(t, hashed, ratelimiter.Composite(long)(r))
}
