package ratelimiter

import (
	"hash/fnv"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const maxKeyLength = 64

// KeyFunc extracts a rate limit key from the request.
type KeyFunc func(r *http.Request) string

// Composite joins the non-empty keys of keyFuncs with ":". Keys longer than
// 64 characters are replaced by their FNV-1a hash.
func Composite(keyFuncs ...KeyFunc) KeyFunc {
	return func(r *http.Request) string {
		parts := make([]string, 0, len(keyFuncs))
		for _, fn := range keyFuncs {
			if key := fn(r); key != "" {
				parts = append(parts, key)
			}
		}

		combined := strings.Join(parts, ":")
		if len(combined) <= maxKeyLength {
			return combined
		}

		h := fnv.New64a()
		h.Write([]byte(combined))
		return strconv.FormatUint(h.Sum64(), 36)
	}
}

// Prefix returns a KeyFunc that always yields s, scoping a limit to one route.
func Prefix(s string) KeyFunc {
	return func(*http.Request) string { return s }
}

// LimitHandler writes the response for a denied request.
type LimitHandler func(w http.ResponseWriter, r *http.Request, res *Result)

// ErrorHandler writes the response when the store fails.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

type middlewareOptions struct {
	onLimit LimitHandler
	onError ErrorHandler
}

type MiddlewareOption func(*middlewareOptions)

func WithLimitHandler(h LimitHandler) MiddlewareOption {
	return func(o *middlewareOptions) { o.onLimit = h }
}

func WithErrorHandler(h ErrorHandler) MiddlewareOption {
	return func(o *middlewareOptions) { o.onError = h }
}

func defaultLimitHandler(w http.ResponseWriter, _ *http.Request, _ *Result) {
	http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, _ error) {
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// Middleware limits requests per key. It sets the X-RateLimit-* headers on
// every checked response and Retry-After on denied ones.
func Middleware(limiter RateLimiter, keyFunc KeyFunc, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	o := middlewareOptions{onLimit: defaultLimitHandler, onError: defaultErrorHandler}
	for _, opt := range opts {
		opt(&o)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := limiter.Allow(r.Context(), keyFunc(r))
			if err != nil {
				o.onError(w, r, err)
				return
			}

			SetHeaders(w, res)
			if !res.Allowed() {
				o.onLimit(w, r, res)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// SetHeaders writes the rate limit headers for res.
func SetHeaders(w http.ResponseWriter, res *Result) {
	h := w.Header()
	h.Set("X-RateLimit-Limit", strconv.Itoa(res.Limit))
	h.Set("X-RateLimit-Remaining", strconv.Itoa(max(0, res.Remaining)))
	h.Set("X-RateLimit-Reset", strconv.FormatInt(res.ResetAt.Unix(), 10))
	if !res.Allowed() {
		// Round up so clients never retry early.
		secs := int((res.RetryAfter() + time.Second - 1) / time.Second)
		h.Set("Retry-After", strconv.Itoa(max(1, secs)))
	}
}
