// Package ratelimiter implements a token bucket limiter with pluggable
// storage and net/http middleware.
//
// A bucket holds up to Capacity tokens and gains RefillRate tokens every
// RefillInterval. Each allowed request consumes one token.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//
//	limiter, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: time.Minute,
//	})
//
//	r.With(ratelimiter.Middleware(limiter, clientip.FromRequest)).Post("/submit", h)
//
// MemoryStore suits a single instance. RedisStore evaluates the same refill
// rule in a Lua script so several instances share one budget per key.
//
// The middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset, plus Retry-After when a request is denied. Use
// WithLimitHandler to render a custom 429 response.
package ratelimiter
