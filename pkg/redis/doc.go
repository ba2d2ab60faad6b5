// Package redis connects to Redis with retries and exposes a readiness probe.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	ready := redis.Healthcheck(client)
//
// Config.Enabled reports whether REDIS_URL was set, so callers can fall back
// to in-process state when it is not.
package redis
