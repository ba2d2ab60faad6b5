package redis_test

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/bookingform/pkg/redis"
)

func TestConnect_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     redis.Config
		wantErr error
	}{
		{"not configured", redis.Config{}, redis.ErrEmptyConnectionURL},
		{"bad url", redis.Config{ConnectionURL: "http://nope"}, redis.ErrFailedToParseRedisConnString},
		{
			"unreachable",
			redis.Config{
				ConnectionURL:  "redis://127.0.0.1:1/0?dial_timeout=50ms&max_retries=-1",
				RetryAttempts:  2,
				RetryInterval:  10 * time.Millisecond,
				ConnectTimeout: time.Second,
			},
			redis.ErrRedisNotReady,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client, err := redis.Connect(context.Background(), tt.cfg)
			assert.Nil(t, client)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestHealthcheck_Unreachable(t *testing.T) {
	t.Parallel()

	client := goredis.NewClient(&goredis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 50 * time.Millisecond})
	defer client.Close()

	assert.ErrorIs(t, redis.Healthcheck(client)(context.Background()), redis.ErrHealthcheckFailed)
}

func TestConfig_Enabled(t *testing.T) {
	t.Parallel()

	assert.False(t, redis.Config{}.Enabled())
	assert.True(t, redis.Config{ConnectionURL: "redis://localhost:6379/0"}.Enabled())
}
