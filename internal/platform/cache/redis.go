// Package cache opens the Redis connection that holds browser sessions.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configures the connection.
type Options struct {
	Addr        string
	PingTimeout time.Duration
}

// Open returns a client for opts.Addr and the result of a first ping. The
// client is returned even when the ping fails; go-redis reconnects on use.
func Open(ctx context.Context, opts Options) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: opts.Addr})

	timeout := opts.PingTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return client, fmt.Errorf("cache: ping %s: %w", opts.Addr, err)
	}
	return client, nil
}
