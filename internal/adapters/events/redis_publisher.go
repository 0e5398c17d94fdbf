package events

import (
	"context"
	"encoding/json"
	"fmt"
	"route-optimization-service/internal/domain"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// RedisPublisher announces completed runs over Redis Pub/Sub.
type RedisPublisher struct {
	rdb     *redis.Client
	channel string
	timeout time.Duration
}

// NewRedisPublisher connects using a redis:// URL.
func NewRedisPublisher(redisURL string) (*RedisPublisher, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("redis publisher: parse url: %w", err)
	}
	return &RedisPublisher{
		rdb:     redis.NewClient(opt),
		channel: RunCompletedChannel,
		timeout: 2 * time.Second,
	}, nil
}

func (p *RedisPublisher) PublishRunCompleted(ctx context.Context, run domain.OptimizationRun) error {
	data, err := json.Marshal(NewRunCompletedEvent(run))
	if err != nil {
		return fmt.Errorf("publish run completed: encode: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	if err := p.rdb.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("publish run completed: run_id=%s: %w", run.RunID, err)
	}
	return nil
}

func (p *RedisPublisher) Ping(ctx context.Context) error {
	if err := p.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}

func (p *RedisPublisher) Close() error { return p.rdb.Close() }
