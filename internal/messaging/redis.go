package messaging

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"traffic-light-service/internal/logger"
	"traffic-light-service/internal/mode"
)

const (
	StatusHash    = "traffic-light"
	StatusChannel = "traffic-light"

	publishTimeout = 500 * time.Millisecond
)

// RedisPublisher mirrors the effective mode into a hash on a Redis running
// on the same host and notifies subscribers. It never reads anything back.
type RedisPublisher struct {
	client *redis.Client
	logger *logger.Logger
	bootID string
	ctx    context.Context
	cancel context.CancelFunc
}

func NewRedisPublisher(addr string, l *logger.Logger) *RedisPublisher {
	ctx, cancel := context.WithCancel(context.Background())
	return &RedisPublisher{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
			DB:   0,
		}),
		logger: l,
		bootID: uuid.NewString(),
		ctx:    ctx,
		cancel: cancel,
	}
}

// BootID identifies this process run in the published status.
func (r *RedisPublisher) BootID() string {
	return r.bootID
}

func (r *RedisPublisher) Connect() error {
	r.logger.Infof("Attempting to connect to Redis at %s", r.client.Options().Addr)

	ctx, cancel := context.WithTimeout(r.ctx, publishTimeout)
	defer cancel()

	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection failed: %w", err)
	}
	if err := r.client.HSet(ctx, StatusHash, "boot-id", r.bootID).Err(); err != nil {
		return fmt.Errorf("failed to publish boot id: %w", err)
	}

	r.logger.Infof("Successfully connected to Redis, boot id %s", r.bootID)
	return nil
}

// statusFields is the hash content for a mode published at ts.
func statusFields(m mode.Mode, flags mode.Snapshot, ts time.Time) map[string]interface{} {
	return map[string]interface{}{
		"mode":           string(m),
		"mode:timestamp": ts.Format(time.RFC3339),
		"emergency":      strconv.FormatBool(flags.Emergency),
		"power-off":      strconv.FormatBool(flags.PowerOff),
		"blinking":       strconv.FormatBool(flags.Blinking),
	}
}

// PublishMode atomically updates the status hash and announces the change.
func (r *RedisPublisher) PublishMode(m mode.Mode, flags mode.Snapshot) error {
	r.logger.Debugf("Publishing mode: %s", m)

	ctx, cancel := context.WithTimeout(r.ctx, publishTimeout)
	defer cancel()

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, StatusHash, statusFields(m, flags, time.Now()))
	pipe.Publish(ctx, StatusChannel, "mode")
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish mode %s: %w", m, err)
	}
	return nil
}

func (r *RedisPublisher) Close() error {
	r.logger.Infof("Closing Redis client")
	r.cancel()
	return r.client.Close()
}
