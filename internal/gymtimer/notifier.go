package gymtimer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const DefaultCompletionChannel = "fittrack:timer:completed"

// CompletionEvent is the signal emitted once a countdown reaches zero.
type CompletionEvent struct {
	SessionID   string    `json:"sessionId"`
	Duration    int       `json:"duration"`
	CompletedAt time.Time `json:"completedAt"`
}

type Notifier interface {
	Notify(ctx context.Context, event CompletionEvent) error
}

// RedisNotifier publishes completion events on a redis pub/sub channel, for
// whatever client is subscribed to show them.
type RedisNotifier struct {
	rdb     redis.Cmdable
	channel string
}

func NewRedisNotifier(rdb redis.Cmdable, channel string) *RedisNotifier {
	if channel == "" {
		channel = DefaultCompletionChannel
	}
	return &RedisNotifier{
		rdb:     rdb,
		channel: channel,
	}
}

func (n *RedisNotifier) Notify(ctx context.Context, event CompletionEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal completion event: %w", err)
	}

	receivers, err := n.rdb.Publish(ctx, n.channel, string(payload)).Result()
	if err != nil {
		return fmt.Errorf("publish completion event: %w", err)
	}

	log.Tracef("timer [%s] completion published to %d receivers", event.SessionID, receivers)
	return nil
}

type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, event CompletionEvent) error {
	log.Infof("timer [%s] finished: %d seconds countdown done at %s",
		event.SessionID, event.Duration, event.CompletedAt.Format(time.RFC3339))
	return nil
}
