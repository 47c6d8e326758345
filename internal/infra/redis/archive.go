package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"oasis-lms/internal/domain"
)

// Archive persists conversation traffic in per-user Redis lists:
//
//	RPUSH lms:history:{user} {text}
//	RPUSH lms:results:{user} {result JSON}
//
// Entries carry an optional TTL so an idle conversation eventually
// expires. The archive is write-behind; readers are external tooling.
type Archive struct {
	client *redis.Client
	ttl    time.Duration
}

func NewArchive(client *redis.Client, ttl time.Duration) *Archive {
	return &Archive{client: client, ttl: ttl}
}

func (a *Archive) ArchiveMessage(ctx context.Context, user, text string) error {
	return a.push(ctx, a.historyKey(user), text)
}

func (a *Archive) ArchiveResult(ctx context.Context, user string, result domain.QuizResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	return a.push(ctx, a.resultsKey(user), string(data))
}

func (a *Archive) push(ctx context.Context, key, value string) error {
	pipe := a.client.Pipeline()
	pipe.RPush(ctx, key, value)
	if a.ttl > 0 {
		pipe.Expire(ctx, key, a.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("archive push: %w", err)
	}
	return nil
}

func (a *Archive) historyKey(user string) string {
	return "lms:history:" + user
}

func (a *Archive) resultsKey(user string) string {
	return "lms:results:" + user
}
