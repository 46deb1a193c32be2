// Package scheduler publishes send instructions for notification records,
// either immediately or no earlier than a given time.
//
// Delayed instructions are kept in a Redis sorted set scored by due time in
// unix milliseconds. A poller moves due members to the send queue. Removing
// a member before publishing it acts as a claim, so several pollers can run
// against the same set without publishing one instruction twice.
package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/rabbitmq/queue"
)

//go:generate mockgen -source=scheduler.go -destination=../mocks/scheduler/mock.go -package=mocks
type sendPublisher interface {
	Publish(msg queue.SendMessage, strategy retry.Strategy) error
}

type delayStore interface {
	ZAdd(ctx context.Context, key string, members ...*redis.Z) *redis.IntCmd
	ZRangeByScore(ctx context.Context, key string, opt *redis.ZRangeBy) *redis.StringSliceCmd
	ZRem(ctx context.Context, key string, members ...interface{}) *redis.IntCmd
}

type Scheduler struct {
	queue        sendPublisher
	store        delayStore
	strategy     retry.Strategy
	key          string
	pollInterval time.Duration
	batchSize    int64
	now          func() time.Time
}

func New(
	q sendPublisher,
	store delayStore,
	strategy retry.Strategy,
	key string,
	pollInterval time.Duration,
	batchSize int64,
) *Scheduler {
	return &Scheduler{
		queue:        q,
		store:        store,
		strategy:     strategy,
		key:          key,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		now:          time.Now,
	}
}

// Enqueue publishes a send instruction for id right away.
func (s *Scheduler) Enqueue(_ context.Context, id uuid.UUID) error {
	msg := queue.SendMessage{ID: id, EnqueuedAt: s.now()}
	if err := s.queue.Publish(msg, s.strategy); err != nil {
		return fmt.Errorf("publish send message: %w", err)
	}

	return nil
}

// EnqueueAt publishes a send instruction for id no earlier than at.
func (s *Scheduler) EnqueueAt(ctx context.Context, id uuid.UUID, at time.Time) error {
	if !at.After(s.now()) {
		return s.Enqueue(ctx, id)
	}

	err := s.store.ZAdd(ctx, s.key, &redis.Z{Score: score(at), Member: id.String()}).Err()
	if err != nil {
		return fmt.Errorf("schedule send message: %w", err)
	}

	return nil
}

// Run polls for due instructions until ctx is done.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	zlog.Logger.Info().Dur("interval", s.pollInterval).Msg("scheduler started")

	for {
		select {
		case <-ctx.Done():
			zlog.Logger.Info().Msg("scheduler stopped")
			return
		case <-ticker.C:
			if _, err := s.PublishDue(ctx); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to publish due messages")
			}
		}
	}
}

// PublishDue moves every instruction whose due time has passed to the send
// queue and returns how many were published.
func (s *Scheduler) PublishDue(ctx context.Context) (int, error) {
	members, err := s.store.ZRangeByScore(ctx, s.key, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatFloat(score(s.now()), 'f', 0, 64),
		Count: s.batchSize,
	}).Result()
	if err != nil {
		return 0, fmt.Errorf("get due messages: %w", err)
	}

	published := 0
	for _, member := range members {
		removed, err := s.store.ZRem(ctx, s.key, member).Result()
		if err != nil {
			return published, fmt.Errorf("claim due message: %w", err)
		}
		if removed == 0 {
			// another poller claimed it
			continue
		}

		id, err := uuid.Parse(member)
		if err != nil {
			zlog.Logger.Warn().Str("member", member).Msg("dropping malformed scheduled message")
			continue
		}

		if err := s.Enqueue(ctx, id); err != nil {
			zlog.Logger.Error().Err(err).Str("id", member).Msg("failed to publish due message, rescheduling")

			if zerr := s.store.ZAdd(ctx, s.key, &redis.Z{Score: score(s.now()), Member: member}).Err(); zerr != nil {
				zlog.Logger.Error().Err(zerr).Str("id", member).Msg("failed to reschedule message")
			}
			continue
		}

		published++
	}

	return published, nil
}

func score(t time.Time) float64 {
	return float64(t.UnixMilli())
}
