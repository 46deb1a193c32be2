package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/zlog"
)

// codeSendAbandoned marks an attempt whose outcome was never recorded.
const codeSendAbandoned = "SEND_ABANDONED"

// Sweep recovers records the send path lost track of, in batches of
// batchSize. It releases claims stuck in sending for longer than the stale
// threshold, queues the fallbacks that failed records are still missing and
// republishes send instructions for queued and retry-scheduled records whose
// due time has passed. It returns how many send instructions were published.
func (s *Service) Sweep(ctx context.Context, batchSize int) (int, error) {
	now := s.now()
	staleBefore := now.Add(-s.cfg.StaleAfter)

	s.releaseStaleClaims(ctx, staleBefore, now, batchSize)
	s.retryFallbacks(ctx, staleBefore, batchSize)

	ids, err := s.repo.GetDueIDs(ctx, now, batchSize)
	if err != nil {
		return 0, fmt.Errorf("get due notifications: %w", err)
	}

	if len(ids) == 0 {
		return 0, nil
	}

	published := 0
	for _, id := range ids {
		if err := s.scheduler.Enqueue(ctx, id); err != nil {
			zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to republish due notification")
			continue
		}

		published++
	}

	zlog.Logger.Info().Int("due", len(ids)).Int("published", published).Msg("sweep finished")

	return published, nil
}

// releaseStaleClaims hands records abandoned in sending back to the state
// machine. Released records that still have retries are due right away and
// are republished by the same sweep.
func (s *Service) releaseStaleClaims(ctx context.Context, staleBefore, now time.Time, batchSize int) {
	released, err := s.repo.ReleaseStaleClaims(
		ctx, staleBefore, now, "send attempt did not complete", codeSendAbandoned, batchSize,
	)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to release stale claims")
		return
	}

	for id, status := range released {
		s.cacheStatus(ctx, id, status)
		zlog.Logger.Warn().Str("id", id.String()).Str("status", status.String()).Msg("released stale sending claim")
	}
}

// retryFallbacks queues the fallbacks of failed records whose first attempt
// to do so did not complete.
func (s *Service) retryFallbacks(ctx context.Context, staleBefore time.Time, batchSize int) {
	pending, err := s.repo.GetPendingFallbacks(ctx, staleBefore, batchSize)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to get pending fallbacks")
		return
	}

	for _, n := range pending {
		if err := s.completeFallback(ctx, n); err != nil {
			zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to complete pending fallback")
		}
	}
}
