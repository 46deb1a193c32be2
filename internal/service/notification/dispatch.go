package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/channel"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/model"
	notifrepo "github.com/Djtv1304/ambacar-backend-notifications/internal/repository/notification"
)

// Process makes one send attempt for the record id.
//
// Records that are not queued or retry-scheduled, or not yet due, are left
// untouched, so a redelivered send instruction is a no-op. The record is
// claimed with a status compare-and-set before the adapter is called; when
// another worker wins the claim, Process returns without sending.
//
// Adapter failures never surface as errors: they move the record to
// retry_scheduled or failed. Only storage failures are returned. A record
// left in sending or with a pending fallback by such a failure is picked up
// again by Sweep.
func (s *Service) Process(ctx context.Context, id uuid.UUID) error {
	n, err := s.repo.GetNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, notifrepo.ErrNotificationNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Msg("notification not found, skipping")
			return nil
		}

		return fmt.Errorf("get notification: %w", err)
	}

	if !n.Status.IsDispatchable() {
		zlog.Logger.Info().Str("id", id.String()).Str("status", n.Status.String()).Msg("notification not dispatchable, skipping")
		return nil
	}

	if n.NextRetryAt != nil && n.NextRetryAt.After(s.now()) {
		zlog.Logger.Info().Str("id", id.String()).Time("due_at", *n.NextRetryAt).Msg("notification not due yet, skipping")
		return nil
	}

	adapter, known := s.adapters.Get(n.Channel)

	if err := s.wait(ctx, n.Channel); err != nil {
		return fmt.Errorf("wait for %s rate limit: %w", n.Channel, err)
	}

	claimed, err := s.repo.ClaimForSending(ctx, id)
	if err != nil {
		return fmt.Errorf("claim notification: %w", err)
	}
	if !claimed {
		zlog.Logger.Info().Str("id", id.String()).Msg("notification claimed elsewhere, skipping")
		return nil
	}

	n.Status = model.StatusSending
	s.cacheStatus(ctx, id, model.StatusSending)

	var res channel.Result
	switch {
	case !known:
		res = channel.Failure(channel.CodeUnknownChannel, fmt.Sprintf("unknown channel %q", n.Channel))
	case !adapter.IsConfigured():
		res = channel.Failure(
			n.Channel.ErrorCode(channel.SuffixNotConfigured),
			fmt.Sprintf("%s: %s", model.ErrChannelNotConfigured, n.Channel),
		)
	default:
		res = s.send(ctx, adapter, n)
	}

	if res.Success {
		return s.markSent(ctx, n, res.MessageID)
	}

	return s.handleFailure(ctx, n, res)
}

// send performs the adapter call bounded by the send timeout.
func (s *Service) send(ctx context.Context, adapter channel.Adapter, n model.Notification) channel.Result {
	sendCtx := ctx
	if s.cfg.SendTimeout > 0 {
		var cancel context.CancelFunc
		sendCtx, cancel = context.WithTimeout(ctx, s.cfg.SendTimeout)
		defer cancel()
	}

	res := adapter.Send(sendCtx, channel.Payload{
		Recipient: n.RecipientAddress,
		Subject:   n.Subject,
		Body:      n.Body(),
		Metadata: map[string]string{
			"notification_id": n.ID.String(),
			"correlation_id":  n.CorrelationID.String(),
			"event_type":      string(n.EventType),
			"customer_id":     n.RecipientID,
		},
	})

	if !res.Success && res.ErrorCode == "" {
		if errors.Is(sendCtx.Err(), context.DeadlineExceeded) {
			res.ErrorCode = n.Channel.ErrorCode(channel.SuffixTimeout)
		} else {
			res.ErrorCode = n.Channel.ErrorCode(channel.SuffixSendFailed)
		}
	}

	return res
}

func (s *Service) markSent(ctx context.Context, n model.Notification, messageID string) error {
	if err := s.repo.MarkSent(ctx, n.ID, messageID, s.now()); err != nil {
		return fmt.Errorf("mark sent: %w", err)
	}

	s.cacheStatus(ctx, n.ID, model.StatusSent)

	zlog.Logger.Info().
		Str("id", n.ID.String()).
		Str("channel", n.Channel.String()).
		Str("message_id", messageID).
		Msg("notification sent")

	return nil
}

// handleFailure schedules a retry for transient failures while retries
// remain and fails the record otherwise.
func (s *Service) handleFailure(ctx context.Context, n model.Notification, res channel.Result) error {
	sendErr := &model.ChannelSendError{Channel: n.Channel, Message: res.ErrorMessage, Code: res.ErrorCode}

	if channel.IsPermanent(res.ErrorCode) {
		zlog.Logger.Warn().Err(sendErr).Str("id", n.ID.String()).Msg("non-retryable send failure")
		return s.fail(ctx, n, res)
	}

	if n.RetryCount >= n.MaxRetries {
		err := fmt.Errorf("%w: %w", model.ErrMaxRetriesExceeded, sendErr)
		zlog.Logger.Warn().Err(err).Str("id", n.ID.String()).Int("retries", n.RetryCount).Msg("giving up on notification")
		return s.fail(ctx, n, res)
	}

	retryCount := n.RetryCount + 1
	next := s.now().Add(s.retryDelay(retryCount))

	if err := s.repo.ScheduleRetry(ctx, n.ID, retryCount, next, res.ErrorMessage, res.ErrorCode); err != nil {
		return fmt.Errorf("schedule retry: %w", err)
	}

	s.cacheStatus(ctx, n.ID, model.StatusRetryScheduled)

	zlog.Logger.Info().
		Err(sendErr).
		Str("id", n.ID.String()).
		Int("retry_count", retryCount).
		Time("next_retry_at", next).
		Msg("notification retry scheduled")

	if err := s.scheduler.EnqueueAt(ctx, n.ID, next); err != nil {
		zlog.Logger.Error().Err(err).Str("id", n.ID.String()).Msg("failed to schedule retry, leaving it to the sweep")
	}

	return nil
}

func (s *Service) fail(ctx context.Context, n model.Notification, res channel.Result) error {
	if err := s.repo.MarkFailed(ctx, n.ID, res.ErrorMessage, res.ErrorCode); err != nil {
		return fmt.Errorf("mark failed: %w", err)
	}

	s.cacheStatus(ctx, n.ID, model.StatusFailed)

	n.Status = model.StatusFailed
	n.ErrorReason = res.ErrorMessage
	n.ErrorCode = res.ErrorCode

	return s.completeFallback(ctx, n)
}

// completeFallback queues the fallback of a failed record and clears its
// pending flag. On error the flag stays set and the sweep tries again.
func (s *Service) completeFallback(ctx context.Context, n model.Notification) error {
	child, err := s.Fallback(ctx, n)
	if err != nil {
		return fmt.Errorf("queue fallback: %w", err)
	}
	if child == nil {
		zlog.Logger.Info().Str("id", n.ID.String()).Msg("fallback chain exhausted")
	}

	if err := s.repo.ResolveFallback(ctx, n.ID); err != nil {
		return fmt.Errorf("resolve fallback: %w", err)
	}

	return nil
}

// retryDelay returns base * 2^(retryCount-1).
func (s *Service) retryDelay(retryCount int) time.Duration {
	if retryCount < 1 {
		retryCount = 1
	}

	return s.cfg.RetryBase << (retryCount - 1)
}

func (s *Service) wait(ctx context.Context, ch model.Channel) error {
	lim, ok := s.limiters[ch]
	if !ok {
		return nil
	}

	return lim.Wait(ctx)
}
