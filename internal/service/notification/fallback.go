package notification

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/model"
)

// Fallback queues the failed record's content on the next channel of its
// priority order that has a valid recipient, delayed by the fallback delay.
// The new record points to the failed one as its parent. It returns nil
// when the chain is exhausted.
func (s *Service) Fallback(ctx context.Context, failed model.Notification) (*model.Notification, error) {
	if failed.Status != model.StatusFailed {
		return nil, fmt.Errorf("fallback from %s notification %s", failed.Status, failed.ID)
	}

	next := failed.NextChannels()
	if len(next) == 0 {
		return nil, nil
	}

	contact, err := s.contacts.GetContact(ctx, failed.RecipientID)
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}

	for _, ch := range next {
		recipient := contact.RecipientFor(ch)
		if recipient == "" {
			zlog.Logger.Info().Str("id", failed.ID.String()).Str("channel", ch.String()).Msg("no recipient for fallback channel")
			continue
		}

		if adapter, ok := s.adapters.Get(ch); ok && !adapter.ValidateRecipient(ctx, recipient) {
			zlog.Logger.Info().Str("id", failed.ID.String()).Str("channel", ch.String()).Msg("invalid recipient for fallback channel")
			continue
		}

		sendAt := s.now().Add(s.cfg.FallbackDelay)
		parentID := failed.ID

		child, err := s.Queue(ctx, QueueRequest{
			EventType:     failed.EventType,
			Channel:       ch,
			RecipientID:   failed.RecipientID,
			Recipient:     recipient,
			TemplateID:    failed.TemplateID,
			TemplateName:  failed.TemplateName,
			Subject:       failed.Subject,
			Body:          failed.Body(),
			Variables:     failed.Context.Variables,
			PriorityOrder: failed.Context.PriorityOrder,
			CorrelationID: failed.CorrelationID,
			ParentID:      &parentID,
			SendAt:        &sendAt,
		})
		if err != nil {
			return nil, fmt.Errorf("queue fallback on %s: %w", ch, err)
		}

		zlog.Logger.Info().
			Str("id", failed.ID.String()).
			Str("fallback_id", child.ID.String()).
			Str("channel", ch.String()).
			Time("send_at", sendAt).
			Msg("fallback queued")

		return &child, nil
	}

	return nil, nil
}
