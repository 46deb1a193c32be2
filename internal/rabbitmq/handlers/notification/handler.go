package notification

import (
	"context"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/rabbitmq/queue"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/notification/mock.go -package=mocks
type notificationService interface {
	Process(ctx context.Context, id uuid.UUID) error
}

type Handler struct {
	service notificationService
}

func NewHandler(svc notificationService) *Handler {
	return &Handler{
		service: svc,
	}
}

// HandleMessage runs one delivery attempt for the record named by msg.
// Storage errors are retried with strategy. When they persist the record
// is left in place for the sweep to pick up again.
func (h *Handler) HandleMessage(ctx context.Context, msg queue.SendMessage, strategy retry.Strategy) {
	log := zlog.Logger.With().Str("id", msg.ID.String()).Logger()

	log.Info().Time("enqueued_at", msg.EnqueuedAt).Msg("handle message: got send instruction")

	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return h.service.Process(ctx, msg.ID)
		}
	}, strategy)

	if err != nil {
		log.Error().Err(err).Msg("handle message: failed to process notification, leaving it for the sweep")
		return
	}

	log.Info().Msg("handle message: notification processed")
}
