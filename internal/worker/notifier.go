package worker

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/model"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/rabbitmq/queue"
)

//go:generate mockgen -source=notifier.go -destination=../mocks/worker/mock.go -package=mocks
type notificationConsumer interface {
	Consume(ctx context.Context, out chan<- queue.SendMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg queue.SendMessage, strategy retry.Strategy)
}

type notificationService interface {
	GetNotificationStatusByID(context.Context, retry.Strategy, uuid.UUID) (model.Status, error)
}

// Notifier is the worker pool that turns send instructions from the broker
// into delivery attempts.
type Notifier struct {
	queue   notificationConsumer
	handler messageHandler
	service notificationService
}

func NewNotifier(q notificationConsumer, h messageHandler, s notificationService) *Notifier {
	return &Notifier{
		queue:   q,
		handler: h,
		service: s,
	}
}

// Run consumes send instructions with workerCount workers until ctx is done.
// Instructions for records already in a terminal status are dropped without
// touching the handler.
func (n *Notifier) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	msgChan := make(chan queue.SendMessage, workerCount*10)

	go func() {
		if err := n.queue.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume messages")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Info().Int("worker", id).Msg("worker started")

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Info().Int("worker", id).Msg("worker shutting down")
					return
				case msg, ok := <-msgChan:
					if !ok {
						zlog.Logger.Info().Int("worker", id).Msg("message channel closed, worker shutting down")
						return
					}

					status, err := n.service.GetNotificationStatusByID(ctx, strategy, msg.ID)
					if err != nil {
						zlog.Logger.Error().Err(err).Str("id", msg.ID.String()).Msg("failed to get notification status")
						continue
					}

					if status.IsTerminal() {
						zlog.Logger.Debug().Str("id", msg.ID.String()).Str("status", status.String()).Msg("notification already settled, skipping")
						continue
					}

					n.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Info().Msg("notifier stopped")
}
