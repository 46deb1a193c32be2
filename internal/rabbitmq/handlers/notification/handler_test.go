package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"

	mocks "github.com/Djtv1304/ambacar-backend-notifications/internal/mocks/rabbitmq/handlers/notification"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/rabbitmq/queue"
)

func TestHandler_HandleMessage_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMocknotificationService(ctrl)
	h := NewHandler(mockService)

	msg := queue.SendMessage{ID: uuid.New(), EnqueuedAt: time.Now()}
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	mockService.EXPECT().Process(gomock.Any(), msg.ID).Return(nil)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_RetriesStorageErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMocknotificationService(ctrl)
	h := NewHandler(mockService)

	msg := queue.SendMessage{ID: uuid.New(), EnqueuedAt: time.Now()}
	strategy := retry.Strategy{Attempts: 3, Delay: time.Millisecond, Backoff: 1}

	gomock.InOrder(
		mockService.EXPECT().Process(gomock.Any(), msg.ID).Return(errors.New("db error")),
		mockService.EXPECT().Process(gomock.Any(), msg.ID).Return(nil),
	)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_GivesUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMocknotificationService(ctrl)
	h := NewHandler(mockService)

	msg := queue.SendMessage{ID: uuid.New()}
	strategy := retry.Strategy{Attempts: 2, Delay: time.Millisecond, Backoff: 1}

	mockService.EXPECT().Process(gomock.Any(), msg.ID).Return(errors.New("db error")).MinTimes(1)

	h.HandleMessage(context.Background(), msg, strategy)
}

func TestHandler_HandleMessage_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMocknotificationService(ctrl)
	h := NewHandler(mockService)

	msg := queue.SendMessage{ID: uuid.New()}
	strategy := retry.Strategy{Attempts: 1, Delay: time.Millisecond}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Process is never called on a canceled context.
	h.HandleMessage(ctx, msg, strategy)
}
