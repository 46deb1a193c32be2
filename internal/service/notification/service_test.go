package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/retry"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/channel"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/config"
	chmocks "github.com/Djtv1304/ambacar-backend-notifications/internal/mocks/channel"
	mocks "github.com/Djtv1304/ambacar-backend-notifications/internal/mocks/service/notification"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/model"
	notifrepo "github.com/Djtv1304/ambacar-backend-notifications/internal/repository/notification"
)

var strategy = retry.Strategy{Attempts: 1, Delay: time.Millisecond}

type fixture struct {
	repo      *mocks.MocknotificationRepository
	contacts  *mocks.MockcontactReader
	scheduler *mocks.MocksendScheduler
	adapters  *mocks.MockadapterRegistry
	cache     *mocks.Mockcache
	svc       *Service
	now       time.Time
}

func newFixture(t *testing.T) (*fixture, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	f := &fixture{
		repo:      mocks.NewMocknotificationRepository(ctrl),
		contacts:  mocks.NewMockcontactReader(ctrl),
		scheduler: mocks.NewMocksendScheduler(ctrl),
		adapters:  mocks.NewMockadapterRegistry(ctrl),
		cache:     mocks.NewMockcache(ctrl),
		now:       time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
	}

	cfg := config.Dispatch{
		MaxRetries:    3,
		RetryBase:     time.Minute,
		FallbackDelay: 10 * time.Minute,
		SendTimeout:   time.Second,
		StaleAfter:    5 * time.Minute,
		PreviewLength: 10,
	}

	f.svc = NewService(f.repo, f.contacts, f.scheduler, f.adapters, f.cache, strategy, cfg)
	f.svc.now = func() time.Time { return f.now }

	f.cache.EXPECT().SetWithRetry(gomock.Any(), strategy, gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f, ctrl
}

func queuedEmail(f *fixture) model.Notification {
	return model.Notification{
		ID:               uuid.New(),
		EventType:        model.EventVehicleReady,
		Channel:          model.ChannelEmail,
		RecipientID:      "C1",
		RecipientAddress: "ana@example.com",
		Subject:          "Tu vehículo está listo",
		BodyPreview:      "Hola Ana",
		Status:           model.StatusQueued,
		MaxRetries:       3,
		Context: model.NotificationContext{
			PriorityOrder: []model.Channel{model.ChannelEmail, model.ChannelWhatsApp, model.ChannelPush},
			FullBody:      "Hola Ana, tu Corolla está listo.",
		},
		CorrelationID: uuid.New(),
	}
}

func TestService_Queue(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	correlationID := uuid.New()

	f.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n model.Notification) (uuid.UUID, error) {
			assert.Equal(t, model.StatusQueued, n.Status)
			assert.Equal(t, "Hola Ana, ", n.BodyPreview)
			assert.Equal(t, "Hola Ana, tu Corolla está listo.", n.Context.FullBody)
			assert.Equal(t, 3, n.MaxRetries)
			assert.Equal(t, correlationID, n.CorrelationID)
			require.NotNil(t, n.NextRetryAt)
			assert.Equal(t, f.now, *n.NextRetryAt)
			return id, nil
		})
	f.scheduler.EXPECT().EnqueueAt(gomock.Any(), id, f.now).Return(nil)

	n, err := f.svc.Queue(context.Background(), QueueRequest{
		EventType:     model.EventVehicleReady,
		Channel:       model.ChannelEmail,
		RecipientID:   "C1",
		Recipient:     "ana@example.com",
		Body:          "Hola Ana, tu Corolla está listo.",
		PriorityOrder: []model.Channel{model.ChannelEmail},
		CorrelationID: correlationID,
	})
	require.NoError(t, err)
	assert.Equal(t, id, n.ID)
}

func TestService_Queue_Delayed(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	sendAt := f.now.Add(10 * time.Minute)

	f.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(id, nil)
	f.scheduler.EXPECT().EnqueueAt(gomock.Any(), id, sendAt).Return(nil)

	_, err := f.svc.Queue(context.Background(), QueueRequest{Channel: model.ChannelEmail, SendAt: &sendAt})
	require.NoError(t, err)
}

func TestService_Queue_SchedulerErrorIsNotFatal(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()

	f.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(id, nil)
	f.scheduler.EXPECT().EnqueueAt(gomock.Any(), id, f.now).Return(errors.New("broker down"))

	n, err := f.svc.Queue(context.Background(), QueueRequest{Channel: model.ChannelEmail})
	require.NoError(t, err)
	assert.Equal(t, id, n.ID)
}

func TestService_Queue_RepoError(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("db down"))

	_, err := f.svc.Queue(context.Background(), QueueRequest{Channel: model.ChannelEmail})
	assert.Error(t, err)
}

func TestService_Process_Success(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	n := queuedEmail(f)
	adapter := chmocks.NewMockAdapter(ctrl)

	f.repo.EXPECT().GetNotificationByID(gomock.Any(), n.ID).Return(n, nil)
	f.adapters.EXPECT().Get(model.ChannelEmail).Return(adapter, true)
	f.repo.EXPECT().ClaimForSending(gomock.Any(), n.ID).Return(true, nil)
	adapter.EXPECT().IsConfigured().Return(true)
	adapter.EXPECT().Send(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, p channel.Payload) channel.Result {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)
			assert.Equal(t, "ana@example.com", p.Recipient)
			assert.Equal(t, n.Context.FullBody, p.Body)
			assert.Equal(t, n.ID.String(), p.Metadata["notification_id"])
			return channel.Result{Success: true, MessageID: "msg-1"}
		})
	f.repo.EXPECT().MarkSent(gomock.Any(), n.ID, "msg-1", f.now).Return(nil)

	assert.NoError(t, f.svc.Process(context.Background(), n.ID))
}

func TestService_Process_SkipsTerminal(t *testing.T) {
	for _, status := range []model.Status{model.StatusSent, model.StatusDelivered, model.StatusFailed, model.StatusSending} {
		t.Run(status.String(), func(t *testing.T) {
			f, ctrl := newFixture(t)
			defer ctrl.Finish()

			n := queuedEmail(f)
			n.Status = status

			f.repo.EXPECT().GetNotificationByID(gomock.Any(), n.ID).Return(n, nil)

			assert.NoError(t, f.svc.Process(context.Background(), n.ID))
		})
	}
}

func TestService_Process_SkipsNotDue(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	n := queuedEmail(f)
	n.Status = model.StatusRetryScheduled
	due := f.now.Add(time.Minute)
	n.NextRetryAt = &due

	f.repo.EXPECT().GetNotificationByID(gomock.Any(), n.ID).Return(n, nil)

	assert.NoError(t, f.svc.Process(context.Background(), n.ID))
}

func TestService_Process_ClaimLost(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	n := queuedEmail(f)
	adapter := chmocks.NewMockAdapter(ctrl)

	f.repo.EXPECT().GetNotificationByID(gomock.Any(), n.ID).Return(n, nil)
	f.adapters.EXPECT().Get(model.ChannelEmail).Return(adapter, true)
	f.repo.EXPECT().ClaimForSending(gomock.Any(), n.ID).Return(false, nil)

	assert.NoError(t, f.svc.Process(context.Background(), n.ID))
}

func TestService_Process_NotFound(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	f.repo.EXPECT().GetNotificationByID(gomock.Any(), id).Return(model.Notification{}, notifrepo.ErrNotificationNotFound)

	assert.NoError(t, f.svc.Process(context.Background(), id))
}

func TestService_Process_RetryBackoff(t *testing.T) {
	cases := []struct {
		retryCount int
		wantCount  int
		wantDelay  time.Duration
	}{
		{retryCount: 0, wantCount: 1, wantDelay: time.Minute},
		{retryCount: 1, wantCount: 2, wantDelay: 2 * time.Minute},
		{retryCount: 2, wantCount: 3, wantDelay: 4 * time.Minute},
	}

	for _, tc := range cases {
		t.Run(tc.wantDelay.String(), func(t *testing.T) {
			f, ctrl := newFixture(t)
			defer ctrl.Finish()

			n := queuedEmail(f)
			n.RetryCount = tc.retryCount
			if tc.retryCount > 0 {
				n.Status = model.StatusRetryScheduled
			}
			adapter := chmocks.NewMockAdapter(ctrl)
			next := f.now.Add(tc.wantDelay)

			f.repo.EXPECT().GetNotificationByID(gomock.Any(), n.ID).Return(n, nil)
			f.adapters.EXPECT().Get(model.ChannelEmail).Return(adapter, true)
			f.repo.EXPECT().ClaimForSending(gomock.Any(), n.ID).Return(true, nil)
			adapter.EXPECT().IsConfigured().Return(true)
			adapter.EXPECT().Send(gomock.Any(), gomock.Any()).Return(channel.Failure("EMAIL_SEND_FAILED", "smtp down"))
			f.repo.EXPECT().ScheduleRetry(gomock.Any(), n.ID, tc.wantCount, next, "smtp down", "EMAIL_SEND_FAILED").Return(nil)
			f.scheduler.EXPECT().EnqueueAt(gomock.Any(), n.ID, next).Return(nil)

			assert.NoError(t, f.svc.Process(context.Background(), n.ID))
		})
	}
}

func TestService_Process_FailureWithoutCodeGetsSendFailed(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	n := queuedEmail(f)
	adapter := chmocks.NewMockAdapter(ctrl)

	f.repo.EXPECT().GetNotificationByID(gomock.Any(), n.ID).Return(n, nil)
	f.adapters.EXPECT().Get(model.ChannelEmail).Return(adapter, true)
	f.repo.EXPECT().ClaimForSending(gomock.Any(), n.ID).Return(true, nil)
	adapter.EXPECT().IsConfigured().Return(true)
	adapter.EXPECT().Send(gomock.Any(), gomock.Any()).Return(channel.Result{ErrorMessage: "boom"})
	f.repo.EXPECT().ScheduleRetry(gomock.Any(), n.ID, 1, gomock.Any(), "boom", "EMAIL_SEND_FAILED").Return(nil)
	f.scheduler.EXPECT().EnqueueAt(gomock.Any(), n.ID, gomock.Any()).Return(nil)

	assert.NoError(t, f.svc.Process(context.Background(), n.ID))
}

func TestService_Process_ExhaustedRetriesFailsAndFallsBack(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	n := queuedEmail(f)
	n.Status = model.StatusRetryScheduled
	n.RetryCount = 3
	adapter := chmocks.NewMockAdapter(ctrl)
	whatsapp := chmocks.NewMockAdapter(ctrl)
	childID := uuid.New()
	fallbackAt := f.now.Add(10 * time.Minute)

	f.repo.EXPECT().GetNotificationByID(gomock.Any(), n.ID).Return(n, nil)
	f.adapters.EXPECT().Get(model.ChannelEmail).Return(adapter, true)
	f.repo.EXPECT().ClaimForSending(gomock.Any(), n.ID).Return(true, nil)
	adapter.EXPECT().IsConfigured().Return(true)
	adapter.EXPECT().Send(gomock.Any(), gomock.Any()).Return(channel.Failure("EMAIL_TIMEOUT", "timeout"))
	f.repo.EXPECT().MarkFailed(gomock.Any(), n.ID, "timeout", "EMAIL_TIMEOUT").Return(nil)

	f.contacts.EXPECT().GetContact(gomock.Any(), "C1").Return(model.Contact{
		CustomerID: "C1", Email: "ana@example.com", Phone: "0987654321",
	}, nil)
	f.adapters.EXPECT().Get(model.ChannelWhatsApp).Return(whatsapp, true)
	whatsapp.EXPECT().ValidateRecipient(gomock.Any(), "0987654321").Return(true)
	f.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, child model.Notification) (uuid.UUID, error) {
			assert.Equal(t, model.ChannelWhatsApp, child.Channel)
			assert.Equal(t, "0987654321", child.RecipientAddress)
			require.NotNil(t, child.ParentID)
			assert.Equal(t, n.ID, *child.ParentID)
			assert.Equal(t, n.CorrelationID, child.CorrelationID)
			assert.Equal(t, n.Context.FullBody, child.Context.FullBody)
			assert.Equal(t, n.Context.PriorityOrder, child.Context.PriorityOrder)
			assert.Zero(t, child.RetryCount)
			return childID, nil
		})
	f.scheduler.EXPECT().EnqueueAt(gomock.Any(), childID, fallbackAt).Return(nil)
	f.repo.EXPECT().ResolveFallback(gomock.Any(), n.ID).Return(nil)

	assert.NoError(t, f.svc.Process(context.Background(), n.ID))
}

func TestService_Process_NotConfiguredFailsFast(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	n := queuedEmail(f)
	n.Context.PriorityOrder = []model.Channel{model.ChannelEmail}
	adapter := chmocks.NewMockAdapter(ctrl)

	f.repo.EXPECT().GetNotificationByID(gomock.Any(), n.ID).Return(n, nil)
	f.adapters.EXPECT().Get(model.ChannelEmail).Return(adapter, true)
	f.repo.EXPECT().ClaimForSending(gomock.Any(), n.ID).Return(true, nil)
	adapter.EXPECT().IsConfigured().Return(false)
	f.repo.EXPECT().MarkFailed(gomock.Any(), n.ID, gomock.Any(), "EMAIL_NOT_CONFIGURED").Return(nil)
	f.repo.EXPECT().ResolveFallback(gomock.Any(), n.ID).Return(nil)

	assert.NoError(t, f.svc.Process(context.Background(), n.ID))
}

func TestService_Process_PermanentAdapterFailureSkipsRetries(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	n := queuedEmail(f)
	n.Channel = model.ChannelPush
	n.RecipientAddress = "C1"
	n.Context.PriorityOrder = []model.Channel{model.ChannelPush}
	adapter := chmocks.NewMockAdapter(ctrl)

	f.repo.EXPECT().GetNotificationByID(gomock.Any(), n.ID).Return(n, nil)
	f.adapters.EXPECT().Get(model.ChannelPush).Return(adapter, true)
	f.repo.EXPECT().ClaimForSending(gomock.Any(), n.ID).Return(true, nil)
	adapter.EXPECT().IsConfigured().Return(true)
	adapter.EXPECT().Send(gomock.Any(), gomock.Any()).
		Return(channel.Failure(channel.CodePushSubscriptionExpired, "gone"))
	f.repo.EXPECT().MarkFailed(gomock.Any(), n.ID, "gone", channel.CodePushSubscriptionExpired).Return(nil)
	f.repo.EXPECT().ResolveFallback(gomock.Any(), n.ID).Return(nil)

	assert.NoError(t, f.svc.Process(context.Background(), n.ID))
}

func TestService_Process_UnknownChannel(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	n := queuedEmail(f)
	n.Channel = model.Channel("sms")
	n.Context.PriorityOrder = []model.Channel{"sms"}

	f.repo.EXPECT().GetNotificationByID(gomock.Any(), n.ID).Return(n, nil)
	f.adapters.EXPECT().Get(model.Channel("sms")).Return(nil, false)
	f.repo.EXPECT().ClaimForSending(gomock.Any(), n.ID).Return(true, nil)
	f.repo.EXPECT().MarkFailed(gomock.Any(), n.ID, gomock.Any(), channel.CodeUnknownChannel).Return(nil)
	f.repo.EXPECT().ResolveFallback(gomock.Any(), n.ID).Return(nil)

	assert.NoError(t, f.svc.Process(context.Background(), n.ID))
}

func TestService_Process_StorageErrorIsReturned(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	f.repo.EXPECT().GetNotificationByID(gomock.Any(), id).Return(model.Notification{}, errors.New("db down"))

	assert.Error(t, f.svc.Process(context.Background(), id))
}

func TestService_Fallback_SkipsChannelsWithoutRecipient(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	failed := queuedEmail(f)
	failed.Status = model.StatusFailed
	push := chmocks.NewMockAdapter(ctrl)
	childID := uuid.New()

	f.contacts.EXPECT().GetContact(gomock.Any(), "C1").Return(model.Contact{CustomerID: "C1", Email: "ana@example.com"}, nil)
	f.adapters.EXPECT().Get(model.ChannelPush).Return(push, true)
	push.EXPECT().ValidateRecipient(gomock.Any(), "C1").Return(true)
	f.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, child model.Notification) (uuid.UUID, error) {
			assert.Equal(t, model.ChannelPush, child.Channel)
			return childID, nil
		})
	f.scheduler.EXPECT().EnqueueAt(gomock.Any(), childID, f.now.Add(10*time.Minute)).Return(nil)

	child, err := f.svc.Fallback(context.Background(), failed)
	require.NoError(t, err)
	require.NotNil(t, child)
	assert.Equal(t, model.ChannelPush, child.Channel)
}

func TestService_Fallback_SkipsInvalidRecipient(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	failed := queuedEmail(f)
	failed.Status = model.StatusFailed
	failed.Context.PriorityOrder = []model.Channel{model.ChannelEmail, model.ChannelWhatsApp}
	whatsapp := chmocks.NewMockAdapter(ctrl)

	f.contacts.EXPECT().GetContact(gomock.Any(), "C1").Return(model.Contact{CustomerID: "C1", Phone: "12"}, nil)
	f.adapters.EXPECT().Get(model.ChannelWhatsApp).Return(whatsapp, true)
	whatsapp.EXPECT().ValidateRecipient(gomock.Any(), "12").Return(false)

	child, err := f.svc.Fallback(context.Background(), failed)
	require.NoError(t, err)
	assert.Nil(t, child)
}

func TestService_Fallback_LastChannel(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	failed := queuedEmail(f)
	failed.Status = model.StatusFailed
	failed.Channel = model.ChannelPush

	child, err := f.svc.Fallback(context.Background(), failed)
	require.NoError(t, err)
	assert.Nil(t, child)
}

func TestService_Fallback_RequiresFailedRecord(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	_, err := f.svc.Fallback(context.Background(), queuedEmail(f))
	assert.Error(t, err)
}

func TestService_Sweep(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	first, second := uuid.New(), uuid.New()
	staleBefore := f.now.Add(-5 * time.Minute)

	f.repo.EXPECT().ReleaseStaleClaims(gomock.Any(), staleBefore, f.now, gomock.Any(), codeSendAbandoned, 100).Return(nil, nil)
	f.repo.EXPECT().GetPendingFallbacks(gomock.Any(), staleBefore, 100).Return(nil, nil)
	f.repo.EXPECT().GetDueIDs(gomock.Any(), f.now, 100).Return([]uuid.UUID{first, second}, nil)
	f.scheduler.EXPECT().Enqueue(gomock.Any(), first).Return(nil)
	f.scheduler.EXPECT().Enqueue(gomock.Any(), second).Return(errors.New("broker down"))

	n, err := f.svc.Sweep(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestService_Sweep_NothingDue(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	f.repo.EXPECT().ReleaseStaleClaims(gomock.Any(), gomock.Any(), f.now, gomock.Any(), gomock.Any(), 100).Return(nil, nil)
	f.repo.EXPECT().GetPendingFallbacks(gomock.Any(), gomock.Any(), 100).Return(nil, nil)
	f.repo.EXPECT().GetDueIDs(gomock.Any(), f.now, 100).Return(nil, nil)

	n, err := f.svc.Sweep(context.Background(), 100)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestService_Sweep_RecoversClaimLeftInSending(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	n := queuedEmail(f)
	adapter := chmocks.NewMockAdapter(ctrl)

	f.repo.EXPECT().GetNotificationByID(gomock.Any(), n.ID).Return(n, nil)
	f.adapters.EXPECT().Get(model.ChannelEmail).Return(adapter, true)
	f.repo.EXPECT().ClaimForSending(gomock.Any(), n.ID).Return(true, nil)
	adapter.EXPECT().IsConfigured().Return(true)
	adapter.EXPECT().Send(gomock.Any(), gomock.Any()).Return(channel.Failure("EMAIL_SEND_FAILED", "smtp 451"))
	f.repo.EXPECT().ScheduleRetry(gomock.Any(), n.ID, 1, gomock.Any(), "smtp 451", "EMAIL_SEND_FAILED").
		Return(errors.New("db blip"))

	require.Error(t, f.svc.Process(context.Background(), n.ID))

	// The record now sits in sending, so redelivery alone cannot move it.
	sending := n
	sending.Status = model.StatusSending
	f.repo.EXPECT().GetNotificationByID(gomock.Any(), n.ID).Return(sending, nil)

	require.NoError(t, f.svc.Process(context.Background(), n.ID))

	f.now = f.now.Add(6 * time.Minute)
	f.repo.EXPECT().ReleaseStaleClaims(gomock.Any(), f.now.Add(-5*time.Minute), f.now, gomock.Any(), codeSendAbandoned, 100).
		Return(map[uuid.UUID]model.Status{n.ID: model.StatusRetryScheduled}, nil)
	f.repo.EXPECT().GetPendingFallbacks(gomock.Any(), gomock.Any(), 100).Return(nil, nil)
	f.repo.EXPECT().GetDueIDs(gomock.Any(), f.now, 100).Return([]uuid.UUID{n.ID}, nil)
	f.scheduler.EXPECT().Enqueue(gomock.Any(), n.ID).Return(nil)

	published, err := f.svc.Sweep(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 1, published)
}

func TestService_Sweep_ReleaseErrorStillRepublishesDue(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()

	f.repo.EXPECT().ReleaseStaleClaims(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 100).
		Return(nil, errors.New("db down"))
	f.repo.EXPECT().GetPendingFallbacks(gomock.Any(), gomock.Any(), 100).Return(nil, errors.New("db down"))
	f.repo.EXPECT().GetDueIDs(gomock.Any(), f.now, 100).Return([]uuid.UUID{id}, nil)
	f.scheduler.EXPECT().Enqueue(gomock.Any(), id).Return(nil)

	published, err := f.svc.Sweep(context.Background(), 100)
	require.NoError(t, err)
	assert.Equal(t, 1, published)
}

func TestService_Process_FallbackErrorIsRetriedBySweep(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	n := queuedEmail(f)
	n.Status = model.StatusRetryScheduled
	n.RetryCount = 3
	adapter := chmocks.NewMockAdapter(ctrl)
	whatsapp := chmocks.NewMockAdapter(ctrl)
	childID := uuid.New()

	f.repo.EXPECT().GetNotificationByID(gomock.Any(), n.ID).Return(n, nil)
	f.adapters.EXPECT().Get(model.ChannelEmail).Return(adapter, true)
	f.repo.EXPECT().ClaimForSending(gomock.Any(), n.ID).Return(true, nil)
	adapter.EXPECT().IsConfigured().Return(true)
	adapter.EXPECT().Send(gomock.Any(), gomock.Any()).Return(channel.Failure("EMAIL_TIMEOUT", "timeout"))
	f.repo.EXPECT().MarkFailed(gomock.Any(), n.ID, "timeout", "EMAIL_TIMEOUT").Return(nil)
	f.contacts.EXPECT().GetContact(gomock.Any(), "C1").Return(model.Contact{}, errors.New("connection reset"))

	err := f.svc.Process(context.Background(), n.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "queue fallback")

	failed := n
	failed.Status = model.StatusFailed
	failed.ErrorCode = "EMAIL_TIMEOUT"
	f.now = f.now.Add(6 * time.Minute)

	f.repo.EXPECT().ReleaseStaleClaims(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 100).Return(nil, nil)
	f.repo.EXPECT().GetPendingFallbacks(gomock.Any(), f.now.Add(-5*time.Minute), 100).
		Return([]model.Notification{failed}, nil)
	f.contacts.EXPECT().GetContact(gomock.Any(), "C1").Return(model.Contact{
		CustomerID: "C1", Email: "ana@example.com", Phone: "0987654321",
	}, nil)
	f.adapters.EXPECT().Get(model.ChannelWhatsApp).Return(whatsapp, true)
	whatsapp.EXPECT().ValidateRecipient(gomock.Any(), "0987654321").Return(true)
	f.repo.EXPECT().CreateNotification(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, child model.Notification) (uuid.UUID, error) {
			assert.Equal(t, model.ChannelWhatsApp, child.Channel)
			require.NotNil(t, child.ParentID)
			assert.Equal(t, n.ID, *child.ParentID)
			return childID, nil
		})
	f.scheduler.EXPECT().EnqueueAt(gomock.Any(), childID, f.now.Add(10*time.Minute)).Return(nil)
	f.repo.EXPECT().ResolveFallback(gomock.Any(), n.ID).Return(nil)
	f.repo.EXPECT().GetDueIDs(gomock.Any(), f.now, 100).Return(nil, nil)

	_, err = f.svc.Sweep(context.Background(), 100)
	require.NoError(t, err)
}

func TestService_Sweep_ResolvesExhaustedPendingFallback(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	failed := queuedEmail(f)
	failed.Status = model.StatusFailed
	failed.Channel = model.ChannelPush

	f.repo.EXPECT().ReleaseStaleClaims(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), 100).Return(nil, nil)
	f.repo.EXPECT().GetPendingFallbacks(gomock.Any(), gomock.Any(), 100).Return([]model.Notification{failed}, nil)
	f.repo.EXPECT().ResolveFallback(gomock.Any(), failed.ID).Return(nil)
	f.repo.EXPECT().GetDueIDs(gomock.Any(), f.now, 100).Return(nil, nil)

	_, err := f.svc.Sweep(context.Background(), 100)
	require.NoError(t, err)
}

func TestService_GetNotificationStatusByID_CacheHit(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	f.cache.EXPECT().GetWithRetry(gomock.Any(), strategy, statusKey(id)).Return("sent", nil)

	status, err := f.svc.GetNotificationStatusByID(context.Background(), strategy, id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusSent, status)
}

func TestService_GetNotificationStatusByID_CacheMiss(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	f.cache.EXPECT().GetWithRetry(gomock.Any(), strategy, statusKey(id)).Return("", redis.Nil)
	f.repo.EXPECT().GetNotificationStatusByID(gomock.Any(), id).Return(model.StatusRetryScheduled, nil)

	status, err := f.svc.GetNotificationStatusByID(context.Background(), strategy, id)
	assert.NoError(t, err)
	assert.Equal(t, model.StatusRetryScheduled, status)
}

func TestService_MarkDelivered(t *testing.T) {
	f, ctrl := newFixture(t)
	defer ctrl.Finish()

	id := uuid.New()
	f.repo.EXPECT().MarkDelivered(gomock.Any(), id, f.now).Return(nil)

	assert.NoError(t, f.svc.MarkDelivered(context.Background(), id))

	f.repo.EXPECT().MarkDelivered(gomock.Any(), id, f.now).Return(notifrepo.ErrStatusConflict)

	assert.ErrorIs(t, f.svc.MarkDelivered(context.Background(), id), notifrepo.ErrStatusConflict)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "áéí", truncate("áéíóú", 3))
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abc", truncate("abc", 0))
}
