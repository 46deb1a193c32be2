package scheduler

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

	mocks "github.com/Djtv1304/ambacar-backend-notifications/internal/mocks/scheduler"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/rabbitmq/queue"
)

const key = "notifications:scheduled"

var strategy = retry.Strategy{Attempts: 1, Delay: time.Millisecond}

func newTestScheduler(ctrl *gomock.Controller, now time.Time) (*Scheduler, *mocks.MocksendPublisher, *mocks.MockdelayStore) {
	pub := mocks.NewMocksendPublisher(ctrl)
	store := mocks.NewMockdelayStore(ctrl)

	s := New(pub, store, strategy, key, time.Millisecond, 10)
	s.now = func() time.Time { return now }

	return s, pub, store
}

func TestEnqueue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now()
	s, pub, _ := newTestScheduler(ctrl, now)
	id := uuid.New()

	pub.EXPECT().Publish(queue.SendMessage{ID: id, EnqueuedAt: now}, strategy).Return(nil)

	assert.NoError(t, s.Enqueue(context.Background(), id))
}

func TestEnqueueAt_PastTimePublishesImmediately(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now()
	s, pub, _ := newTestScheduler(ctrl, now)
	id := uuid.New()

	pub.EXPECT().Publish(queue.SendMessage{ID: id, EnqueuedAt: now}, strategy).Return(nil)

	assert.NoError(t, s.EnqueueAt(context.Background(), id, now.Add(-time.Second)))
}

func TestEnqueueAt_FutureTimeStoresInSortedSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now()
	s, _, store := newTestScheduler(ctrl, now)
	id := uuid.New()
	at := now.Add(10 * time.Minute)

	store.EXPECT().
		ZAdd(gomock.Any(), key, &redis.Z{Score: float64(at.UnixMilli()), Member: id.String()}).
		Return(redis.NewIntResult(1, nil))

	assert.NoError(t, s.EnqueueAt(context.Background(), id, at))
}

func TestEnqueueAt_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now()
	s, _, store := newTestScheduler(ctrl, now)

	store.EXPECT().ZAdd(gomock.Any(), key, gomock.Any()).Return(redis.NewIntResult(0, errors.New("redis down")))

	assert.Error(t, s.EnqueueAt(context.Background(), uuid.New(), now.Add(time.Hour)))
}

func TestPublishDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now()
	s, pub, store := newTestScheduler(ctrl, now)

	claimed, taken := uuid.New(), uuid.New()

	store.EXPECT().ZRangeByScore(gomock.Any(), key, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, opt *redis.ZRangeBy) *redis.StringSliceCmd {
			assert.Equal(t, "-inf", opt.Min)
			assert.Equal(t, int64(10), opt.Count)
			return redis.NewStringSliceResult([]string{claimed.String(), taken.String(), "garbage"}, nil)
		})
	store.EXPECT().ZRem(gomock.Any(), key, claimed.String()).Return(redis.NewIntResult(1, nil))
	store.EXPECT().ZRem(gomock.Any(), key, taken.String()).Return(redis.NewIntResult(0, nil))
	store.EXPECT().ZRem(gomock.Any(), key, "garbage").Return(redis.NewIntResult(1, nil))
	pub.EXPECT().Publish(queue.SendMessage{ID: claimed, EnqueuedAt: now}, strategy).Return(nil)

	n, err := s.PublishDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPublishDue_PublishFailureReschedules(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	now := time.Now()
	s, pub, store := newTestScheduler(ctrl, now)
	id := uuid.New()

	store.EXPECT().ZRangeByScore(gomock.Any(), key, gomock.Any()).
		Return(redis.NewStringSliceResult([]string{id.String()}, nil))
	store.EXPECT().ZRem(gomock.Any(), key, id.String()).Return(redis.NewIntResult(1, nil))
	pub.EXPECT().Publish(gomock.Any(), strategy).Return(errors.New("broker unavailable"))
	store.EXPECT().
		ZAdd(gomock.Any(), key, &redis.Z{Score: float64(now.UnixMilli()), Member: id.String()}).
		Return(redis.NewIntResult(1, nil))

	n, err := s.PublishDue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _, store := newTestScheduler(ctrl, time.Now())
	store.EXPECT().ZRangeByScore(gomock.Any(), key, gomock.Any()).
		Return(redis.NewStringSliceResult(nil, nil)).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	require.Eventually(t, func() bool {
		select {
		case <-done:
			return true
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)
}
