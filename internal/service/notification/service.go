package notification

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"
	"golang.org/x/time/rate"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/channel"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/config"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/notification/mock.go -package=mocks

type notificationRepository interface {
	CreateNotification(context.Context, model.Notification) (uuid.UUID, error)
	GetNotificationByID(context.Context, uuid.UUID) (model.Notification, error)
	GetNotificationStatusByID(context.Context, uuid.UUID) (model.Status, error)
	GetNotificationsByCorrelationID(context.Context, uuid.UUID) ([]model.Notification, error)
	ClaimForSending(context.Context, uuid.UUID) (bool, error)
	MarkSent(ctx context.Context, id uuid.UUID, messageID string, sentAt time.Time) error
	MarkDelivered(ctx context.Context, id uuid.UUID, deliveredAt time.Time) error
	ScheduleRetry(ctx context.Context, id uuid.UUID, retryCount int, nextRetryAt time.Time, reason, code string) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason, code string) error
	GetDueIDs(ctx context.Context, now time.Time, limit int) ([]uuid.UUID, error)
	ResolveFallback(ctx context.Context, id uuid.UUID) error
	ReleaseStaleClaims(
		ctx context.Context, staleBefore, dueAt time.Time, reason, code string, limit int,
	) (map[uuid.UUID]model.Status, error)
	GetPendingFallbacks(ctx context.Context, staleBefore time.Time, limit int) ([]model.Notification, error)
}

type contactReader interface {
	GetContact(ctx context.Context, customerID string) (model.Contact, error)
}

type sendScheduler interface {
	Enqueue(ctx context.Context, id uuid.UUID) error
	EnqueueAt(ctx context.Context, id uuid.UUID, at time.Time) error
}

type adapterRegistry interface {
	Get(ch model.Channel) (channel.Adapter, bool)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service owns the lifecycle of notification records: it creates them,
// drives send attempts through the channel adapters, schedules retries and
// chains fallbacks to the next channel in the priority order.
type Service struct {
	repo      notificationRepository
	contacts  contactReader
	scheduler sendScheduler
	adapters  adapterRegistry
	cache     cache
	strategy  retry.Strategy
	cfg       config.Dispatch
	limiters  map[model.Channel]*rate.Limiter
	now       func() time.Time
}

func NewService(
	repo notificationRepository,
	contacts contactReader,
	scheduler sendScheduler,
	adapters adapterRegistry,
	cache cache,
	strategy retry.Strategy,
	cfg config.Dispatch,
) *Service {
	s := &Service{
		repo:      repo,
		contacts:  contacts,
		scheduler: scheduler,
		adapters:  adapters,
		cache:     cache,
		strategy:  strategy,
		cfg:       cfg,
		limiters:  make(map[model.Channel]*rate.Limiter),
		now:       time.Now,
	}

	if cfg.RatePerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		for _, ch := range model.Channels {
			s.limiters[ch] = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
		}
	}

	return s
}

// QueueRequest describes one notification to persist and schedule.
type QueueRequest struct {
	EventType     model.EventType
	Channel       model.Channel
	RecipientID   string
	Recipient     string
	TemplateID    *uuid.UUID
	TemplateName  string
	Subject       string
	Body          string
	Variables     map[string]string
	PriorityOrder []model.Channel
	CorrelationID uuid.UUID
	ParentID      *uuid.UUID
	SendAt        *time.Time // nil sends right away
}

// Queue persists a new queued record and schedules its first send attempt.
// A record whose send instruction could not be published is still returned;
// the sweep picks it up once it is due.
func (s *Service) Queue(ctx context.Context, req QueueRequest) (model.Notification, error) {
	now := s.now()
	dueAt := now
	if req.SendAt != nil && req.SendAt.After(now) {
		dueAt = *req.SendAt
	}

	n := model.Notification{
		EventType:        req.EventType,
		Channel:          req.Channel,
		RecipientID:      req.RecipientID,
		RecipientAddress: req.Recipient,
		TemplateID:       req.TemplateID,
		TemplateName:     req.TemplateName,
		Subject:          req.Subject,
		BodyPreview:      truncate(req.Body, s.cfg.PreviewLength),
		Status:           model.StatusQueued,
		MaxRetries:       s.cfg.MaxRetries,
		NextRetryAt:      &dueAt,
		Context: model.NotificationContext{
			Variables:     req.Variables,
			PriorityOrder: req.PriorityOrder,
			FullBody:      req.Body,
		},
		CorrelationID: req.CorrelationID,
		ParentID:      req.ParentID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	id, err := s.repo.CreateNotification(ctx, n)
	if err != nil {
		return model.Notification{}, fmt.Errorf("create notification: %w", err)
	}
	n.ID = id

	s.cacheStatus(ctx, id, model.StatusQueued)

	if err := s.scheduler.EnqueueAt(ctx, id, dueAt); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to schedule notification")
	}

	return n, nil
}

// GetNotificationStatusByID returns the status of a record, from the cache
// when possible.
func (s *Service) GetNotificationStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Status, error) {
	cached, err := s.cache.GetWithRetry(ctx, strategy, statusKey(id))
	if err == nil {
		return model.Status(cached), nil
	}
	if !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification status from cache")
	}

	status, err := s.repo.GetNotificationStatusByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get notification status: %w", err)
	}

	s.cacheStatus(ctx, id, status)

	return status, nil
}

// GetNotificationsByCorrelationID returns every record spawned by one event,
// fallbacks included.
func (s *Service) GetNotificationsByCorrelationID(ctx context.Context, correlationID uuid.UUID) ([]model.Notification, error) {
	notifications, err := s.repo.GetNotificationsByCorrelationID(ctx, correlationID)
	if err != nil {
		return nil, fmt.Errorf("get notifications: %w", err)
	}

	return notifications, nil
}

// MarkDelivered records a delivery confirmation for a sent record.
func (s *Service) MarkDelivered(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.MarkDelivered(ctx, id, s.now()); err != nil {
		return fmt.Errorf("mark delivered: %w", err)
	}

	s.cacheStatus(ctx, id, model.StatusDelivered)

	return nil
}

func (s *Service) cacheStatus(ctx context.Context, id uuid.UUID, status model.Status) {
	err := s.cache.SetWithRetry(ctx, s.strategy, statusKey(id), string(status))
	if err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache notification status")
	}
}

func statusKey(id uuid.UUID) string {
	return "notification:status:" + id.String()
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}

	return string([]rune(s)[:n])
}
