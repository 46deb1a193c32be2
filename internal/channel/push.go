package channel

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wb-go/wbf/zlog"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/model"
	"github.com/Djtv1304/ambacar-backend-notifications/pkg/webpush"
)

// DefaultPushTitle is used when the notification has no subject.
const DefaultPushTitle = "Ambacar"

// ErrNoActiveSubscription is returned by subscription stores when a customer
// has no active push subscription.
var ErrNoActiveSubscription = errors.New("no active push subscription")

type pushSender interface {
	Configured() bool
	Send(ctx context.Context, sub webpush.Subscription, message []byte) (int, error)
}

//go:generate mockgen -source=push.go -destination=../mocks/channel/push/mock.go -package=mocks
type subscriptionStore interface {
	ActivePushSubscription(ctx context.Context, customerID string) (model.PushSubscription, error)
	DeactivatePushSubscription(ctx context.Context, endpoint string) error
	MarkPushSubscriptionUsed(ctx context.Context, endpoint string) error
}

// Push sends Web Push notifications to a customer's active subscription.
// Subscriptions reported gone by the push service are deactivated so they
// are not used again.
type Push struct {
	client pushSender
	subs   subscriptionStore
}

func NewPush(client pushSender, subs subscriptionStore) *Push {
	return &Push{client: client, subs: subs}
}

func (p *Push) Channel() model.Channel { return model.ChannelPush }

func (p *Push) IsConfigured() bool { return p.client.Configured() }

// ValidateRecipient reports whether the customer has an active subscription.
func (p *Push) ValidateRecipient(ctx context.Context, customerID string) bool {
	_, err := p.subs.ActivePushSubscription(ctx, customerID)
	return err == nil
}

type pushMessage struct {
	Title   string            `json:"title"`
	Body    string            `json:"body"`
	Icon    string            `json:"icon"`
	Badge   string            `json:"badge"`
	Vibrate []int             `json:"vibrate"`
	Data    map[string]string `json:"data"`
}

func (p *Push) Send(ctx context.Context, pl Payload) Result {
	if !p.IsConfigured() {
		return Failure(model.ChannelPush.ErrorCode(SuffixNotConfigured), "VAPID keys are not configured")
	}

	sub, err := p.subs.ActivePushSubscription(ctx, pl.Recipient)
	if err != nil {
		if errors.Is(err, ErrNoActiveSubscription) {
			return Failure(CodeNoPushSubscription, "no active push subscription found")
		}
		return Failure(model.ChannelPush.ErrorCode(SuffixSendFailed), err.Error())
	}

	title := pl.Subject
	if title == "" {
		title = DefaultPushTitle
	}

	data := pl.Metadata
	if data == nil {
		data = map[string]string{}
	}

	msg, err := json.Marshal(pushMessage{
		Title:   title,
		Body:    pl.Body,
		Icon:    "/icon-192x192.png",
		Badge:   "/badge-72x72.png",
		Vibrate: []int{100, 50, 100},
		Data:    data,
	})
	if err != nil {
		return Failure(model.ChannelPush.ErrorCode(SuffixSendFailed), err.Error())
	}

	status, err := p.client.Send(ctx, webpush.Subscription{
		Endpoint: sub.Endpoint,
		P256dh:   sub.P256dhKey,
		Auth:     sub.AuthKey,
	}, msg)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("recipient", pl.Recipient).Msg("failed to send push notification")
		if errors.Is(err, context.DeadlineExceeded) {
			return Failure(model.ChannelPush.ErrorCode(SuffixTimeout), err.Error())
		}
		return Failure("WEBPUSH_ERROR", err.Error())
	}

	switch {
	case status == http.StatusGone:
		p.deactivate(ctx, sub.Endpoint)
		return Failure(CodePushSubscriptionExpired, "push subscription expired or unsubscribed")
	case status == http.StatusNotFound:
		p.deactivate(ctx, sub.Endpoint)
		return Failure(CodePushSubscriptionNotFound, "push subscription not found")
	case status < 200 || status >= 300:
		return Failure("WEBPUSH_ERROR", http.StatusText(status))
	}

	if err := p.subs.MarkPushSubscriptionUsed(ctx, sub.Endpoint); err != nil {
		zlog.Logger.Warn().Err(err).Str("recipient", pl.Recipient).Msg("failed to mark push subscription used")
	}

	zlog.Logger.Info().Str("recipient", pl.Recipient).Msg("push notification sent")

	return Result{Success: true}
}

func (p *Push) deactivate(ctx context.Context, endpoint string) {
	if err := p.subs.DeactivatePushSubscription(ctx, endpoint); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to deactivate push subscription")
		return
	}

	zlog.Logger.Info().Msg("push subscription deactivated")
}
