// Package channel defines the delivery capability shared by the email,
// WhatsApp and push transports, and the adapters that implement it.
//
// Adapters perform exactly one delivery attempt per Send call and report
// the outcome as a Result value. Retries, fallback and persistence belong
// to the dispatcher.
package channel

import (
	"context"
	"strings"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/model"
)

// Error codes inspected by the dispatcher.
const (
	CodeUnknownChannel = "UNKNOWN_CHANNEL"

	SuffixNotConfigured = "NOT_CONFIGURED"
	SuffixTimeout       = "TIMEOUT"
	SuffixSendFailed    = "SEND_FAILED"

	CodePushSubscriptionExpired  = "PUSH_SUBSCRIPTION_EXPIRED"
	CodePushSubscriptionNotFound = "PUSH_SUBSCRIPTION_NOT_FOUND"
	CodeNoPushSubscription       = "NO_PUSH_SUBSCRIPTION"
)

// Payload is the content of one delivery attempt.
type Payload struct {
	Recipient string
	Subject   string
	Body      string
	Metadata  map[string]string
}

// Result is the outcome of one delivery attempt.
type Result struct {
	Success      bool
	MessageID    string
	ErrorMessage string
	ErrorCode    string
}

// Failure builds an unsuccessful Result.
func Failure(code, message string) Result {
	return Result{ErrorCode: code, ErrorMessage: message}
}

// Adapter delivers notifications over one channel.
//
//go:generate mockgen -source=adapter.go -destination=../mocks/channel/mock.go -package=mocks
type Adapter interface {
	Channel() model.Channel
	Send(ctx context.Context, p Payload) Result
	ValidateRecipient(ctx context.Context, recipient string) bool
	IsConfigured() bool
}

// IsPermanent reports whether a failure code means another attempt on the
// same channel cannot succeed.
func IsPermanent(code string) bool {
	switch code {
	case CodeUnknownChannel, CodePushSubscriptionExpired, CodePushSubscriptionNotFound, CodeNoPushSubscription:
		return true
	}

	return strings.HasSuffix(code, "_"+SuffixNotConfigured)
}

// Registry resolves the adapter of a channel.
type Registry struct {
	adapters map[model.Channel]Adapter
}

// NewRegistry indexes adapters by their channel. Adapters for unsupported
// channels are ignored.
func NewRegistry(adapters ...Adapter) *Registry {
	r := &Registry{adapters: make(map[model.Channel]Adapter, len(adapters))}
	for _, a := range adapters {
		if a == nil || !a.Channel().IsValid() {
			continue
		}
		r.adapters[a.Channel()] = a
	}

	return r
}

// Get returns the adapter registered for ch.
func (r *Registry) Get(ch model.Channel) (Adapter, bool) {
	a, ok := r.adapters[ch]
	return a, ok
}
