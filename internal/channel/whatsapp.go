package channel

import (
	"context"
	"errors"
	"net"
	"regexp"
	"strings"

	"github.com/wb-go/wbf/zlog"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/model"
	"github.com/Djtv1304/ambacar-backend-notifications/pkg/whatsapp"
)

var (
	phoneSeparators = regexp.MustCompile(`[\s\-()]`)
	phonePattern    = regexp.MustCompile(`^\d{10,15}$`)
)

//go:generate mockgen -source=whatsapp.go -destination=../mocks/channel/whatsapp/mock.go -package=mocks
type whatsAppSender interface {
	Configured() bool
	SendText(ctx context.Context, number, text string) (string, error)
}

// WhatsApp sends notifications through the Evolution API gateway.
type WhatsApp struct {
	client whatsAppSender
}

func NewWhatsApp(client whatsAppSender) *WhatsApp {
	return &WhatsApp{client: client}
}

func (w *WhatsApp) Channel() model.Channel { return model.ChannelWhatsApp }

func (w *WhatsApp) IsConfigured() bool { return w.client.Configured() }

// ValidateRecipient accepts international numbers of 10 to 15 digits.
func (w *WhatsApp) ValidateRecipient(_ context.Context, recipient string) bool {
	return phonePattern.MatchString(NormalizePhone(recipient))
}

func (w *WhatsApp) Send(ctx context.Context, p Payload) Result {
	if !w.IsConfigured() {
		return Failure(model.ChannelWhatsApp.ErrorCode(SuffixNotConfigured), "whatsapp gateway is not configured")
	}

	id, err := w.client.SendText(ctx, NormalizePhone(p.Recipient), p.Body)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("recipient", p.Recipient).Msg("failed to send whatsapp message")

		var apiErr *whatsapp.APIError
		var netErr net.Error
		switch {
		case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr) && netErr.Timeout():
			return Failure(model.ChannelWhatsApp.ErrorCode(SuffixTimeout), "whatsapp API timeout")
		case errors.As(err, &apiErr):
			return Failure(model.ChannelWhatsApp.ErrorCode("HTTP_ERROR"), err.Error())
		default:
			return Failure(model.ChannelWhatsApp.ErrorCode("API_ERROR"), err.Error())
		}
	}

	zlog.Logger.Info().Str("recipient", p.Recipient).Str("message_id", id).Msg("whatsapp message sent")

	return Result{Success: true, MessageID: id}
}

// NormalizePhone strips spaces, dashes, parentheses and a leading plus sign.
func NormalizePhone(phone string) string {
	return strings.TrimPrefix(phoneSeparators.ReplaceAllString(phone, ""), "+")
}
