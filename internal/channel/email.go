package channel

import (
	"context"
	"errors"
	"net"
	"regexp"

	"github.com/wb-go/wbf/zlog"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/model"
)

// DefaultEmailSubject is used when the template has no subject.
const DefaultEmailSubject = "Notificación Ambacar"

var (
	emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	htmlTag      = regexp.MustCompile(`<[^>]+>`)
)

//go:generate mockgen -source=email.go -destination=../mocks/channel/email/mock.go -package=mocks
type mailer interface {
	Configured() bool
	Send(to, subject, body string, html bool) error
}

// Email sends notifications over SMTP.
type Email struct {
	client mailer
	late   func(p Payload, err error)
}

func NewEmail(client mailer) *Email {
	return &Email{client: client, late: logLateEmail}
}

func (e *Email) Channel() model.Channel { return model.ChannelEmail }

func (e *Email) IsConfigured() bool { return e.client.Configured() }

func (e *Email) ValidateRecipient(_ context.Context, recipient string) bool {
	return emailPattern.MatchString(recipient)
}

// Send hands the message to the SMTP client and waits for it until ctx is
// done. The SMTP client cannot be interrupted, so a send that outlives ctx
// keeps running and may still be accepted after EMAIL_TIMEOUT was returned.
// The dispatcher retries timeouts, which makes email delivery at-least-once.
// The late outcome is reported through e.late so duplicates can be traced.
func (e *Email) Send(ctx context.Context, p Payload) Result {
	if !e.IsConfigured() {
		return Failure(model.ChannelEmail.ErrorCode(SuffixNotConfigured), "email is not configured")
	}

	subject := p.Subject
	if subject == "" {
		subject = DefaultEmailSubject
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- e.client.Send(p.Recipient, subject, p.Body, htmlTag.MatchString(p.Body))
	}()

	var err error
	select {
	case err = <-errCh:
	case <-ctx.Done():
		err = ctx.Err()
		go func() { e.late(p, <-errCh) }()
	}

	if err != nil {
		zlog.Logger.Error().Err(err).Str("recipient", p.Recipient).Msg("failed to send email")

		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return Failure(model.ChannelEmail.ErrorCode(SuffixTimeout), err.Error())
		}
		return Failure(model.ChannelEmail.ErrorCode(SuffixSendFailed), err.Error())
	}

	zlog.Logger.Info().Str("recipient", p.Recipient).Msg("email sent")

	return Result{Success: true}
}

func logLateEmail(p Payload, err error) {
	log := zlog.Logger.With().
		Str("recipient", p.Recipient).
		Str("notification_id", p.Metadata["notification_id"]).
		Logger()

	if err != nil {
		log.Info().Err(err).Msg("email send failed after timeout")
		return
	}

	log.Warn().Msg("email accepted after timeout, a retry may deliver it again")
}
