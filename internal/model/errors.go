package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfigNotFound       = errors.New("orchestration config not found")
	ErrRecipientNotFound    = errors.New("recipient not found")
	ErrChannelNotConfigured = errors.New("channel not configured")
	ErrMaxRetriesExceeded   = errors.New("max retries exceeded")
)

// MissingTemplateVariablesError lists template variables absent from the event context.
type MissingTemplateVariablesError struct {
	Names []string
}

func (e *MissingTemplateVariablesError) Error() string {
	return fmt.Sprintf("missing template variables: %s", strings.Join(e.Names, ", "))
}

// InvalidEventPayloadError rejects an event before orchestration begins.
type InvalidEventPayloadError struct {
	Reason string
}

func (e *InvalidEventPayloadError) Error() string {
	return "invalid event payload: " + e.Reason
}

// ChannelSendError is a retryable failure reported by a channel adapter.
type ChannelSendError struct {
	Channel Channel
	Message string
	Code    string
}

func (e *ChannelSendError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s (%s)", e.Channel, e.Message, e.Code)
	}

	return fmt.Sprintf("[%s] %s", e.Channel, e.Message)
}
