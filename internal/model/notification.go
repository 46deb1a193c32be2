package model

import (
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a notification record.
type Status string

const (
	StatusQueued         Status = "queued"
	StatusSending        Status = "sending"
	StatusRetryScheduled Status = "retry_scheduled"
	StatusSent           Status = "sent"
	StatusDelivered      Status = "delivered"
	StatusFailed         Status = "failed"
)

// IsTerminal reports whether no further send attempts can happen for the status.
func (s Status) IsTerminal() bool {
	return s == StatusSent || s == StatusDelivered || s == StatusFailed
}

// IsDispatchable reports whether a record in this status may enter sending.
func (s Status) IsDispatchable() bool {
	return s == StatusQueued || s == StatusRetryScheduled
}

func (s Status) String() string {
	return string(s)
}

// Notification is one unit of a delivery attempt chain.
type Notification struct {
	ID               uuid.UUID           `json:"id"`                      // unique identifier for the notification
	EventType        EventType           `json:"event_type"`              // event that triggered the notification
	Channel          Channel             `json:"channel"`                 // delivery channel
	RecipientID      string              `json:"recipient_id"`            // customer identifier
	RecipientAddress string              `json:"recipient_address"`       // email, phone or customer id for push
	TemplateID       *uuid.UUID          `json:"template_id,omitempty"`   // template used for rendering
	TemplateName     string              `json:"template_name,omitempty"` // template display name
	Subject          string              `json:"subject,omitempty"`       // rendered subject
	BodyPreview      string              `json:"body_preview"`            // bounded preview of the rendered body
	Status           Status              `json:"status"`                  // current lifecycle state
	MessageID        string              `json:"message_id,omitempty"`    // provider message id of the successful send
	ErrorReason      string              `json:"error_reason,omitempty"`  // last error message
	ErrorCode        string              `json:"error_code,omitempty"`    // last error code
	RetryCount       int                 `json:"retry_count"`             // failed attempts that scheduled a retry
	MaxRetries       int                 `json:"max_retries"`             // retry budget
	NextRetryAt      *time.Time          `json:"next_retry_at,omitempty"` // earliest time of the next attempt
	Context          NotificationContext `json:"context"`                 // data needed to resume a fallback
	CorrelationID    uuid.UUID           `json:"correlation_id"`          // groups notifications of one event
	ParentID         *uuid.UUID          `json:"parent_id,omitempty"`     // failed record this one falls back from
	CreatedAt        time.Time           `json:"created_at"`              // timestamp when the record was created
	UpdatedAt        time.Time           `json:"updated_at"`              // timestamp of the last transition
	SentAt           *time.Time          `json:"sent_at,omitempty"`       // when the adapter accepted the message
	DeliveredAt      *time.Time          `json:"delivered_at,omitempty"`  // when delivery was confirmed
}

// NotificationContext is the payload persisted with a record so a fallback
// can be built without re-running orchestration.
type NotificationContext struct {
	Variables     map[string]string `json:"context"`
	PriorityOrder []Channel         `json:"priority_order"`
	FullBody      string            `json:"full_body"`
}

// Body returns the full rendered body, or the preview for records that lack it.
func (n Notification) Body() string {
	if n.Context.FullBody != "" {
		return n.Context.FullBody
	}

	return n.BodyPreview
}

// NextChannels returns the channels ranked after the record's own channel in
// its priority order. It is empty when the channel is last or not present.
func (n Notification) NextChannels() []Channel {
	for i, ch := range n.Context.PriorityOrder {
		if ch == n.Channel {
			return n.Context.PriorityOrder[i+1:]
		}
	}

	return nil
}
