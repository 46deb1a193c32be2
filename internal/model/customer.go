package model

import (
	"strings"
	"time"
)

// Contact holds a customer's display name and per-channel addresses.
type Contact struct {
	CustomerID string `json:"customer_id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	WhatsApp   string `json:"whatsapp,omitempty"`
}

// FullName returns the display name of the customer.
func (c Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// RecipientFor returns the address used to reach the customer on ch, or an
// empty string when the customer cannot be reached there. Push is keyed by
// customer id; the push adapter resolves the subscription.
func (c Contact) RecipientFor(ch Channel) string {
	switch ch {
	case ChannelEmail:
		return strings.TrimSpace(c.Email)
	case ChannelWhatsApp:
		if wa := strings.TrimSpace(c.WhatsApp); wa != "" {
			return wa
		}
		return strings.TrimSpace(c.Phone)
	case ChannelPush:
		return c.CustomerID
	default:
		return ""
	}
}

// ChannelPreference is a customer's setting for one channel. Priority 1 is highest.
type ChannelPreference struct {
	Channel  Channel `json:"channel"`
	Enabled  bool    `json:"enabled"`
	Priority int     `json:"priority"`
}

// PushSubscription is a browser Web Push subscription of a customer.
type PushSubscription struct {
	CustomerID   string     `json:"customer_id"`
	Endpoint     string     `json:"endpoint"`
	P256dhKey    string     `json:"p256dh_key"`
	AuthKey      string     `json:"auth_key"`
	IsActive     bool       `json:"is_active"`
	FailureCount int        `json:"failure_count"`
	LastUsedAt   *time.Time `json:"last_used_at,omitempty"`
}
