package model

import "strings"

// Channel is a delivery channel. The set is closed: adding one also requires
// recipient resolution and an adapter.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelPush     Channel = "push"
)

// Channels lists every supported channel.
var Channels = []Channel{ChannelEmail, ChannelWhatsApp, ChannelPush}

// IsValid reports whether c is one of the supported channels.
func (c Channel) IsValid() bool {
	switch c {
	case ChannelEmail, ChannelWhatsApp, ChannelPush:
		return true
	default:
		return false
	}
}

func (c Channel) String() string {
	return string(c)
}

// ErrorCode builds a channel-scoped error code, e.g. EMAIL_NOT_CONFIGURED.
func (c Channel) ErrorCode(suffix string) string {
	return strings.ToUpper(string(c)) + "_" + suffix
}

// Target is the audience of a notification configuration.
type Target string

const (
	TargetClients Target = "clients"
	TargetStaff   Target = "staff"
)
