package model

import "github.com/google/uuid"

// OrchestrationConfig binds a service type and audience, optionally scoped
// to one workshop, to its per-phase channel settings.
type OrchestrationConfig struct {
	ID          uuid.UUID `json:"id"`
	ServiceType string    `json:"service_type"`          // service type slug
	Target      Target    `json:"target"`                // clients or staff
	WorkshopID  *string   `json:"workshop_id,omitempty"` // nil for the global config
	IsActive    bool      `json:"is_active"`
}

// PhaseChannelConfig enables one channel for one phase of a config.
type PhaseChannelConfig struct {
	ID       uuid.UUID `json:"id"`
	ConfigID uuid.UUID `json:"config_id"`
	Phase    string    `json:"phase"` // phase slug
	Channel  Channel   `json:"channel"`
	Enabled  bool      `json:"enabled"`
	Template *Template `json:"template,omitempty"`
}

// Sendable reports whether the phase config is enabled and has a template.
func (p PhaseChannelConfig) Sendable() bool {
	return p.Enabled && p.Template != nil
}

// Template is a message template with {{variable}} placeholders.
type Template struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Subject string    `json:"subject,omitempty"`
	Body    string    `json:"body"`
	Channel Channel   `json:"channel"`
	Target  Target    `json:"target"`
}
