package model

// EventType is a business event that may trigger notifications.
type EventType string

const (
	EventAppointmentScheduled EventType = "appointment_scheduled"
	EventVehicleReceived      EventType = "vehicle_received"
	EventRepairStarted        EventType = "repair_started"
	EventQualityCheck         EventType = "quality_check"
	EventVehicleReady         EventType = "vehicle_ready"
	EventMaintenanceReminder  EventType = "maintenance_reminder"
	EventMaintenanceOverdue   EventType = "maintenance_overdue"
	EventCustom               EventType = "custom"
)

// IsValid reports whether e is a known event type.
func (e EventType) IsValid() bool {
	switch e {
	case EventAppointmentScheduled, EventVehicleReceived, EventRepairStarted, EventQualityCheck,
		EventVehicleReady, EventMaintenanceReminder, EventMaintenanceOverdue, EventCustom:
		return true
	default:
		return false
	}
}

// Context keys carrying the literal content of a custom event.
const (
	CustomSubjectKey = "subject"
	CustomBodyKey    = "body"
)

// EventPayload is the inbound event handed to the orchestrator.
type EventPayload struct {
	EventType     EventType         `json:"event_type"`
	ServiceTypeID string            `json:"service_type_id"`
	PhaseID       string            `json:"phase_id"`
	CustomerID    string            `json:"customer_id"`
	Target        Target            `json:"target"`
	Context       map[string]string `json:"context"`
	WorkshopID    *string           `json:"workshop_id,omitempty"`
	SubtypeID     *string           `json:"subtype_id,omitempty"`
	CorrelationID *string           `json:"correlation_id,omitempty"`
}

// OrchestrationResult reports what processing one event produced.
type OrchestrationResult struct {
	Success             bool     `json:"success"`
	CorrelationID       string   `json:"correlation_id"`
	NotificationsQueued int      `json:"notifications_queued"`
	Errors              []string `json:"errors"`
}
