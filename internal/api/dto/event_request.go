package dto

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/model"
)

// DispatchEventRequest is the body of an event dispatch call. Context values
// may be any JSON scalar; they are passed to templates as strings.
type DispatchEventRequest struct {
	EventType     string                 `json:"event_type" validate:"required"`
	ServiceTypeID string                 `json:"service_type_id"`
	PhaseID       string                 `json:"phase_id"`
	CustomerID    string                 `json:"customer_id" validate:"required"`
	Target        string                 `json:"target" validate:"omitempty,oneof=clients staff"`
	Context       map[string]interface{} `json:"context"`
	WorkshopID    *string                `json:"workshop_id"`
	SubtypeID     *string                `json:"subtype_id"`
	CorrelationID *string                `json:"correlation_id" validate:"omitempty,uuid"`
}

// ToPayload converts the request into the orchestrator's input.
func (r DispatchEventRequest) ToPayload() model.EventPayload {
	ctx := make(map[string]string, len(r.Context))
	for k, v := range r.Context {
		if s, ok := stringify(v); ok {
			ctx[k] = s
		}
	}

	return model.EventPayload{
		EventType:     model.EventType(strings.TrimSpace(r.EventType)),
		ServiceTypeID: strings.TrimSpace(r.ServiceTypeID),
		PhaseID:       strings.TrimSpace(r.PhaseID),
		CustomerID:    strings.TrimSpace(r.CustomerID),
		Target:        model.Target(r.Target),
		Context:       ctx,
		WorkshopID:    r.WorkshopID,
		SubtypeID:     r.SubtypeID,
		CorrelationID: r.CorrelationID,
	}
}

// stringify renders a decoded JSON scalar. Nulls, objects and arrays are
// dropped.
func stringify(v interface{}) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	case bool:
		return fmt.Sprint(t), true
	case float64:
		return fmt.Sprint(t), true
	default:
		return "", false
	}
}
