package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/api/dto"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/api/respond"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/model"
)

// orchestrator is the event processing capability the handler exposes.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/event/mock.go -package=mocks
type orchestrator interface {
	ProcessEvent(ctx context.Context, p model.EventPayload) (model.OrchestrationResult, error)
}

// Handler accepts business events from the rest of the platform.
type Handler struct {
	orchestrator orchestrator
	validator    *validator.Validate
}

func NewHandler(o orchestrator, v *validator.Validate) *Handler {
	return &Handler{orchestrator: o, validator: v}
}

// Dispatch handles POST requests carrying one business event.
//
// The event is answered with 202 and the orchestration result, including
// when it was rejected for business reasons (no config, unknown customer,
// missing template variables); the result then has success=false and the
// reason in errors. Malformed events get 400 and storage failures 500.
func (h *Handler) Dispatch(c *ginext.Context) {
	var req dto.DispatchEventRequest

	dec := json.NewDecoder(c.Request.Body)
	dec.UseNumber()

	if err := dec.Decode(&req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to decode event body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to validate event body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	result, err := h.orchestrator.ProcessEvent(c.Request.Context(), req.ToPayload())
	if err != nil {
		var invalid *model.InvalidEventPayloadError
		var missing *model.MissingTemplateVariablesError

		switch {
		case errors.As(err, &invalid):
			zlog.Logger.Warn().Err(err).Msg("event rejected")
			respond.Fail(c.Writer, http.StatusBadRequest, err)
		case errors.Is(err, model.ErrConfigNotFound),
			errors.Is(err, model.ErrRecipientNotFound),
			errors.As(err, &missing):
			zlog.Logger.Warn().Err(err).Str("correlation_id", result.CorrelationID).Msg("event not dispatched")
			respond.JSON(c.Writer, http.StatusAccepted, result)
		default:
			zlog.Logger.Error().Err(err).Str("correlation_id", result.CorrelationID).Msg("failed to process event")
			respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		}
		return
	}

	respond.JSON(c.Writer, http.StatusAccepted, result)
}
