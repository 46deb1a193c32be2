package notification

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/api/respond"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/config"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/model"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/repository/notification"
)

// notificationService defines the read and receipt operations the Handler
// depends on.
//
//go:generate mockgen -source=handler.go -destination=../../../mocks/api/handlers/notification/mock.go -package=mocks
type notificationService interface {
	GetNotificationStatusByID(context.Context, retry.Strategy, uuid.UUID) (model.Status, error)
	GetNotificationsByCorrelationID(context.Context, uuid.UUID) ([]model.Notification, error)
	MarkDelivered(ctx context.Context, id uuid.UUID) error
}

// Handler handles HTTP requests about individual notification records.
type Handler struct {
	service notificationService
	cfg     *config.Config
}

func NewHandler(s notificationService, cfg *config.Config) *Handler {
	return &Handler{service: s, cfg: cfg}
}

// StatusResponse is the body returned by GetStatus.
type StatusResponse struct {
	ID     uuid.UUID    `json:"id"`
	Status model.Status `json:"status"`
}

// GetStatus handles HTTP GET requests to retrieve the status of a notification.
//
// It expects the notification ID as a URL parameter and returns its status.
func (h *Handler) GetStatus(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	status, err := h.service.GetNotificationStatusByID(c.Request.Context(), h.cfg.Retry, id)
	if err != nil {
		if errors.Is(err, notification.ErrNotificationNotFound) {
			zlog.Logger.Warn().Str("id", id.String()).Err(err).Msg("notification not found")
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("notification not found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get notification status")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, StatusResponse{ID: id, Status: status})
}

// ListByCorrelation handles HTTP GET requests listing every record spawned by
// one event, fallbacks included. The correlation id comes from the
// correlation_id query parameter.
func (h *Handler) ListByCorrelation(c *ginext.Context) {
	raw := c.Query("correlation_id")
	if raw == "" {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing correlation_id"))
		return
	}

	correlationID, err := uuid.Parse(raw)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("correlation_id", raw).Msg("failed to parse correlation id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid correlation_id"))
		return
	}

	notifications, err := h.service.GetNotificationsByCorrelationID(c.Request.Context(), correlationID)
	if err != nil {
		if errors.Is(err, notification.ErrNoNotificationsFound) {
			respond.Fail(c.Writer, http.StatusNotFound, fmt.Errorf("no notifications found"))
			return
		}

		zlog.Logger.Error().Err(err).Str("correlation_id", raw).Msg("failed to get notifications")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, notifications)
}

// MarkDelivered handles delivery receipts for sent notifications.
func (h *Handler) MarkDelivered(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.MarkDelivered(c.Request.Context(), id); err != nil {
		if errors.Is(err, notification.ErrStatusConflict) {
			zlog.Logger.Warn().Str("id", id.String()).Err(err).Msg("notification is not in sent status")
			respond.Fail(c.Writer, http.StatusConflict, fmt.Errorf("notification is not in sent status"))
			return
		}

		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to mark notification delivered")
		respond.Fail(c.Writer, http.StatusInternalServerError, fmt.Errorf("internal server error"))
		return
	}

	respond.OK(c.Writer, StatusResponse{ID: id, Status: model.StatusDelivered})
}

func parseID(c *ginext.Context) (uuid.UUID, bool) {
	idStr := c.Param("id")

	id, err := uuid.Parse(idStr)
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", idStr).Msg("failed to parse id")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid id"))
		return uuid.Nil, false
	}

	if id == uuid.Nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("missing id"))
		return uuid.Nil, false
	}

	return id, true
}
