package event

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/Djtv1304/ambacar-backend-notifications/internal/mocks/api/handlers/event"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/model"
)

func setupHandler(t *testing.T) (*Handler, *mocks.Mockorchestrator) {
	ctrl := gomock.NewController(t)
	mockOrchestrator := mocks.NewMockorchestrator(ctrl)

	return NewHandler(mockOrchestrator, validator.New()), mockOrchestrator
}

func dispatch(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/notifications/events/dispatch/", bytes.NewBufferString(body))
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	h.Dispatch(c)

	return w
}

const readyEvent = `{
	"event_type": "vehicle_ready",
	"service_type_id": "maintenance",
	"phase_id": "delivery",
	"customer_id": "C1",
	"context": {"nombre": "Ana", "placa": "ABC123"}
}`

func TestHandler_Dispatch_Success(t *testing.T) {
	h, mockOrchestrator := setupHandler(t)

	want := model.OrchestrationResult{Success: true, CorrelationID: "c0ffee", NotificationsQueued: 1, Errors: []string{}}

	mockOrchestrator.EXPECT().
		ProcessEvent(gomock.Any(), model.EventPayload{
			EventType:     model.EventVehicleReady,
			ServiceTypeID: "maintenance",
			PhaseID:       "delivery",
			CustomerID:    "C1",
			Context:       map[string]string{"nombre": "Ana", "placa": "ABC123"},
		}).
		Return(want, nil)

	w := dispatch(h, readyEvent)

	require.Equal(t, http.StatusAccepted, w.Code)

	var got model.OrchestrationResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestHandler_Dispatch_BusinessFailureIsAccepted(t *testing.T) {
	errs := []error{
		fmt.Errorf("%w: maintenance", model.ErrConfigNotFound),
		fmt.Errorf("%w: C1", model.ErrRecipientNotFound),
		&model.MissingTemplateVariablesError{Names: []string{"orden"}},
	}

	for _, e := range errs {
		t.Run(e.Error(), func(t *testing.T) {
			h, mockOrchestrator := setupHandler(t)

			mockOrchestrator.EXPECT().ProcessEvent(gomock.Any(), gomock.Any()).
				Return(model.OrchestrationResult{CorrelationID: "c0ffee", Errors: []string{e.Error()}}, e)

			w := dispatch(h, readyEvent)

			require.Equal(t, http.StatusAccepted, w.Code)

			var got model.OrchestrationResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.False(t, got.Success)
			assert.Equal(t, []string{e.Error()}, got.Errors)
		})
	}
}

func TestHandler_Dispatch_InvalidPayload(t *testing.T) {
	h, mockOrchestrator := setupHandler(t)

	mockOrchestrator.EXPECT().ProcessEvent(gomock.Any(), gomock.Any()).
		Return(model.OrchestrationResult{}, &model.InvalidEventPayloadError{Reason: "unknown event type"})

	w := dispatch(h, readyEvent)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Dispatch_BadRequestBody(t *testing.T) {
	cases := map[string]string{
		"not json":         `{"event_type":`,
		"missing customer": `{"event_type": "vehicle_ready"}`,
		"bad target":       `{"event_type": "vehicle_ready", "customer_id": "C1", "target": "everyone"}`,
		"bad correlation":  `{"event_type": "vehicle_ready", "customer_id": "C1", "correlation_id": "nope"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			h, _ := setupHandler(t)

			w := dispatch(h, body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHandler_Dispatch_InternalError(t *testing.T) {
	h, mockOrchestrator := setupHandler(t)

	mockOrchestrator.EXPECT().ProcessEvent(gomock.Any(), gomock.Any()).
		Return(model.OrchestrationResult{}, errors.New("db down"))

	w := dispatch(h, readyEvent)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
