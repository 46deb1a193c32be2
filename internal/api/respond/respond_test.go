package respond

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOK(t *testing.T) {
	w := httptest.NewRecorder()

	OK(w, map[string]int{"queued": 2})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"result":{"queued":2}}`, w.Body.String())
}

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()

	JSON(w, http.StatusAccepted, map[string]bool{"success": true})

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestFail(t *testing.T) {
	w := httptest.NewRecorder()

	Fail(w, http.StatusNotFound, errors.New("notification not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"notification not found"}`, w.Body.String())
}
