package template

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/zlog"

	"github.com/Djtv1304/ambacar-backend-notifications/internal/api/dto"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/api/respond"
	"github.com/Djtv1304/ambacar-backend-notifications/internal/render"
)

// Handler serves template authoring helpers.
type Handler struct {
	validator *validator.Validate
}

func NewHandler(v *validator.Validate) *Handler {
	return &Handler{validator: v}
}

// Preview renders a draft template with the documented sample values, or the
// caller's values where given, and reports which of its variables the
// caller's context does not provide.
func (h *Handler) Preview(c *ginext.Context) {
	var req dto.PreviewTemplateRequest

	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		zlog.Logger.Warn().Err(err).Msg("failed to decode preview body")
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return
	}

	if err := h.validator.Struct(req); err != nil {
		respond.Fail(c.Writer, http.StatusBadRequest, fmt.Errorf("validation error: %s", err.Error()))
		return
	}

	vars := render.ExtractVariables(req.Subject + "\n" + req.Body)

	missing := render.MissingVariables(vars, req.Context)
	if missing == nil {
		missing = []string{}
	}
	if vars == nil {
		vars = []string{}
	}

	respond.OK(c.Writer, dto.PreviewTemplateResponse{
		Subject:   render.Preview(req.Subject, req.Context),
		Body:      render.Preview(req.Body, req.Context),
		Variables: vars,
		Missing:   missing,
	})
}
