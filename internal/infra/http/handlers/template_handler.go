package handlers

import (
	"context"
	"net/http"

	"github.com/roothome/esign-bridge/internal/infra/http/middleware"
	"github.com/roothome/esign-bridge/internal/infra/integration/esignatures"
	"github.com/roothome/esign-bridge/internal/usecase"
)

type TemplateLister interface {
	Execute(ctx context.Context) ([]usecase.TemplateOption, error)
}

type TemplateHandler struct {
	ListTemplatesUC TemplateLister
}

func NewTemplateHandler(uc TemplateLister) *TemplateHandler {
	return &TemplateHandler{ListTemplatesUC: uc}
}

func (h *TemplateHandler) Handle(w http.ResponseWriter, r *http.Request) {
	options, err := h.ListTemplatesUC.Execute(r.Context())
	if err != nil {
		middleware.RecordIntegrationError("esignatures")
		switch {
		case esignatures.IsConfigurationError(err):
			writeErrorResponse(w, http.StatusInternalServerError, "NOT_CONFIGURED", err.Error())
		case esignatures.IsUpstreamError(err):
			writeErrorResponse(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		default:
			writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, options)
}
