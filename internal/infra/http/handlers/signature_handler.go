package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roothome/esign-bridge/internal/infra/http/middleware"
	"github.com/roothome/esign-bridge/internal/infra/integration/esignatures"
	"github.com/roothome/esign-bridge/internal/usecase"
)

type SignatureSender interface {
	Execute(ctx context.Context, input usecase.SendForSignatureInput) (*usecase.SendForSignatureOutput, error)
}

type SignatureHandler struct {
	SendForSignatureUC SignatureSender
}

func NewSignatureHandler(uc SignatureSender) *SignatureHandler {
	return &SignatureHandler{SendForSignatureUC: uc}
}

type sendForSignatureRequest struct {
	SignerName  string `json:"signer_name"`
	SignerEmail string `json:"signer_email"`
}

func (h *SignatureHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var req sendForSignatureRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "Invalid JSON")
		return
	}

	input := usecase.SendForSignatureInput{
		QuotationID: chi.URLParam(r, "quotationID"),
		SignerName:  req.SignerName,
		SignerEmail: req.SignerEmail,
	}

	output, err := h.SendForSignatureUC.Execute(r.Context(), input)
	if err != nil {
		switch {
		case usecase.IsValidationError(err):
			writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case usecase.IsNotFoundError(err):
			writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", err.Error())
		case esignatures.IsConfigurationError(err):
			writeErrorResponse(w, http.StatusInternalServerError, "NOT_CONFIGURED", err.Error())
		case esignatures.IsUpstreamError(err):
			middleware.RecordIntegrationError("esignatures")
			writeErrorResponse(w, http.StatusBadGateway, "UPSTREAM_ERROR", err.Error())
		default:
			writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		}
		return
	}

	middleware.RecordContractCreated()
	writeJSON(w, http.StatusOK, output)
}
