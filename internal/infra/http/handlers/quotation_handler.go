package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/roothome/esign-bridge/internal/entity"
)

// QuotationHandler exposes the read view the quotation screen polls to
// refresh signature state after a send.
type QuotationHandler struct {
	Repo entity.QuotationRepositoryInterface
}

func NewQuotationHandler(repo entity.QuotationRepositoryInterface) *QuotationHandler {
	return &QuotationHandler{Repo: repo}
}

func (h *QuotationHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "quotationID")

	quotation, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		if err == entity.ErrQuotationNotFound {
			writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "Quotation not found")
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "Failed to load quotation")
		return
	}

	writeJSON(w, http.StatusOK, quotation)
}
