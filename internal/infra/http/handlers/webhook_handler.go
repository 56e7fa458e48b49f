package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/roothome/esign-bridge/internal/infra/http/middleware"
	"github.com/roothome/esign-bridge/internal/usecase"
)

type SignedContractProcessor interface {
	Execute(ctx context.Context, input usecase.ProcessSignedContractInput) (*usecase.ProcessSignedContractOutput, error)
}

// WebhookHandler receives the vendor's contract-status callbacks. There is
// no transport-level auth; the only gate is the shared secret inside the
// payload. Every terminal outcome answers 200 with a JSON body, because the
// caller is an unattended service that cannot act on HTTP errors.
type WebhookHandler struct {
	Secret    string
	ProcessUC SignedContractProcessor
}

func NewWebhookHandler(secret string, uc SignedContractProcessor) *WebhookHandler {
	return &WebhookHandler{
		Secret:    secret,
		ProcessUC: uc,
	}
}

type webhookPayload struct {
	SecretToken string `json:"secret_token"`
	Status      string `json:"status"`
	Data        struct {
		Contract struct {
			ID             string `json:"id"`
			Status         string `json:"status"`
			Metadata       string `json:"metadata"`
			ContractPDFURL string `json:"contract_pdf_url"`
			Signers        []struct {
				Events []struct {
					Event     string `json:"event"`
					Timestamp string `json:"timestamp"`
				} `json:"events"`
			} `json:"signers"`
		} `json:"contract"`
	} `json:"data"`
}

func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		log.Printf("webhook received with no payload")
		middleware.RecordWebhook("invalid_json")
		writeJSON(w, http.StatusOK, map[string]string{"error": "Invalid JSON"})
		return
	}

	// Payload summary logged on every delivery, success or not.
	summary := string(body)
	if len(summary) > 500 {
		summary = summary[:500]
	}
	log.Printf("📨 webhook payload: %s", summary)

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		log.Printf("webhook JSON parsing failed: %v", err)
		middleware.RecordWebhook("invalid_json")
		writeJSON(w, http.StatusOK, map[string]string{"error": "Invalid JSON"})
		return
	}

	if payload.SecretToken != h.Secret {
		log.Printf("invalid secret token in webhook")
		middleware.RecordWebhook("unauthorized")
		writeJSON(w, http.StatusOK, map[string]string{"error": "Unauthorized: Invalid webhook token"})
		return
	}

	if payload.Status != "contract-signed" {
		middleware.RecordWebhook("ignored")
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "Ignored",
			"reason": "Not a 'contract-signed' webhook",
		})
		return
	}

	contract := payload.Data.Contract
	if contract.Status != "signed" {
		middleware.RecordWebhook("ignored")
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "Ignored",
			"reason": "Contract not marked as signed",
		})
		return
	}

	// Metadata carries our contract key when set; older contracts fall
	// back to the vendor's contract id.
	contractKey := contract.Metadata
	if contractKey == "" {
		contractKey = contract.ID
	}

	timestamp := ""
	if len(contract.Signers) > 0 {
		for _, event := range contract.Signers[0].Events {
			if event.Event == "sign_contract" {
				timestamp = event.Timestamp
				break
			}
		}
	}

	output, err := h.ProcessUC.Execute(r.Context(), usecase.ProcessSignedContractInput{
		ContractKey:  contractKey,
		ContractID:   contract.ID,
		SignedPDFURL: contract.ContractPDFURL,
		Timestamp:    timestamp,
	})
	if err != nil {
		if usecase.IsNotFoundError(err) {
			middleware.RecordWebhook("not_found")
			writeJSON(w, http.StatusOK, map[string]string{
				"status": "error",
				"reason": err.Error(),
			})
			return
		}

		log.Printf("❌ webhook processing failed: %v", err)
		middleware.RecordWebhook("error")
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "error",
			"reason": "Internal processing failure",
		})
		return
	}

	middleware.RecordWebhook("success")
	middleware.RecordNotifications(output.Notified)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "success",
		"quotation":   output.QuotationID,
		"contract_id": output.ContractID,
		"timestamp":   output.Timestamp,
		"notified":    output.Notified,
		"failed":      output.Failed,
	})
}
