package entity

import (
	"context"
	"errors"
	"time"
)

var ErrQuotationNotFound = errors.New("quotation not found")

// Entidade: Quotation
// Owned by the sales backend; this service only reads it and updates the
// e-signature fields. No flow here creates or deletes a quotation.
type Quotation struct {
	ID           string `json:"id"`
	CustomerName string `json:"customer_name"`
	ContactEmail string `json:"contact_email"`
	Company      string `json:"company"`

	// Template selected on the quotation screen. Required before sending.
	ESignatureTemplate string `json:"esignature_template"`

	// Set once when the contract is created upstream.
	SignatureSent bool   `json:"signature_sent"`
	ContractID    string `json:"contract_id"`
	SigningURL    string `json:"signing_url"`

	// Set by the signed-contract webhook.
	SignedPDFURL   string `json:"signed_pdf_url"`
	SignatureDate  string `json:"signature_date"` // YYYY-MM-DD
	DocumentSigned bool   `json:"document_signed"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type QuotationRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*Quotation, error)

	// FindByContractID is the webhook correlation lookup. ContractID is the
	// join key between local quotations and upstream contracts.
	FindByContractID(ctx context.Context, contractID string) (*Quotation, error)

	MarkSignatureSent(ctx context.Context, id, contractID, signingURL string) error

	// MarkSigned writes pdf url, signature date and the signed flag in a
	// single UPDATE.
	MarkSigned(ctx context.Context, id, pdfURL, signatureDate string) error
}
