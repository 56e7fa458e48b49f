package usecase

type TemplateOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type SendForSignatureInput struct {
	QuotationID string `json:"quotation_id"`

	// Fallbacks, used only when the quotation has no customer name/email.
	SignerName  string `json:"signer_name"`
	SignerEmail string `json:"signer_email"`
}

type SendForSignatureOutput struct {
	Status     string `json:"status"`
	SigningURL string `json:"signing_url"`
}

type ProcessSignedContractInput struct {
	// Lookup key: contract metadata when present, otherwise contract id.
	ContractKey string
	ContractID  string

	SignedPDFURL string

	// Raw sign_contract event timestamp; empty when the vendor sent none.
	Timestamp string
}

type ProcessSignedContractOutput struct {
	QuotationID string
	ContractID  string
	Timestamp   string

	// Notification fan-out tallies; a failed recipient never aborts the rest.
	Notified int
	Failed   int
}
