package crm

type SignedQuotationInput struct {
	QuotationID  string
	ContractID   string
	CustomerName string
	Email        string
	Company      string
	SignedPDFURL string
	SignedDate   string
}
