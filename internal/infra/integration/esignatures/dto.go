package esignatures

// Template as listed by GET /api/templates.
type Template struct {
	Title      string `json:"title"`
	TemplateID string `json:"template_id"`
}

type templatesResponse struct {
	Data []Template `json:"data"`
}

type CreateContractInput struct {
	TemplateID  string
	SignerName  string
	SignerEmail string

	// Placeholder values substituted into the template document.
	QuotationID string
	Company     string
}

// ContractResult is what the rest of the service needs back: the upstream
// contract id and the first signer's signing page.
type ContractResult struct {
	ContractID string
	SigningURL string
}

type contractSigner struct {
	// Empty on purpose: delivery of the signing link is handled by this
	// service's own email, not by the vendor.
	DeliveryMethods []string `json:"signature_request_delivery_methods"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
}

type placeholderField struct {
	APIKey string `json:"api_key"`
	Value  string `json:"value"`
}

type createContractRequest struct {
	TemplateID        string             `json:"template_id"`
	Signers           []contractSigner   `json:"signers"`
	PlaceholderFields []placeholderField `json:"placeholder_fields"`
}

type createContractResponse struct {
	Data struct {
		Contract struct {
			ID      string `json:"id"`
			Signers []struct {
				SignPageURL string `json:"sign_page_url"`
			} `json:"signers"`
		} `json:"contract"`
	} `json:"data"`
}
