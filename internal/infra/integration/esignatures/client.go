package esignatures

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ListTemplates fetches every selectable template. No pagination: the
// vendor returns the full list in one page.
func (c *Client) ListTemplates(ctx context.Context) ([]Template, error) {
	if c.token == "" {
		return nil, &ConfigurationError{Message: "e-signature API token not configured"}
	}

	endpoint := fmt.Sprintf("%s/api/templates?token=%s", c.baseURL, url.QueryEscape(c.token))
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("esignatures request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Message:    "failed to fetch templates",
		}
	}

	var response templatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode templates response: %w", err)
	}

	return response.Data, nil
}

// CreateContract creates a signature contract from a template with a single
// signer and the quotation placeholder fields.
func (c *Client) CreateContract(ctx context.Context, input CreateContractInput) (*ContractResult, error) {
	if c.token == "" {
		return nil, &ConfigurationError{Message: "e-signature API token not configured"}
	}

	payload := createContractRequest{
		TemplateID: input.TemplateID,
		Signers: []contractSigner{{
			DeliveryMethods: []string{},
			Name:            input.SignerName,
			Email:           input.SignerEmail,
		}},
		PlaceholderFields: []placeholderField{
			{APIKey: "quotation_id", Value: input.QuotationID},
			{APIKey: "signer_name", Value: input.SignerName},
			{APIKey: "signer_email", Value: input.SignerEmail},
			{APIKey: "company", Value: input.Company},
		},
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal contract payload: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/contracts?token=%s", c.baseURL, url.QueryEscape(c.token))
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("esignatures request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Body:       string(body),
			Message:    "failed to create contract",
		}
	}

	var response createContractResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to decode contract response: %w", err)
	}

	// The vendor has answered 200 with a shape we cannot use before. Treat
	// missing structure as an upstream fault, never index blindly.
	contract := response.Data.Contract
	if contract.ID == "" {
		return nil, &UpstreamError{Body: string(body), Message: "contract response missing contract id"}
	}
	if len(contract.Signers) == 0 || contract.Signers[0].SignPageURL == "" {
		return nil, &UpstreamError{Body: string(body), Message: "contract response missing signer sign_page_url"}
	}

	return &ContractResult{
		ContractID: contract.ID,
		SigningURL: contract.Signers[0].SignPageURL,
	}, nil
}
