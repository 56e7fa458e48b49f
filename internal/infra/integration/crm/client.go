package crm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
)

// Client pushes signed-quotation events into the sales CRM so the pipeline
// reflects signatures without anyone copying data by hand.
type Client struct {
	apiToken string
	baseURL  string
}

func NewClient(baseURL, apiToken string) *Client {
	return &Client{
		apiToken: apiToken,
		baseURL:  baseURL,
	}
}

func (c *Client) RecordSignedQuotation(input SignedQuotationInput) error {
	if c.apiToken == "" {
		log.Println("⚠️ CRM: API token not configured, skipping")
		return fmt.Errorf("crm not configured")
	}

	contactID, err := c.findOrCreateContact(input)
	if err != nil {
		return fmt.Errorf("failed to find/create CRM contact: %w", err)
	}

	dealData := []map[string]interface{}{
		{
			"name": fmt.Sprintf("%s - Quotation %s signed", input.CustomerName, input.QuotationID),
			"_embedded": map[string]interface{}{
				"tags": []map[string]interface{}{
					{"name": "quotation_signed"},
				},
				"contacts": []map[string]interface{}{
					{"id": contactID},
				},
			},
			"custom_fields_values": []map[string]interface{}{
				{
					"field_code": "CONTRACT_ID",
					"values": []map[string]interface{}{
						{"value": input.ContractID},
					},
				},
			},
		},
	}

	payload, _ := json.Marshal(dealData)
	req, _ := http.NewRequest("POST", c.baseURL+"/leads", bytes.NewBuffer(payload))
	c.addAuthHeaders(req)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("failed to record signed deal: %d - %s", resp.StatusCode, string(body))
	}

	log.Printf("✅ CRM: signed deal recorded for quotation %s (%s)", input.QuotationID, input.CustomerName)
	return nil
}

func (c *Client) findOrCreateContact(input SignedQuotationInput) (int, error) {
	contactID, err := c.findContactByEmail(input.Email)
	if err == nil && contactID > 0 {
		return contactID, nil
	}

	return c.createContact(input)
}

func (c *Client) findContactByEmail(email string) (int, error) {
	endpoint := fmt.Sprintf("%s/contacts?query=%s", c.baseURL, url.QueryEscape(email))

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return 0, err
	}

	c.addAuthHeaders(req)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("failed to search contact: %d", resp.StatusCode)
	}

	var result struct {
		Embedded struct {
			Contacts []struct {
				ID int `json:"id"`
			} `json:"contacts"`
		} `json:"_embedded"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return 0, err
	}

	if len(result.Embedded.Contacts) > 0 {
		return result.Embedded.Contacts[0].ID, nil
	}

	return 0, fmt.Errorf("contact not found")
}

func (c *Client) createContact(input SignedQuotationInput) (int, error) {
	contactData := []map[string]interface{}{
		{
			"name": input.CustomerName,
			"custom_fields_values": []map[string]interface{}{
				{
					"field_code": "EMAIL",
					"values": []map[string]interface{}{
						{"value": input.Email, "enum_code": "WORK"},
					},
				},
			},
		},
	}

	payload, _ := json.Marshal(contactData)
	req, _ := http.NewRequest("POST", c.baseURL+"/contacts", bytes.NewBuffer(payload))
	c.addAuthHeaders(req)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return 0, fmt.Errorf("failed to create contact: %d - %s", resp.StatusCode, string(body))
	}

	var result struct {
		Embedded struct {
			Contacts []struct {
				ID int `json:"id"`
			} `json:"contacts"`
		} `json:"_embedded"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return 0, err
	}

	if len(result.Embedded.Contacts) > 0 {
		return result.Embedded.Contacts[0].ID, nil
	}

	return 0, fmt.Errorf("failed to read created contact id")
}

func (c *Client) addAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiToken))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}
