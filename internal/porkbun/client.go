package porkbun

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.porkbun.com/api/json/v3"

// Client is an HTTP API client for the Porkbun JSON API. Authentication
// is carried in the body of every request, not in headers.
type Client struct {
	baseURL    string
	creds      Credentials
	httpClient *http.Client
}

// NewClient creates a new API client. An empty baseURL selects the
// production endpoint.
func NewClient(baseURL string, creds Credentials) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		creds:   creds,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError is a failure the provider signals in-band: a parseable
// response whose status field is not SUCCESS. The message is the
// provider's own, propagated verbatim.
type APIError struct {
	Status  string
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "API error"
	}
	return "API error: " + e.Message
}

// envelope is the uniform wrapper shape of every API response.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// post issues a POST request and decodes the response into out.
// Every API call goes through here: a transport failure, a non-2xx
// status, an unparseable body, or an in-band error status each abort
// the call with an error.
func (c *Client) post(path string, body, out any) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+path, bytes.NewReader(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("failed to decode API response: %w", err)
	}
	if env.Status != "SUCCESS" {
		return &APIError{Status: env.Status, Message: env.Message}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("failed to decode API response: %w", err)
		}
	}
	return nil
}

// ListDomains lists all domains in the account, in provider order.
func (c *Client) ListDomains() ([]Domain, error) {
	var resp struct {
		Domains []Domain `json:"domains"`
	}
	if err := c.post("/domain/listAll", c.creds, &resp); err != nil {
		return nil, err
	}
	return resp.Domains, nil
}

// ListRecords lists all DNS records for a domain, in provider order.
func (c *Client) ListRecords(domain string) ([]Record, error) {
	if domain == "" {
		return nil, fmt.Errorf("domain name cannot be empty")
	}
	var resp struct {
		Records []Record `json:"records"`
	}
	if err := c.post("/dns/retrieve/"+domain, c.creds, &resp); err != nil {
		return nil, err
	}
	return resp.Records, nil
}

// recordID tolerates both numeric and quoted ids on the wire.
type recordID string

func (id *recordID) UnmarshalJSON(b []byte) error {
	*id = recordID(bytes.Trim(b, `"`))
	return nil
}

// CreateRecord creates a DNS record and returns the provider-assigned id.
// An omitted TTL defaults to DefaultTTL.
func (c *Client) CreateRecord(domain string, fields RecordFields) (string, error) {
	if domain == "" {
		return "", fmt.Errorf("domain name cannot be empty")
	}
	if err := fields.Validate(); err != nil {
		return "", err
	}
	var resp struct {
		ID recordID `json:"id"`
	}
	if err := c.post("/dns/create/"+domain, fields.payload(c.creds, true), &resp); err != nil {
		return "", err
	}
	return string(resp.ID), nil
}

// EditRecord updates the record with the given id. Fields the caller
// left unset are omitted from the payload; the provider applies
// partial-update semantics to them.
func (c *Client) EditRecord(domain, id string, fields RecordFields) error {
	if domain == "" || id == "" {
		return fmt.Errorf("domain name and record id are required")
	}
	if err := fields.Validate(); err != nil {
		return err
	}
	return c.post("/dns/edit/"+domain+"/"+id, fields.payload(c.creds, false), nil)
}

// DeleteRecord deletes the record with the given id.
func (c *Client) DeleteRecord(domain, id string) error {
	if domain == "" || id == "" {
		return fmt.Errorf("domain name and record id are required")
	}
	return c.post("/dns/delete/"+domain+"/"+id, c.creds, nil)
}
