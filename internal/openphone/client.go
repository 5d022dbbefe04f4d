package openphone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const defaultBaseURL = "https://api.openphone.com/v1"

// Contact is the subset of an OpenPhone contact record this service reads.
type Contact struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type ContactEmail struct {
	Email string `json:"email"`
}

type ContactPhone struct {
	PhoneNumber string `json:"phoneNumber"`
}

type CustomField struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// CreateContactParams is the payload for creating a new contact.
type CreateContactParams struct {
	FirstName    string         `json:"firstName"`
	LastName     string         `json:"lastName"`
	Emails       []ContactEmail `json:"emails,omitempty"`
	PhoneNumbers []ContactPhone `json:"phoneNumbers"`
	CustomFields []CustomField  `json:"customFields,omitempty"`
}

// Client talks to the OpenPhone REST API using bearer-token auth. All
// messages are sent from a single configured sender number.
type Client struct {
	baseURL    string
	apiKey     string
	fromNumber string
	httpClient *http.Client
	log        zerolog.Logger
}

func NewClient(apiKey, fromNumber string, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		fromNumber: fromNumber,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
	}
}

// SetBaseURL overrides the API base URL. Used by tests.
func (c *Client) SetBaseURL(u string) {
	c.baseURL = u
}

// SearchContact looks up a contact by E.164 phone number. It returns
// nil without error when no contact matches.
func (c *Client) SearchContact(ctx context.Context, phone string) (*Contact, error) {
	endpoint := fmt.Sprintf("%s/contacts?phoneNumber=%s", c.baseURL, url.QueryEscape(phone))

	var result struct {
		Data []Contact `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &result); err != nil {
		return nil, fmt.Errorf("search contact: %w", err)
	}
	if len(result.Data) == 0 {
		return nil, nil
	}
	return &result.Data[0], nil
}

// CreateContact creates a new contact record.
func (c *Client) CreateContact(ctx context.Context, params CreateContactParams) (*Contact, error) {
	var result struct {
		Data Contact `json:"data"`
	}
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/contacts", params, &result); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	return &result.Data, nil
}

// AddNote attaches a free-text internal note to a contact.
func (c *Client) AddNote(ctx context.Context, contactID, content string) error {
	endpoint := fmt.Sprintf("%s/contacts/%s/notes", c.baseURL, contactID)
	body := map[string]string{"content": content}
	if err := c.doJSON(ctx, http.MethodPost, endpoint, body, nil); err != nil {
		return fmt.Errorf("add note: %w", err)
	}
	return nil
}

// SendMessage sends a text message from the configured sender number.
func (c *Client) SendMessage(ctx context.Context, to, body string) error {
	payload := map[string]any{
		"to":   []string{to},
		"from": c.fromNumber,
		"body": body,
	}
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/messages", payload, nil); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// doJSON performs a single request with bearer auth, optionally sending
// body as JSON and decoding the JSON response into result.
func (c *Client) doJSON(ctx context.Context, method, endpoint string, body, result any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.log.Debug().Str("method", method).Str("url", endpoint).Msg("openphone request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, snippet(data))
	}
	if result != nil {
		if err := json.Unmarshal(data, result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// snippet trims an error body down to something loggable.
func snippet(data []byte) string {
	const max = 200
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
