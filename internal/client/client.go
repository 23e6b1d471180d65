// Package client implements the user-facing side of the contact service:
// an HTTP API client, a persisted session, field validation, and the
// sorting/pagination applied to fetched contact lists.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Dan9191/contact-service/internal/models"
)

// ErrNotFound is returned when the server reports 404 for a contact.
var ErrNotFound = errors.New("contact not found")

// Client talks to the contact service API
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient initializes an API client for the given base URL
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type apiError struct {
	Error string `json:"error"`
}

// Register creates an account and returns the issued token
func (c *Client) Register(ctx context.Context, email, password string) (string, error) {
	var resp models.TokenResponse
	err := c.doJSON(ctx, http.MethodPost, "/register", "",
		models.RegisterRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// Login authenticates and returns the issued token
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp models.TokenResponse
	err := c.doJSON(ctx, http.MethodPost, "/login", "",
		models.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return "", err
	}
	return resp.Token, nil
}

// ListContacts fetches the full contact list for the token's owner
func (c *Client) ListContacts(ctx context.Context, token string) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := c.doJSON(ctx, http.MethodGet, "/contacts", token, nil, &contacts); err != nil {
		return nil, err
	}
	return contacts, nil
}

// CreateContact adds a contact and returns it with its generated id
func (c *Client) CreateContact(ctx context.Context, token string, req models.ContactRequest) (*models.Contact, error) {
	var contact models.Contact
	if err := c.doJSON(ctx, http.MethodPost, "/contacts", token, req, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// UpdateContact replaces all fields of the contact with the given id
func (c *Client) UpdateContact(ctx context.Context, token string, id int64, req models.ContactRequest) (*models.Contact, error) {
	var contact models.Contact
	path := fmt.Sprintf("/contacts/%d", id)
	if err := c.doJSON(ctx, http.MethodPut, path, token, req, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

// DeleteContact removes the contact with the given id
func (c *Client) DeleteContact(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/contacts/%d", id)
	return c.doJSON(ctx, http.MethodDelete, path, token, nil, nil)
}

// ExportContacts downloads the XML export of the token's contact list
func (c *Client) ExportContacts(ctx context.Context, token string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/contacts/export", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) doJSON(ctx context.Context, method, path, token string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400:
		return statusError(resp)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func statusError(resp *http.Response) error {
	var apiErr apiError
	if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
		return fmt.Errorf("server error (%d): %s", resp.StatusCode, apiErr.Error)
	}
	return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
}
