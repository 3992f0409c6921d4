// Package store is the adapter for the authoritative remote lead store.
// It never falls back on its own; the working set owns that decision.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jordanlanch/realtycrm/pkg/domain"
	"github.com/jordanlanch/realtycrm/pkg/models"
)

// Client talks to the remote lead store over REST
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new store client
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// FetchLeads retrieves the full lead collection. Any transport failure or
// non-success status surfaces as REMOTE_UNAVAILABLE.
func (c *Client) FetchLeads(ctx context.Context) ([]models.Lead, error) {
	var leads []models.Lead
	if err := c.do(ctx, http.MethodGet, "/leads", nil, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// SaveLead creates or updates a lead and returns the persisted,
// authoritative record (server-assigned id and timestamps included).
func (c *Client) SaveLead(ctx context.Context, lead models.Lead) (models.Lead, error) {
	method := http.MethodPost
	path := "/leads"
	if lead.ID != "" {
		method = http.MethodPut
		path = "/leads/" + lead.ID
	}

	var saved models.Lead
	if err := c.do(ctx, method, path, lead, &saved); err != nil {
		return models.Lead{}, err
	}
	return saved, nil
}

// DeleteLead removes a lead by id.
func (c *Client) DeleteLead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/leads/"+id, nil, nil)
}

// LookupUsers fetches the user directory used for assignment labels.
func (c *Client) LookupUsers(ctx context.Context) ([]models.UserRef, error) {
	var users []models.UserRef
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return domain.NewInternalError(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return domain.NewInternalError(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.NewRemoteUnavailableError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.NewNotFoundError("lead")
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return domain.NewRemoteUnavailableError(
			fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.NewRemoteUnavailableError(fmt.Errorf("decoding response: %w", err))
	}
	return nil
}
