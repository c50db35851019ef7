// Package client is the typed wrapper over the remote cleaning-record API.
// Every operation is one network round-trip; failures surface as typed
// errors and nothing is retried automatically.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/msantanna/hotelclean/internal/domain"
)

var (
	// ErrRejected means the store returned a non-success status for the call.
	ErrRejected = errors.New("store rejected the request")
	// ErrNotFound means the store has no record with the requested id.
	ErrNotFound = errors.New("record not found")
)

// DecodeError wraps a response body that did not match the expected record
// schema. It is reported at the boundary instead of letting a half-decoded
// record reach the aggregator.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Client performs create/list/get/update/delete against the remote store.
type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

func New(baseURL string, logger *slog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(30 * time.Second).
		SetHeader("Accept", "application/json")

	return &Client{
		http:   httpClient,
		logger: logger,
	}
}

// Create registers a new cleaning record. The input is sent form-encoded,
// the shape the store's create endpoint expects.
func (c *Client) Create(ctx context.Context, in domain.NewRecordInput) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormDataFromValues(formValues(in)).
		Post("/api/cleaning/create")
	if err != nil {
		return fmt.Errorf("failed to call store: %w", err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("%w: create returned status %d", ErrRejected, resp.StatusCode())
	}

	c.logger.Debug("record created", "maids", len(in.MaidNames))
	return nil
}

// ListAll fetches the full store snapshot. There is no pagination; the store
// is small enough that every call returns everything.
func (c *Client) ListAll(ctx context.Context) ([]domain.AssignmentRecord, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/api/cleaning/all")
	if err != nil {
		return nil, fmt.Errorf("failed to call store: %w", err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: list returned status %d", ErrRejected, resp.StatusCode())
	}

	var records []domain.AssignmentRecord
	if err := json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, &DecodeError{Op: "list", Err: err}
	}

	c.logger.Debug("records listed", "count", len(records))
	return records, nil
}

// GetOne fetches a single record by id.
func (c *Client) GetOne(ctx context.Context, id int64) (*domain.AssignmentRecord, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/api/cleaning/" + strconv.FormatInt(id, 10))
	if err != nil {
		return nil, fmt.Errorf("failed to call store: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("%w: get returned status %d", ErrRejected, resp.StatusCode())
	}

	var rec domain.AssignmentRecord
	if err := json.Unmarshal(resp.Body(), &rec); err != nil {
		return nil, &DecodeError{Op: "get", Err: err}
	}
	return &rec, nil
}

// Update replaces a record's plan with one recomputed from the input.
func (c *Client) Update(ctx context.Context, id int64, in domain.NewRecordInput) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormDataFromValues(formValues(in)).
		Put("/api/cleaning/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("failed to call store: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("%w: update returned status %d", ErrRejected, resp.StatusCode())
	}
	return nil
}

// Remove deletes a record by id.
func (c *Client) Remove(ctx context.Context, id int64) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete("/api/cleaning/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("failed to call store: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf("%w: delete returned status %d", ErrRejected, resp.StatusCode())
	}
	return nil
}

func formValues(in domain.NewRecordInput) url.Values {
	return url.Values{
		"numMaids":      {strconv.Itoa(in.NumMaids)},
		"maidNames":     in.MaidNames,
		"excludedRooms": {in.ExcludedRooms},
	}
}
