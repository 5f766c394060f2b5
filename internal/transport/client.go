// Package transport is the HTTP client counterpart of the enquiry API,
// used when the store lives behind a remote service instead of in
// process. Non-2xx responses surface as shared.TransportError.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/logitrack/logitrack/internal/enquiry"
	"github.com/logitrack/logitrack/internal/shared"
)

// Client talks to a remote enquiry service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient constructs a new client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// WithHTTPClient overrides the underlying http.Client.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.httpClient = hc
	return c
}

// List fetches one page of enquiries.
func (c *Client) List(ctx context.Context, req enquiry.ListEnquiriesRequest) (*enquiry.EnquiryPage, error) {
	q := url.Values{}
	if req.Keyword != "" {
		q.Set("keyword", req.Keyword)
	}
	for _, s := range req.Statuses {
		q.Add("status", string(s))
	}
	for _, ct := range req.CargoTypes {
		q.Add("cargoType", ct)
	}
	for _, sc := range req.SalesCountryCodes {
		q.Add("salesCountry", sc)
	}
	if !req.DateFrom.IsZero() {
		q.Set("dateFrom", req.DateFrom.String())
	}
	if !req.DateTo.IsZero() {
		q.Set("dateTo", req.DateTo.String())
	}
	if req.SortDir != "" {
		q.Set("sortDir", req.SortDir)
	}
	q.Set("page", strconv.Itoa(req.PageIndex))
	if req.PageSize > 0 {
		q.Set("size", strconv.Itoa(req.PageSize))
	}

	var page enquiry.EnquiryPage
	if err := c.do(ctx, http.MethodGet, "/api/enquiries?"+q.Encode(), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get fetches one enquiry by ID.
func (c *Client) Get(ctx context.Context, id int64) (*enquiry.Enquiry, error) {
	var e enquiry.Enquiry
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/enquiries/%d", id), nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Create submits a new enquiry.
func (c *Client) Create(ctx context.Context, req enquiry.CreateEnquiryRequest) (*enquiry.Enquiry, error) {
	var e enquiry.Enquiry
	if err := c.do(ctx, http.MethodPost, "/api/enquiries", req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Update merges fields onto an existing enquiry.
func (c *Client) Update(ctx context.Context, id int64, req enquiry.UpdateEnquiryRequest) (*enquiry.Enquiry, error) {
	var e enquiry.Enquiry
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/enquiries/%d", id), req, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// Delete removes an enquiry.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/enquiries/%d", id), nil, nil)
}

// Copy duplicates an enquiry server side.
func (c *Client) Copy(ctx context.Context, id int64) (*enquiry.Enquiry, error) {
	var e enquiry.Enquiry
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/enquiries/%d/copy", id), nil, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

// ListOffers fetches the offers of an enquiry.
func (c *Client) ListOffers(ctx context.Context, enquiryID int64) ([]enquiry.Offer, error) {
	var offers []enquiry.Offer
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/enquiries/%d/offers", enquiryID), nil, &offers); err != nil {
		return nil, err
	}
	return offers, nil
}

// AddOffer creates an offer against an enquiry.
func (c *Client) AddOffer(ctx context.Context, enquiryID int64, req enquiry.CreateOfferRequest) (*enquiry.Offer, error) {
	var offer enquiry.Offer
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/enquiries/%d/offers", enquiryID), req, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

// UpdateOffer merges fields onto an existing offer.
func (c *Client) UpdateOffer(ctx context.Context, offerID int64, req enquiry.UpdateOfferRequest) (*enquiry.Offer, error) {
	var offer enquiry.Offer
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/offers/%d", offerID), req, &offer); err != nil {
		return nil, err
	}
	return &offer, nil
}

// DeleteOffer removes an offer.
func (c *Client) DeleteOffer(ctx context.Context, offerID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/offers/%d", offerID), nil, nil)
}

// DashboardStats fetches the dashboard aggregates.
func (c *Client) DashboardStats(ctx context.Context) (*enquiry.DashboardStats, error) {
	var stats enquiry.DashboardStats
	if err := c.do(ctx, http.MethodGet, "/api/stats/dashboard", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &shared.TransportError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &shared.TransportError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
