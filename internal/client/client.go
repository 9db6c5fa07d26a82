// Package client provides a typed HTTP client for the backend API and an
// in-memory store that keeps a consistent view of the caller's transactions
// across concurrent filter changes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/fintrack/fintrack_backend/internal/apperrors"
	"github.com/fintrack/fintrack_backend/internal/dto"
)

// Filter holds the optional list filter values in their wire form.
// Empty strings contribute no query parameter.
type Filter struct {
	Category string
	From     string
	To       string
}

func (f Filter) query() string {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.From != "" {
		q.Set("from", f.From)
	}
	if f.To != "" {
		q.Set("to", f.To)
	}
	return q.Encode()
}

// Client is a typed HTTP client for the transaction API. It attaches the
// bearer token to every request and maps error statuses to apperrors
// sentinels so callers can use errors.Is.
type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

// NewClient creates a Client for the API at baseURL. If httpClient is nil,
// http.DefaultClient is used.
func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		token:      token,
	}
}

// SetToken replaces the bearer token used for subsequent requests. It is
// safe to call while requests are in flight.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) bearerToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearerToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return statusToError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response body: %w", err)
		}
	}
	return nil
}

// statusToError maps an error response to an apperrors sentinel, preserving
// the server's message when one is present.
func statusToError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	message := resp.Status
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		message = body.Error
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		return fmt.Errorf("%s: %w", message, apperrors.ErrValidation)
	case http.StatusUnauthorized:
		return fmt.Errorf("%s: %w", message, apperrors.ErrUnauthorized)
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", message, apperrors.ErrNotFound)
	case http.StatusConflict:
		return fmt.Errorf("%s: %w", message, apperrors.ErrDuplicate)
	default:
		return fmt.Errorf("server error (%d): %s", resp.StatusCode, message)
	}
}

// Login authenticates with email and password and stores the returned token
// on the client for subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp dto.LoginResponse
	req := dto.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp); err != nil {
		return "", err
	}
	c.SetToken(resp.Token)
	return resp.Token, nil
}

// Register creates a new account.
func (c *Client) Register(ctx context.Context, email, password, name string) (*dto.UserResponse, error) {
	var resp dto.UserResponse
	req := dto.RegisterRequest{Email: email, Password: password, Name: name}
	if err := c.do(ctx, http.MethodPost, "/api/v1/auth/register", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListTransactions fetches the caller's transactions matching the filter.
func (c *Client) ListTransactions(ctx context.Context, filter Filter) ([]dto.TransactionResponse, error) {
	path := "/api/v1/transactions"
	if q := filter.query(); q != "" {
		path += "?" + q
	}
	var resp dto.ListTransactionsResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

// CreateTransaction creates a transaction and returns the server-assigned record.
func (c *Client) CreateTransaction(ctx context.Context, req dto.SaveTransactionRequest) (*dto.TransactionResponse, error) {
	var resp dto.TransactionResponse
	if err := c.do(ctx, http.MethodPost, "/api/v1/transactions", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateTransaction replaces the mutable fields of the transaction with the given id.
func (c *Client) UpdateTransaction(ctx context.Context, id string, req dto.SaveTransactionRequest) (*dto.TransactionResponse, error) {
	var resp dto.TransactionResponse
	if err := c.do(ctx, http.MethodPut, "/api/v1/transactions/"+url.PathEscape(id), req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteTransaction deletes the transaction with the given id. Deleting an
// absent id is not an error.
func (c *Client) DeleteTransaction(ctx context.Context, id string) error {
	var resp dto.DeleteResponse
	return c.do(ctx, http.MethodDelete, "/api/v1/transactions/"+url.PathEscape(id), nil, &resp)
}

// GetSummary fetches the income/expense totals for the filter.
func (c *Client) GetSummary(ctx context.Context, filter Filter) (*dto.SummaryResponse, error) {
	path := "/api/v1/transactions/summary"
	if q := filter.query(); q != "" {
		path += "?" + q
	}
	var resp dto.SummaryResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
