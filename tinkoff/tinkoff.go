// Package tinkoff is a client for the T-Invest public REST gateway.
//
// It implements the collaborator side of the reporting engine: fetching
// executed operations for a date window, the current portfolio valuation,
// and instrument lookups by FIGI. The engine itself never performs I/O.
package tinkoff

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// DefaultEndpoint is the public REST gateway of the Invest API.
const DefaultEndpoint = "https://invest-public-api.tinkoff.ru/rest"

// service path fragments of the gRPC-transcoded REST API.
const (
	operationsService  = "tinkoff.public.invest.api.contract.v1.OperationsService"
	usersService       = "tinkoff.public.invest.api.contract.v1.UsersService"
	instrumentsService = "tinkoff.public.invest.api.contract.v1.InstrumentsService"
)

// Client calls the Invest API on behalf of one account.
type Client struct {
	token     string
	accountID string
	endpoint  string
	hc        *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the API endpoint, mainly for tests.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) { c.endpoint = endpoint }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// New creates a client for the given API token and account. An empty
// accountID is allowed: ResolveAccount fills it with the first open
// brokerage account.
func New(token, accountID string, opts ...Option) *Client {
	c := &Client{
		token:     token,
		accountID: accountID,
		endpoint:  DefaultEndpoint,
		hc:        new(http.Client),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AccountID returns the account the client reports on.
func (c *Client) AccountID() string { return c.accountID }

// jpost performs one service call: POST the request as JSON and unmarshal
// the response into data. All Invest API methods share this shape.
func (c *Client) jpost(ctx context.Context, service, method string, request, data any) error {
	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", method, err)
	}

	addr := fmt.Sprintf("%s/%s/%s", c.endpoint, service, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, addr, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("cannot http POST %s: %w", method, err)
	}
	defer resp.Body.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http POST %s: %s: %s", method, resp.Status, buf.String())
	}
	return json.Unmarshal(buf.Bytes(), data)
}
