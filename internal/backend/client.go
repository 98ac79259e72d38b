// Package backend is the single gateway to the ERP REST API. Every page
// reaches the backend through a Client; credentials are passed per call.
package backend

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// APIPrefix is the fixed path under which the backend exposes its routes.
const APIPrefix = "/api"

// Observer receives one notification per backend call.
type Observer interface {
	ObserveBackend(method, endpoint string, status int, elapsed time.Duration)
}

// Config configures the gateway client.
type Config struct {
	BaseURL string
	// Timeout of zero leaves the transport default in place.
	Timeout  time.Duration
	Observer Observer
}

// Client is a resty-backed client for the ERP backend.
type Client struct {
	http     *resty.Client
	observer Observer
}

// NewClient builds a Client pointed at BaseURL + /api.
func NewClient(cfg Config) *Client {
	base := strings.TrimSuffix(cfg.BaseURL, "/")

	restyClient := resty.New()
	restyClient.
		SetBaseURL(base+APIPrefix).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
	if cfg.Timeout > 0 {
		restyClient.SetTimeout(cfg.Timeout)
	}

	return &Client{http: restyClient, observer: cfg.Observer}
}

// request prepares a resty request carrying ctx and, when present, the
// bearer credential.
func (c *Client) request(ctx context.Context, token string) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// do executes req and turns error statuses into *APIError.
func (c *Client) do(req *resty.Request, method, endpoint string) (*resty.Response, error) {
	body := new(errorBody)
	req.SetError(body)

	start := time.Now()
	resp, err := req.Execute(method, endpoint)
	status := 0
	if resp != nil && resp.RawResponse != nil {
		status = resp.StatusCode()
	}
	if c.observer != nil {
		c.observer.ObserveBackend(method, endpoint, status, time.Since(start))
	}
	if err != nil {
		return nil, fmt.Errorf("backend: %s %s: %w", strings.ToLower(method), endpoint, err)
	}
	if resp.StatusCode() >= http.StatusBadRequest {
		return nil, newAPIError(resp.StatusCode(), body, resp.Body())
	}
	return resp, nil
}

// Ping reports whether the backend root answers.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.do(c.request(ctx, ""), http.MethodGet, "/")
	return err
}
