// Package soap is a small SOAP 1.1 client: it wraps operation payloads in an
// envelope, posts them with a SOAPAction header and decodes the response body
// or fault.
package soap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Config configures a Client.
type Config struct {
	Endpoint    string
	Namespace   string
	Credentials Credentials
	Timeout     time.Duration
	Headers     map[string]string
}

// Client posts SOAP requests to a single endpoint.
// It is safe for concurrent use.
type Client struct {
	endpoint  string
	namespace string
	creds     Credentials
	http      *resty.Client
}

// NewClient returns a Client for cfg.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	h := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "text/xml; charset=utf-8").
		SetHeader("Accept", "text/xml")
	for k, v := range cfg.Headers {
		h.SetHeader(k, v)
	}

	return &Client{
		endpoint:  cfg.Endpoint,
		namespace: strings.TrimRight(cfg.Namespace, "/"),
		creds:     cfg.Credentials,
		http:      h,
	}
}

// Call invokes action with req as the operation payload and decodes the
// response body into resp. resp may be nil when the result is not needed.
func (c *Client) Call(ctx context.Context, action string, req, resp any) error {
	if c.endpoint == "" {
		return fmt.Errorf("soap %s: no endpoint configured", action)
	}

	payload, err := encodeRequest(c.namespace, action, req, c.creds)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("SOAPAction", `"`+c.soapAction(action)+`"`).
		SetBody(payload).
		Post(c.endpoint)
	if err != nil {
		return fmt.Errorf("soap %s: %w", action, err)
	}

	slog.Debug("SOAP call", "action", action, "status", res.StatusCode(), "elapsed", time.Since(start))

	body := res.Body()
	if res.IsError() {
		// Faults arrive with HTTP 500; surface them as *Fault when present.
		if derr := decodeResponse(body, nil); derr != nil {
			if f, ok := derr.(*Fault); ok {
				return f
			}
		}
		return &HTTPError{StatusCode: res.StatusCode(), Body: truncate(string(body), 300)}
	}

	return decodeResponse(body, resp)
}

func (c *Client) soapAction(action string) string {
	if c.namespace == "" {
		return action
	}
	return c.namespace + "/" + action
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
