// Package webhook sends import reports to an HTTP endpoint, typically the
// recipe manager's bulk import hook.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/ccollicutt/recipemd/pkg/output"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 10 * time.Second

// RequestIDHeader carries a unique id per delivery so receivers can
// deduplicate retries.
const RequestIDHeader = "X-Request-ID"

const maxResponseBytes = 1 << 20

// Client sends import reports to webhook endpoints.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new webhook client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
		userAgent:  "recipemd-webhook",
	}
}

// SendOptions configures a webhook request.
type SendOptions struct {
	URL     string
	Token   string        // Bearer token (optional)
	Timeout time.Duration // Per-attempt timeout (uses DefaultTimeout if zero)

	// Retries is how many times a failed delivery is repeated. Transport
	// errors, 429 and 5xx responses are retried; other statuses are final.
	Retries int
	// RetryDelay is the wait before the first retry, doubled each time
	// (uses DefaultRetryDelay if zero).
	RetryDelay time.Duration
}

// DefaultRetryDelay is the initial backoff between delivery attempts.
const DefaultRetryDelay = 500 * time.Millisecond

// Response contains the result of a webhook request.
type Response struct {
	RequestID  string
	StatusCode int
	Body       string
	Duration   time.Duration
	Attempts   int
	Error      error
}

// Success returns true if the webhook was sent successfully (2xx status).
func (r *Response) Success() bool {
	return r.Error == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Send posts an import report to a webhook endpoint. Every attempt carries
// the same request ID.
func (c *Client) Send(ctx context.Context, report *output.Report, opts SendOptions) *Response {
	start := time.Now()
	resp := &Response{RequestID: uuid.NewString()}

	payload, err := json.Marshal(report)
	if err != nil {
		resp.Error = fmt.Errorf("failed to marshal report: %w", err)
		resp.Duration = time.Since(start)
		return resp
	}

	delay := opts.RetryDelay
	if delay <= 0 {
		delay = DefaultRetryDelay
	}

	for {
		resp.Attempts++
		retry := c.attempt(ctx, payload, opts, resp)
		if !retry || resp.Attempts > opts.Retries {
			break
		}

		select {
		case <-ctx.Done():
			resp.Error = fmt.Errorf("giving up after %d attempts: %w", resp.Attempts, ctx.Err())
			resp.Duration = time.Since(start)
			return resp
		case <-time.After(delay):
		}
		delay *= 2
	}

	resp.Duration = time.Since(start)
	return resp
}

// attempt performs one delivery, recording the outcome in resp. It reports
// whether the failure is worth retrying.
func (c *Client) attempt(ctx context.Context, payload []byte, opts SendOptions, resp *Response) bool {
	resp.StatusCode = 0
	resp.Body = ""
	resp.Error = nil

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, opts.URL, bytes.NewReader(payload))
	if err != nil {
		resp.Error = fmt.Errorf("failed to create request: %w", err)
		return false
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, resp.RequestID)
	if opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+opts.Token)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		resp.Error = fmt.Errorf("request failed: %w", err)
		return true
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		resp.Error = fmt.Errorf("failed to read response: %w", err)
		return true
	}

	resp.StatusCode = httpResp.StatusCode
	resp.Body = string(body)

	if resp.StatusCode >= 400 {
		resp.Error = fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
}
