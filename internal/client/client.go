// Package client is a thin HTTP client for the HRMS Lite REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxBodyBytes = 1 << 20

const defaultTimeout = 10 * time.Second

// Client issues one request per call. It keeps no cache and never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

type Option func(*Client)

// WithHTTPClient sets the transport client. nil keeps the default.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds each request. It applies to a copy of the HTTP client,
// so a shared client such as http.DefaultClient is never modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{baseURL: strings.TrimRight(baseURL, "/")}
	for _, opt := range opts {
		opt(c)
	}

	switch {
	case c.httpClient == nil:
		timeout := c.timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		c.httpClient = &http.Client{Timeout: timeout}
	case c.timeout > 0:
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c
}

// APIError represents a non-2xx API response
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("hrms API error [%d]", e.StatusCode)
	}
	return fmt.Sprintf("hrms API error [%d]: %s", e.StatusCode, e.Detail)
}

// DetailOr returns the server-supplied detail carried by err, or fallback
// when there is none.
func DetailOr(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

func (c *Client) ListEmployees(ctx context.Context) ([]Employee, error) {
	var out []Employee
	if err := c.do(ctx, http.MethodGet, "/employees", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateEmployee(ctx context.Context, in EmployeeInput) (Employee, error) {
	var out Employee
	err := c.do(ctx, http.MethodPost, "/employees", in, &out)
	return out, err
}

func (c *Client) DeleteEmployee(ctx context.Context, id int64) (Message, error) {
	var out Message
	err := c.do(ctx, http.MethodDelete, "/employees/"+strconv.FormatInt(id, 10), nil, &out)
	return out, err
}

func (c *Client) CountEmployees(ctx context.Context) (EmployeeCounts, error) {
	var out EmployeeCounts
	err := c.do(ctx, http.MethodGet, "/employees/counts", nil, &out)
	return out, err
}

func (c *Client) TodayPresent(ctx context.Context) ([]AttendanceRecord, error) {
	var out []AttendanceRecord
	if err := c.do(ctx, http.MethodGet, "/attendance/today/present", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) EmployeeAttendance(ctx context.Context, employeeID string) ([]AttendanceRecord, error) {
	var out []AttendanceRecord
	if err := c.do(ctx, http.MethodGet, "/attendance/"+url.PathEscape(employeeID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) MarkAttendance(ctx context.Context, in AttendanceInput) (Message, error) {
	var out Message
	err := c.do(ctx, http.MethodPost, "/attendance", in, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Detail: parseDetail(raw)}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// parseDetail extracts a string "detail" field. Structured details, such as
// a list of validation problems, yield "".
func parseDetail(raw []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}
	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err != nil {
		return ""
	}
	return detail
}
