// Package erp provides the typed gateway to the hotel's ERP backend.
package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/baanpim/hotel-assistant/internal/model"
	"github.com/baanpim/hotel-assistant/pkg/logger"
	"github.com/baanpim/hotel-assistant/pkg/metrics"
)

// NetworkError is a transport-level failure reaching the ERP backend.
type NetworkError struct {
	Status string
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("could not connect to the backend service: %v", e.Err)
	}
	return fmt.Sprintf("network response was not ok: %s", e.Status)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// BackendError is an explicit failure reported by the ERP backend for a
// given action. Stack is kept for diagnostics only.
type BackendError struct {
	Message string
	Stack   string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error: %s", e.Message)
}

// Gateway is the remote procedure surface the services depend on. Each call
// is independent and stateless; there are no retries and no caching.
type Gateway interface {
	GetRoomStatus(ctx context.Context) (*model.RoomStatus, error)
	GetBookingCalendar(ctx context.Context) (*model.BookingCalendarData, error)
	AddBooking(ctx context.Context, params model.AddBookingParams) (*model.PendingBookingResponse, error)
	GetFinancialSummary(ctx context.Context, period string) (*model.FinancialSummary, error)
	GetMonthlyTenants(ctx context.Context) ([]model.MonthlyTenant, error)
	GetEmployees(ctx context.Context) ([]model.Employee, error)
	AddExpense(ctx context.Context, params map[string]any) (*model.AddExpenseResponse, error)
	ExportData(ctx context.Context, reportType string, data any) (*model.ExportResponse, error)
}

// Client invokes the ERP backend over a single POST-style endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates an ERP gateway client.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
	}
}

type request struct {
	ActionType string `json:"action_type"`
	Parameters any    `json:"parameters,omitempty"`
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Stack   string          `json:"stack"`
}

// Invoke serializes the action and parameters, performs one network call and
// decodes the backend's data field into out. The gateway performs no
// validation beyond presence.
func (c *Client) Invoke(ctx context.Context, actionType string, parameters, out any) error {
	body, err := json.Marshal(request{ActionType: actionType, Parameters: parameters})
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	// The backend is script-hosted and behaves best with a plain-text body.
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordERPRequest(actionType, "network_error", time.Since(start).Seconds())
		c.logger.Error("ERP request failed",
			zap.String("action_type", actionType),
			zap.Error(err),
		)
		return &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		metrics.RecordERPRequest(actionType, "http_error", time.Since(start).Seconds())
		c.logger.Error("ERP request returned non-success status",
			zap.String("action_type", actionType),
			zap.Int("status", resp.StatusCode),
		)
		return &NetworkError{Status: resp.Status}
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		metrics.RecordERPRequest(actionType, "decode_error", time.Since(start).Seconds())
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if env.Status == "error" {
		metrics.RecordERPRequest(actionType, "backend_error", time.Since(start).Seconds())
		c.logger.Error("ERP backend reported error",
			zap.String("action_type", actionType),
			zap.String("message", env.Message),
			zap.String("stack", env.Stack),
		)
		return &BackendError{Message: env.Message, Stack: env.Stack}
	}

	metrics.RecordERPRequest(actionType, "ok", time.Since(start).Seconds())

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode data: %w", err)
	}
	return nil
}

// GetRoomStatus fetches the room occupancy summary.
func (c *Client) GetRoomStatus(ctx context.Context) (*model.RoomStatus, error) {
	var status model.RoomStatus
	if err := c.Invoke(ctx, string(model.ActionGetStatus), nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

// GetBookingCalendar fetches the booking calendar view.
func (c *Client) GetBookingCalendar(ctx context.Context) (*model.BookingCalendarData, error) {
	var data model.BookingCalendarData
	if err := c.Invoke(ctx, string(model.ActionGetCalendar), nil, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// AddBooking creates a booking and returns the pending-payment projection.
func (c *Client) AddBooking(ctx context.Context, params model.AddBookingParams) (*model.PendingBookingResponse, error) {
	var resp model.PendingBookingResponse
	if err := c.Invoke(ctx, string(model.ActionAddBooking), params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetFinancialSummary fetches the financial overview for a period.
func (c *Client) GetFinancialSummary(ctx context.Context, period string) (*model.FinancialSummary, error) {
	var summary model.FinancialSummary
	params := model.FinancialSummaryParams{Period: period}
	if err := c.Invoke(ctx, string(model.ActionFinancialSummary), params, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// GetMonthlyTenants lists the monthly tenants.
func (c *Client) GetMonthlyTenants(ctx context.Context) ([]model.MonthlyTenant, error) {
	var tenants []model.MonthlyTenant
	if err := c.Invoke(ctx, string(model.ActionMonthlyTenants), nil, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

// GetEmployees lists the employee registry.
func (c *Client) GetEmployees(ctx context.Context) ([]model.Employee, error) {
	var employees []model.Employee
	if err := c.Invoke(ctx, string(model.ActionEmployees), nil, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// AddExpense records an expense. Parameters pass through verbatim, including
// an optional attached-image payload.
func (c *Client) AddExpense(ctx context.Context, params map[string]any) (*model.AddExpenseResponse, error) {
	var resp model.AddExpenseResponse
	if err := c.Invoke(ctx, string(model.ActionAddExpense), params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ExportData exports a report and returns the file link.
func (c *Client) ExportData(ctx context.Context, reportType string, data any) (*model.ExportResponse, error) {
	var resp model.ExportResponse
	params := model.ExportParams{ReportType: reportType, DataToExport: data}
	if err := c.Invoke(ctx, string(model.ActionExportData), params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
