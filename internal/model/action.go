package model

import (
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ActionKind is one tag from the closed enumeration of ERP operations the
// assistant can perform. The executor, tool catalog and UI affordances all
// share this contract.
type ActionKind string

const (
	ActionShowMainMenu     ActionKind = "SHOW_MAIN_MENU"
	ActionGetStatus        ActionKind = "GET_STATUS"
	ActionGetCalendar      ActionKind = "GET_BOOKING_CALENDAR"
	ActionAddBooking       ActionKind = "ADD_BOOKING"
	ActionFinancialSummary ActionKind = "GET_FINANCIAL_SUMMARY"
	ActionMonthlyTenants   ActionKind = "GET_MONTHLY_TENANTS"
	ActionEmployees        ActionKind = "GET_EMPLOYEE_MANAGEMENT"
	ActionAddExpense       ActionKind = "ADD_EXPENSE"
	ActionExportData       ActionKind = "EXPORT_DATA"
)

// ReportType values accepted by EXPORT_DATA.
const (
	ReportFinancialSummary = "FINANCIAL_SUMMARY"
	ReportRoomStatus       = "ROOM_STATUS"
	ReportEmployees        = "EMPLOYEE_MANAGEMENT"
	ReportMonthlyTenants   = "MONTHLY_TENANT_MANAGEMENT"
)

// ActionRequest is one dispatchable ERP operation, produced either by the
// model as a function call or by a UI element. Transient, never persisted.
type ActionRequest struct {
	Kind       ActionKind     `json:"action_type"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// AddBookingParams are the parameters for ADD_BOOKING.
type AddBookingParams struct {
	GuestName string `json:"guest_name"`
	RoomType  string `json:"room_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Validate checks ADD_BOOKING parameters.
func (p AddBookingParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.GuestName, validation.Required),
		validation.Field(&p.RoomType, validation.Required, validation.In("Standard", "Standard Twin")),
		validation.Field(&p.StartDate, validation.Required, validation.Date("2006-01-02")),
		validation.Field(&p.EndDate, validation.Required, validation.Date("2006-01-02")),
	)
}

// FinancialSummaryParams are the parameters for GET_FINANCIAL_SUMMARY.
type FinancialSummaryParams struct {
	Period string `json:"period"`
}

// Validate checks GET_FINANCIAL_SUMMARY parameters.
func (p FinancialSummaryParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Period, validation.Required, validation.In("daily", "monthly")),
	)
}

// AddExpenseParams are the parameters for ADD_EXPENSE. ImageData and
// MIMEType are optional; when present they pass through to the backend
// verbatim.
type AddExpenseParams struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	ImageData   string  `json:"image_data,omitempty"`
	MIMEType    string  `json:"mime_type,omitempty"`
}

// Validate checks ADD_EXPENSE parameters.
func (p AddExpenseParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Amount, validation.Required, validation.Min(0.0).Exclusive()),
		validation.Field(&p.Description, validation.Required),
	)
}

// ExportParams are the parameters for EXPORT_DATA. DataToExport is ignored
// on input: the orchestrator always replaces it with a fresh read of the
// named report before dispatch.
type ExportParams struct {
	ReportType   string `json:"report_type"`
	DataToExport any    `json:"data_to_export"`
}

// Validate checks EXPORT_DATA parameters.
func (p ExportParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.ReportType, validation.Required,
			validation.In(ReportFinancialSummary, ReportRoomStatus, ReportEmployees, ReportMonthlyTenants)),
	)
}

// DecodeParams converts an untyped parameter map into a typed parameter
// struct through a JSON round-trip.
func DecodeParams(params map[string]any, out any) error {
	raw, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("encode parameters: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode parameters: %w", err)
	}
	return nil
}

// Validate checks the request's parameters against the rules for its kind.
// Kinds without parameters always pass; unknown kinds pass too, since the
// executor soft-handles them.
func (r ActionRequest) Validate() error {
	switch r.Kind {
	case ActionAddBooking:
		var p AddBookingParams
		if err := DecodeParams(r.Parameters, &p); err != nil {
			return err
		}
		return p.Validate()
	case ActionFinancialSummary:
		var p FinancialSummaryParams
		if err := DecodeParams(r.Parameters, &p); err != nil {
			return err
		}
		return p.Validate()
	case ActionAddExpense:
		var p AddExpenseParams
		if err := DecodeParams(r.Parameters, &p); err != nil {
			return err
		}
		return p.Validate()
	case ActionExportData:
		var p ExportParams
		if err := DecodeParams(r.Parameters, &p); err != nil {
			return err
		}
		return p.Validate()
	default:
		return nil
	}
}
