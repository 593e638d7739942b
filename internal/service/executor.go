package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/baanpim/hotel-assistant/internal/erp"
	"github.com/baanpim/hotel-assistant/internal/model"
	"github.com/baanpim/hotel-assistant/pkg/logger"
	"github.com/baanpim/hotel-assistant/pkg/metrics"
)

// Executor runs one ERP action: it performs the gateway call, appends a
// structured block message to the timeline when the action has a renderable
// result, and returns the plain-data outcome destined for the model.
type Executor struct {
	gateway erp.Gateway
	logger  *logger.Logger
}

// NewExecutor creates an action executor.
func NewExecutor(gateway erp.Gateway, log *logger.Logger) *Executor {
	return &Executor{
		gateway: gateway,
		logger:  log,
	}
}

// Execute dispatches over the closed action enumeration. Unknown kinds are a
// soft no-op: they log and return a descriptive string so the model can
// react. An ERP failure is returned as the error; any block appended by an
// earlier successful call stays on the timeline.
//
// The block message is appended as soon as the ERP call succeeds, before the
// model is informed, so a rendered result survives a failing follow-up turn.
func (e *Executor) Execute(ctx context.Context, timeline *Timeline, sessionID string, req model.ActionRequest) (any, error) {
	if err := req.Validate(); err != nil {
		metrics.ActionsTotal.WithLabelValues(string(req.Kind), "invalid").Inc()
		return nil, fmt.Errorf("invalid parameters for %s: %w", req.Kind, err)
	}

	payload, block, err := e.run(ctx, req)
	if err != nil {
		metrics.ActionsTotal.WithLabelValues(string(req.Kind), "error").Inc()
		return nil, err
	}

	if block != nil {
		msg := newMessage(sessionID, model.SenderAI)
		msg.Block = block
		timeline.Append(msg)
	}

	metrics.ActionsTotal.WithLabelValues(string(req.Kind), "ok").Inc()
	return payload, nil
}

func (e *Executor) run(ctx context.Context, req model.ActionRequest) (any, *model.Block, error) {
	switch req.Kind {
	case model.ActionShowMainMenu:
		return map[string]any{"status": "Main menu has been displayed to the user."},
			&model.Block{Type: model.BlockMainMenu}, nil

	case model.ActionGetStatus:
		status, err := e.gateway.GetRoomStatus(ctx)
		if err != nil {
			return nil, nil, err
		}
		return status, &model.Block{Type: model.BlockRoomStatus, Data: status}, nil

	case model.ActionGetCalendar:
		data, err := e.gateway.GetBookingCalendar(ctx)
		if err != nil {
			return nil, nil, err
		}
		// The model only needs the bookings; calendar metadata is withheld
		// to limit the payload.
		return data.Bookings, &model.Block{Type: model.BlockBookingCalendar, Data: data}, nil

	case model.ActionAddBooking:
		var params model.AddBookingParams
		if err := model.DecodeParams(req.Parameters, &params); err != nil {
			return nil, nil, err
		}
		resp, err := e.gateway.AddBooking(ctx, params)
		if err != nil {
			return nil, nil, err
		}
		payload := map[string]any{
			"status":  "Booking initiated, awaiting payment",
			"details": resp.PendingBooking,
		}
		return payload, &model.Block{Type: model.BlockPendingBooking, Data: resp.PendingBooking}, nil

	case model.ActionFinancialSummary:
		var params model.FinancialSummaryParams
		if err := model.DecodeParams(req.Parameters, &params); err != nil {
			return nil, nil, err
		}
		summary, err := e.gateway.GetFinancialSummary(ctx, params.Period)
		if err != nil {
			return nil, nil, err
		}
		return summary, &model.Block{Type: model.BlockFinancialSummary, Data: summary}, nil

	case model.ActionMonthlyTenants:
		tenants, err := e.gateway.GetMonthlyTenants(ctx)
		if err != nil {
			return nil, nil, err
		}
		return tenants, &model.Block{Type: model.BlockMonthlyTenantList, Data: tenants}, nil

	case model.ActionEmployees:
		employees, err := e.gateway.GetEmployees(ctx)
		if err != nil {
			return nil, nil, err
		}
		return employees, &model.Block{Type: model.BlockEmployeeList, Data: employees}, nil

	case model.ActionAddExpense:
		// Parameters pass through verbatim, including the optional attached
		// image payload merged in by the orchestrator.
		resp, err := e.gateway.AddExpense(ctx, req.Parameters)
		if err != nil {
			return nil, nil, err
		}
		payload := map[string]any{
			"message":   resp.Message,
			"expenseId": resp.ExpenseID,
			"status":    "Success",
		}
		return payload, nil, nil

	case model.ActionExportData:
		var params model.ExportParams
		if err := model.DecodeParams(req.Parameters, &params); err != nil {
			return nil, nil, err
		}
		resp, err := e.gateway.ExportData(ctx, params.ReportType, params.DataToExport)
		if err != nil {
			return nil, nil, err
		}
		block := &model.Block{
			Type: model.BlockReportLink,
			Data: model.ReportLink{URL: resp.FileURL, Type: params.ReportType},
		}
		return resp, block, nil

	default:
		e.logger.Warn("unknown action kind", zap.String("action_type", string(req.Kind)))
		return fmt.Sprintf("Unknown action: %s", req.Kind), nil, nil
	}
}
