package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/baanpim/hotel-assistant/internal/erp"
	"github.com/baanpim/hotel-assistant/internal/llm"
	"github.com/baanpim/hotel-assistant/internal/model"
	"github.com/baanpim/hotel-assistant/pkg/logger"
)

// attachmentPlaceholder is sent to the model when a turn carries only an
// image and no text.
const attachmentPlaceholder = "Attached an expense bill."

// Orchestrator drives one conversation session. It owns the message
// timeline, the busy flag and the single-slot user-visible error, and
// coordinates the LLM session with the action executor.
//
// Only one turn may run at a time: concurrent submissions are dropped, not
// queued, so timeline appends always happen in conversation order.
type Orchestrator struct {
	sessionID string
	session   llm.Session
	executor  *Executor
	gateway   erp.Gateway
	timeline  *Timeline
	previews  *PreviewStore
	logger    *logger.Logger

	busy atomic.Bool

	errMu   sync.Mutex
	lastErr string
}

// NewOrchestrator creates an orchestrator for one session.
func NewOrchestrator(
	sessionID string,
	session llm.Session,
	executor *Executor,
	gateway erp.Gateway,
	timeline *Timeline,
	previews *PreviewStore,
	log *logger.Logger,
) *Orchestrator {
	return &Orchestrator{
		sessionID: sessionID,
		session:   session,
		executor:  executor,
		gateway:   gateway,
		timeline:  timeline,
		previews:  previews,
		logger:    log.With(zap.String("session_id", sessionID)),
	}
}

// Timeline returns a snapshot of the session's messages.
func (o *Orchestrator) Timeline() []model.Message {
	return o.timeline.Messages()
}

// Busy reports whether a turn is currently in flight.
func (o *Orchestrator) Busy() bool {
	return o.busy.Load()
}

// LastError returns the current content of the user-visible error slot.
func (o *Orchestrator) LastError() string {
	o.errMu.Lock()
	defer o.errMu.Unlock()
	return o.lastErr
}

func (o *Orchestrator) setError(msg string) {
	o.errMu.Lock()
	o.lastErr = msg
	o.errMu.Unlock()
}

// SubmitUserTurn runs one user-initiated turn. It returns false when the
// submission was dropped: empty input, or another turn already in flight.
func (o *Orchestrator) SubmitUserTurn(ctx context.Context, text string, attachment *model.Attachment) bool {
	if strings.TrimSpace(text) == "" && attachment == nil {
		return false
	}
	if !o.busy.CompareAndSwap(false, true) {
		return false
	}
	defer o.busy.Store(false)

	o.setError("")

	// Append the user message optimistically; the attachment is shown via a
	// local preview reference before any network round-trip completes.
	userMsg := newMessage(o.sessionID, model.SenderUser)
	if strings.TrimSpace(text) != "" {
		userMsg.Text = text
	}
	if attachment != nil {
		previewID := o.previews.Put(*attachment)
		userMsg.ImageURL = fmt.Sprintf("/api/v1/sessions/%s/previews/%s", o.sessionID, previewID)
		defer o.previews.Commit(previewID)
	}
	o.timeline.Append(userMsg)

	turnText := text
	if strings.TrimSpace(turnText) == "" {
		turnText = attachmentPlaceholder
	}

	reply, err := o.session.SendUserTurn(ctx, turnText)
	if err != nil {
		o.failCommunication(err)
		return true
	}

	switch {
	case len(reply.FunctionCalls) > 0:
		o.processCalls(ctx, reply.FunctionCalls, attachment)
	case reply.Text != "":
		o.appendAIText(reply.Text)
	default:
		// The model returned neither text nor calls; stay silent.
		o.logger.Debug("model returned empty reply")
	}

	return true
}

// processCalls executes the model's requested function calls strictly in the
// order returned. The first failing call ends the turn; later calls in the
// same reply are never attempted.
func (o *Orchestrator) processCalls(ctx context.Context, calls []llm.FunctionCall, attachment *model.Attachment) {
	for _, call := range calls {
		req := model.ActionRequest{
			Kind:       model.ActionKind(call.Name),
			Parameters: cloneArgs(call.Args),
		}

		if req.Kind == model.ActionAddExpense && attachment != nil {
			req.Parameters["image_data"] = attachment.Data
			req.Parameters["mime_type"] = attachment.MIMEType
		}

		// The model is never trusted to supply export data itself; resolve a
		// fresh read of the named report before dispatch.
		if req.Kind == model.ActionExportData {
			fresh, err := o.resolveExportData(ctx, req.Parameters)
			if err != nil {
				o.failCommunication(err)
				return
			}
			req.Parameters["data_to_export"] = fresh
		}

		result, err := o.executor.Execute(ctx, o.timeline, o.sessionID, req)
		if err != nil {
			o.setError(fmt.Sprintf("ขออภัย, เกิดข้อผิดพลาด: %s", err.Error()))
			return
		}

		// The menu block is the entire response; no model round-trip.
		if req.Kind == model.ActionShowMainMenu {
			continue
		}

		reply, err := o.session.SendFunctionResult(ctx, llm.FunctionCall{Name: call.Name, Args: req.Parameters}, result)
		if err != nil {
			o.failCommunication(err)
			return
		}
		if reply.Text != "" {
			o.appendAIText(reply.Text)
		}
	}
}

// SubmitUIAction runs one UI-initiated action (for example a button inside a
// rendered block). The action is always explained back to the model so the
// conversation stays coherent for the next user turn. Returns false when
// dropped because another turn is in flight.
func (o *Orchestrator) SubmitUIAction(ctx context.Context, req model.ActionRequest) bool {
	if !o.busy.CompareAndSwap(false, true) {
		return false
	}
	defer o.busy.Store(false)

	o.setError("")

	req.Parameters = cloneArgs(req.Parameters)

	if req.Kind == model.ActionExportData {
		fresh, err := o.resolveExportData(ctx, req.Parameters)
		if err != nil {
			o.failAction(err)
			return true
		}
		req.Parameters["data_to_export"] = fresh
	}

	result, err := o.executor.Execute(ctx, o.timeline, o.sessionID, req)
	if err != nil {
		o.setError(fmt.Sprintf("ขออภัย, เกิดข้อผิดพลาด: %s", err.Error()))
		return true
	}

	call := llm.FunctionCall{Name: string(req.Kind), Args: req.Parameters}
	reply, err := o.session.SendFunctionResult(ctx, call, result)
	if err != nil {
		o.failAction(err)
		return true
	}
	if reply.Text != "" {
		o.appendAIText(reply.Text)
	}

	return true
}

// resolveExportData issues the read-only ERP query named by report_type and
// returns its result as the export payload. The period for a financial
// summary is taken from the request itself (the model puts it inside
// data_to_export, UI requests inside params); it defaults to daily.
func (o *Orchestrator) resolveExportData(ctx context.Context, params map[string]any) (any, error) {
	reportType, _ := params["report_type"].(string)

	switch reportType {
	case model.ReportRoomStatus:
		return o.gateway.GetRoomStatus(ctx)
	case model.ReportFinancialSummary:
		return o.gateway.GetFinancialSummary(ctx, exportPeriod(params))
	case model.ReportMonthlyTenants:
		return o.gateway.GetMonthlyTenants(ctx)
	case model.ReportEmployees:
		return o.gateway.GetEmployees(ctx)
	default:
		return map[string]any{}, nil
	}
}

func exportPeriod(params map[string]any) string {
	for _, key := range []string{"data_to_export", "params"} {
		if nested, ok := params[key].(map[string]any); ok {
			if period, ok := nested["period"].(string); ok && period != "" {
				return period
			}
		}
	}
	return "daily"
}

// failCommunication records a model-communication failure: the error banner
// is replaced and an apology message is appended so the failure stays
// visible in the conversation history.
func (o *Orchestrator) failCommunication(err error) {
	o.logger.Error("turn failed", zap.Error(err))
	o.setError(fmt.Sprintf("ขออภัย, ไม่สามารถเชื่อมต่อกับ AI ได้: %s", err.Error()))
	o.appendAIText(fmt.Sprintf("ขออภัยครับ เกิดข้อผิดพลาดในการสื่อสาร: %s", err.Error()))
}

// failAction records a failure of a UI-initiated action.
func (o *Orchestrator) failAction(err error) {
	o.logger.Error("UI action failed", zap.Error(err))
	o.setError(fmt.Sprintf("ขออภัย, เกิดข้อผิดพลาด: %s", err.Error()))
	o.appendAIText(fmt.Sprintf("ขออภัยครับ เกิดข้อผิดพลาด: %s", err.Error()))
}

func (o *Orchestrator) appendAIText(text string) {
	msg := newMessage(o.sessionID, model.SenderAI)
	msg.Text = text
	o.timeline.Append(msg)
}

func cloneArgs(args map[string]any) map[string]any {
	cloned := make(map[string]any, len(args))
	for k, v := range args {
		cloned[k] = v
	}
	return cloned
}
