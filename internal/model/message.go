// Package model defines data structures for the hotel assistant.
package model

import (
	"time"
)

// Sender identifies who produced a timeline message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// BlockType tags a structured ERP result for rendering.
type BlockType string

const (
	BlockMainMenu          BlockType = "MAIN_MENU"
	BlockRoomStatus        BlockType = "ROOM_STATUS"
	BlockBookingCalendar   BlockType = "BOOKING_CALENDAR"
	BlockBookingConfirmed  BlockType = "BOOKING_CONFIRMATION"
	BlockPendingBooking    BlockType = "BOOKING_PENDING_PAYMENT"
	BlockFinancialSummary  BlockType = "FINANCIAL_SUMMARY"
	BlockEmployeeList      BlockType = "EMPLOYEE_MANAGEMENT"
	BlockMonthlyTenantList BlockType = "MONTHLY_TENANT_MANAGEMENT"
	BlockReportLink        BlockType = "REPORT_LINK"
)

// Block is a structured projection of an ERP result attached to a message.
// Data carries the backend payload verbatim; the assistant only tags it.
type Block struct {
	Type BlockType `json:"type"`
	Data any       `json:"data,omitempty"`
}

// ReportLink is the payload for a REPORT_LINK block.
type ReportLink struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

// Message is one entry in the conversation timeline. A message carries at
// least one of text, image or block, and is immutable once appended.
type Message struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Sender    Sender    `json:"sender"`
	Text      string    `json:"text,omitempty"`
	ImageURL  string    `json:"image_url,omitempty"`
	Block     *Block    `json:"block,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Attachment is a user-supplied image carried alongside a turn, already
// encoded for the ERP backend.
type Attachment struct {
	Data     string `json:"data"`
	MIMEType string `json:"mime_type"`
}

// SendTurnRequest is the request to submit a user turn.
type SendTurnRequest struct {
	Text       string      `json:"text"`
	Attachment *Attachment `json:"attachment,omitempty"`
}

// TimelineResponse is the response for reading a session timeline.
type TimelineResponse struct {
	Messages []Message `json:"messages"`
	Busy     bool      `json:"busy"`
	Error    string    `json:"error,omitempty"`
}

// SessionResponse is returned when a session is created.
type SessionResponse struct {
	SessionID string    `json:"session_id"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
}
