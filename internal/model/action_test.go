package model

import (
	"testing"
)

func TestActionRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     ActionRequest
		wantErr bool
	}{
		{
			name: "valid booking",
			req: ActionRequest{
				Kind: ActionAddBooking,
				Parameters: map[string]any{
					"guest_name": "คุณสมชาย",
					"room_type":  "Standard",
					"start_date": "2025-10-19",
					"end_date":   "2025-10-20",
				},
			},
		},
		{
			name: "booking with bad room type",
			req: ActionRequest{
				Kind: ActionAddBooking,
				Parameters: map[string]any{
					"guest_name": "คุณสมชาย",
					"room_type":  "Deluxe",
					"start_date": "2025-10-19",
					"end_date":   "2025-10-20",
				},
			},
			wantErr: true,
		},
		{
			name: "booking with malformed date",
			req: ActionRequest{
				Kind: ActionAddBooking,
				Parameters: map[string]any{
					"guest_name": "คุณสมชาย",
					"room_type":  "Standard Twin",
					"start_date": "19/10/2025",
					"end_date":   "2025-10-20",
				},
			},
			wantErr: true,
		},
		{
			name: "booking missing guest",
			req: ActionRequest{
				Kind: ActionAddBooking,
				Parameters: map[string]any{
					"room_type":  "Standard",
					"start_date": "2025-10-19",
					"end_date":   "2025-10-20",
				},
			},
			wantErr: true,
		},
		{
			name: "valid summary period",
			req: ActionRequest{
				Kind:       ActionFinancialSummary,
				Parameters: map[string]any{"period": "monthly"},
			},
		},
		{
			name: "invalid summary period",
			req: ActionRequest{
				Kind:       ActionFinancialSummary,
				Parameters: map[string]any{"period": "yearly"},
			},
			wantErr: true,
		},
		{
			name: "valid expense",
			req: ActionRequest{
				Kind:       ActionAddExpense,
				Parameters: map[string]any{"amount": 250.0, "description": "ค่าวัสดุ"},
			},
		},
		{
			name: "expense with zero amount",
			req: ActionRequest{
				Kind:       ActionAddExpense,
				Parameters: map[string]any{"amount": 0, "description": "ค่าวัสดุ"},
			},
			wantErr: true,
		},
		{
			name: "valid export",
			req: ActionRequest{
				Kind:       ActionExportData,
				Parameters: map[string]any{"report_type": ReportRoomStatus, "data_to_export": map[string]any{}},
			},
		},
		{
			name: "export with unknown report type",
			req: ActionRequest{
				Kind:       ActionExportData,
				Parameters: map[string]any{"report_type": "GUEST_LIST"},
			},
			wantErr: true,
		},
		{
			name: "parameterless kind always passes",
			req:  ActionRequest{Kind: ActionGetStatus},
		},
		{
			name: "unknown kind passes validation",
			req:  ActionRequest{Kind: ActionKind("DO_SOMETHING")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeParams(t *testing.T) {
	var p AddExpenseParams
	err := DecodeParams(map[string]any{
		"amount":      99.0,
		"description": "ค่ากาแฟ",
		"image_data":  "aGVsbG8=",
		"mime_type":   "image/png",
	}, &p)
	if err != nil {
		t.Fatalf("DecodeParams failed: %v", err)
	}
	if p.Amount != 99.0 || p.ImageData != "aGVsbG8=" || p.MIMEType != "image/png" {
		t.Errorf("unexpected decode: %+v", p)
	}
}
