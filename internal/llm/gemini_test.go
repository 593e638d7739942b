package llm

import (
	"reflect"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestFunctionResultPayload(t *testing.T) {
	tests := []struct {
		name   string
		result any
		want   map[string]any
	}{
		{
			name:   "object passes through",
			result: map[string]any{"vacant": 5.0},
			want:   map[string]any{"vacant": 5.0},
		},
		{
			name: "struct becomes object",
			result: struct {
				Status string `json:"status"`
			}{Status: "ok"},
			want: map[string]any{"status": "ok"},
		},
		{
			name:   "array is wrapped",
			result: []any{"a", "b"},
			want:   map[string]any{"result": []any{"a", "b"}},
		},
		{
			name:   "string is wrapped",
			result: "Action completed successfully.",
			want:   map[string]any{"result": "Action completed successfully."},
		},
		{
			name:   "number is wrapped",
			result: 42,
			want:   map[string]any{"result": 42.0},
		},
		{
			name:   "nil is wrapped",
			result: nil,
			want:   map[string]any{"result": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := functionResultPayload(tt.result)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("functionResultPayload(%v) = %v, want %v", tt.result, got, tt.want)
			}
		})
	}
}

func TestParseReply(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []genai.Part{
						genai.Text("กำลังตรวจสอบครับ "),
						genai.FunctionCall{Name: "GET_STATUS", Args: map[string]any{}},
						genai.FunctionCall{Name: "EXPORT_DATA", Args: map[string]any{"report_type": "ROOM_STATUS"}},
					},
				},
			},
		},
	}

	reply := parseReply(resp)

	if reply.Text != "กำลังตรวจสอบครับ " {
		t.Errorf("unexpected text %q", reply.Text)
	}
	if len(reply.FunctionCalls) != 2 {
		t.Fatalf("expected 2 function calls, got %d", len(reply.FunctionCalls))
	}
	// Call order must match the order the model returned.
	if reply.FunctionCalls[0].Name != "GET_STATUS" || reply.FunctionCalls[1].Name != "EXPORT_DATA" {
		t.Errorf("function calls out of order: %+v", reply.FunctionCalls)
	}
}

func TestParseReplyEmpty(t *testing.T) {
	reply := parseReply(&genai.GenerateContentResponse{})
	if reply.Text != "" || len(reply.FunctionCalls) != 0 {
		t.Errorf("expected empty reply, got %+v", reply)
	}
}

func TestToolCatalogCoversAllActions(t *testing.T) {
	want := map[string]bool{
		"SHOW_MAIN_MENU":          false,
		"GET_STATUS":              false,
		"GET_BOOKING_CALENDAR":    false,
		"ADD_BOOKING":             false,
		"GET_FINANCIAL_SUMMARY":   false,
		"GET_MONTHLY_TENANTS":     false,
		"GET_EMPLOYEE_MANAGEMENT": false,
		"ADD_EXPENSE":             false,
		"EXPORT_DATA":             false,
	}

	for _, decl := range toolCatalog() {
		seen, ok := want[decl.Name]
		if !ok {
			t.Errorf("unexpected tool declaration %q", decl.Name)
			continue
		}
		if seen {
			t.Errorf("duplicate tool declaration %q", decl.Name)
		}
		want[decl.Name] = true
		if decl.Description == "" {
			t.Errorf("tool %q has no description", decl.Name)
		}
	}

	for name, seen := range want {
		if !seen {
			t.Errorf("tool %q missing from catalog", name)
		}
	}
}
