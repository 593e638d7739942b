package erp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/baanpim/hotel-assistant/internal/model"
	"github.com/baanpim/hotel-assistant/pkg/logger"
)

func newTestClient(url string) *Client {
	return NewClient(url, 5*time.Second, logger.NewNop())
}

func TestInvokeSendsActionEnvelope(t *testing.T) {
	var gotBody map[string]any
	var gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.Write([]byte(`{"status":"ok","data":{"vacant":5,"occupied":3,"total":8}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	status, err := client.GetRoomStatus(context.Background())
	if err != nil {
		t.Fatalf("GetRoomStatus failed: %v", err)
	}

	if gotBody["action_type"] != "GET_STATUS" {
		t.Errorf("expected action_type GET_STATUS, got %v", gotBody["action_type"])
	}
	if gotContentType != "text/plain;charset=utf-8" {
		t.Errorf("unexpected content type %q", gotContentType)
	}
	want := model.RoomStatus{Vacant: 5, Occupied: 3, Total: 8}
	if *status != want {
		t.Errorf("expected %+v, got %+v", want, *status)
	}
}

func TestInvokeBackendError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","message":"room unavailable","stack":"at addBooking"}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.AddBooking(context.Background(), model.AddBookingParams{
		GuestName: "Somsak",
		RoomType:  "Standard",
		StartDate: "2025-10-19",
		EndDate:   "2025-10-20",
	})

	var backendErr *BackendError
	if !errors.As(err, &backendErr) {
		t.Fatalf("expected BackendError, got %v", err)
	}
	if backendErr.Message != "room unavailable" {
		t.Errorf("expected backend message, got %q", backendErr.Message)
	}
	if backendErr.Stack != "at addBooking" {
		t.Errorf("expected stack to be kept, got %q", backendErr.Stack)
	}
}

func TestInvokeNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.GetRoomStatus(context.Background())

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
	if netErr.Status == "" {
		t.Errorf("expected transport status text in error")
	}
}

func TestInvokeTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately unreachable

	client := newTestClient(srv.URL)
	_, err := client.GetRoomStatus(context.Background())

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}

func TestInvokeParameterPassThrough(t *testing.T) {
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.Write([]byte(`{"status":"ok","data":{"message":"saved","expenseId":"exp-1"}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	resp, err := client.AddExpense(context.Background(), map[string]any{
		"amount":      120.5,
		"description": "ค่ากาแฟ",
		"image_data":  "aGVsbG8=",
		"mime_type":   "image/jpeg",
	})
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
	if resp.ExpenseID != "exp-1" {
		t.Errorf("expected expense id exp-1, got %q", resp.ExpenseID)
	}

	params, _ := gotBody["parameters"].(map[string]any)
	if params["image_data"] != "aGVsbG8=" || params["mime_type"] != "image/jpeg" {
		t.Errorf("expected image payload passed through verbatim, got %v", params)
	}
}

func TestExportDataWrapsParameters(t *testing.T) {
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		json.Unmarshal(raw, &gotBody)
		w.Write([]byte(`{"status":"ok","data":{"message":"exported","fileUrl":"https://sheets.example/f1"}}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	resp, err := client.ExportData(context.Background(), model.ReportRoomStatus, map[string]any{"vacant": 5})
	if err != nil {
		t.Fatalf("ExportData failed: %v", err)
	}
	if resp.FileURL != "https://sheets.example/f1" {
		t.Errorf("unexpected file url %q", resp.FileURL)
	}

	params, _ := gotBody["parameters"].(map[string]any)
	if params["report_type"] != model.ReportRoomStatus {
		t.Errorf("expected report_type in parameters, got %v", params)
	}
	if _, ok := params["data_to_export"].(map[string]any); !ok {
		t.Errorf("expected data_to_export object, got %v", params["data_to_export"])
	}
}
