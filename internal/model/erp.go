package model

// ERP payload shapes. These mirror the backend wire format exactly; the
// assistant never transforms domain data, it only tags it for rendering.

// RoomStatus summarizes room occupancy.
type RoomStatus struct {
	Vacant   int `json:"vacant"`
	Occupied int `json:"occupied"`
	Total    int `json:"total"`
}

// PreBooking is a confirmed calendar entry.
type PreBooking struct {
	ID        string   `json:"id"`
	GuestName string   `json:"guest_name"`
	RoomID    string   `json:"room_id"`
	RoomType  string   `json:"room_type"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Dates     []string `json:"dates"`
}

// PendingBooking is a booking awaiting deposit payment.
type PendingBooking struct {
	ID            string  `json:"id"`
	GuestName     string  `json:"guest_name"`
	RoomID        string  `json:"room_id"`
	RoomType      string  `json:"room_type"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	TotalCost     float64 `json:"total_cost"`
	DepositAmount float64 `json:"deposit_amount"`
}

// RoomCounts breaks down the room inventory by type.
type RoomCounts struct {
	Standard int `json:"standard"`
	Twin     int `json:"twin"`
	Total    int `json:"total"`
}

// BookingCalendarData is the calendar view payload.
type BookingCalendarData struct {
	Bookings   []PreBooking `json:"bookings"`
	TotalRooms RoomCounts   `json:"totalRooms"`
}

// Revenue breaks down income for a reporting period.
type Revenue struct {
	Total          float64 `json:"total"`
	DailyRooms     float64 `json:"daily_rooms"`
	MonthlyTenants float64 `json:"monthly_tenants"`
}

// Expenses breaks down outgoings for a reporting period.
type Expenses struct {
	Total    float64 `json:"total"`
	General  float64 `json:"general"`
	Salaries float64 `json:"salaries"`
}

// FinancialSummary is the financial overview for a period.
type FinancialSummary struct {
	Period    string   `json:"period"`
	Revenue   Revenue  `json:"revenue"`
	Expenses  Expenses `json:"expenses"`
	NetProfit float64  `json:"net_profit"`
}

// MonthlyTenant is a long-stay tenant record.
type MonthlyTenant struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	RoomID     string  `json:"room_id"`
	RentAmount float64 `json:"rent_amount"`
}

// Employee is an employee registry record.
type Employee struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Salary   float64 `json:"salary"`
}

// PendingBookingResponse is the backend reply to a new booking.
type PendingBookingResponse struct {
	Message        string         `json:"message"`
	PendingBooking PendingBooking `json:"pendingBooking"`
}

// AddExpenseResponse is the backend reply to a recorded expense.
type AddExpenseResponse struct {
	Message   string `json:"message"`
	ExpenseID string `json:"expenseId"`
}

// ExportResponse is the backend reply to a report export.
type ExportResponse struct {
	Message string `json:"message"`
	FileURL string `json:"fileUrl"`
}
