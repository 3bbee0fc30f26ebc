package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/fleetpos/fleet-pos/internal/attendance"
	"github.com/fleetpos/fleet-pos/internal/models"
	"github.com/fleetpos/fleet-pos/internal/report"
)

// DashboardStats is the payload behind the dashboard view: headline totals
// for today and the current month plus the business-wide monthly trend.
type DashboardStats struct {
	TodayIncome     float64             `json:"today_income"`
	TodayExpenses   float64             `json:"today_expenses"`
	MonthIncome     float64             `json:"month_income"`
	MonthExpenses   float64             `json:"month_expenses"`
	MonthProfit     float64             `json:"month_profit"`
	VehicleCount    int                 `json:"vehicle_count"`
	ActiveEmployees int                 `json:"active_employees"`
	PresentToday    int                 `json:"present_today"`
	MonthlyTrend    []report.TrendPoint `json:"monthly_trend"`
}

// DashboardHandler handles dashboard statistics requests
type DashboardHandler struct {
	source SnapshotSource
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(source SnapshotSource) *DashboardHandler {
	return &DashboardHandler{source: source}
}

// Stats serves GET /api/dashboard/stats.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap, err := h.source.Load(r.Context())
	if err != nil {
		http.Error(w, "Failed to load records", http.StatusInternalServerError)
		return
	}

	stats := computeStats(snap, time.Now())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func computeStats(snap report.Snapshot, now time.Time) DashboardStats {
	stats := DashboardStats{
		VehicleCount: len(snap.Vehicles),
		MonthlyTrend: report.MonthlyTrend(snap.Incomes, snap.Expenses),
	}

	sameMonth := func(t time.Time) bool {
		return t.Year() == now.Year() && t.Month() == now.Month()
	}

	for _, in := range snap.Incomes {
		if attendance.SameDay(in.Date, now) {
			stats.TodayIncome += in.Amount
		}
		if sameMonth(in.Date) {
			stats.MonthIncome += in.Amount
		}
	}
	for _, ex := range snap.Expenses {
		if attendance.SameDay(ex.Date, now) {
			stats.TodayExpenses += ex.Amount
		}
		if sameMonth(ex.Date) {
			stats.MonthExpenses += ex.Amount
		}
	}
	stats.MonthProfit = stats.MonthIncome - stats.MonthExpenses

	for _, e := range snap.Employees {
		if e.Status != models.EmployeeActive {
			continue
		}
		stats.ActiveEmployees++
		if attendance.LatestStatus(snap.Attendance, e.ID.Hex(), now) != attendance.StatusNotMarked {
			stats.PresentToday++
		}
	}

	return stats
}
