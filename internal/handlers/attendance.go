package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fleetpos/fleet-pos/internal/attendance"
	"github.com/fleetpos/fleet-pos/internal/db"
	"github.com/fleetpos/fleet-pos/internal/models"
)

// AttendanceHandler handles the punch log
type AttendanceHandler struct {
	records   db.AttendanceCollection
	employees db.EmployeeCollection
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(records db.AttendanceCollection, employees db.EmployeeCollection) *AttendanceHandler {
	return &AttendanceHandler{records: records, employees: employees}
}

// Handle serves /api/attendance: GET lists the full log, POST marks a punch.
func (h *AttendanceHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.mark(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleByEmployee serves /api/attendance/employee/{id} and
// /api/attendance/employee/{id}/status.
func (h *AttendanceHandler) HandleByEmployee(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/attendance/employee/")
	if rest == "" {
		http.Error(w, "Employee ID required", http.StatusBadRequest)
		return
	}

	if id, ok := strings.CutSuffix(rest, "/status"); ok {
		h.todayStatus(w, r, id)
		return
	}
	if strings.Contains(rest, "/") {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	h.listByEmployee(w, r, rest)
}

func (h *AttendanceHandler) list(w http.ResponseWriter, r *http.Request) {
	records, err := h.records.FindAttendance(r.Context())
	if err != nil {
		http.Error(w, "Failed to load attendance", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []models.AttendanceRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

func (h *AttendanceHandler) listByEmployee(w http.ResponseWriter, r *http.Request, employeeID string) {
	records, err := h.records.FindAttendanceByEmployee(r.Context(), employeeID)
	if err != nil {
		http.Error(w, "Failed to load attendance", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []models.AttendanceRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

func (h *AttendanceHandler) todayStatus(w http.ResponseWriter, r *http.Request, employeeID string) {
	records, err := h.records.FindAttendanceByEmployee(r.Context(), employeeID)
	if err != nil {
		http.Error(w, "Failed to load attendance", http.StatusInternalServerError)
		return
	}

	status := attendance.LatestStatus(records, employeeID, time.Now())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"employee_id": employeeID,
		"status":      status,
	})
}

// mark records a check-in or check-out. A check-out looks up the same-day
// check-in and stamps working hours and overtime onto the new record.
func (h *AttendanceHandler) mark(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var record models.AttendanceRecord
	if err := json.Unmarshal(body, &record); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if record.EmployeeID == "" {
		http.Error(w, "Employee ID is required", http.StatusBadRequest)
		return
	}
	if record.Type != models.AttendanceCheckIn && record.Type != models.AttendanceCheckOut {
		http.Error(w, "Type must be checkin or checkout", http.StatusBadRequest)
		return
	}

	employee, err := h.employees.FindEmployeeByID(r.Context(), record.EmployeeID)
	if err != nil {
		http.Error(w, "Employee not found", http.StatusBadRequest)
		return
	}
	if employee.Status != models.EmployeeActive {
		http.Error(w, "Employee is inactive", http.StatusBadRequest)
		return
	}

	now := time.Now()
	if record.Date.IsZero() {
		record.Date = now
	}
	if record.Time == "" {
		record.Time = now.Format("15:04")
	}
	record.Timestamp = now

	if record.Type == models.AttendanceCheckOut {
		existing, err := h.records.FindAttendanceByEmployee(r.Context(), record.EmployeeID)
		if err != nil {
			http.Error(w, "Failed to load attendance", http.StatusInternalServerError)
			return
		}
		checkin, ok := attendance.FirstCheckin(existing, record.EmployeeID, record.Date)
		if !ok {
			http.Error(w, "No check-in found for today", http.StatusBadRequest)
			return
		}
		hours, overtime, err := attendance.WorkingHours(checkin.Time, record.Time)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		record.WorkingHours = hours
		record.Overtime = overtime
	}

	id, err := h.records.InsertAttendance(r.Context(), record)
	if err != nil {
		http.Error(w, "Failed to mark attendance", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"id":            id,
		"working_hours": record.WorkingHours,
		"overtime":      record.Overtime,
	})
}
