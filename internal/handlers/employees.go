package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fleetpos/fleet-pos/internal/db"
	"github.com/fleetpos/fleet-pos/internal/models"
)

// EmployeeHandler handles employee register requests
type EmployeeHandler struct {
	employees db.EmployeeCollection
	vehicles  db.VehicleCollection
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(employees db.EmployeeCollection, vehicles db.VehicleCollection) *EmployeeHandler {
	return &EmployeeHandler{employees: employees, vehicles: vehicles}
}

// Handle serves /api/employees: GET lists, POST registers.
func (h *EmployeeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleByID serves /api/employees/{id} and /api/employees/{id}/status.
func (h *EmployeeHandler) HandleByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/employees/")
	if rest == "" {
		http.Error(w, "Employee ID required", http.StatusBadRequest)
		return
	}

	if id, ok := strings.CutSuffix(rest, "/status"); ok {
		h.setStatus(w, r, id)
		return
	}
	if strings.Contains(rest, "/") {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, rest)
	case http.MethodPut:
		h.update(w, r, rest)
	case http.MethodDelete:
		h.delete(w, r, rest)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *EmployeeHandler) list(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employees.FindEmployees(r.Context())
	if err != nil {
		http.Error(w, "Failed to load employees", http.StatusInternalServerError)
		return
	}
	if employees == nil {
		employees = []models.Employee{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(employees)
}

func (h *EmployeeHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var employee models.Employee
	if err := json.Unmarshal(body, &employee); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if employee.Name == "" || employee.NIC == "" {
		http.Error(w, "Name and NIC are required", http.StatusBadRequest)
		return
	}
	if employee.VehicleID != "" {
		if _, err := h.vehicles.FindVehicleByID(r.Context(), employee.VehicleID); err != nil {
			http.Error(w, "Assigned vehicle not found", http.StatusBadRequest)
			return
		}
	}
	if employee.JoinDate.IsZero() {
		employee.JoinDate = time.Now()
	}

	id, err := h.employees.InsertEmployee(r.Context(), employee)
	if err != nil {
		http.Error(w, "Failed to register employee", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"id": id})
}

func (h *EmployeeHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	employee, err := h.employees.FindEmployeeByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Employee not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(employee)
}

func (h *EmployeeHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var employee models.Employee
	if err := json.Unmarshal(body, &employee); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.employees.UpdateEmployee(r.Context(), id, employee); err != nil {
		http.Error(w, "Failed to update employee", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Employee updated successfully"})
}

func (h *EmployeeHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.employees.DeleteEmployee(r.Context(), id); err != nil {
		http.Error(w, "Failed to delete employee", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Employee deleted successfully"})
}

func (h *EmployeeHandler) setStatus(w http.ResponseWriter, r *http.Request, id string) {
	if r.Method != http.MethodPut {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var statusReq struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(body, &statusReq); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.employees.SetEmployeeStatus(r.Context(), id, statusReq.Status); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Employee status updated"})
}
