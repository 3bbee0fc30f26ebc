package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/fleetpos/fleet-pos/internal/db"
	"github.com/fleetpos/fleet-pos/internal/models"
)

var validServiceTypes = map[string]bool{
	"full_service": true,
	"wash":         true,
	"repair":       true,
	"hire":         true,
	"oil_change":   true,
	"other":        true,
}

var validExpenseCategories = map[string]bool{
	"fuel":        true,
	"repair":      true,
	"insurance":   true,
	"license":     true,
	"spare_parts": true,
	"salary":      true,
	"other":       true,
}

var validPaymentMethods = map[string]bool{
	"cash":          true,
	"card":          true,
	"bank_transfer": true,
	"credit":        true,
}

// TransactionHandler handles the append-only income and expense ledgers
type TransactionHandler struct {
	incomes  db.IncomeCollection
	expenses db.ExpenseCollection
	vehicles db.VehicleCollection
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(incomes db.IncomeCollection, expenses db.ExpenseCollection, vehicles db.VehicleCollection) *TransactionHandler {
	return &TransactionHandler{
		incomes:  incomes,
		expenses: expenses,
		vehicles: vehicles,
	}
}

// HandleIncomes serves /api/incomes: GET lists, POST records.
func (h *TransactionHandler) HandleIncomes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listIncomes(w, r)
	case http.MethodPost:
		h.recordIncome(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleExpenses serves /api/expenses: GET lists, POST records.
func (h *TransactionHandler) HandleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listExpenses(w, r)
	case http.MethodPost:
		h.recordExpense(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *TransactionHandler) listIncomes(w http.ResponseWriter, r *http.Request) {
	records, err := h.incomes.FindIncomes(r.Context())
	if err != nil {
		http.Error(w, "Failed to load incomes", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []models.IncomeRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

func (h *TransactionHandler) recordIncome(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var record models.IncomeRecord
	if err := json.Unmarshal(body, &record); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if record.Amount <= 0 {
		http.Error(w, "Amount must be positive", http.StatusBadRequest)
		return
	}
	if !validServiceTypes[record.ServiceType] {
		http.Error(w, "Invalid service type", http.StatusBadRequest)
		return
	}
	if !validPaymentMethods[record.PaymentMethod] {
		http.Error(w, "Invalid payment method", http.StatusBadRequest)
		return
	}
	if record.VehicleID != "" {
		if _, err := h.vehicles.FindVehicleByID(r.Context(), record.VehicleID); err != nil {
			http.Error(w, "Vehicle not found", http.StatusBadRequest)
			return
		}
	}
	if record.Date.IsZero() {
		record.Date = time.Now()
	}

	id, err := h.incomes.InsertIncome(r.Context(), record)
	if err != nil {
		http.Error(w, "Failed to record income", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"id": id})
}

func (h *TransactionHandler) listExpenses(w http.ResponseWriter, r *http.Request) {
	records, err := h.expenses.FindExpenses(r.Context())
	if err != nil {
		http.Error(w, "Failed to load expenses", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []models.ExpenseRecord{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

func (h *TransactionHandler) recordExpense(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var record models.ExpenseRecord
	if err := json.Unmarshal(body, &record); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if record.Amount <= 0 {
		http.Error(w, "Amount must be positive", http.StatusBadRequest)
		return
	}
	if !validExpenseCategories[record.Category] {
		http.Error(w, "Invalid expense category", http.StatusBadRequest)
		return
	}
	if !validPaymentMethods[record.PaymentMethod] {
		http.Error(w, "Invalid payment method", http.StatusBadRequest)
		return
	}
	if record.VehicleID != "" {
		if _, err := h.vehicles.FindVehicleByID(r.Context(), record.VehicleID); err != nil {
			http.Error(w, "Vehicle not found", http.StatusBadRequest)
			return
		}
	}
	if record.Date.IsZero() {
		record.Date = time.Now()
	}

	id, err := h.expenses.InsertExpense(r.Context(), record)
	if err != nil {
		http.Error(w, "Failed to record expense", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"id": id})
}
