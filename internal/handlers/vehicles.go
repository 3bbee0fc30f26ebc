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

var validVehicleTypes = map[string]bool{
	"three_wheeler": true,
	"car":           true,
	"van":           true,
	"bike":          true,
	"lorry":         true,
}

// VehicleHandler handles vehicle register requests
type VehicleHandler struct {
	vehicles db.VehicleCollection
}

// NewVehicleHandler creates a new vehicle handler
func NewVehicleHandler(vehicles db.VehicleCollection) *VehicleHandler {
	return &VehicleHandler{vehicles: vehicles}
}

// Handle serves /api/vehicles: GET lists, POST registers.
func (h *VehicleHandler) Handle(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.create(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleByID serves /api/vehicles/{id}: GET, PUT, DELETE.
func (h *VehicleHandler) HandleByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/vehicles/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Vehicle ID required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodPut:
		h.update(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *VehicleHandler) list(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicles.FindVehicles(r.Context())
	if err != nil {
		http.Error(w, "Failed to load vehicles", http.StatusInternalServerError)
		return
	}
	if vehicles == nil {
		vehicles = []models.Vehicle{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vehicles)
}

func (h *VehicleHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var vehicle models.Vehicle
	if err := json.Unmarshal(body, &vehicle); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if vehicle.VehicleNumber == "" || vehicle.OwnerNIC == "" {
		http.Error(w, "Vehicle number and owner NIC are required", http.StatusBadRequest)
		return
	}
	if !validVehicleTypes[vehicle.VehicleType] {
		http.Error(w, "Invalid vehicle type", http.StatusBadRequest)
		return
	}
	if vehicle.RegisterDate.IsZero() {
		vehicle.RegisterDate = time.Now()
	}

	id, err := h.vehicles.InsertVehicle(r.Context(), vehicle)
	if err != nil {
		http.Error(w, "Failed to register vehicle", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"id": id})
}

func (h *VehicleHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	vehicle, err := h.vehicles.FindVehicleByID(r.Context(), id)
	if err != nil {
		http.Error(w, "Vehicle not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(vehicle)
}

func (h *VehicleHandler) update(w http.ResponseWriter, r *http.Request, id string) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	var vehicle models.Vehicle
	if err := json.Unmarshal(body, &vehicle); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if vehicle.VehicleType != "" && !validVehicleTypes[vehicle.VehicleType] {
		http.Error(w, "Invalid vehicle type", http.StatusBadRequest)
		return
	}

	if err := h.vehicles.UpdateVehicle(r.Context(), id, vehicle); err != nil {
		http.Error(w, "Failed to update vehicle", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Vehicle updated successfully"})
}

func (h *VehicleHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.vehicles.DeleteVehicle(r.Context(), id); err != nil {
		http.Error(w, "Failed to delete vehicle", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Vehicle deleted successfully"})
}
