package db

import (
	"context"

	"github.com/fleetpos/fleet-pos/internal/models"
)

// VehicleCollection defines the interface for vehicle register operations.
type VehicleCollection interface {
	InsertVehicle(ctx context.Context, vehicle models.Vehicle) (string, error)
	FindVehicles(ctx context.Context) ([]models.Vehicle, error)
	FindVehicleByID(ctx context.Context, id string) (*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id string, vehicle models.Vehicle) error
	DeleteVehicle(ctx context.Context, id string) error
}

// IncomeCollection defines the interface for the append-only income ledger.
type IncomeCollection interface {
	InsertIncome(ctx context.Context, record models.IncomeRecord) (string, error)
	FindIncomes(ctx context.Context) ([]models.IncomeRecord, error)
}

// ExpenseCollection defines the interface for the append-only expense ledger.
type ExpenseCollection interface {
	InsertExpense(ctx context.Context, record models.ExpenseRecord) (string, error)
	FindExpenses(ctx context.Context) ([]models.ExpenseRecord, error)
}

// EmployeeCollection defines the interface for employee register operations.
type EmployeeCollection interface {
	InsertEmployee(ctx context.Context, employee models.Employee) (string, error)
	FindEmployees(ctx context.Context) ([]models.Employee, error)
	FindEmployeeByID(ctx context.Context, id string) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, id string, employee models.Employee) error
	DeleteEmployee(ctx context.Context, id string) error
	SetEmployeeStatus(ctx context.Context, id string, status string) error
}

// AttendanceCollection defines the interface for the append-only punch log.
type AttendanceCollection interface {
	InsertAttendance(ctx context.Context, record models.AttendanceRecord) (string, error)
	FindAttendance(ctx context.Context) ([]models.AttendanceRecord, error)
	FindAttendanceByEmployee(ctx context.Context, employeeID string) ([]models.AttendanceRecord, error)
}
