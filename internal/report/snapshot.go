package report

import "github.com/fleetpos/fleet-pos/internal/models"

// Snapshot is a read-only view of the record store's collections, ordered by
// insertion. The engine never mutates a snapshot; every stage is a pure
// function of its inputs.
type Snapshot struct {
	Vehicles   []models.Vehicle
	Incomes    []models.IncomeRecord
	Expenses   []models.ExpenseRecord
	Employees  []models.Employee
	Attendance []models.AttendanceRecord
}

// FilteredSet holds the transactional collections narrowed to a reporting
// window and scope, preserving the snapshot's relative order.
type FilteredSet struct {
	Incomes    []models.IncomeRecord
	Expenses   []models.ExpenseRecord
	Attendance []models.AttendanceRecord
}
