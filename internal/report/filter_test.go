package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fleetpos/fleet-pos/internal/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func income(vehicleID string, amount float64, date time.Time) models.IncomeRecord {
	return models.IncomeRecord{
		ID:            primitive.NewObjectID(),
		VehicleID:     vehicleID,
		Amount:        amount,
		ServiceType:   "wash",
		Date:          date,
		PaymentMethod: "cash",
	}
}

func expense(vehicleID string, amount float64, category string, date time.Time) models.ExpenseRecord {
	return models.ExpenseRecord{
		ID:            primitive.NewObjectID(),
		VehicleID:     vehicleID,
		Amount:        amount,
		Category:      category,
		Date:          date,
		PaymentMethod: "cash",
	}
}

func punch(employeeID, typ string, date time.Time, clock string, hours float64) models.AttendanceRecord {
	return models.AttendanceRecord{
		ID:           primitive.NewObjectID(),
		EmployeeID:   employeeID,
		Date:         date,
		Time:         clock,
		Type:         typ,
		WorkingHours: hours,
		Timestamp:    date,
	}
}

func TestFilter_DateWindowInclusive(t *testing.T) {
	v := primitive.NewObjectID().Hex()
	snap := Snapshot{
		Incomes: []models.IncomeRecord{
			income(v, 10, at(2025, time.March, 1, 0, 0)),    // first instant of start day
			income(v, 20, at(2025, time.March, 15, 12, 30)), // middle
			income(v, 30, at(2025, time.March, 31, 23, 59)), // last minute of end day
			income(v, 40, at(2025, time.April, 1, 0, 0)),    // outside
			income(v, 50, at(2025, time.February, 28, 23, 59)),
		},
	}
	cfg := Config{StartDate: day(2025, time.March, 1), EndDate: day(2025, time.March, 31)}

	fs := Filter(snap, cfg)
	assert.Len(t, fs.Incomes, 3)
	assert.Equal(t, 10.0, fs.Incomes[0].Amount)
	assert.Equal(t, 20.0, fs.Incomes[1].Amount)
	assert.Equal(t, 30.0, fs.Incomes[2].Amount)
}

func TestFilter_VehicleScope(t *testing.T) {
	v1 := primitive.NewObjectID().Hex()
	v2 := primitive.NewObjectID().Hex()
	d := day(2025, time.March, 10)
	snap := Snapshot{
		Incomes: []models.IncomeRecord{
			income(v1, 100, d),
			income(v2, 200, d),
		},
		Expenses: []models.ExpenseRecord{
			expense(v1, 10, "fuel", d),
			expense(v2, 20, "fuel", d),
		},
	}
	cfg := Config{
		StartDate:     day(2025, time.March, 1),
		EndDate:       day(2025, time.March, 31),
		VehicleFilter: v2,
	}

	fs := Filter(snap, cfg)
	assert.Len(t, fs.Incomes, 1)
	assert.Equal(t, v2, fs.Incomes[0].VehicleID)
	assert.Len(t, fs.Expenses, 1)
	assert.Equal(t, v2, fs.Expenses[0].VehicleID)
}

func TestFilter_EmployeeScope(t *testing.T) {
	e1 := primitive.NewObjectID().Hex()
	e2 := primitive.NewObjectID().Hex()
	d := day(2025, time.March, 10)
	snap := Snapshot{
		Attendance: []models.AttendanceRecord{
			punch(e1, models.AttendanceCheckIn, d, "08:00", 0),
			punch(e2, models.AttendanceCheckIn, d, "08:30", 0),
		},
	}
	cfg := Config{
		StartDate:      day(2025, time.March, 1),
		EndDate:        day(2025, time.March, 31),
		EmployeeFilter: e1,
	}

	fs := Filter(snap, cfg)
	assert.Len(t, fs.Attendance, 1)
	assert.Equal(t, e1, fs.Attendance[0].EmployeeID)
}

func TestFilter_InvertedRangeYieldsEmptySet(t *testing.T) {
	v := primitive.NewObjectID().Hex()
	snap := Snapshot{
		Incomes: []models.IncomeRecord{income(v, 100, day(2025, time.March, 10))},
	}
	cfg := Config{StartDate: day(2025, time.March, 31), EndDate: day(2025, time.March, 1)}

	fs := Filter(snap, cfg)
	assert.Empty(t, fs.Incomes)
	assert.Empty(t, fs.Expenses)
	assert.Empty(t, fs.Attendance)
}

func TestFilter_PreservesRelativeOrder(t *testing.T) {
	v := primitive.NewObjectID().Hex()
	snap := Snapshot{
		Incomes: []models.IncomeRecord{
			income(v, 3, day(2025, time.March, 20)),
			income(v, 1, day(2025, time.March, 5)),
			income(v, 2, day(2025, time.March, 12)),
		},
	}
	cfg := Config{StartDate: day(2025, time.March, 1), EndDate: day(2025, time.March, 31)}

	fs := Filter(snap, cfg)
	// Insertion order, not date order.
	assert.Equal(t, []float64{3, 1, 2}, []float64{fs.Incomes[0].Amount, fs.Incomes[1].Amount, fs.Incomes[2].Amount})
}

func TestFilter_EmptyFiltersMeanAll(t *testing.T) {
	v := primitive.NewObjectID().Hex()
	e := primitive.NewObjectID().Hex()
	d := day(2025, time.March, 10)
	snap := Snapshot{
		Incomes:    []models.IncomeRecord{income(v, 100, d)},
		Attendance: []models.AttendanceRecord{punch(e, models.AttendanceCheckIn, d, "08:00", 0)},
	}
	cfg := Config{StartDate: day(2025, time.March, 1), EndDate: day(2025, time.March, 31)}

	fs := Filter(snap, cfg)
	assert.Len(t, fs.Incomes, 1)
	assert.Len(t, fs.Attendance, 1)
}
