package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fleetpos/fleet-pos/internal/models"
)

func TestWorkingHours_StandardShiftWithOvertime(t *testing.T) {
	hours, overtime, err := WorkingHours("08:00", "17:30")
	require.NoError(t, err)
	assert.Equal(t, 9.5, hours)
	assert.Equal(t, 1.5, overtime)
}

func TestWorkingHours_ShortShiftNoOvertime(t *testing.T) {
	hours, overtime, err := WorkingHours("09:00", "13:15")
	require.NoError(t, err)
	assert.Equal(t, 4.25, hours)
	assert.Equal(t, 0.0, overtime)
}

func TestWorkingHours_CheckoutBeforeCheckinClampsToZero(t *testing.T) {
	hours, overtime, err := WorkingHours("17:00", "08:00")
	require.NoError(t, err)
	assert.Equal(t, 0.0, hours)
	assert.Equal(t, 0.0, overtime)
}

func TestWorkingHours_ExactNominalWorkday(t *testing.T) {
	hours, overtime, err := WorkingHours("08:00", "16:00")
	require.NoError(t, err)
	assert.Equal(t, 8.0, hours)
	assert.Equal(t, 0.0, overtime)
}

func TestWorkingHours_InvalidTimes(t *testing.T) {
	_, _, err := WorkingHours("8 am", "17:00")
	assert.Error(t, err)

	_, _, err = WorkingHours("08:00", "")
	assert.Error(t, err)
}

func record(employeeID, typ string, day time.Time, ts time.Time) models.AttendanceRecord {
	return models.AttendanceRecord{
		ID:         primitive.NewObjectID(),
		EmployeeID: employeeID,
		Date:       day,
		Type:       typ,
		Timestamp:  ts,
	}
}

func TestLatestStatus_NoRecords(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, StatusNotMarked, LatestStatus(nil, "emp-1", day))
}

func TestLatestStatus_MostRecentTimestampWins(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	// Records deliberately appended out of chronological order: the derived
	// status must come from the latest timestamp, not from append order.
	records := []models.AttendanceRecord{
		record("emp-1", models.AttendanceCheckOut, day, day.Add(17*time.Hour)),
		record("emp-1", models.AttendanceCheckIn, day, day.Add(8*time.Hour)),
	}
	assert.Equal(t, StatusCheckedOut, LatestStatus(records, "emp-1", day))
}

func TestLatestStatus_IgnoresOtherEmployeesAndDays(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	other := day.AddDate(0, 0, -1)
	records := []models.AttendanceRecord{
		record("emp-2", models.AttendanceCheckIn, day, day.Add(8*time.Hour)),
		record("emp-1", models.AttendanceCheckOut, other, other.Add(17*time.Hour)),
		record("emp-1", models.AttendanceCheckIn, day, day.Add(9*time.Hour)),
	}
	assert.Equal(t, StatusCheckedIn, LatestStatus(records, "emp-1", day))
}

func TestFirstCheckin(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
	records := []models.AttendanceRecord{
		record("emp-1", models.AttendanceCheckOut, day, day.Add(12*time.Hour)),
		record("emp-1", models.AttendanceCheckIn, day, day.Add(8*time.Hour)),
		record("emp-1", models.AttendanceCheckIn, day, day.Add(13*time.Hour)),
	}

	first, ok := FirstCheckin(records, "emp-1", day)
	require.True(t, ok)
	assert.Equal(t, day.Add(8*time.Hour), first.Timestamp)

	_, ok = FirstCheckin(records, "emp-9", day)
	assert.False(t, ok)
}
