package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance record types.
const (
	AttendanceCheckIn  = "checkin"
	AttendanceCheckOut = "checkout"
)

// AttendanceRecord represents one check-in or check-out punch. Records are
// append-only; multiple checkin/checkout pairs per employee per day are
// permitted. WorkingHours and Overtime are populated only on checkout
// records, computed from the matching same-day check-in time.
type AttendanceRecord struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EmployeeID   string             `bson:"employee_id" json:"employee_id"`
	Date         time.Time          `bson:"date" json:"date"`
	Time         string             `bson:"time" json:"time"` // "HH:MM", local time of day
	Type         string             `bson:"type" json:"type"` // "checkin" or "checkout"
	Notes        string             `bson:"notes,omitempty" json:"notes,omitempty"`
	WorkingHours float64            `bson:"working_hours,omitempty" json:"working_hours,omitempty"`
	Overtime     float64            `bson:"overtime,omitempty" json:"overtime,omitempty"`
	Timestamp    time.Time          `bson:"timestamp" json:"timestamp"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}
