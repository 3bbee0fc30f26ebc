package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExpenseRecord represents one business expense against a vehicle.
// Expense records are append-only.
type ExpenseRecord struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	VehicleID     string             `bson:"vehicle_id" json:"vehicle_id"`
	Amount        float64            `bson:"amount" json:"amount"`     // in LKR
	Category      string             `bson:"category" json:"category"` // "fuel", "repair", "insurance", "license", "spare_parts", "salary", "other"
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	Date          time.Time          `bson:"date" json:"date"`
	PaymentMethod string             `bson:"payment_method" json:"payment_method"` // "cash", "card", "bank_transfer", "credit"
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
