package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fleetpos/fleet-pos/internal/models"
)

// MongoAttendanceCollection implements AttendanceCollection for MongoDB.
// The punch log is append-only.
type MongoAttendanceCollection struct {
	Collection *mongo.Collection
}

// InsertAttendance appends a punch record and returns its canonical hex id.
func (c *MongoAttendanceCollection) InsertAttendance(ctx context.Context, record models.AttendanceRecord) (string, error) {
	if c.Collection == nil {
		return "", fmt.Errorf("mongo collection is nil")
	}
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	record.CreatedAt = time.Now()

	_, err := c.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	return record.ID.Hex(), nil
}

// FindAttendance returns every punch record in insertion order.
func (c *MongoAttendanceCollection) FindAttendance(ctx context.Context) ([]models.AttendanceRecord, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	return c.find(ctx, bson.M{})
}

// FindAttendanceByEmployee returns one employee's punch records in
// insertion order.
func (c *MongoAttendanceCollection) FindAttendanceByEmployee(ctx context.Context, employeeID string) ([]models.AttendanceRecord, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	return c.find(ctx, bson.M{"employee_id": employeeID})
}

func (c *MongoAttendanceCollection) find(ctx context.Context, filter bson.M) ([]models.AttendanceRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := c.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.AttendanceRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
