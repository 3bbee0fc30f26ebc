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

// MongoEmployeeCollection implements EmployeeCollection for MongoDB.
type MongoEmployeeCollection struct {
	Collection *mongo.Collection
}

// InsertEmployee inserts an employee and returns their canonical hex id.
// New employees default to active status.
func (c *MongoEmployeeCollection) InsertEmployee(ctx context.Context, employee models.Employee) (string, error) {
	if c.Collection == nil {
		return "", fmt.Errorf("mongo collection is nil")
	}
	if employee.ID.IsZero() {
		employee.ID = primitive.NewObjectID()
	}
	if employee.Status == "" {
		employee.Status = models.EmployeeActive
	}
	employee.CreatedAt = time.Now()
	employee.UpdatedAt = time.Now()

	_, err := c.Collection.InsertOne(ctx, employee)
	if err != nil {
		return "", err
	}
	return employee.ID.Hex(), nil
}

// FindEmployees returns every employee in insertion order.
func (c *MongoEmployeeCollection) FindEmployees(ctx context.Context) ([]models.Employee, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := c.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

// FindEmployeeByID finds an employee by their hex id.
func (c *MongoEmployeeCollection) FindEmployeeByID(ctx context.Context, id string) (*models.Employee, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid employee ID: %w", err)
	}

	var employee models.Employee
	err = c.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&employee)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("employee not found")
		}
		return nil, err
	}
	return &employee, nil
}

// UpdateEmployee updates an employee by their hex id.
func (c *MongoEmployeeCollection) UpdateEmployee(ctx context.Context, id string, employee models.Employee) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid employee ID: %w", err)
	}

	employee.UpdatedAt = time.Now()
	update := bson.M{"$set": bson.M{
		"name":       employee.Name,
		"nic":        employee.NIC,
		"phone":      employee.Phone,
		"email":      employee.Email,
		"position":   employee.Position,
		"salary":     employee.Salary,
		"vehicle_id": employee.VehicleID,
		"join_date":  employee.JoinDate,
		"status":     employee.Status,
		"updated_at": employee.UpdatedAt,
	}}
	result, err := c.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("employee not found")
	}
	return nil
}

// DeleteEmployee deletes an employee by their hex id.
func (c *MongoEmployeeCollection) DeleteEmployee(ctx context.Context, id string) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid employee ID: %w", err)
	}

	result, err := c.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("employee not found")
	}
	return nil
}

// SetEmployeeStatus flips an employee between active and inactive.
func (c *MongoEmployeeCollection) SetEmployeeStatus(ctx context.Context, id string, status string) error {
	if c.Collection == nil {
		return fmt.Errorf("mongo collection is nil")
	}
	if status != models.EmployeeActive && status != models.EmployeeInactive {
		return fmt.Errorf("invalid employee status: %q", status)
	}
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid employee ID: %w", err)
	}

	result, err := c.Collection.UpdateOne(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("employee not found")
	}
	return nil
}
