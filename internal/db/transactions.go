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

// MongoIncomeCollection implements IncomeCollection for MongoDB. The income
// ledger is append-only: records are never updated or deleted.
type MongoIncomeCollection struct {
	Collection *mongo.Collection
}

// InsertIncome appends an income record and returns its canonical hex id.
func (c *MongoIncomeCollection) InsertIncome(ctx context.Context, record models.IncomeRecord) (string, error) {
	if c.Collection == nil {
		return "", fmt.Errorf("mongo collection is nil")
	}
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	record.CreatedAt = time.Now()

	_, err := c.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	return record.ID.Hex(), nil
}

// FindIncomes returns every income record in insertion order.
func (c *MongoIncomeCollection) FindIncomes(ctx context.Context) ([]models.IncomeRecord, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := c.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.IncomeRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// MongoExpenseCollection implements ExpenseCollection for MongoDB. The
// expense ledger is append-only.
type MongoExpenseCollection struct {
	Collection *mongo.Collection
}

// InsertExpense appends an expense record and returns its canonical hex id.
func (c *MongoExpenseCollection) InsertExpense(ctx context.Context, record models.ExpenseRecord) (string, error) {
	if c.Collection == nil {
		return "", fmt.Errorf("mongo collection is nil")
	}
	if record.ID.IsZero() {
		record.ID = primitive.NewObjectID()
	}
	record.CreatedAt = time.Now()

	_, err := c.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", err
	}
	return record.ID.Hex(), nil
}

// FindExpenses returns every expense record in insertion order.
func (c *MongoExpenseCollection) FindExpenses(ctx context.Context) ([]models.ExpenseRecord, error) {
	if c.Collection == nil {
		return nil, fmt.Errorf("mongo collection is nil")
	}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := c.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.ExpenseRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}
