package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/vinayak/app/models"
	"github.com/shashiranjanraj/vinayak/pkg/metrics"
)

// DefaultRecentLimit bounds the dashboard's recent-orders feed.
const DefaultRecentLimit int64 = 20

// MongoOrderRepository stores orders in the "orders" collection.
type MongoOrderRepository struct {
	col *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) *MongoOrderRepository {
	return &MongoOrderRepository{col: db.Collection("orders")}
}

// Recent returns up to limit orders sorted by creation time descending.
// limit <= 0 falls back to DefaultRecentLimit.
func (r *MongoOrderRepository) Recent(ctx context.Context, limit int64) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	defer metrics.ObserveStoreQuery("orders", "find", time.Now())

	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("repositories: orders find: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("repositories: orders decode: %w", err)
	}
	return orders, nil
}

// Create assigns an ObjectID and creation time, then inserts.
func (r *MongoOrderRepository) Create(ctx context.Context, o *models.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	defer metrics.ObserveStoreQuery("orders", "insert", time.Now())

	o.ID = primitive.NewObjectID()
	o.CreatedAt = time.Now().UTC()

	if _, err := r.col.InsertOne(ctx, o); err != nil {
		return fmt.Errorf("repositories: orders insert: %w", err)
	}
	return nil
}
