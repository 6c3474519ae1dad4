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

// MongoProductRepository stores products in the "products" collection.
type MongoProductRepository struct {
	col *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{col: db.Collection("products")}
}

// All returns every product, newest first.
func (r *MongoProductRepository) All(ctx context.Context) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	defer metrics.ObserveStoreQuery("products", "find", time.Now())

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("repositories: products find: %w", err)
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("repositories: products decode: %w", err)
	}
	return products, nil
}

// Create assigns a fresh ObjectID and timestamps, then inserts.
func (r *MongoProductRepository) Create(ctx context.Context, p *models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	defer metrics.ObserveStoreQuery("products", "insert", time.Now())

	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("repositories: products insert: %w", err)
	}
	return nil
}

// UpdateStock sets the stock level for one product.
func (r *MongoProductRepository) UpdateStock(ctx context.Context, id string, stock int) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	defer metrics.ObserveStoreQuery("products", "update", time.Now())

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("repositories: invalid product id %q", id)
	}

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"stock": stock, "updatedAt": time.Now().UTC()}},
	)
	if err != nil {
		return fmt.Errorf("repositories: products update: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
