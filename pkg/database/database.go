// Package database owns the MongoDB connection shared by all repositories.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/vinayak/config"
)

var (
	client *mongo.Client
	db     *mongo.Database
)

// Connect dials MongoDB using the configured URI and verifies it with a
// ping. The API cannot serve anything without its document store, so the
// caller is expected to treat an error here as fatal.
func Connect(ctx context.Context) error {
	opts := options.Client().ApplyURI(config.MongoURI()).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(10 * time.Second).
		SetMaxPoolSize(50)

	c, err := mongo.Connect(ctx, opts)
	if err != nil {
		return fmt.Errorf("database: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx, nil); err != nil {
		_ = c.Disconnect(context.Background())
		return fmt.Errorf("database: ping: %w", err)
	}

	client = c
	db = c.Database(config.MongoDB())
	return ensureIndexes(ctx)
}

// DB returns the connected database. Panics when Connect has not run,
// which surfaces wiring mistakes immediately at boot.
func DB() *mongo.Database {
	if db == nil {
		panic("database: Connect must be called before DB")
	}
	return db
}

// Collection is shorthand for DB().Collection(name).
func Collection(name string) *mongo.Collection {
	return DB().Collection(name)
}

// Disconnect closes the client. Called during graceful shutdown.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// ensureIndexes creates the indexes the query paths rely on: recent-orders
// sorting and the unique user email constraint.
func ensureIndexes(ctx context.Context) error {
	idxCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	_, err := db.Collection("orders").Indexes().CreateOne(idxCtx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("database: orders index: %w", err)
	}

	_, err = db.Collection("users").Indexes().CreateOne(idxCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("database: users index: %w", err)
	}

	return nil
}
