package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/vinayak/app/models"
	"github.com/shashiranjanraj/vinayak/pkg/metrics"
)

// MongoUserRepository stores users in the "users" collection. A unique
// index on email (created at connect time) backs ErrDuplicate.
type MongoUserRepository struct {
	col *mongo.Collection
}

func NewMongoUserRepository(db *mongo.Database) *MongoUserRepository {
	return &MongoUserRepository{col: db.Collection("users")}
}

// Create inserts a user, mapping the unique-index violation to ErrDuplicate.
func (r *MongoUserRepository) Create(ctx context.Context, u *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	defer metrics.ObserveStoreQuery("users", "insert", time.Now())

	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now().UTC()

	if _, err := r.col.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("repositories: users insert: %w", err)
	}
	return nil
}

// FindByEmail looks up a user by email, returning ErrNotFound when absent.
func (r *MongoUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	defer metrics.ObserveStoreQuery("users", "find", time.Now())

	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("repositories: users find: %w", err)
	}
	return &user, nil
}
