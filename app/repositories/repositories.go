// Package repositories is the persistence layer. Interfaces are defined
// here so services and tests can substitute in-memory fakes; the concrete
// implementations talk to MongoDB.
package repositories

import (
	"context"
	"errors"

	"github.com/shashiranjanraj/vinayak/app/models"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("repositories: not found")

// ErrDuplicate is returned on unique-key violations (user email).
var ErrDuplicate = errors.New("repositories: duplicate key")

// ProductRepository persists catalog items.
type ProductRepository interface {
	All(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	UpdateStock(ctx context.Context, id string, stock int) error
}

// OrderRepository persists customer orders.
type OrderRepository interface {
	Recent(ctx context.Context, limit int64) ([]models.Order, error)
	Create(ctx context.Context, o *models.Order) error
}

// UserRepository persists registered customers.
type UserRepository interface {
	Create(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}
