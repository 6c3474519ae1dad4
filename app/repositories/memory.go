package repositories

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vinayak/app/models"
)

// In-memory implementations backing service and controller tests. They
// honour the same ordering and error contracts as the Mongo versions.

type MemoryProductRepository struct {
	mu       sync.Mutex
	products []models.Product

	// FailAll forces All to return this error, for failure-path tests.
	FailAll error
}

func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{}
}

func (r *MemoryProductRepository) All(context.Context) ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.FailAll != nil {
		return nil, r.FailAll
	}
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *MemoryProductRepository) Create(_ context.Context, p *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	r.products = append([]models.Product{*p}, r.products...)
	return nil
}

func (r *MemoryProductRepository) UpdateStock(_ context.Context, id string, stock int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.products {
		if r.products[i].ID.Hex() == id {
			r.products[i].Stock = stock
			r.products[i].UpdatedAt = time.Now().UTC()
			return nil
		}
	}
	return ErrNotFound
}

type MemoryOrderRepository struct {
	mu     sync.Mutex
	orders []models.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

func (r *MemoryOrderRepository) Recent(_ context.Context, limit int64) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	n := int64(len(r.orders))
	if n > limit {
		n = limit
	}
	out := make([]models.Order, n)
	copy(out, r.orders[:n])
	return out, nil
}

func (r *MemoryOrderRepository) Create(_ context.Context, o *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.ID = primitive.NewObjectID()
	o.CreatedAt = time.Now().UTC()
	r.orders = append([]models.Order{*o}, r.orders...)
	return nil
}

type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: map[string]models.User{}}
}

func (r *MemoryUserRepository) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[u.Email]; exists {
		return ErrDuplicate
	}
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now().UTC()
	r.users[u.Email] = *u
	return nil
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[email]; ok {
		return &u, nil
	}
	return nil, ErrNotFound
}
