package services

import (
	"context"
	"strings"
	"time"

	"github.com/shashiranjanraj/vinayak/app/models"
	"github.com/shashiranjanraj/vinayak/app/repositories"
	"github.com/shashiranjanraj/vinayak/pkg/cache"
	"github.com/shashiranjanraj/vinayak/pkg/event"
	"github.com/shashiranjanraj/vinayak/pkg/logger"
)

const (
	productsCacheKey = "products:all"
	productsCacheTTL = 30 * time.Second
)

// MissingFieldsMessage is the exact 400 body text for an incomplete
// product submission. The dashboard matches on it, so treat it as frozen.
const MissingFieldsMessage = "Name, price, and category are required."

// ProductInput is the POST /api/products request body. Price is a pointer
// so a missing field can be told apart from an explicit zero.
type ProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
	IsFeatured  bool     `json:"isFeatured"`
	Image       string   `json:"image"`
}

type ProductService struct {
	repo repositories.ProductRepository
}

func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// List returns the full catalog, cache-aside on Redis. A cache failure is
// invisible to callers; the store is always the source of truth.
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	var cached []models.Product
	if cache.Get(productsCacheKey, &cached) {
		return cached, nil
	}

	products, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	if err := cache.Set(productsCacheKey, products, productsCacheTTL); err != nil {
		logger.WithCtx(ctx).Warn("product cache set failed", "error", err)
	}
	return products, nil
}

// Create validates and persists a new product. Name, price and category
// must all be present; anything less is the frozen 400 message.
func (s *ProductService) Create(ctx context.Context, in ProductInput) (*models.Product, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" || in.Price == nil || *in.Price < 0 {
		return nil, &ErrValidation{Message: MissingFieldsMessage}
	}

	stock := in.Stock
	if stock < 0 {
		stock = 0
	}

	p := &models.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		Price:       *in.Price,
		Category:    in.Category,
		Stock:       stock,
		IsFeatured:  in.IsFeatured,
		Image:       in.Image,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	if err := cache.Del(productsCacheKey); err != nil {
		logger.WithCtx(ctx).Warn("product cache invalidation failed", "error", err)
	}
	event.FireAsync("product.created", *p)

	return p, nil
}
