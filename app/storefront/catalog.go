// Package storefront holds the customer-facing catalog state: one fetch
// at page load, a loading flag, and nothing else.
package storefront

import (
	"context"
	"sync"

	"github.com/shashiranjanraj/vinayak/app/models"
	"github.com/shashiranjanraj/vinayak/pkg/logger"
)

// ProductLister is the slice of the store client the catalog needs.
type ProductLister interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// Catalog is a one-shot fetcher. Loading starts true and flips false when
// Load completes, success or not. A failed fetch leaves the catalog empty
// and logs; the customer just sees an empty shop. No retry.
type Catalog struct {
	api ProductLister

	mu       sync.Mutex
	products []models.Product
	loading  bool
}

func NewCatalog(api ProductLister) *Catalog {
	return &Catalog{api: api, loading: true}
}

// Load fetches the catalog once.
func (c *Catalog) Load(ctx context.Context) {
	products, err := c.api.ListProducts(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		logger.Warn("storefront: catalog load failed", "error", err)
		return
	}
	c.products = products
}

// Products returns a copy of the loaded catalog.
func (c *Catalog) Products() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Loading reports whether the initial fetch is still in flight.
func (c *Catalog) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}
