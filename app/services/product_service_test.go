package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vinayak/app/repositories"
	"github.com/shashiranjanraj/vinayak/app/services"
	"github.com/shashiranjanraj/vinayak/pkg/cache"
)

func priceOf(v float64) *float64 { return &v }

func TestCreateProductPersistsAndReturnsRecord(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	svc := services.NewProductService(repo)

	product, err := svc.Create(context.Background(), services.ProductInput{
		Name:     "Ladoo",
		Price:    priceOf(120),
		Category: "sweets",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ladoo", product.Name)
	assert.Equal(t, 120.0, product.Price)
	assert.Equal(t, "sweets", product.Category)
	assert.False(t, product.ID.IsZero(), "identifier must be server-assigned")

	all, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCreateProductMissingFields(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	svc := services.NewProductService(repo)

	cases := []services.ProductInput{
		{Name: "Ladoo"},                                     // no price, no category
		{Name: "Ladoo", Price: priceOf(120)},                // no category
		{Price: priceOf(120), Category: "sweets"},           // no name
		{Name: "  ", Price: priceOf(120), Category: "sweets"}, // blank name
	}

	for _, in := range cases {
		_, err := svc.Create(context.Background(), in)
		ve, ok := services.AsValidation(err)
		require.True(t, ok, "input %+v should fail validation", in)
		assert.Equal(t, "Name, price, and category are required.", ve.Message)
	}

	all, err := repo.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all, "no record may be persisted on validation failure")
}

func TestCreateProductDefaultsNegativeStockToZero(t *testing.T) {
	svc := services.NewProductService(repositories.NewMemoryProductRepository())

	product, err := svc.Create(context.Background(), services.ProductInput{
		Name:     "Barfi",
		Price:    priceOf(300),
		Category: "sweets",
		Stock:    -5,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, product.Stock)
}

func TestListReturnsAll(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()
	svc := services.NewProductService(repo)

	for _, name := range []string{"Ladoo", "Barfi", "Bhujia"} {
		_, err := svc.Create(context.Background(), services.ProductInput{
			Name: name, Price: priceOf(100), Category: "sweets",
		})
		require.NoError(t, err)
	}

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, products, 3)
}

func TestCreateInvalidatesCachedListing(t *testing.T) {
	cache.Use(cache.NewMemoryBackend())
	defer cache.Use(nil)

	repo := repositories.NewMemoryProductRepository()
	svc := services.NewProductService(repo)

	_, err := svc.Create(context.Background(), services.ProductInput{
		Name: "Ladoo", Price: priceOf(120), Category: "sweets",
	})
	require.NoError(t, err)

	// First listing populates the cache.
	first, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A second create must drop the cached listing; without the
	// invalidation the next List would serve the stale one-item copy
	// for the rest of the TTL.
	_, err = svc.Create(context.Background(), services.ProductInput{
		Name: "Barfi", Price: priceOf(300), Category: "sweets",
	})
	require.NoError(t, err)

	second, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, second, 2)
}
