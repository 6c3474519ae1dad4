package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/vinayak/app/models"
	"github.com/shashiranjanraj/vinayak/app/repositories"
)

func TestUpdateStockChangesOnlyTarget(t *testing.T) {
	ctx := context.Background()
	repo := repositories.NewMemoryProductRepository()

	ladoo := models.Product{Name: "Ladoo", Price: 120, Category: "sweets", Stock: 10}
	barfi := models.Product{Name: "Barfi", Price: 300, Category: "sweets", Stock: 5}
	require.NoError(t, repo.Create(ctx, &ladoo))
	require.NoError(t, repo.Create(ctx, &barfi))

	require.NoError(t, repo.UpdateStock(ctx, ladoo.ID.Hex(), 42))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, p := range all {
		switch p.ID {
		case ladoo.ID:
			assert.Equal(t, 42, p.Stock)
			assert.Equal(t, "Ladoo", p.Name, "only the stock field changes")
		case barfi.ID:
			assert.Equal(t, 5, p.Stock, "other products stay untouched")
		}
	}
}

func TestUpdateStockUnknownID(t *testing.T) {
	repo := repositories.NewMemoryProductRepository()

	err := repo.UpdateStock(context.Background(), primitive.NewObjectID().Hex(), 7)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
