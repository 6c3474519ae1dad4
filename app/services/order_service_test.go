package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vinayak/app/models"
	"github.com/shashiranjanraj/vinayak/app/repositories"
	"github.com/shashiranjanraj/vinayak/app/services"
)

func validOrderInput() services.OrderInput {
	return services.OrderInput{
		Name:  "Asha",
		Email: "asha@example.com",
		Phone: "9876500000",
		Items: []models.OrderItem{
			{Name: "Kaju Katli", Price: 450, Quantity: 2},
			{Name: "Aloo Bhujia", Price: 140, Quantity: 1},
		},
	}
}

func TestPlaceOrderComputesTotalFromItems(t *testing.T) {
	svc := services.NewOrderService(repositories.NewMemoryOrderRepository())

	order, err := svc.Place(context.Background(), validOrderInput())
	require.NoError(t, err)

	assert.Equal(t, 450*2+140.0, order.Total)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.False(t, order.ID.IsZero())
}

func TestPlaceOrderKeepsExplicitTotal(t *testing.T) {
	svc := services.NewOrderService(repositories.NewMemoryOrderRepository())

	in := validOrderInput()
	in.Total = 999
	order, err := svc.Place(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 999.0, order.Total)
}

func TestPlaceOrderValidation(t *testing.T) {
	svc := services.NewOrderService(repositories.NewMemoryOrderRepository())

	missingPhone := validOrderInput()
	missingPhone.Phone = ""
	_, err := svc.Place(context.Background(), missingPhone)
	_, ok := services.AsValidation(err)
	assert.True(t, ok)

	noItems := validOrderInput()
	noItems.Items = nil
	_, err = svc.Place(context.Background(), noItems)
	_, ok = services.AsValidation(err)
	assert.True(t, ok)

	badQty := validOrderInput()
	badQty.Items[0].Quantity = 0
	_, err = svc.Place(context.Background(), badQty)
	_, ok = services.AsValidation(err)
	assert.True(t, ok)
}

func TestRecentIsBoundedAndNewestFirst(t *testing.T) {
	repo := repositories.NewMemoryOrderRepository()
	svc := services.NewOrderService(repo)

	for i := 0; i < 25; i++ {
		in := validOrderInput()
		_, err := svc.Place(context.Background(), in)
		require.NoError(t, err)
	}

	orders, err := svc.Recent(context.Background())
	require.NoError(t, err)
	assert.Len(t, orders, int(repositories.DefaultRecentLimit))
	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i].CreatedAt.After(orders[i-1].CreatedAt),
			"orders must be sorted newest first")
	}
}
