package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/vinayak/app/models"
	"github.com/shashiranjanraj/vinayak/app/repositories"
	"github.com/shashiranjanraj/vinayak/app/services"
	"github.com/shashiranjanraj/vinayak/pkg/event"
	"github.com/shashiranjanraj/vinayak/pkg/metrics"
)

func TestStatsSnapshotRefresh(t *testing.T) {
	ctx := context.Background()
	products := repositories.NewMemoryProductRepository()
	orders := repositories.NewMemoryOrderRepository()

	require.NoError(t, products.Create(ctx, &models.Product{Name: "Ladoo", Price: 120, Category: "sweets"}))
	require.NoError(t, products.Create(ctx, &models.Product{Name: "Barfi", Price: 300, Category: "sweets"}))
	for _, o := range []models.Order{
		{Email: "a@x.com", Total: 100, Status: models.StatusCompleted},
		{Email: "a@x.com", Total: 200, Status: models.StatusPending},
		{Email: "b@x.com", Total: 50, Status: models.StatusCancelled},
	} {
		o := o
		require.NoError(t, orders.Create(ctx, &o))
	}

	services.NewStatsSnapshot(products, orders).Refresh()

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.StatTotalProducts))
	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.StatTotalOrders))
	assert.Equal(t, 350.0, testutil.ToFloat64(metrics.StatTotalRevenue), "cancelled orders still count")
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.StatTotalCustomers), "distinct emails")
}

func TestStatsSnapshotRefreshesOnOrderPlaced(t *testing.T) {
	defer event.Flush()

	orders := repositories.NewMemoryOrderRepository()
	snapshot := services.NewStatsSnapshot(repositories.NewMemoryProductRepository(), orders)
	snapshot.Subscribe()

	svc := services.NewOrderService(orders)
	_, err := svc.Place(context.Background(), services.OrderInput{
		Name:  "Asha",
		Email: "asha@example.com",
		Phone: "9876500000",
		Items: []models.OrderItem{{Name: "Kaju Katli", Price: 450, Quantity: 1}},
	})
	require.NoError(t, err)

	// Place fires order.placed asynchronously; the subscribed snapshot
	// refreshes the gauges without waiting for the next cron tick.
	require.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.StatTotalOrders) == 1.0 &&
			testutil.ToFloat64(metrics.StatTotalRevenue) == 450.0
	}, time.Second, 5*time.Millisecond, "an order placement must refresh the gauges")
}
