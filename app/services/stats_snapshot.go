package services

import (
	"context"

	"github.com/robfig/cron/v3"

	"github.com/shashiranjanraj/vinayak/app/models"
	"github.com/shashiranjanraj/vinayak/app/repositories"
	"github.com/shashiranjanraj/vinayak/pkg/collection"
	"github.com/shashiranjanraj/vinayak/pkg/event"
	"github.com/shashiranjanraj/vinayak/pkg/logger"
	"github.com/shashiranjanraj/vinayak/pkg/metrics"
)

// StatsSnapshot periodically mirrors the dashboard stat cards into
// Prometheus gauges so the store can be graphed without a browser open.
type StatsSnapshot struct {
	products repositories.ProductRepository
	orders   repositories.OrderRepository
	cron     *cron.Cron
}

func NewStatsSnapshot(products repositories.ProductRepository, orders repositories.OrderRepository) *StatsSnapshot {
	return &StatsSnapshot{
		products: products,
		orders:   orders,
		cron:     cron.New(),
	}
}

// Start schedules a refresh every minute, subscribes to store writes and
// runs one refresh immediately so the gauges are populated right after
// boot.
func (s *StatsSnapshot) Start() error {
	if _, err := s.cron.AddFunc("@every 1m", s.Refresh); err != nil {
		return err
	}
	s.Subscribe()
	s.cron.Start()
	go s.Refresh()
	return nil
}

// Subscribe registers the domain events that trigger an immediate refresh,
// so the gauges track order placement and catalog writes between ticks
// instead of lagging a full minute behind.
func (s *StatsSnapshot) Subscribe() {
	event.Listen("order.placed", func(interface{}) { s.Refresh() })
	event.Listen("product.created", func(interface{}) { s.Refresh() })
}

// Stop halts the schedule. Running jobs finish.
func (s *StatsSnapshot) Stop() {
	s.cron.Stop()
}

// Refresh reads current counts and updates the gauges. Errors are logged
// and the stale gauge values stand until the next tick.
func (s *StatsSnapshot) Refresh() {
	ctx := context.Background()

	products, err := s.products.All(ctx)
	if err != nil {
		logger.Warn("stats snapshot: products", "error", err)
	} else {
		metrics.StatTotalProducts.Set(float64(len(products)))
	}

	orders, err := s.orders.Recent(ctx, repositories.DefaultRecentLimit)
	if err != nil {
		logger.Warn("stats snapshot: orders", "error", err)
		return
	}

	metrics.StatTotalOrders.Set(float64(len(orders)))
	metrics.StatTotalRevenue.Set(collection.Sum(orders, func(o models.Order) float64 { return o.Total }))

	customers := collection.UniqueBy(orders, func(o models.Order) string { return o.Email })
	metrics.StatTotalCustomers.Set(float64(len(customers)))
}
