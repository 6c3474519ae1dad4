package dashboard

import (
	"github.com/shashiranjanraj/vinayak/app/models"
	"github.com/shashiranjanraj/vinayak/pkg/collection"
)

// Stats are the dashboard's four stat cards, derived on demand from the
// held collections. Never cached, never stored.
type Stats struct {
	TotalOrders    int     `json:"totalOrders"`
	TotalProducts  int     `json:"totalProducts"`
	TotalCustomers int     `json:"totalCustomers"`
	Revenue        float64 `json:"revenue"`
}

// Stats derives the stat cards. TotalCustomers is the cardinality of the
// distinct order email set. Revenue sums total over every held order with
// no status filter; cancelled orders count, a deliberate simplification
// carried over from the storefront.
func (c *Controller) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	customers := collection.UniqueBy(c.orders, func(o models.Order) string { return o.Email })

	return Stats{
		TotalOrders:    len(c.orders),
		TotalProducts:  len(c.products),
		TotalCustomers: len(customers),
		Revenue:        collection.Sum(c.orders, func(o models.Order) float64 { return o.Total }),
	}
}
