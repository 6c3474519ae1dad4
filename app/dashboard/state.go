// Package dashboard holds the owner dashboard's state engine: concurrent
// initial load, derived stat cards, optimistic local mutations and the
// fixed-interval orders poller.
package dashboard

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/shashiranjanraj/vinayak/app/models"
	"github.com/shashiranjanraj/vinayak/app/services"
	"github.com/shashiranjanraj/vinayak/config"
	"github.com/shashiranjanraj/vinayak/pkg/logger"
)

// StoreAPI is the slice of the store client the dashboard needs.
type StoreAPI interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, in services.ProductInput) (models.Product, error)
	RecentOrders(ctx context.Context) ([]models.Order, error)
}

// stockEdit is the single-slot edit state: at most one product's stock
// field is in edit mode at a time.
type stockEdit struct {
	productID string
	active    bool
}

// Controller owns the dashboard's in-memory copies of the product and
// order collections. The backend is the source of truth; local mutations
// (stock edit, status change) diverge until the next refresh overwrites
// them. All state access funnels through mu.
type Controller struct {
	api      StoreAPI
	notifier Notifier
	interval time.Duration

	mu       sync.Mutex
	products []models.Product
	orders   []models.Order
	editing  stockEdit

	// Per-collection fetch tickets. A response applies only when its
	// ticket is newer than the last applied one, so a slow stale fetch
	// can never overwrite a fresher result.
	productsSeq, productsApplied uint64
	ordersSeq, ordersApplied     uint64

	cancel context.CancelFunc
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewController builds an inactive controller. A nil notifier falls back
// to log-only notifications.
func NewController(api StoreAPI, notifier Notifier) *Controller {
	if notifier == nil {
		notifier = LogNotifier{}
	}
	return &Controller{
		api:      api,
		notifier: notifier,
		interval: config.DashboardPollInterval(),
	}
}

// SetPollInterval overrides the refresh cadence. Call before Activate.
func (c *Controller) SetPollInterval(d time.Duration) {
	if d > 0 {
		c.interval = d
	}
}

// Activate starts the dashboard session: products and orders load
// concurrently and independently, then the orders poller takes over.
// Calling Activate on an active controller is a no-op.
func (c *Controller) Activate(ctx context.Context) {
	c.mu.Lock()
	if c.cancel != nil {
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done
	c.mu.Unlock()

	c.spawn(func() { c.fetchProducts(ctx) })
	c.spawn(func() { c.refreshOrders(ctx) })
	go c.poll(ctx, done)
}

// Deactivate tears the session down: the poller stops and any in-flight
// responses are discarded. Blocks until the poller and every spawned
// fetch goroutine have exited.
func (c *Controller) Deactivate() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel, c.done = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	c.wg.Wait()
}

// spawn runs fn on a goroutine tracked by the activation wait group.
func (c *Controller) spawn(fn func()) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		fn()
	}()
}

// fetchProducts loads the catalog once. Failure is user-visible: the
// owner needs to know the product table is empty for a reason.
func (c *Controller) fetchProducts(ctx context.Context) {
	ticket := c.takeTicket(&c.productsSeq)

	products, err := c.api.ListProducts(ctx)
	if err != nil {
		if ctx.Err() == nil {
			c.notifier.Notify("Failed to load products: " + err.Error())
		}
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if ctx.Err() != nil || ticket <= c.productsApplied {
		return
	}
	c.productsApplied = ticket
	c.products = products
}

// refreshOrders loads the recent orders feed. Failure is logged only;
// the poller will try again on the next tick anyway.
func (c *Controller) refreshOrders(ctx context.Context) {
	ticket := c.takeTicket(&c.ordersSeq)

	orders, err := c.api.RecentOrders(ctx)
	if err != nil {
		if ctx.Err() == nil {
			logger.Warn("dashboard: orders refresh failed", "error", err)
		}
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if ctx.Err() != nil || ticket <= c.ordersApplied {
		return
	}
	c.ordersApplied = ticket
	c.orders = orders
}

func (c *Controller) takeTicket(seq *uint64) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	*seq++
	return *seq
}

// Products returns a copy of the current product collection.
func (c *Controller) Products() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Orders returns a copy of the current order collection.
func (c *Controller) Orders() []models.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Order, len(c.orders))
	copy(out, c.orders)
	return out
}

// AddProduct validates, submits and, on success, appends the stored
// record to local state. On any failure existing state is untouched and
// the owner sees a notification.
func (c *Controller) AddProduct(ctx context.Context, in services.ProductInput) bool {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" || in.Price == nil || *in.Price < 0 {
		c.notifier.Notify(services.MissingFieldsMessage)
		return false
	}

	product, err := c.api.CreateProduct(ctx, in)
	if err != nil {
		c.notifier.Notify("Failed to add product: " + err.Error())
		return false
	}

	c.mu.Lock()
	c.products = append(c.products, product)
	c.mu.Unlock()
	c.notifier.Notify("Product added!")
	return true
}

// SetOrderStatus replaces one order's status locally and immediately.
// The change is never sent to the backend; a later poll that returns the
// server's view silently reverts it. Documented divergence, not a bug.
func (c *Controller) SetOrderStatus(id, status string) bool {
	if !models.ValidStatus(status) {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.orders {
		if c.orders[i].ID.Hex() == id {
			c.orders[i].Status = status
			return true
		}
	}
	return false
}

// BeginStockEdit opens the single edit slot for one product, replacing
// any previous slot holder.
func (c *Controller) BeginStockEdit(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editing = stockEdit{productID: productID, active: true}
}

// EditingStock returns the product ID currently in edit mode, or "".
func (c *Controller) EditingStock() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editing.active {
		return ""
	}
	return c.editing.productID
}

// CommitStockEdit applies the local stock mutation to the product in the
// edit slot and clears the slot. Negative values are rejected with the
// slot left open so the owner can correct the input. Local-only, same
// divergence caveat as SetOrderStatus.
func (c *Controller) CommitStockEdit(stock int) bool {
	if stock < 0 {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.editing.active {
		return false
	}
	id := c.editing.productID
	c.editing = stockEdit{}

	for i := range c.products {
		if c.products[i].ID.Hex() == id {
			c.products[i].Stock = stock
			return true
		}
	}
	return false
}

// CancelStockEdit clears the edit slot without touching state.
func (c *Controller) CancelStockEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editing = stockEdit{}
}
