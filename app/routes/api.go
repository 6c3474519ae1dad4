// Package routes mounts the HTTP surface onto the named-route router.
package routes

import (
	"github.com/shashiranjanraj/vinayak/app/controllers"
	"github.com/shashiranjanraj/vinayak/app/repositories"
	"github.com/shashiranjanraj/vinayak/app/services"
	"github.com/shashiranjanraj/vinayak/pkg/metrics"
	"github.com/shashiranjanraj/vinayak/pkg/router"
)

// Deps are the persistence handles the route tree is built on. Tests pass
// in-memory repositories; cmd/vinayak passes the Mongo ones.
type Deps struct {
	Products repositories.ProductRepository
	Orders   repositories.OrderRepository
	Users    repositories.UserRepository
}

// RegisterAPI wires every route. Route names follow resource.action.
func RegisterAPI(r *router.Router, deps Deps) {
	productController := controllers.NewProductController(services.NewProductService(deps.Products))
	orderController := controllers.NewOrderController(services.NewOrderService(deps.Orders))
	userController := controllers.NewUserController(services.NewUserService(deps.Users))
	healthController := controllers.NewHealthController()

	r.Get("/", "health.root", healthController.Root)
	r.Get("/metrics", "metrics", metrics.Handler())

	api := r.Group("/api")
	api.Get("/products", "products.index", productController.Index)
	api.Post("/products", "products.store", productController.Store)
	api.Get("/orders/recent", "orders.recent", orderController.Recent)
	api.Post("/orders", "orders.store", orderController.Store)
	api.Post("/user/register", "users.register", userController.Register)
}
