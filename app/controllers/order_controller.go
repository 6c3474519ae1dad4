package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vinayak/app/services"
	"github.com/shashiranjanraj/vinayak/pkg/logger"
	"github.com/shashiranjanraj/vinayak/pkg/response"
)

type OrderController struct {
	service *services.OrderService
}

func NewOrderController(service *services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// Recent handles GET /api/orders/recent: latest orders as a bare array.
func (c *OrderController) Recent(w http.ResponseWriter, r *http.Request) {
	orders, err := c.service.Recent(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("recent orders failed", "error", err)
		response.ServerError(w, err.Error())
		return
	}
	response.OK(w, orders)
}

// Store handles POST /api/orders.
func (c *OrderController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.OrderInput
	if err := decodeJSON(r, &in); err != nil {
		response.BadRequest(w, "Invalid order payload.")
		return
	}

	order, err := c.service.Place(r.Context(), in)
	if err != nil {
		if ve, ok := services.AsValidation(err); ok {
			response.BadRequest(w, ve.Message)
			return
		}
		logger.WithCtx(r.Context()).Error("place order failed", "error", err)
		response.ServerError(w, err.Error())
		return
	}

	logger.WithCtx(r.Context()).Info("order placed", "order_id", order.ID.Hex(), "total", order.Total)
	response.Created(w, map[string]interface{}{
		"message": "Order placed!",
		"order":   order,
	})
}
