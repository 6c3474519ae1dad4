package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vinayak/app/services"
	"github.com/shashiranjanraj/vinayak/pkg/logger"
	"github.com/shashiranjanraj/vinayak/pkg/response"
)

type ProductController struct {
	service *services.ProductService
}

func NewProductController(service *services.ProductService) *ProductController {
	return &ProductController{service: service}
}

// Index handles GET /api/products: the whole catalog as a bare array.
func (c *ProductController) Index(w http.ResponseWriter, r *http.Request) {
	products, err := c.service.List(r.Context())
	if err != nil {
		logger.WithCtx(r.Context()).Error("list products failed", "error", err)
		response.ServerError(w, err.Error())
		return
	}
	response.OK(w, products)
}

// Store handles POST /api/products.
func (c *ProductController) Store(w http.ResponseWriter, r *http.Request) {
	var in services.ProductInput
	if err := decodeJSON(r, &in); err != nil {
		response.BadRequest(w, services.MissingFieldsMessage)
		return
	}

	product, err := c.service.Create(r.Context(), in)
	if err != nil {
		if ve, ok := services.AsValidation(err); ok {
			response.BadRequest(w, ve.Message)
			return
		}
		logger.WithCtx(r.Context()).Error("create product failed", "error", err)
		response.ServerError(w, err.Error())
		return
	}

	logger.WithCtx(r.Context()).Info("product created", "product_id", product.ID.Hex(), "name", product.Name)
	response.Created(w, map[string]interface{}{
		"message": "Product added!",
		"product": product,
	})
}
