// Package client is the typed store API consumed by the dashboard and the
// storefront. It talks to the backend over the fluent HTTP client and
// normalizes the wire format into models.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shashiranjanraj/vinayak/app/models"
	"github.com/shashiranjanraj/vinayak/app/services"
	"github.com/shashiranjanraj/vinayak/config"
	"github.com/shashiranjanraj/vinayak/pkg/httpclient"
)

// Client calls the store API. BaseURL is the backend origin; empty means
// same-origin relative paths behind a dev proxy.
type Client struct {
	BaseURL string
	Timeout time.Duration
}

// New builds a Client from configuration.
func New() *Client {
	return &Client{
		BaseURL: config.APIBaseURL(),
		Timeout: 10 * time.Second,
	}
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

// ListProducts fetches the full catalog.
func (c *Client) ListProducts(ctx context.Context) ([]models.Product, error) {
	resp, err := httpclient.Get(c.url("/api/products")).
		Timeout(c.Timeout).
		WithContext(ctx).
		Send()
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, fmt.Errorf("client: list products: %s", resp.ErrorMessage())
	}

	var products []models.Product
	if err := resp.JSON(&products); err != nil {
		return nil, err
	}
	return products, nil
}

// CreateProduct submits a new product and returns the stored record.
func (c *Client) CreateProduct(ctx context.Context, in services.ProductInput) (models.Product, error) {
	resp, err := httpclient.Post(c.url("/api/products")).
		Body(in).
		Timeout(c.Timeout).
		WithContext(ctx).
		Send()
	if err != nil {
		return models.Product{}, err
	}
	if !resp.OK() {
		return models.Product{}, fmt.Errorf("client: create product: %s", resp.ErrorMessage())
	}

	return unwrapProduct(resp.Raw)
}

// RecentOrders fetches the latest orders feed.
func (c *Client) RecentOrders(ctx context.Context) ([]models.Order, error) {
	resp, err := httpclient.Get(c.url("/api/orders/recent")).
		Timeout(c.Timeout).
		WithContext(ctx).
		Send()
	if err != nil {
		return nil, err
	}
	if !resp.OK() {
		return nil, fmt.Errorf("client: recent orders: %s", resp.ErrorMessage())
	}

	var orders []models.Order
	if err := resp.JSON(&orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// unwrapProduct tolerates both creation response shapes: the documented
// {"message": ..., "product": {...}} envelope and a bare product record.
func unwrapProduct(raw []byte) (models.Product, error) {
	var envelope struct {
		Product *models.Product `json:"product"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Product != nil {
		return *envelope.Product, nil
	}

	var bare models.Product
	if err := json.Unmarshal(raw, &bare); err != nil {
		return models.Product{}, fmt.Errorf("client: unexpected create response: %w", err)
	}
	return bare, nil
}
