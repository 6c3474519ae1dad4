package services

import (
	"context"
	"strings"

	"github.com/shashiranjanraj/vinayak/app/models"
	"github.com/shashiranjanraj/vinayak/app/repositories"
	"github.com/shashiranjanraj/vinayak/pkg/collection"
	"github.com/shashiranjanraj/vinayak/pkg/event"
)

// OrderInput is the POST /api/orders request body.
type OrderInput struct {
	Name          string             `json:"name"`
	Email         string             `json:"email"`
	Phone         string             `json:"phone"`
	Address       string             `json:"address"`
	PaymentMethod string             `json:"paymentMethod"`
	Items         []models.OrderItem `json:"items"`
	Total         float64            `json:"total"`
}

type OrderService struct {
	repo repositories.OrderRepository
}

func NewOrderService(repo repositories.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// Recent returns the latest orders, newest first, capped at the default
// feed size.
func (s *OrderService) Recent(ctx context.Context) ([]models.Order, error) {
	return s.repo.Recent(ctx, repositories.DefaultRecentLimit)
}

// Place validates and persists a new order. When the client omits the
// total it is recomputed from the line items.
func (s *OrderService) Place(ctx context.Context, in OrderInput) (*models.Order, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.Phone) == "" {
		return nil, &ErrValidation{Message: "Name, email, and phone are required."}
	}
	if len(in.Items) == 0 {
		return nil, &ErrValidation{Message: "An order needs at least one item."}
	}
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, &ErrValidation{Message: "Item quantities must be positive."}
		}
	}

	total := in.Total
	if total <= 0 {
		total = collection.Sum(in.Items, func(i models.OrderItem) float64 {
			return i.Price * float64(i.Quantity)
		})
	}

	o := &models.Order{
		Name:          strings.TrimSpace(in.Name),
		Email:         strings.TrimSpace(in.Email),
		Phone:         strings.TrimSpace(in.Phone),
		Address:       in.Address,
		PaymentMethod: in.PaymentMethod,
		Items:         in.Items,
		Total:         total,
		Status:        models.StatusPending,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}

	event.FireAsync("order.placed", *o)
	return o, nil
}
