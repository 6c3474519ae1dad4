package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses. The dashboard offers exactly these four.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// ValidStatus reports whether s is one of the four order statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// OrderItem is a denormalized line item. Name and Price are captured at
// purchase time so later catalog edits do not rewrite order history.
type OrderItem struct {
	ProductID string  `json:"productId,omitempty" bson:"productId,omitempty"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Quantity  int     `json:"quantity" bson:"quantity"`
}

// Order is a customer purchase.
type Order struct {
	ID            primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name" validate:"required"`
	Email         string             `json:"email" bson:"email" validate:"required,email"`
	Phone         string             `json:"phone" bson:"phone" validate:"required"`
	Address       string             `json:"address,omitempty" bson:"address,omitempty"`
	PaymentMethod string             `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	Items         []OrderItem        `json:"items" bson:"items"`
	Total         float64            `json:"total" bson:"total"`
	Status        string             `json:"status" bson:"status"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
}
