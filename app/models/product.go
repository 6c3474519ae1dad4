package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog item. Category is a free string on the wire; the
// storefront UI only renders sweets, namkeens, festival and other, but the
// backend stores whatever it is given.
type Product struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name" validate:"required,max=200"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Price       float64            `json:"price" bson:"price" validate:"gte=0"`
	Category    string             `json:"category" bson:"category" validate:"required"`
	Stock       int                `json:"stock" bson:"stock" validate:"nullable,gte=0"`
	IsFeatured  bool               `json:"isFeatured" bson:"isFeatured"`
	Image       string             `json:"image,omitempty" bson:"image,omitempty"` // inline data-URL or empty
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}
