// Package seeders inserts a starter catalog for local development.
package seeders

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/vinayak/app/models"
	"github.com/shashiranjanraj/vinayak/app/repositories"
)

var starterCatalog = []models.Product{
	{Name: "Kaju Katli", Description: "Cashew fudge with silver leaf", Price: 450, Category: "sweets", Stock: 40, IsFeatured: true},
	{Name: "Motichoor Ladoo", Description: "Fine boondi ladoo", Price: 320, Category: "sweets", Stock: 60, IsFeatured: true},
	{Name: "Besan Barfi", Description: "Gram flour barfi", Price: 300, Category: "sweets", Stock: 35},
	{Name: "Aloo Bhujia", Description: "Crispy potato sev", Price: 140, Category: "namkeens", Stock: 80},
	{Name: "Masala Mathri", Description: "Spiced flaky crackers", Price: 160, Category: "namkeens", Stock: 50},
	{Name: "Gujiya", Description: "Holi special, khoya filled", Price: 380, Category: "festival", Stock: 25},
	{Name: "Dry Fruit Box", Description: "Assorted gift box", Price: 900, Category: "other", Stock: 15, IsFeatured: true},
}

// Run inserts the starter catalog through the repository so IDs and
// timestamps are assigned the same way production writes are.
func Run(ctx context.Context, products repositories.ProductRepository) error {
	for i := range starterCatalog {
		p := starterCatalog[i]
		if err := products.Create(ctx, &p); err != nil {
			return fmt.Errorf("seeders: %s: %w", p.Name, err)
		}
	}
	return nil
}

// Count returns the number of products the seeder inserts.
func Count() int { return len(starterCatalog) }
