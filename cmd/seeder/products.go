package main

import (
	"context"

	"github.com/aurafashions/server/internal/logger"
	"github.com/jackc/pgx/v5/pgxpool"
)

type seedProduct struct {
	name        string
	description string
	price       float64
	category    string
	color       string
	imageURL    string
	stockBySize map[string]int
}

var sizes = []string{"S", "M", "L", "XL"}

// the launch catalog: black/white tees and hoodies in every size
var catalog = []seedProduct{
	{
		name:        "Classic Black Tee",
		description: "Essential black t-shirt crafted from 100% premium cotton. Perfect for everyday wear.",
		price:       799,
		category:    "t-shirt",
		color:       "black",
		imageURL:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500",
		stockBySize: map[string]int{"S": 50, "M": 45, "L": 40, "XL": 35},
	},
	{
		name:        "Pure White Essential",
		description: "Crisp white t-shirt with a timeless fit. A wardrobe staple in breathable cotton.",
		price:       799,
		category:    "t-shirt",
		color:       "white",
		imageURL:    "https://images.unsplash.com/photo-1581655353564-df123a1eb820?w=500",
		stockBySize: map[string]int{"S": 50, "M": 45, "L": 40, "XL": 35},
	},
	{
		name:        "Midnight Black Hoodie",
		description: "Heavyweight black hoodie with a brushed fleece interior. Built for cold evenings.",
		price:       1899,
		category:    "hoodie",
		color:       "black",
		imageURL:    "https://images.unsplash.com/photo-1556821840-3a63f95609a7?w=500",
		stockBySize: map[string]int{"S": 30, "M": 30, "L": 25, "XL": 20},
	},
	{
		name:        "Arctic White Hoodie",
		description: "Clean white hoodie with a relaxed fit and kangaroo pocket. Soft cotton blend.",
		price:       1899,
		category:    "hoodie",
		color:       "white",
		imageURL:    "https://images.unsplash.com/photo-1578768079052-aa76e52ff62e?w=500",
		stockBySize: map[string]int{"S": 30, "M": 30, "L": 25, "XL": 20},
	},
}

const queryInsertProduct = `
	INSERT INTO products (name, description, price, stock, category, color, size, image_url)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

// inserts one row per size variant of every catalog entry
func SeedProducts(ctx context.Context, db *pgxpool.Pool, clear bool) error {
	if clear {
		if _, err := db.Exec(ctx, "TRUNCATE products RESTART IDENTITY CASCADE"); err != nil {
			return err
		}

		logger.Info("cleared existing products")
	}

	inserted := 0

	for _, p := range catalog {
		for _, size := range sizes {
			_, err := db.Exec(
				ctx,
				queryInsertProduct,
				p.name,
				p.description,
				p.price,
				p.stockBySize[size],
				p.category,
				p.color,
				size,
				p.imageURL,
			)
			if err != nil {
				return err
			}

			inserted++
		}
	}

	logger.Info("seeded products", "count", inserted)

	return nil
}
