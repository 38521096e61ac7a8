package products

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles product database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents one sellable variant: a (name, category, color, size) row with
// its own stock level
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Category    string    `json:"category"`
	Color       string    `json:"color"`
	Size        string    `json:"size"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`

	// populated for single-product and grouped responses
	AvailableSizes  []string `json:"available_sizes,omitempty"`
	AvailableColors []string `json:"available_colors,omitempty"`
}

// Filter narrows a catalog listing; empty fields match everything
type Filter struct {
	Category string
	Color    string
	Size     string
	Skip     int
	Limit    int
}

// contains data for creating a product
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required,max=255"`
	Description *string `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	Category    string  `json:"category" binding:"required"`
	Color       string  `json:"color" binding:"required"`
	Size        string  `json:"size" binding:"required"`
	ImageURL    *string `json:"image_url"`
}

// contains data for a partial product update; nil fields are left unchanged
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Category    *string  `json:"category"`
	Color       *string  `json:"color"`
	Size        *string  `json:"size"`
	ImageURL    *string  `json:"image_url"`
}
