package orders

import (
	"fmt"
	"time"

	"github.com/aurafashions/server/aura/products"
	"github.com/jackc/pgx/v5/pgxpool"
)

// order lifecycle states; creation always starts at pending
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// handles order database operations
type Repository struct {
	db *pgxpool.Pool
}

type Order struct {
	ID              int64       `json:"id"`
	UserID          int64       `json:"user_id"`
	TotalAmount     float64     `json:"total_amount"`
	Status          string      `json:"status"`
	ShippingAddress *string     `json:"shipping_address"`
	CreatedAt       time.Time   `json:"created_at"`
	Items           []OrderItem `json:"items"`
}

// one order line with the price captured at order time
type OrderItem struct {
	ID        int64             `json:"id"`
	ProductID int64             `json:"product_id"`
	Quantity  int               `json:"quantity"`
	Price     float64           `json:"price"`
	Product   *products.Product `json:"product,omitempty"`
}

type CreateOrderRequest struct {
	Items           []OrderItemRequest `json:"items" binding:"required"`
	ShippingAddress *string            `json:"shipping_address"`
}

type OrderItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

// returned when an ordered product does not exist
type ProductNotFoundError struct {
	ProductID int64
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with ID %d not found", e.ProductID)
}

// returned when an ordered quantity exceeds the available stock
type InsufficientStockError struct {
	ProductName string
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %q, available: %d", e.ProductName, e.Available)
}
