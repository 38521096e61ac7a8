package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/aurafashions/server/aura/products"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrOrderNotFound = errors.New("order not found")

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Create validates the ordered products, computes the total at current
// prices and writes the order, its items and the stock decrements in one
// transaction.
func (r *Repository) Create(ctx context.Context, userID int64, req CreateOrderRequest) (*Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin order transaction: %w", err)
	}

	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	order := Order{
		UserID: userID,
		Status: StatusPending,
	}

	// validate every line and price the order before writing anything
	for _, item := range req.Items {
		product, err := selectProduct(ctx, tx, item.ProductID)
		if err != nil {
			return nil, err
		}

		if product.Stock < item.Quantity {
			return nil, &InsufficientStockError{ProductName: product.Name, Available: product.Stock}
		}

		order.TotalAmount += product.Price * float64(item.Quantity)
		order.Items = append(order.Items, OrderItem{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Price:     product.Price,
			Product:   product,
		})
	}

	order.ShippingAddress = req.ShippingAddress

	err = tx.QueryRow(ctx, queryInsertOrder, order.UserID, order.TotalAmount, order.Status, order.ShippingAddress).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	for i := range order.Items {
		item := &order.Items[i]

		err := tx.QueryRow(ctx, queryInsertOrderItem, order.ID, item.ProductID, item.Quantity, item.Price).
			Scan(&item.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert order item: %w", err)
		}

		if _, err := tx.Exec(ctx, queryDecrementStock, item.Quantity, item.ProductID); err != nil {
			return nil, fmt.Errorf("failed to decrement stock: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}

	return &order, nil
}

// finds an order with its items
func (r *Repository) FindByID(ctx context.Context, orderID int64) (*Order, error) {
	var order Order

	err := r.db.QueryRow(ctx, queryFindByID, orderID).Scan(
		&order.ID,
		&order.UserID,
		&order.TotalAmount,
		&order.Status,
		&order.ShippingAddress,
		&order.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrderNotFound
	}

	if err != nil {
		return nil, err
	}

	items, err := r.listItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	order.Items = items

	return &order, nil
}

// lists a user's orders with items, newest first
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]Order, error) {
	rows, err := r.db.Query(ctx, queryListByUser, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var list []Order

	for rows.Next() {
		var order Order

		err := rows.Scan(
			&order.ID,
			&order.UserID,
			&order.TotalAmount,
			&order.Status,
			&order.ShippingAddress,
			&order.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		list = append(list, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range list {
		items, err := r.listItems(ctx, list[i].ID)
		if err != nil {
			return nil, err
		}

		list[i].Items = items
	}

	return list, nil
}

func (r *Repository) listItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	rows, err := r.db.Query(ctx, queryListItems, orderID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var items []OrderItem

	for rows.Next() {
		var item OrderItem
		var product products.Product

		err := rows.Scan(
			&item.ID,
			&item.ProductID,
			&item.Quantity,
			&item.Price,
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Stock,
			&product.Category,
			&product.Color,
			&product.Size,
			&product.ImageURL,
			&product.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		item.Product = &product
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func selectProduct(ctx context.Context, tx pgx.Tx, productID int64) (*products.Product, error) {
	var p products.Product

	err := tx.QueryRow(ctx, querySelectProductForOrder, productID).Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Stock,
		&p.Category,
		&p.Color,
		&p.Size,
		&p.ImageURL,
		&p.CreatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, &ProductNotFoundError{ProductID: productID}
	}

	if err != nil {
		return nil, err
	}

	return &p, nil
}
