package products

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrProductNotFound = errors.New("product not found")

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// lists products matching the filter
func (r *Repository) List(ctx context.Context, f Filter) ([]Product, error) {
	rows, err := r.db.Query(ctx, queryList, f.Category, f.Color, f.Size, f.Limit, f.Skip)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanProducts(rows)
}

// lists products matching the filter, collapsed to one row per
// (name, color, category) with the available sizes and colors of each group
func (r *Repository) ListGrouped(ctx context.Context, f Filter) ([]Product, error) {
	list, err := r.List(ctx, f)
	if err != nil {
		return nil, err
	}

	grouped := GroupProducts(list)

	// attach the full option sets, not just what survived the page limit
	for i := range grouped {
		sizes, colors, err := r.VariantOptions(ctx, grouped[i].Name, grouped[i].Category, grouped[i].Color)
		if err != nil {
			return nil, err
		}

		grouped[i].AvailableSizes = sizes
		grouped[i].AvailableColors = colors
	}

	return grouped, nil
}

// finds a product by ID with its variant option sets attached
func (r *Repository) FindByID(ctx context.Context, productID int64) (*Product, error) {
	product, err := r.findByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	sizes, colors, err := r.VariantOptions(ctx, product.Name, product.Category, product.Color)
	if err != nil {
		return nil, err
	}

	product.AvailableSizes = sizes
	product.AvailableColors = colors

	return product, nil
}

func (r *Repository) findByID(ctx context.Context, productID int64) (*Product, error) {
	var p Product

	err := r.db.QueryRow(ctx, queryFindByID, productID).Scan(
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
		return nil, ErrProductNotFound
	}

	if err != nil {
		return nil, err
	}

	return &p, nil
}

// lists every size/color variant sharing the product's name and category
func (r *Repository) VariantsOf(ctx context.Context, productID int64) ([]Product, error) {
	product, err := r.findByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, queryVariantsByNameCategory, product.Name, product.Category)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	return scanProducts(rows)
}

// returns the sizes stocked in the given color and the colors stocked across
// the whole (name, category) group
func (r *Repository) VariantOptions(ctx context.Context, name, category, color string) ([]string, []string, error) {
	rows, err := r.db.Query(ctx, queryVariantOptions, name, category)
	if err != nil {
		return nil, nil, err
	}

	defer rows.Close()

	var sizes, colors []string
	seenSizes := map[string]bool{}
	seenColors := map[string]bool{}

	for rows.Next() {
		var size, c string
		if err := rows.Scan(&size, &c); err != nil {
			return nil, nil, err
		}

		if c == color && !seenSizes[size] {
			seenSizes[size] = true
			sizes = append(sizes, size)
		}

		if !seenColors[c] {
			seenColors[c] = true
			colors = append(colors, c)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	return sizes, colors, nil
}

// creates a new product variant
func (r *Repository) Create(ctx context.Context, req CreateProductRequest) (*Product, error) {
	var p Product

	err := r.db.QueryRow(
		ctx,
		queryCreate,
		req.Name,
		req.Description,
		req.Price,
		req.Stock,
		req.Category,
		req.Color,
		req.Size,
		req.ImageURL,
	).Scan(
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

	if err != nil {
		return nil, err
	}

	return &p, nil
}

// applies a partial update; nil request fields keep their stored values
func (r *Repository) Update(ctx context.Context, productID int64, req UpdateProductRequest) (*Product, error) {
	var p Product

	err := r.db.QueryRow(
		ctx,
		queryUpdate,
		req.Name,
		req.Description,
		req.Price,
		req.Stock,
		req.Category,
		req.Color,
		req.Size,
		req.ImageURL,
		productID,
	).Scan(
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
		return nil, ErrProductNotFound
	}

	if err != nil {
		return nil, err
	}

	return &p, nil
}

// deletes a product variant
func (r *Repository) Delete(ctx context.Context, productID int64) error {
	tag, err := r.db.Exec(ctx, queryDelete, productID)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrProductNotFound
	}

	return nil
}

func scanProducts(rows pgx.Rows) ([]Product, error) {
	var list []Product

	for rows.Next() {
		var p Product

		err := rows.Scan(
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
		if err != nil {
			return nil, err
		}

		list = append(list, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}
