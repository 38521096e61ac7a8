package products

const (
	queryList = `
		SELECT id, name, description, price, stock, category, color, size, image_url, created_at
		FROM products
		WHERE ($1 = '' OR category = $1)
		  AND ($2 = '' OR color = $2)
		  AND ($3 = '' OR size = $3)
		ORDER BY id
		LIMIT $4 OFFSET $5
	`

	queryFindByID = `
		SELECT id, name, description, price, stock, category, color, size, image_url, created_at
		FROM products
		WHERE id = $1
	`

	queryVariantsByNameCategory = `
		SELECT id, name, description, price, stock, category, color, size, image_url, created_at
		FROM products
		WHERE name = $1 AND category = $2
		ORDER BY color, size
	`

	queryVariantOptions = `
		SELECT size, color
		FROM products
		WHERE name = $1 AND category = $2
		ORDER BY id
	`

	queryCreate = `
		INSERT INTO products (name, description, price, stock, category, color, size, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, description, price, stock, category, color, size, image_url, created_at
	`

	queryUpdate = `
		UPDATE products
		SET name = COALESCE($1, name),
		    description = COALESCE($2, description),
		    price = COALESCE($3, price),
		    stock = COALESCE($4, stock),
		    category = COALESCE($5, category),
		    color = COALESCE($6, color),
		    size = COALESCE($7, size),
		    image_url = COALESCE($8, image_url)
		WHERE id = $9
		RETURNING id, name, description, price, stock, category, color, size, image_url, created_at
	`

	queryDelete = `
		DELETE FROM products
		WHERE id = $1
	`
)
