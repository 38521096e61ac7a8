package orders

const (
	// FOR UPDATE holds the row until commit so concurrent orders cannot
	// pass the stock check against the same units
	querySelectProductForOrder = `
		SELECT id, name, description, price, stock, category, color, size, image_url, created_at
		FROM products
		WHERE id = $1
		FOR UPDATE
	`

	queryInsertOrder = `
		INSERT INTO orders (user_id, total_amount, status, shipping_address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	queryInsertOrderItem = `
		INSERT INTO order_items (order_id, product_id, quantity, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	queryDecrementStock = `
		UPDATE products
		SET stock = stock - $1
		WHERE id = $2
	`

	queryFindByID = `
		SELECT id, user_id, total_amount, status, shipping_address, created_at
		FROM orders
		WHERE id = $1
	`

	queryListByUser = `
		SELECT id, user_id, total_amount, status, shipping_address, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	queryListItems = `
		SELECT oi.id, oi.product_id, oi.quantity, oi.price,
		       p.id, p.name, p.description, p.price, p.stock, p.category, p.color, p.size, p.image_url, p.created_at
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = $1
		ORDER BY oi.id
	`
)
