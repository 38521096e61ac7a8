package main

// schema owned by the seeder; the server assumes these tables exist
const schemaSQL = `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255) NOT NULL,
		picture VARCHAR(500),
		role VARCHAR(20) NOT NULL DEFAULT 'user',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT,
		price DOUBLE PRECISION NOT NULL,
		stock INTEGER NOT NULL DEFAULT 0,
		category VARCHAR(100) NOT NULL,
		color VARCHAR(50) NOT NULL,
		size VARCHAR(10) NOT NULL,
		image_url VARCHAR(500),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		user_id BIGINT NOT NULL REFERENCES users(id),
		total_amount DOUBLE PRECISION NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		shipping_address TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS order_items (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders(id),
		product_id BIGINT NOT NULL REFERENCES products(id),
		quantity INTEGER NOT NULL,
		price DOUBLE PRECISION NOT NULL
	);
`
