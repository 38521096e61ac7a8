package users

const (
	queryFindByEmail = `
		SELECT id, email, name, picture, role, created_at
		FROM users
		WHERE email = $1
	`

	queryFindByID = `
		SELECT id, email, name, picture, role, created_at
		FROM users
		WHERE id = $1
	`

	// role is set only on first insert; a concurrent first login for the same
	// email resolves through the unique constraint instead of racing
	queryUpsert = `
		INSERT INTO users (email, name, picture, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email)
		DO UPDATE SET
			name = EXCLUDED.name,
			picture = EXCLUDED.picture
		RETURNING id, email, name, picture, role, created_at
	`

	queryUpdateProfile = `
		UPDATE users
		SET name = $1, picture = $2
		WHERE id = $3
		RETURNING id, email, name, picture, role, created_at
	`

	queryPromoteToAdmin = `
		UPDATE users
		SET role = 'admin'
		WHERE id = $1
		RETURNING id, email, name, picture, role, created_at
	`
)
