package users

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// user roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// handles user database operations
type Repository struct {
	db *pgxpool.Pool
}

// represents a registered customer or administrator
type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Picture   *string   `json:"picture"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// reports whether the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
