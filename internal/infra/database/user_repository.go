package database

import (
	"context"
	"database/sql"

	"github.com/roothome/esign-bridge/internal/entity"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindEnabledByRole(ctx context.Context, role string) ([]entity.User, error) {
	query := `
		SELECT u.id, u.email, u.full_name, u.enabled
		FROM users u
		JOIN user_roles ur ON ur.user_id = u.id
		WHERE ur.role = $1 AND u.enabled = TRUE
		ORDER BY u.email
	`

	rows, err := r.DB.QueryContext(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Email, &u.FullName, &u.Enabled); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}
