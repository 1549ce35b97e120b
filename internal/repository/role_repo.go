package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"app/internal/model"
)

// RoleRepository looks up role grants in the user_roles table
type RoleRepository interface {
	// HasRole reports whether the user holds the given role grant.
	// At most one row can match a (user_id, role) pair.
	HasRole(ctx context.Context, userID string, role model.Role) (bool, error)
}

type roleRepo struct {
	db *sql.DB
}

// NewRoleRepo creates a new RoleRepository
func NewRoleRepo(db *sql.DB) RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) HasRole(ctx context.Context, userID string, role model.Role) (bool, error) {
	query := `
		SELECT role
		FROM user_roles
		WHERE user_id = $1 AND role = $2
		LIMIT 1
	`
	var got string
	err := r.db.QueryRowContext(ctx, query, userID, string(role)).Scan(&got)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("querying role %q for user %s: %w", role, userID, err)
	}
	return true, nil
}
