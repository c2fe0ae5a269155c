package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bloghub/backend/internal/models"
)

// roleRepository implements role registry data access
type roleRepository struct {
	db *sql.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *sql.DB) *roleRepository {
	return &roleRepository{
		db: db,
	}
}

// GetByName retrieves a role by its name
func (r *roleRepository) GetByName(ctx context.Context, name string) (*models.Role, error) {
	query := `SELECT id, name FROM roles WHERE name = ? LIMIT 1`

	role := &models.Role{}
	err := r.db.QueryRowContext(ctx, query, name).Scan(&role.ID, &role.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get role by name: %w", err)
	}

	return role, nil
}

// EnsureSeeded creates each fixed role unless a role with that name already
// exists. Safe to run on every process start.
func (r *roleRepository) EnsureSeeded(ctx context.Context) error {
	existsQuery := `SELECT EXISTS(SELECT * FROM roles WHERE name = ?)`
	insertQuery := `INSERT INTO roles (name) VALUES (?)`

	for _, name := range models.SeededRoleNames {
		var exists bool
		if err := r.db.QueryRowContext(ctx, existsQuery, name).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check role existence: %w", err)
		}
		if exists {
			continue
		}

		if _, err := r.db.ExecContext(ctx, insertQuery, name); err != nil {
			return fmt.Errorf("failed to seed role %s: %w", name, err)
		}
	}

	return nil
}
