package repository

import (
	"context"
	"errors"
	"fmt"

	"reveste/database"
	"reveste/models"

	"github.com/jackc/pgx/v5"
)

// UserRepository implements the service.UserRepository interface
type UserRepository struct {
	q queryable
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{q: db.Pool}
}

// Create inserts a new user and fills in the generated fields
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, email)
		VALUES ($1, $2)
		RETURNING id, version, created_at, updated_at
	`

	err := r.q.QueryRow(ctx, query, user.Name, user.Email).Scan(
		&user.ID,
		&user.Version,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by id, or nil if no such user exists
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
		SELECT id, name, email, version, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.q.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Version,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user %d: %w", id, err)
	}

	return &user, nil
}

// GetAll returns all users in stored order
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, name, email, version, created_at, updated_at
		FROM users
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all users: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// SearchByName returns users whose name contains the given substring. The
// match is unanchored and case-sensitive under the store's default collation.
func (r *UserRepository) SearchByName(ctx context.Context, name string) ([]*models.User, error) {
	query := `
		SELECT id, name, email, version, created_at, updated_at
		FROM users
		WHERE name LIKE '%' || $1 || '%'
	`

	rows, err := r.q.Query(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search users by name %q: %w", name, err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

// Update replaces the user's mutable fields, conditioned on the version read
// by the caller. A zero-row result is re-checked to distinguish a concurrent
// delete (ErrNotFound) from a concurrent modification.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, version = version + 1, updated_at = NOW()
		WHERE id = $3 AND version = $4
		RETURNING version, updated_at
	`

	err := r.q.QueryRow(ctx, query, user.Name, user.Email, user.ID, user.Version).Scan(
		&user.Version,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		existing, err := r.GetByID(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("failed to re-check user %d after conflicting update: %w", user.ID, err)
		}
		if existing == nil {
			return models.ErrNotFound
		}
		return models.ErrConcurrentModification
	}
	if err != nil {
		return fmt.Errorf("failed to update user %d: %w", user.ID, err)
	}

	return nil
}

// Delete removes a user. Referencing bets are removed by the store's
// ON DELETE CASCADE rule.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM users
		WHERE id = $1
	`

	result, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

func scanUsers(rows pgx.Rows) ([]*models.User, error) {
	var users []*models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Version,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}
