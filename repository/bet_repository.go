package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"reveste/database"
	"reveste/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// Postgres error code for foreign key violations
const foreignKeyViolation = "23503"

// betColumns is the joined projection used by every bet read: the bet row
// plus the owner row it references.
const betColumns = `
	b.id, b.owner_id, b.amount, b.placed_at, b.description, b.version, b.created_at, b.updated_at,
	u.id, u.name, u.email, u.version, u.created_at, u.updated_at
`

// BetRepository implements the service.BetRepository interface
type BetRepository struct {
	q queryable
}

// NewBetRepository creates a new bet repository
func NewBetRepository(db *database.DB) *BetRepository {
	return &BetRepository{q: db.Pool}
}

// Create inserts a new bet and fills in the generated fields. The owner
// reference is enforced by the foreign key constraint; a violation is
// reported as ErrNotFound.
func (r *BetRepository) Create(ctx context.Context, bet *models.Bet) error {
	query := `
		INSERT INTO bets (owner_id, amount, placed_at, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, version, created_at, updated_at
	`

	err := r.q.QueryRow(ctx, query, bet.OwnerID, bet.Amount, bet.PlacedAt, bet.Description).Scan(
		&bet.ID,
		&bet.Version,
		&bet.CreatedAt,
		&bet.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.ErrNotFound
		}
		return fmt.Errorf("failed to create bet: %w", err)
	}

	return nil
}

// GetByID retrieves a bet with its owner populated, or nil if no such bet
// exists
func (r *BetRepository) GetByID(ctx context.Context, id int64) (*models.Bet, error) {
	query := `
		SELECT ` + betColumns + `
		FROM bets b
		JOIN users u ON u.id = b.owner_id
		WHERE b.id = $1
	`

	bet, err := scanBet(r.q.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bet %d: %w", id, err)
	}

	return bet, nil
}

// GetAll returns all bets with owners populated, in stored order
func (r *BetRepository) GetAll(ctx context.Context) ([]*models.Bet, error) {
	query := `
		SELECT ` + betColumns + `
		FROM bets b
		JOIN users u ON u.id = b.owner_id
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all bets: %w", err)
	}
	defer rows.Close()

	return scanBets(rows)
}

// GetByOwner returns all bets placed by the given user. An owner with no
// bets yields an empty result, not an error.
func (r *BetRepository) GetByOwner(ctx context.Context, ownerID int64) ([]*models.Bet, error) {
	query := `
		SELECT ` + betColumns + `
		FROM bets b
		JOIN users u ON u.id = b.owner_id
		WHERE b.owner_id = $1
	`

	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bets for owner %d: %w", ownerID, err)
	}
	defer rows.Close()

	return scanBets(rows)
}

// GetAmountGreaterThan returns all bets with amount strictly greater than the
// threshold
func (r *BetRepository) GetAmountGreaterThan(ctx context.Context, threshold decimal.Decimal) ([]*models.Bet, error) {
	query := `
		SELECT ` + betColumns + `
		FROM bets b
		JOIN users u ON u.id = b.owner_id
		WHERE b.amount > $1
	`

	rows, err := r.q.Query(ctx, query, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to get bets with amount above %s: %w", threshold, err)
	}
	defer rows.Close()

	return scanBets(rows)
}

// GetByDate returns all bets placed on the given calendar date, discarding
// the time component.
func (r *BetRepository) GetByDate(ctx context.Context, date time.Time) ([]*models.Bet, error) {
	query := `
		SELECT ` + betColumns + `
		FROM bets b
		JOIN users u ON u.id = b.owner_id
		WHERE DATE(b.placed_at) = DATE($1::timestamptz)
	`

	rows, err := r.q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get bets on date %s: %w", date.Format("2006-01-02"), err)
	}
	defer rows.Close()

	return scanBets(rows)
}

// Update replaces the bet's mutable fields, conditioned on the version read
// by the caller. A zero-row result is re-checked to distinguish a concurrent
// delete (ErrNotFound) from a concurrent modification; re-pointing the bet at
// a missing owner is also ErrNotFound.
func (r *BetRepository) Update(ctx context.Context, bet *models.Bet) error {
	query := `
		UPDATE bets
		SET owner_id = $1, amount = $2, placed_at = $3, description = $4, version = version + 1, updated_at = NOW()
		WHERE id = $5 AND version = $6
		RETURNING version, updated_at
	`

	err := r.q.QueryRow(ctx, query, bet.OwnerID, bet.Amount, bet.PlacedAt, bet.Description, bet.ID, bet.Version).Scan(
		&bet.Version,
		&bet.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		existing, err := r.GetByID(ctx, bet.ID)
		if err != nil {
			return fmt.Errorf("failed to re-check bet %d after conflicting update: %w", bet.ID, err)
		}
		if existing == nil {
			return models.ErrNotFound
		}
		return models.ErrConcurrentModification
	}
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.ErrNotFound
		}
		return fmt.Errorf("failed to update bet %d: %w", bet.ID, err)
	}

	return nil
}

// Delete removes a bet
func (r *BetRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM bets
		WHERE id = $1
	`

	result, err := r.q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete bet %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}

	return nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}

func scanBet(row pgx.Row) (*models.Bet, error) {
	var bet models.Bet
	var owner models.User
	err := row.Scan(
		&bet.ID,
		&bet.OwnerID,
		&bet.Amount,
		&bet.PlacedAt,
		&bet.Description,
		&bet.Version,
		&bet.CreatedAt,
		&bet.UpdatedAt,
		&owner.ID,
		&owner.Name,
		&owner.Email,
		&owner.Version,
		&owner.CreatedAt,
		&owner.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	bet.Owner = &owner
	return &bet, nil
}

func scanBets(rows pgx.Rows) ([]*models.Bet, error) {
	var bets []*models.Bet
	for rows.Next() {
		bet, err := scanBet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bet: %w", err)
		}
		bets = append(bets, bet)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bets: %w", err)
	}

	return bets, nil
}
