package service

import (
	"context"
	"time"

	"reveste/models"

	"github.com/shopspring/decimal"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user and fills in the generated fields
	Create(ctx context.Context, user *models.User) error

	// GetByID retrieves a user by id, or nil if no such user exists
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// GetAll returns all users in stored order
	GetAll(ctx context.Context) ([]*models.User, error)

	// SearchByName returns users whose name contains the given substring
	SearchByName(ctx context.Context, name string) ([]*models.User, error)

	// Update replaces the user's mutable fields, conditioned on its version
	Update(ctx context.Context, user *models.User) error

	// Delete removes a user and, by cascade, the bets that reference it
	Delete(ctx context.Context, id int64) error
}

// BetRepository defines the interface for bet data access
type BetRepository interface {
	// Create inserts a new bet and fills in the generated fields
	Create(ctx context.Context, bet *models.Bet) error

	// GetByID retrieves a bet with its owner populated, or nil if no such bet
	// exists
	GetByID(ctx context.Context, id int64) (*models.Bet, error)

	// GetAll returns all bets with owners populated
	GetAll(ctx context.Context) ([]*models.Bet, error)

	// GetByOwner returns all bets placed by the given user
	GetByOwner(ctx context.Context, ownerID int64) ([]*models.Bet, error)

	// GetAmountGreaterThan returns all bets with amount strictly above the
	// threshold
	GetAmountGreaterThan(ctx context.Context, threshold decimal.Decimal) ([]*models.Bet, error)

	// GetByDate returns all bets placed on the given calendar date
	GetByDate(ctx context.Context, date time.Time) ([]*models.Bet, error)

	// Update replaces the bet's mutable fields, conditioned on its version
	Update(ctx context.Context, bet *models.Bet) error

	// Delete removes a bet
	Delete(ctx context.Context, id int64) error
}

// UserService defines the interface for user operations
type UserService interface {
	// CreateUser validates and persists a new user
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser returns a user with its bets attached
	GetUser(ctx context.Context, id int64) (*models.User, error)

	// ListUsers returns all users with their bets attached
	ListUsers(ctx context.Context) ([]*models.User, error)

	// SearchUsersByName returns users whose name contains the substring
	SearchUsersByName(ctx context.Context, name string) ([]*models.User, error)

	// UpdateUser replaces the user addressed by id with the given record
	UpdateUser(ctx context.Context, id int64, user *models.User) error

	// DeleteUser removes a user and its bets
	DeleteUser(ctx context.Context, id int64) error
}

// BetService defines the interface for bet operations
type BetService interface {
	// CreateBet validates the bet, checks the owner reference and persists it
	CreateBet(ctx context.Context, bet *models.Bet) error

	// GetBet returns a bet with its owner populated
	GetBet(ctx context.Context, id int64) (*models.Bet, error)

	// ListBets returns all bets with owners populated
	ListBets(ctx context.Context) ([]*models.Bet, error)

	// BetsByOwner returns all bets placed by the given user
	BetsByOwner(ctx context.Context, ownerID int64) ([]*models.Bet, error)

	// BetsWithAmountGreaterThan returns bets with amount strictly above the
	// threshold
	BetsWithAmountGreaterThan(ctx context.Context, threshold decimal.Decimal) ([]*models.Bet, error)

	// BetsOnDate returns bets placed on the given calendar date
	BetsOnDate(ctx context.Context, date time.Time) ([]*models.Bet, error)

	// UpdateBet replaces the bet addressed by id with the given record
	UpdateBet(ctx context.Context, id int64, bet *models.Bet) error

	// DeleteBet removes a bet
	DeleteBet(ctx context.Context, id int64) error
}
