package service

import (
	"context"
	"fmt"
	"time"

	"reveste/models"

	"github.com/shopspring/decimal"
)

// betService implements the BetService interface
type betService struct {
	betRepo  BetRepository
	userRepo UserRepository
}

// NewBetService creates a new bet service
func NewBetService(betRepo BetRepository, userRepo UserRepository) BetService {
	return &betService{
		betRepo:  betRepo,
		userRepo: userRepo,
	}
}

// CreateBet validates the bet, checks that the owner exists and persists it.
// A missing owner is ErrNotFound and nothing is stored; the foreign key
// constraint covers the window between the check and the insert.
func (s *betService) CreateBet(ctx context.Context, bet *models.Bet) error {
	if err := bet.Validate(); err != nil {
		return err
	}

	owner, err := s.userRepo.GetByID(ctx, bet.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to check bet owner: %w", err)
	}
	if owner == nil {
		return models.ErrNotFound
	}

	if err := s.betRepo.Create(ctx, bet); err != nil {
		return err
	}

	bet.Owner = owner
	return nil
}

// GetBet returns a bet with its owner populated
func (s *betService) GetBet(ctx context.Context, id int64) (*models.Bet, error) {
	bet, err := s.betRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get bet: %w", err)
	}
	if bet == nil {
		return nil, models.ErrNotFound
	}
	return bet, nil
}

// ListBets returns all bets with owners populated
func (s *betService) ListBets(ctx context.Context) ([]*models.Bet, error) {
	bets, err := s.betRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bets: %w", err)
	}
	return emptyIfNil(bets), nil
}

// BetsByOwner returns all bets placed by the given user. An owner with no
// bets yields an empty result, not an error.
func (s *betService) BetsByOwner(ctx context.Context, ownerID int64) ([]*models.Bet, error) {
	bets, err := s.betRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bets by owner: %w", err)
	}
	return emptyIfNil(bets), nil
}

// BetsWithAmountGreaterThan returns bets with amount strictly above the
// threshold
func (s *betService) BetsWithAmountGreaterThan(ctx context.Context, threshold decimal.Decimal) ([]*models.Bet, error) {
	bets, err := s.betRepo.GetAmountGreaterThan(ctx, threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to get bets by amount: %w", err)
	}
	return emptyIfNil(bets), nil
}

// BetsOnDate returns bets placed on the given calendar date
func (s *betService) BetsOnDate(ctx context.Context, date time.Time) ([]*models.Bet, error) {
	bets, err := s.betRepo.GetByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get bets by date: %w", err)
	}
	return emptyIfNil(bets), nil
}

// UpdateBet replaces the bet addressed by id with the given record. The id in
// the body must match the addressed id, and the write is conditioned on the
// record's version as read by the caller.
func (s *betService) UpdateBet(ctx context.Context, id int64, bet *models.Bet) error {
	if id != bet.ID {
		return models.ErrIDMismatch
	}
	if err := bet.Validate(); err != nil {
		return err
	}

	return s.betRepo.Update(ctx, bet)
}

// DeleteBet removes a bet
func (s *betService) DeleteBet(ctx context.Context, id int64) error {
	return s.betRepo.Delete(ctx, id)
}
