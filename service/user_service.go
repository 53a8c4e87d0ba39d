package service

import (
	"context"
	"fmt"

	"reveste/models"
)

// userService implements the UserService interface
type userService struct {
	userRepo UserRepository
	betRepo  BetRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository, betRepo BetRepository) UserService {
	return &userService{
		userRepo: userRepo,
		betRepo:  betRepo,
	}
}

// CreateUser validates and persists a new user
func (s *userService) CreateUser(ctx context.Context, user *models.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	user.Bets = []*models.Bet{}
	return nil
}

// GetUser returns a user with its bets attached
func (s *userService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, models.ErrNotFound
	}

	bets, err := s.betRepo.GetByOwner(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load bets for user %d: %w", id, err)
	}
	user.Bets = emptyIfNil(bets)

	return user, nil
}

// ListUsers returns all users with their bets attached
func (s *userService) ListUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.userRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	if err := s.attachBets(ctx, users); err != nil {
		return nil, err
	}

	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}

// SearchUsersByName returns users whose name contains the substring, with
// their bets attached
func (s *userService) SearchUsersByName(ctx context.Context, name string) ([]*models.User, error) {
	users, err := s.userRepo.SearchByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to search users: %w", err)
	}

	if err := s.attachBets(ctx, users); err != nil {
		return nil, err
	}

	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}

// UpdateUser replaces the user addressed by id with the given record. The id
// in the body must match the addressed id, and the write is conditioned on
// the record's version as read by the caller.
func (s *userService) UpdateUser(ctx context.Context, id int64, user *models.User) error {
	if id != user.ID {
		return models.ErrIDMismatch
	}
	if err := user.Validate(); err != nil {
		return err
	}

	return s.userRepo.Update(ctx, user)
}

// DeleteUser removes a user and, by cascade, every bet it owns
func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}

// attachBets loads all bets once and distributes them to their owners
func (s *userService) attachBets(ctx context.Context, users []*models.User) error {
	if len(users) == 0 {
		return nil
	}

	bets, err := s.betRepo.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load bets: %w", err)
	}

	byOwner := make(map[int64][]*models.Bet)
	for _, bet := range bets {
		byOwner[bet.OwnerID] = append(byOwner[bet.OwnerID], bet)
	}

	for _, user := range users {
		user.Bets = emptyIfNil(byOwner[user.ID])
	}
	return nil
}

func emptyIfNil(bets []*models.Bet) []*models.Bet {
	if bets == nil {
		return []*models.Bet{}
	}
	return bets
}
