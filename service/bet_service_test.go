package service

import (
	"context"
	"testing"
	"time"

	"reveste/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testBet() *models.Bet {
	return &models.Bet{
		OwnerID:     1,
		Amount:      decimal.RequireFromString("150.00"),
		PlacedAt:    time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		Description: "match A",
	}
}

func TestBetService_CreateBet(t *testing.T) {
	ctx := context.Background()

	t.Run("valid bet is persisted with owner populated", func(t *testing.T) {
		betRepo := new(MockBetRepository)
		userRepo := new(MockUserRepository)
		svc := NewBetService(betRepo, userRepo)

		owner := &models.User{ID: 1, Name: "Ana", Email: "ana@x.com"}
		bet := testBet()

		userRepo.On("GetByID", ctx, int64(1)).Return(owner, nil)
		betRepo.On("Create", ctx, bet).Run(func(args mock.Arguments) {
			args.Get(1).(*models.Bet).ID = 1
		}).Return(nil)

		err := svc.CreateBet(ctx, bet)
		require.NoError(t, err)
		assert.Equal(t, int64(1), bet.ID)
		assert.Equal(t, owner, bet.Owner)
		betRepo.AssertExpectations(t)
	})

	t.Run("nonexistent owner is not found and nothing is persisted", func(t *testing.T) {
		betRepo := new(MockBetRepository)
		userRepo := new(MockUserRepository)
		svc := NewBetService(betRepo, userRepo)

		bet := testBet()
		bet.OwnerID = 42
		userRepo.On("GetByID", ctx, int64(42)).Return(nil, nil)

		err := svc.CreateBet(ctx, bet)
		assert.ErrorIs(t, err, models.ErrNotFound)
		betRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid bet never reaches the store", func(t *testing.T) {
		betRepo := new(MockBetRepository)
		userRepo := new(MockUserRepository)
		svc := NewBetService(betRepo, userRepo)

		bet := testBet()
		bet.Amount = decimal.Zero

		err := svc.CreateBet(ctx, bet)

		var validationErr *models.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "amount", validationErr.Field)
		userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
		betRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestBetService_GetBet(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id is not found", func(t *testing.T) {
		betRepo := new(MockBetRepository)
		userRepo := new(MockUserRepository)
		svc := NewBetService(betRepo, userRepo)

		betRepo.On("GetByID", ctx, int64(42)).Return(nil, nil)

		_, err := svc.GetBet(ctx, 42)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}

func TestBetService_UpdateBet(t *testing.T) {
	ctx := context.Background()

	t.Run("identifier mismatch performs no mutation", func(t *testing.T) {
		betRepo := new(MockBetRepository)
		userRepo := new(MockUserRepository)
		svc := NewBetService(betRepo, userRepo)

		bet := testBet()
		bet.ID = 2

		err := svc.UpdateBet(ctx, 1, bet)
		assert.ErrorIs(t, err, models.ErrIDMismatch)
		betRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("concurrency conflict is surfaced, not retried", func(t *testing.T) {
		betRepo := new(MockBetRepository)
		userRepo := new(MockUserRepository)
		svc := NewBetService(betRepo, userRepo)

		bet := testBet()
		bet.ID = 1
		bet.Version = 1
		betRepo.On("Update", ctx, bet).Return(models.ErrConcurrentModification).Once()

		err := svc.UpdateBet(ctx, 1, bet)
		assert.ErrorIs(t, err, models.ErrConcurrentModification)
		betRepo.AssertExpectations(t)
	})
}

func TestBetService_Queries(t *testing.T) {
	ctx := context.Background()

	t.Run("owner with no bets yields an empty collection", func(t *testing.T) {
		betRepo := new(MockBetRepository)
		userRepo := new(MockUserRepository)
		svc := NewBetService(betRepo, userRepo)

		betRepo.On("GetByOwner", ctx, int64(42)).Return(nil, nil)

		bets, err := svc.BetsByOwner(ctx, 42)
		require.NoError(t, err)
		assert.NotNil(t, bets)
		assert.Empty(t, bets)
	})

	t.Run("amount filter passes the threshold through", func(t *testing.T) {
		betRepo := new(MockBetRepository)
		userRepo := new(MockUserRepository)
		svc := NewBetService(betRepo, userRepo)

		threshold := decimal.RequireFromString("100")
		expected := []*models.Bet{{ID: 1, OwnerID: 1}}
		betRepo.On("GetAmountGreaterThan", ctx, threshold).Return(expected, nil)

		bets, err := svc.BetsWithAmountGreaterThan(ctx, threshold)
		require.NoError(t, err)
		assert.Equal(t, expected, bets)
	})

	t.Run("date filter passes the date through", func(t *testing.T) {
		betRepo := new(MockBetRepository)
		userRepo := new(MockUserRepository)
		svc := NewBetService(betRepo, userRepo)

		date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		betRepo.On("GetByDate", ctx, date).Return(nil, nil)

		bets, err := svc.BetsOnDate(ctx, date)
		require.NoError(t, err)
		assert.NotNil(t, bets)
		assert.Empty(t, bets)
	})
}

func TestBetService_DeleteBet(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown id is not found", func(t *testing.T) {
		betRepo := new(MockBetRepository)
		userRepo := new(MockUserRepository)
		svc := NewBetService(betRepo, userRepo)

		betRepo.On("Delete", ctx, int64(42)).Return(models.ErrNotFound)

		err := svc.DeleteBet(ctx, 42)
		assert.ErrorIs(t, err, models.ErrNotFound)
	})
}
