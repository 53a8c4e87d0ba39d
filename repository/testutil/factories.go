package testutil

import (
	"time"

	"reveste/models"

	"github.com/shopspring/decimal"
)

// CreateTestUser creates a user value with valid defaults
func CreateTestUser(name, email string) *models.User {
	return &models.User{
		Name:  name,
		Email: email,
	}
}

// CreateTestBet creates a bet value with valid defaults for the given owner
func CreateTestBet(ownerID int64, amount string) *models.Bet {
	return &models.Bet{
		OwnerID:     ownerID,
		Amount:      decimal.RequireFromString(amount),
		PlacedAt:    time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		Description: "test bet",
	}
}

// CreateTestBetAt creates a bet value placed at a specific time
func CreateTestBetAt(ownerID int64, amount string, placedAt time.Time) *models.Bet {
	bet := CreateTestBet(ownerID, amount)
	bet.PlacedAt = placedAt
	return bet
}
