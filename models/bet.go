package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bet represents a bet placed by a user.
// Owner is a lookup back-reference resolved by join; it is excluded from JSON
// so a serialized bet never re-embeds its owner's bet collection.
type Bet struct {
	ID          int64           `json:"id" db:"id"`
	OwnerID     int64           `json:"ownerId" db:"owner_id" validate:"required"`
	Owner       *User           `json:"-" db:"-" validate:"-"`
	Amount      decimal.Decimal `json:"amount" db:"amount" validate:"-"`
	PlacedAt    time.Time       `json:"placedAt" db:"placed_at" validate:"required"`
	Description string          `json:"description" db:"description" validate:"max=255"`
	Version     int64           `json:"version" db:"version"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
}

// Validate checks the bet's field constraints. Amounts are fixed-point with
// two decimal places, so the scale is checked here rather than via tags.
func (b *Bet) Validate() error {
	if err := validateStruct(b); err != nil {
		return err
	}
	if !b.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Message: "must be a positive amount"}
	}
	if b.Amount.Exponent() < -2 {
		return &ValidationError{Field: "amount", Message: "must have at most two decimal places"}
	}
	return nil
}
