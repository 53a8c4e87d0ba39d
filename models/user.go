package models

import (
	"time"
)

// User represents a registered user who can place bets
type User struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name" validate:"required,max=100"`
	Email     string    `json:"email" db:"email" validate:"required,email,max=150"`
	Bets      []*Bet    `json:"bets" db:"-" validate:"-"` // Loaded per read, not an owned collection
	Version   int64     `json:"version" db:"version"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Validate checks the user's field constraints
func (u *User) Validate() error {
	return validateStruct(u)
}
