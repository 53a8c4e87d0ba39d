package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validUser() *User {
	return &User{
		Name:  "Ana",
		Email: "ana@x.com",
	}
}

func validBet() *Bet {
	return &Bet{
		OwnerID:     1,
		Amount:      decimal.RequireFromString("150.00"),
		PlacedAt:    time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
		Description: "match A",
	}
}

func TestUserValidate(t *testing.T) {
	t.Run("valid user passes", func(t *testing.T) {
		assert.NoError(t, validUser().Validate())
	})

	t.Run("empty name", func(t *testing.T) {
		user := validUser()
		user.Name = ""
		assertViolation(t, user.Validate(), "name")
	})

	t.Run("name over max length", func(t *testing.T) {
		user := validUser()
		user.Name = strings.Repeat("a", 101)
		assertViolation(t, user.Validate(), "name")
	})

	t.Run("empty email", func(t *testing.T) {
		user := validUser()
		user.Email = ""
		assertViolation(t, user.Validate(), "email")
	})

	t.Run("malformed email", func(t *testing.T) {
		user := validUser()
		user.Email = "x"
		assertViolation(t, user.Validate(), "email")
	})

	t.Run("email over max length", func(t *testing.T) {
		user := validUser()
		user.Email = strings.Repeat("a", 145) + "@x.com"
		assertViolation(t, user.Validate(), "email")
	})
}

func TestBetValidate(t *testing.T) {
	t.Run("valid bet passes", func(t *testing.T) {
		assert.NoError(t, validBet().Validate())
	})

	t.Run("empty description is allowed", func(t *testing.T) {
		bet := validBet()
		bet.Description = ""
		assert.NoError(t, bet.Validate())
	})

	t.Run("missing owner", func(t *testing.T) {
		bet := validBet()
		bet.OwnerID = 0
		assertViolation(t, bet.Validate(), "ownerId")
	})

	t.Run("missing placement time", func(t *testing.T) {
		bet := validBet()
		bet.PlacedAt = time.Time{}
		assertViolation(t, bet.Validate(), "placedAt")
	})

	t.Run("description over max length", func(t *testing.T) {
		bet := validBet()
		bet.Description = strings.Repeat("a", 256)
		assertViolation(t, bet.Validate(), "description")
	})

	t.Run("zero amount", func(t *testing.T) {
		bet := validBet()
		bet.Amount = decimal.Zero
		assertViolation(t, bet.Validate(), "amount")
	})

	t.Run("negative amount", func(t *testing.T) {
		bet := validBet()
		bet.Amount = decimal.RequireFromString("-1.00")
		assertViolation(t, bet.Validate(), "amount")
	})

	t.Run("more than two decimal places", func(t *testing.T) {
		bet := validBet()
		bet.Amount = decimal.RequireFromString("10.001")
		assertViolation(t, bet.Validate(), "amount")
	})
}

func TestBetSerializationExcludesOwner(t *testing.T) {
	owner := validUser()
	owner.ID = 1

	bet := validBet()
	bet.ID = 1
	bet.Owner = owner

	data, err := json.Marshal(bet)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))

	assert.Contains(t, fields, "ownerId")
	assert.NotContains(t, fields, "owner")
}

func assertViolation(t *testing.T, err error, field string) {
	t.Helper()
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, field, validationErr.Field)
}
