package api

import (
	"net/http"
	"time"

	"reveste/models"
	"reveste/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type betHandler struct {
	service service.BetService
}

func (h *betHandler) list(c *gin.Context) {
	bets, err := h.service.ListBets(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bets)
}

func (h *betHandler) get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	bet, err := h.service.GetBet(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bet)
}

func (h *betHandler) create(c *gin.Context) {
	var bet models.Bet
	if err := c.ShouldBindJSON(&bet); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.CreateBet(c.Request.Context(), &bet); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, bet)
}

func (h *betHandler) update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var bet models.Bet
	if err := c.ShouldBindJSON(&bet); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.service.UpdateBet(c.Request.Context(), id, &bet); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *betHandler) delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteBet(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *betHandler) byOwner(c *gin.Context) {
	ownerID, ok := pathID(c)
	if !ok {
		return
	}

	bets, err := h.service.BetsByOwner(c.Request.Context(), ownerID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bets)
}

func (h *betHandler) amountGreaterThan(c *gin.Context) {
	threshold, err := decimal.NewFromString(c.Param("valor"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
		return
	}

	bets, err := h.service.BetsWithAmountGreaterThan(c.Request.Context(), threshold)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bets)
}

func (h *betHandler) byDate(c *gin.Context) {
	date, err := parseDate(c.Param("data"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		return
	}

	bets, err := h.service.BetsOnDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bets)
}

// parseDate accepts a plain calendar date or a full timestamp; only the date
// component is used by the query.
func parseDate(value string) (time.Time, error) {
	if date, err := time.Parse("2006-01-02", value); err == nil {
		return date, nil
	}
	return time.Parse(time.RFC3339, value)
}
