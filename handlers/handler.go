package handlers

import (
	"errors"
	"iter"
	"net/http"
	"strconv"
	"time"

	"restaurant-orders/algebra"
	"restaurant-orders/auth"
	"restaurant-orders/store"

	"github.com/gin-gonic/gin"
)

// Handler serves the HTTP shell. Each endpoint makes exactly one store or
// query call.
type Handler struct {
	store    *store.Store
	queries  *algebra.Queries
	gate     auth.Gate
	secret   []byte
	tokenTTL time.Duration
}

func New(s *store.Store, gate auth.Gate, secret []byte, tokenTTL time.Duration) *Handler {
	return &Handler{
		store:    s,
		queries:  algebra.NewQueries(s),
		gate:     gate,
		secret:   secret,
		tokenTTL: tokenTTL,
	}
}

// respondError maps store outcomes to status codes
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// parseID reads the :id path parameter
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID. Please provide a whole number"})
		return 0, false
	}
	return uint(id), true
}

// parseMinPrice reads ?min_price=, defaulting to 0
func parseMinPrice(c *gin.Context) (int, bool) {
	raw := c.DefaultQuery("min_price", "0")
	n, err := strconv.Atoi(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "min_price must be a whole number"})
		return 0, false
	}
	return n, true
}

// collect drains seq into a non-nil slice so empty results encode as []
func collect[T any](seq iter.Seq[T]) []T {
	out := []T{}
	for v := range seq {
		out = append(out, v)
	}
	return out
}
