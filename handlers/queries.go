package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// DishesByMinPrice is the selection σ(price >= min_price)(dishes)
func (h *Handler) DishesByMinPrice(c *gin.Context) {
	minPrice, ok := parseMinPrice(c)
	if !ok {
		return
	}
	seq, err := h.queries.DishesPricedAtLeast(c.Request.Context(), minPrice)
	if err != nil {
		respondError(c, err)
		return
	}
	dishes := collect(seq)
	c.JSON(http.StatusOK, gin.H{"min_price": minPrice, "count": len(dishes), "dishes": dishes})
}

// CustomerContacts is the projection π(name, phone)(customers)
func (h *Handler) CustomerContacts(c *gin.Context) {
	seq, err := h.queries.CustomerContacts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	rows := collect(seq)
	contacts := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		name, _ := r.Get("name")
		phone, _ := r.Get("phone")
		contacts = append(contacts, gin.H{"name": name, "phone": phone})
	}
	c.JSON(http.StatusOK, gin.H{"count": len(contacts), "contacts": contacts})
}

// OrderDetails is the join of orders with their customer and dish
func (h *Handler) OrderDetails(c *gin.Context) {
	seq, err := h.queries.OrderDetails(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	details := collect(seq)
	c.JSON(http.StatusOK, gin.H{"count": len(details), "orders": details})
}

// UnorderedDishes is dishes minus the dishes referenced by any order
func (h *Handler) UnorderedDishes(c *gin.Context) {
	seq, err := h.queries.UnorderedDishes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	dishes := collect(seq)
	c.JSON(http.StatusOK, gin.H{"count": len(dishes), "dishes": dishes})
}

// DishesAndCategories lists dishes above min_price followed by all categories
func (h *Handler) DishesAndCategories(c *gin.Context) {
	minPrice, ok := parseMinPrice(c)
	if !ok {
		return
	}
	seq, err := h.queries.DishesAndCategories(c.Request.Context(), minPrice)
	if err != nil {
		respondError(c, err)
		return
	}
	rows := collect(seq)
	c.JSON(http.StatusOK, gin.H{"min_price": minPrice, "count": len(rows), "rows": rows})
}

// Tables returns every relation at once
func (h *Handler) Tables(c *gin.Context) {
	tables, err := h.queries.Tables(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}
