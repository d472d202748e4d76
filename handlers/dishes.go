package handlers

import (
	"fmt"
	"net/http"

	"restaurant-orders/models"
	"restaurant-orders/store"

	"github.com/gin-gonic/gin"
)

type CreateDishRequest struct {
	Name       string `json:"name"`
	Price      int    `json:"price"`
	CategoryID uint   `json:"category_id" binding:"required"`
}

type UpdateDishRequest struct {
	Name       *string `json:"name"`
	Price      *int    `json:"price"`
	CategoryID *uint   `json:"category_id"`
}

func (h *Handler) CreateDish(c *gin.Context) {
	var req CreateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dish, err := h.store.Dishes.Create(c.Request.Context(), models.Dish{
		Name:       req.Name,
		Price:      req.Price,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": fmt.Sprintf("Dish '%s' created", dish.Name), "dish": dish})
}

func (h *Handler) GetDish(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	dish, err := h.store.Dishes.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if dish == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"dish": dish})
}

func (h *Handler) ListDishes(c *gin.Context) {
	dishes, err := h.store.Dishes.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(dishes), "dishes": dishes})
}

func (h *Handler) UpdateDish(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateDishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dish, err := h.store.Dishes.Update(c.Request.Context(), id, store.DishPatch{
		Name:       store.FromPtr(req.Name),
		Price:      store.FromPtr(req.Price),
		CategoryID: store.FromPtr(req.CategoryID),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	if dish == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dish not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dish updated", "dish": dish})
}

func (h *Handler) DeleteDish(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.store.Dishes.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Dish with ID %d not found", id)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Dish %d deleted", id)})
}
