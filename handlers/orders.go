package handlers

import (
	"fmt"
	"net/http"

	"restaurant-orders/models"
	"restaurant-orders/store"

	"github.com/gin-gonic/gin"
)

type PlaceOrderRequest struct {
	CustomerID uint   `json:"customer_id" binding:"required"`
	DishID     uint   `json:"dish_id" binding:"required"`
	OrderDate  string `json:"order_date" binding:"required"` // YYYY-MM-DD
}

type UpdateOrderRequest struct {
	CustomerID *uint   `json:"customer_id"`
	DishID     *uint   `json:"dish_id"`
	OrderDate  *string `json:"order_date"`
}

func (h *Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	date, err := models.ParseDate(req.OrderDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := h.store.Orders.Create(c.Request.Context(), models.Order{
		CustomerID: req.CustomerID,
		DishID:     req.DishID,
		OrderDate:  date,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed", "order": order})
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	order, err := h.store.Orders.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.store.Orders.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	patch := store.OrderPatch{
		CustomerID: store.FromPtr(req.CustomerID),
		DishID:     store.FromPtr(req.DishID),
	}
	if req.OrderDate != nil {
		date, err := models.ParseDate(*req.OrderDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		patch.OrderDate = store.Some(date)
	}
	order, err := h.store.Orders.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err)
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order updated", "order": order})
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	deleted, err := h.store.Orders.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Order with ID %d not found", id)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Order %d deleted", id)})
}
