package handlers

import (
	"log/slog"
	"net/http"

	"restaurant-orders/middleware"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the credentials against the gate and returns a JWT
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.gate.Authenticate(req.Username, req.Password) {
		slog.Info("login refused", "username", req.Username)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access denied, incorrect username or password"})
		return
	}

	token, err := middleware.GenerateToken(req.Username, h.secret, h.tokenTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Access granted",
		"token":    token,
		"username": req.Username,
	})
}
