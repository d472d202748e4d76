package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"restaurant-orders/handlers"
	"restaurant-orders/routes"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port != "" {
				cfg.HTTP.Port = port
			}
			return serve()
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (default $PORT or 8080)")
	return cmd
}

func serve() error {
	if cfg.HTTP.GinMode == "" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(cfg.HTTP.GinMode)
	}

	s, closeStore, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	gate, err := newGate()
	if err != nil {
		return err
	}

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":            "healthy",
			"service":           "Restaurant Orders API",
			"strict_references": s.StrictReferences(),
		})
	})

	routes.SetupRoutes(r, handlers.New(s, gate, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL), cfg.Auth.JWTSecret)

	slog.Info("server running", "addr", "http://localhost:"+cfg.HTTP.Port)
	if err := r.Run(":" + cfg.HTTP.Port); err != nil {
		return fmt.Errorf("start server: %w", err)
	}
	return nil
}
