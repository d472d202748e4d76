package routes

import (
	"restaurant-orders/handlers"
	"restaurant-orders/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, secret []byte) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/auth/login", h.Login)
	}

	// ── Authenticated routes ───────────────────────────────────────
	api := r.Group("/api")
	api.Use(middleware.AuthRequired(secret))
	{
		api.POST("/categories", h.CreateCategory)
		api.GET("/categories", h.ListCategories)
		api.GET("/categories/:id", h.GetCategory)
		api.PUT("/categories/:id", h.UpdateCategory)
		api.DELETE("/categories/:id", h.DeleteCategory)

		api.POST("/dishes", h.CreateDish)
		api.GET("/dishes", h.ListDishes)
		api.GET("/dishes/:id", h.GetDish)
		api.PUT("/dishes/:id", h.UpdateDish)
		api.DELETE("/dishes/:id", h.DeleteDish)

		api.POST("/customers", h.CreateCustomer)
		api.GET("/customers", h.ListCustomers)
		api.GET("/customers/:id", h.GetCustomer)
		api.PUT("/customers/:id", h.UpdateCustomer)
		api.DELETE("/customers/:id", h.DeleteCustomer)

		api.POST("/orders", h.PlaceOrder)
		api.GET("/orders", h.ListOrders)
		api.GET("/orders/:id", h.GetOrder)
		api.PUT("/orders/:id", h.UpdateOrder)
		api.DELETE("/orders/:id", h.DeleteOrder)

		api.GET("/tables", h.Tables)
	}

	// ── Relational algebra ─────────────────────────────────────────
	queries := r.Group("/api/queries")
	queries.Use(middleware.AuthRequired(secret))
	{
		queries.GET("/dishes", h.DishesByMinPrice)
		queries.GET("/customer-contacts", h.CustomerContacts)
		queries.GET("/order-details", h.OrderDetails)
		queries.GET("/unordered-dishes", h.UnorderedDishes)
		queries.GET("/dishes-and-categories", h.DishesAndCategories)
	}
}
