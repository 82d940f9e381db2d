package controllers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the API under /api/v1.
func RegisterRoutes(router *gin.Engine, pizzas PizzaController, orders OrderController, stock StockController) {
	v1 := router.Group("/api/v1")
	{
		v1.GET("/catalog", pizzas.GetCatalog)
		v1.GET("/pizzas", pizzas.GetAllPizzas)
		v1.GET("/pizzas/:id", pizzas.GetPizzaByID)
		v1.POST("/pizzas/:id/calculate-price", pizzas.CalculatePrice)
		v1.GET("/extras", pizzas.GetExtras)
		v1.GET("/ingredients", pizzas.GetIngredients)

		v1.POST("/orders", orders.PlaceOrder)
		v1.GET("/orders", orders.GetOrders)
		v1.GET("/orders/:id", orders.GetOrderByID)
		v1.PATCH("/orders/:id/status", orders.UpdateOrderStatus)

		admin := v1.Group("/admin/stock")
		{
			admin.POST("/:kind/:id/restock", stock.Restock)
			admin.PUT("/:kind/:id/availability", stock.SetAvailability)
		}
	}
}
