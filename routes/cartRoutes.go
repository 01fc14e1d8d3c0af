package routes

import (
	"github.com/bistrohq/bistro-web/controllers"
	"github.com/bistrohq/bistro-web/middlewares"
	"github.com/bistrohq/bistro-web/session"
	"github.com/gin-gonic/gin"
)

func CartRoutes(server *gin.Engine, cart *controllers.CartController, bridge *session.Bridge) {
	server.GET("/cart", cart.ShowCart)
	server.GET("/cart/fragment", cart.CartFragment)
	server.POST("/cart/items", cart.AddItem)
	server.POST("/cart/items/:itemId/increase", cart.IncreaseQuantity)
	server.POST("/cart/items/:itemId/decrease", cart.DecreaseQuantity)
	server.POST("/cart/items/:itemId/remove", cart.RemoveItem)
	server.POST("/cart/clear", cart.ClearCart)

	checkout := server.Group("/checkout", middlewares.RequireAuth(bridge))
	{
		checkout.GET("", cart.ShowCheckout)
		checkout.POST("", cart.PlaceOrder)
	}
}
