package routes

import (
	"github.com/bistrohq/bistro-web/controllers"
	"github.com/bistrohq/bistro-web/middlewares"
	"github.com/bistrohq/bistro-web/session"
	"github.com/gin-gonic/gin"
)

func OrderRoutes(server *gin.Engine, orders *controllers.OrderController, bridge *session.Bridge) {
	group := server.Group("/orders", middlewares.RequireAuth(bridge))
	{
		group.GET("", orders.ShowOrders)
		group.GET("/:orderId", orders.ShowOrder)
		group.POST("/:orderId/cancel", orders.CancelOrder)
	}
}
