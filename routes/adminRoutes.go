package routes

import (
	"github.com/bistrohq/bistro-web/controllers"
	"github.com/bistrohq/bistro-web/middlewares"
	"github.com/bistrohq/bistro-web/session"
	"github.com/gin-gonic/gin"
)

func AdminRoutes(server *gin.Engine, admin *controllers.AdminController, bridge *session.Bridge) {
	group := server.Group("/admin", middlewares.RequireStaff(bridge))
	{
		group.GET("", admin.ShowBackOffice)
		group.POST("/orders/:orderId/status", admin.UpdateOrderStatus)
		group.POST("/orders/:orderId/delete", admin.DeleteOrder)
		group.POST("/menu", admin.CreateMenuItem)
		group.GET("/menu/:itemId/edit", admin.ShowEditMenuItem)
		group.POST("/menu/:itemId", admin.UpdateMenuItem)
		group.POST("/menu/:itemId/availability", admin.SetMenuItemAvailability)
		group.POST("/menu/:itemId/feature", admin.SetMenuItemFeatured)
		group.POST("/menu/:itemId/delete", admin.DeleteMenuItem)
		group.POST("/users/:userId", admin.UpdateUser)
		group.POST("/users/:userId/delete", admin.DeleteUser)
	}
}
