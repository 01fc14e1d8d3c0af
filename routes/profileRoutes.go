package routes

import (
	"github.com/bistrohq/bistro-web/controllers"
	"github.com/bistrohq/bistro-web/middlewares"
	"github.com/bistrohq/bistro-web/session"
	"github.com/gin-gonic/gin"
)

func ProfileRoutes(server *gin.Engine, profile *controllers.ProfileController, bridge *session.Bridge) {
	group := server.Group("/profile", middlewares.RequireAuth(bridge))
	{
		group.GET("", profile.ShowProfile)
		group.POST("", profile.UpdateProfile)
		group.POST("/password", profile.ChangePassword)
	}
}
