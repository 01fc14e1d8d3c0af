package routes

import (
	"github.com/bistrohq/bistro-web/controllers"
	"github.com/gin-gonic/gin"
)

func AuthRoutes(server *gin.Engine, auth *controllers.AuthController) {
	server.GET("/login", auth.ShowLogin)
	server.GET("/register", auth.ShowRegister)

	group := server.Group("/auth")
	{
		group.POST("/login", auth.Login)
		group.POST("/register", auth.Register)
		group.POST("/logout", auth.Logout)
		group.GET("/check", auth.Check)
	}
}
