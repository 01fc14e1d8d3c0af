package routes

import (
	"github.com/bistrohq/bistro-web/controllers"
	"github.com/gin-gonic/gin"
)

func MenuRoutes(server *gin.Engine, menu *controllers.MenuController) {
	server.GET("/menu", menu.ShowMenu)
}
