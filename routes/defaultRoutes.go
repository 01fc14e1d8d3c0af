package routes

import (
	"github.com/bistrohq/bistro-web/controllers"
	"github.com/gin-gonic/gin"
)

func DefaultRoutes(server *gin.Engine, home *controllers.DefaultController) {
	server.GET("/", home.ShowHome)
}
