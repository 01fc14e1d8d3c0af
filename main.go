package main

import (
	"log"
	"time"

	"github.com/bistrohq/bistro-web/api"
	"github.com/bistrohq/bistro-web/config"
	"github.com/bistrohq/bistro-web/controllers"
	"github.com/bistrohq/bistro-web/routes"
	"github.com/bistrohq/bistro-web/session"
	"github.com/bistrohq/bistro-web/views"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	bridge, err := session.NewBridge(cfg.SessionSecret)
	if err != nil {
		log.Fatal(err)
	}

	apiClient := api.New(cfg.BackendBaseURL, cfg.RequestTimeout)

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	server.SetHTMLTemplate(views.Templates())
	server.Static("/static", "./static")

	routes.DefaultRoutes(server, controllers.NewDefaultController(apiClient, bridge))
	routes.AuthRoutes(server, controllers.NewAuthController(apiClient, bridge))
	routes.MenuRoutes(server, controllers.NewMenuController(apiClient, bridge))
	routes.CartRoutes(server, controllers.NewCartController(apiClient, bridge), bridge)
	routes.OrderRoutes(server, controllers.NewOrderController(apiClient, bridge), bridge)
	routes.ProfileRoutes(server, controllers.NewProfileController(apiClient, bridge), bridge)
	routes.AdminRoutes(server, controllers.NewAdminController(apiClient, bridge), bridge)

	if err := server.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
