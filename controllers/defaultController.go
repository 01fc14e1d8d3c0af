package controllers

import (
	"net/http"

	"github.com/bistrohq/bistro-web/api"
	"github.com/bistrohq/bistro-web/session"
	"github.com/bistrohq/bistro-web/views"
	"github.com/gin-gonic/gin"
)

type DefaultController struct {
	base
}

func NewDefaultController(apiClient *api.Client, bridge *session.Bridge) *DefaultController {
	return &DefaultController{base{api: apiClient, session: bridge}}
}

func (c *DefaultController) ShowHome(ctx *gin.Context) {
	data := c.page(ctx, "Home")

	s := c.backendSession(ctx)
	featured, err := c.api.Menu.Featured(ctx, s)
	c.relay(ctx, s)
	if err != nil {
		_ = userMessage(err, "featured items unavailable")
	}

	fragment, renderErr := views.RenderMenuGrid(featured)
	if renderErr != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, renderErr.Error())
		return
	}

	data["Featured"] = fragment
	ctx.HTML(http.StatusOK, "home.html", data)
}
