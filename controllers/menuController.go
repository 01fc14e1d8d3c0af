package controllers

import (
	"net/http"
	"sort"

	"github.com/bistrohq/bistro-web/api"
	"github.com/bistrohq/bistro-web/models"
	"github.com/bistrohq/bistro-web/session"
	"github.com/bistrohq/bistro-web/views"
	"github.com/gin-gonic/gin"
)

type MenuController struct {
	base
}

func NewMenuController(apiClient *api.Client, bridge *session.Bridge) *MenuController {
	return &MenuController{base{api: apiClient, session: bridge}}
}

func (c *MenuController) ShowMenu(ctx *gin.Context) {
	data := c.page(ctx, "Menu")
	category := ctx.Query("category")

	s := c.backendSession(ctx)
	items, err := c.api.Menu.List(ctx, s, category)
	c.relay(ctx, s)
	if err != nil {
		data["Error"] = userMessage(err, "Failed to load the menu. Please try again later.")
	}

	fragment, renderErr := views.RenderMenuGrid(items)
	if renderErr != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, renderErr.Error())
		return
	}

	data["Menu"] = fragment
	data["Category"] = category
	data["Categories"] = categories(items)
	ctx.HTML(http.StatusOK, "menu.html", data)
}

func categories(items []models.MenuItem) []string {
	seen := map[string]bool{}
	var out []string
	for _, item := range items {
		if item.Category != "" && !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	sort.Strings(out)
	return out
}
