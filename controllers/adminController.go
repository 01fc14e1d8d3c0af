package controllers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/bistrohq/bistro-web/api"
	"github.com/bistrohq/bistro-web/models"
	"github.com/bistrohq/bistro-web/session"
	"github.com/bistrohq/bistro-web/views"
	"github.com/gin-gonic/gin"
)

type AdminController struct {
	base
}

func NewAdminController(apiClient *api.Client, bridge *session.Bridge) *AdminController {
	return &AdminController{base{api: apiClient, session: bridge}}
}

// ShowBackOffice renders the whole back office: dashboard stats, the
// order table with the status control, menu management, and users.
// Each section degrades independently when its fetch fails.
func (c *AdminController) ShowBackOffice(ctx *gin.Context) {
	data := c.page(ctx, "Back Office")
	s := c.backendSession(ctx)

	stats, err := c.api.Admin.Dashboard(ctx, s)
	if err != nil {
		stats = &models.DashboardStats{}
		data["Error"] = userMessage(err, "Failed to load dashboard stats.")
	}
	dashboard, renderErr := views.RenderDashboard(stats)
	if renderErr != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, renderErr.Error())
		return
	}

	orders, err := c.api.Orders.List(ctx, s)
	if err != nil {
		_ = userMessage(err, "Failed to load orders.")
	}
	orderTable, renderErr := views.RenderAdminOrders(orders)
	if renderErr != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, renderErr.Error())
		return
	}

	items, err := c.api.Menu.List(ctx, s, "")
	if err != nil {
		_ = userMessage(err, "Failed to load menu items.")
	}
	menuTable, renderErr := views.RenderAdminMenu(items)
	if renderErr != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, renderErr.Error())
		return
	}

	users, err := c.api.Admin.ListUsers(ctx, s)
	if err != nil {
		_ = userMessage(err, "Failed to load users.")
	}
	usersTable, renderErr := views.RenderUsersTable(users)
	if renderErr != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, renderErr.Error())
		return
	}

	c.relay(ctx, s)
	data["Dashboard"] = dashboard
	data["Orders"] = orderTable
	data["Menu"] = menuTable
	data["Users"] = usersTable
	ctx.HTML(http.StatusOK, "admin.html", data)
}

// UpdateOrderStatus runs the verify-and-repair sequence against the
// order service and reports the final state.
func (c *AdminController) UpdateOrderStatus(ctx *gin.Context) {
	orderID, err := strconv.ParseInt(ctx.Param("orderId"), 10, 64)
	if err != nil {
		redirectWithError(ctx, "/admin", msgInvalidInput)
		return
	}

	var form struct {
		Status string `form:"status" binding:"required"`
	}
	if err := ctx.ShouldBind(&form); err != nil {
		redirectWithError(ctx, "/admin", msgInvalidInput)
		return
	}

	s := c.backendSession(ctx)
	order, err := c.api.Orders.UpdateStatusWithRepair(ctx, s, orderID, form.Status)
	c.relay(ctx, s)
	if err != nil {
		redirectWithError(ctx, "/admin", userMessage(err, "Failed to update order status."))
		return
	}

	redirectWithNotice(ctx, "/admin", "Order #"+strconv.FormatInt(order.ID, 10)+" status updated to: "+order.Status)
}

func (c *AdminController) DeleteOrder(ctx *gin.Context) {
	orderID, err := strconv.ParseInt(ctx.Param("orderId"), 10, 64)
	if err != nil {
		redirectWithError(ctx, "/admin", msgInvalidInput)
		return
	}

	s := c.backendSession(ctx)
	err = c.api.Orders.PermanentDelete(ctx, s, orderID)
	c.relay(ctx, s)
	if err != nil {
		redirectWithError(ctx, "/admin", userMessage(err, "Failed to delete order."))
		return
	}

	redirectWithNotice(ctx, "/admin", "Order deleted permanently.")
}

func (c *AdminController) CreateMenuItem(ctx *gin.Context) {
	var form struct {
		Name        string `form:"name" binding:"required"`
		Category    string `form:"category" binding:"required"`
		Price       string `form:"price" binding:"required"`
		Description string `form:"description"`
		ImageURL    string `form:"imageUrl"`
	}
	if err := ctx.ShouldBind(&form); err != nil {
		redirectWithError(ctx, "/admin", msgInvalidInput)
		return
	}

	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil || price < 0 {
		redirectWithError(ctx, "/admin", "Price must be a non-negative number")
		return
	}

	item := &models.MenuItem{
		Name:        form.Name,
		Category:    form.Category,
		Price:       models.NewAmount(price),
		Description: form.Description,
		ImageURL:    form.ImageURL,
		Available:   true,
	}

	s := c.backendSession(ctx)
	created, err := c.api.Menu.Create(ctx, s, item)
	c.relay(ctx, s)
	if err != nil {
		redirectWithError(ctx, "/admin", userMessage(err, "Failed to create menu item."))
		return
	}

	redirectWithNotice(ctx, "/admin", created.Name+" added to the menu")
}

// ShowEditMenuItem renders the edit form populated from the current
// record.
func (c *AdminController) ShowEditMenuItem(ctx *gin.Context) {
	itemID, err := strconv.ParseInt(ctx.Param("itemId"), 10, 64)
	if err != nil {
		redirectWithError(ctx, "/admin", msgInvalidInput)
		return
	}

	data := c.page(ctx, "Edit Menu Item")

	s := c.backendSession(ctx)
	item, err := c.api.Menu.Get(ctx, s, itemID)
	c.relay(ctx, s)
	if err != nil {
		redirectWithError(ctx, "/admin", userMessage(err, "Failed to load menu item."))
		return
	}

	data["Item"] = views.NewMenuItemView(item)
	ctx.HTML(http.StatusOK, "admin_menu_edit.html", data)
}

// UpdateMenuItem saves the edit form over the fetched record, so the
// availability and feature flags survive an edit untouched.
func (c *AdminController) UpdateMenuItem(ctx *gin.Context) {
	itemID, err := strconv.ParseInt(ctx.Param("itemId"), 10, 64)
	if err != nil {
		redirectWithError(ctx, "/admin", msgInvalidInput)
		return
	}

	var form struct {
		Name        string `form:"name" binding:"required"`
		Category    string `form:"category" binding:"required"`
		Price       string `form:"price" binding:"required"`
		Description string `form:"description"`
		ImageURL    string `form:"imageUrl"`
	}
	if err := ctx.ShouldBind(&form); err != nil {
		redirectWithError(ctx, "/admin", msgInvalidInput)
		return
	}

	price, err := strconv.ParseFloat(form.Price, 64)
	if err != nil || price < 0 {
		redirectWithError(ctx, "/admin", "Price must be a non-negative number")
		return
	}

	s := c.backendSession(ctx)
	item, err := c.api.Menu.Get(ctx, s, itemID)
	if err != nil {
		c.relay(ctx, s)
		redirectWithError(ctx, "/admin", userMessage(err, "Failed to load menu item."))
		return
	}

	item.Name = form.Name
	item.Category = form.Category
	item.Price = models.NewAmount(price)
	item.Description = form.Description
	item.ImageURL = form.ImageURL

	updated, err := c.api.Menu.Update(ctx, s, item)
	c.relay(ctx, s)
	if err != nil {
		redirectWithError(ctx, "/admin", userMessage(err, "Failed to update menu item."))
		return
	}

	redirectWithNotice(ctx, "/admin", updated.Name+" updated")
}

func (c *AdminController) DeleteMenuItem(ctx *gin.Context) {
	itemID, err := strconv.ParseInt(ctx.Param("itemId"), 10, 64)
	if err != nil {
		redirectWithError(ctx, "/admin", msgInvalidInput)
		return
	}

	s := c.backendSession(ctx)
	err = c.api.Menu.Delete(ctx, s, itemID)
	c.relay(ctx, s)
	if err != nil {
		redirectWithError(ctx, "/admin", userMessage(err, "Failed to delete menu item."))
		return
	}

	redirectWithNotice(ctx, "/admin", "Menu item deleted.")
}

func (c *AdminController) SetMenuItemAvailability(ctx *gin.Context) {
	c.toggleMenuFlag(ctx, "available", c.api.Menu.SetAvailability)
}

func (c *AdminController) SetMenuItemFeatured(ctx *gin.Context) {
	c.toggleMenuFlag(ctx, "featured", c.api.Menu.SetFeatured)
}

func (c *AdminController) toggleMenuFlag(ctx *gin.Context, field string, apply func(context.Context, *api.Session, int64, bool) error) {
	itemID, err := strconv.ParseInt(ctx.Param("itemId"), 10, 64)
	if err != nil {
		redirectWithError(ctx, "/admin", msgInvalidInput)
		return
	}

	value := ctx.PostForm(field) == "true"

	s := c.backendSession(ctx)
	err = apply(ctx, s, itemID, value)
	c.relay(ctx, s)
	if err != nil {
		redirectWithError(ctx, "/admin", userMessage(err, "Failed to update menu item."))
		return
	}

	redirectWithNotice(ctx, "/admin", "Menu item updated.")
}

func (c *AdminController) UpdateUser(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		redirectWithError(ctx, "/admin", msgInvalidInput)
		return
	}

	var form struct {
		Role string `form:"role" binding:"required"`
	}
	if err := ctx.ShouldBind(&form); err != nil {
		redirectWithError(ctx, "/admin", msgInvalidInput)
		return
	}

	s := c.backendSession(ctx)
	err = c.api.Admin.UpdateUser(ctx, s, &models.SessionUser{ID: userID, Role: form.Role})
	c.relay(ctx, s)
	if err != nil {
		redirectWithError(ctx, "/admin", userMessage(err, "Failed to update user."))
		return
	}

	redirectWithNotice(ctx, "/admin", "User updated.")
}

func (c *AdminController) DeleteUser(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("userId"), 10, 64)
	if err != nil {
		redirectWithError(ctx, "/admin", msgInvalidInput)
		return
	}

	s := c.backendSession(ctx)
	err = c.api.Admin.DeleteUser(ctx, s, userID)
	c.relay(ctx, s)
	if err != nil {
		redirectWithError(ctx, "/admin", userMessage(err, "Failed to delete user."))
		return
	}

	redirectWithNotice(ctx, "/admin", "User deleted.")
}
