package controllers

import (
	"net/http"
	"strconv"

	"github.com/bistrohq/bistro-web/api"
	"github.com/bistrohq/bistro-web/session"
	"github.com/bistrohq/bistro-web/views"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	base
}

func NewOrderController(apiClient *api.Client, bridge *session.Bridge) *OrderController {
	return &OrderController{base{api: apiClient, session: bridge}}
}

func (c *OrderController) ShowOrders(ctx *gin.Context) {
	data := c.page(ctx, "My Orders")

	s := c.backendSession(ctx)
	orders, err := c.api.Orders.List(ctx, s)
	c.relay(ctx, s)
	if err != nil {
		data["Error"] = userMessage(err, "Failed to load your orders.")
	}

	fragment, renderErr := views.RenderOrderList(orders)
	if renderErr != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, renderErr.Error())
		return
	}

	data["Orders"] = fragment
	ctx.HTML(http.StatusOK, "orders.html", data)
}

func (c *OrderController) ShowOrder(ctx *gin.Context) {
	orderID, err := strconv.ParseInt(ctx.Param("orderId"), 10, 64)
	if err != nil {
		redirectWithError(ctx, "/orders", msgInvalidInput)
		return
	}

	data := c.page(ctx, "Order Details")

	s := c.backendSession(ctx)
	order, err := c.api.Orders.Get(ctx, s, orderID)
	c.relay(ctx, s)
	if err != nil {
		redirectWithError(ctx, "/orders", userMessage(err, "Failed to load order."))
		return
	}

	fragment, renderErr := views.RenderOrderDetail(order)
	if renderErr != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, renderErr.Error())
		return
	}

	data["Order"] = fragment
	ctx.HTML(http.StatusOK, "order.html", data)
}

// CancelOrder is the customer soft cancel. The control is only shown
// for pending orders, but the server validates regardless.
func (c *OrderController) CancelOrder(ctx *gin.Context) {
	orderID, err := strconv.ParseInt(ctx.Param("orderId"), 10, 64)
	if err != nil {
		redirectWithError(ctx, "/orders", msgInvalidInput)
		return
	}

	s := c.backendSession(ctx)
	err = c.api.Orders.Cancel(ctx, s, orderID)
	c.relay(ctx, s)
	if err != nil {
		redirectWithError(ctx, "/orders", userMessage(err, msgOrderCancelFailed))
		return
	}

	redirectWithNotice(ctx, "/orders", msgOrderCancelled)
}
