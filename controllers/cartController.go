package controllers

import (
	"net/http"
	"strconv"

	"github.com/bistrohq/bistro-web/api"
	"github.com/bistrohq/bistro-web/models"
	"github.com/bistrohq/bistro-web/session"
	"github.com/bistrohq/bistro-web/views"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	base
}

func NewCartController(apiClient *api.Client, bridge *session.Bridge) *CartController {
	return &CartController{base{api: apiClient, session: bridge}}
}

// ShowCart renders the cart page from a fresh snapshot. A failed fetch
// degrades to the empty state plus an error banner; the page stays up.
func (c *CartController) ShowCart(ctx *gin.Context) {
	data := c.page(ctx, "Your Cart")

	s := c.backendSession(ctx)
	snapshot, err := c.api.Cart.Get(ctx, s)
	if err != nil {
		snapshot = &models.CartSnapshot{}
		data["Error"] = userMessage(err, msgCartLoadFailed)
	}
	c.relay(ctx, s)

	fragment, renderErr := views.RenderCart(snapshot)
	if renderErr != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, renderErr.Error())
		return
	}

	data["Cart"] = fragment
	data["CartCount"] = snapshot.Count()
	ctx.HTML(http.StatusOK, "cart.html", data)
}

// CartFragment is the JSON surface used to refresh the cart in place:
// the rendered fragment plus the badge count.
func (c *CartController) CartFragment(ctx *gin.Context) {
	s := c.backendSession(ctx)
	snapshot, err := c.api.Cart.Get(ctx, s)
	c.relay(ctx, s)
	if err != nil {
		sendErrorResponse(ctx, http.StatusBadGateway, userMessage(err, msgCartLoadFailed))
		return
	}

	fragment, err := views.RenderCart(snapshot)
	if err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, err.Error())
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"html":  string(fragment),
		"count": snapshot.Count(),
		"total": snapshot.ComputedTotal(),
	})
}

// AddItem handles the add-to-cart post from the menu page.
func (c *CartController) AddItem(ctx *gin.Context) {
	var form struct {
		MenuItemID int64 `form:"menuItemId" binding:"required"`
	}
	if err := ctx.ShouldBind(&form); err != nil {
		redirectWithError(ctx, "/menu", msgInvalidInput)
		return
	}

	s := c.backendSession(ctx)
	if _, err := c.api.Cart.Add(ctx, s, form.MenuItemID); err != nil {
		c.relay(ctx, s)
		redirectWithError(ctx, "/menu", userMessage(err, msgCartUpdateFailed))
		return
	}
	c.relay(ctx, s)
	redirectWithNotice(ctx, "/menu", "Item added to cart")
}

func (c *CartController) IncreaseQuantity(ctx *gin.Context) {
	c.applyDelta(ctx, 1)
}

func (c *CartController) DecreaseQuantity(ctx *gin.Context) {
	c.applyDelta(ctx, -1)
}

// applyDelta sends a signed quantity change. The server decides whether
// the line survives at zero; the response snapshot fully replaces the
// view either way.
func (c *CartController) applyDelta(ctx *gin.Context, delta int) {
	itemID, err := strconv.ParseInt(ctx.Param("itemId"), 10, 64)
	if err != nil {
		redirectWithError(ctx, "/cart", msgInvalidInput)
		return
	}

	s := c.backendSession(ctx)
	if _, err := c.api.Cart.ApplyDelta(ctx, s, itemID, delta); err != nil {
		c.relay(ctx, s)
		redirectWithError(ctx, "/cart", userMessage(err, msgCartUpdateFailed))
		return
	}
	c.relay(ctx, s)
	ctx.Redirect(http.StatusSeeOther, "/cart")
}

func (c *CartController) RemoveItem(ctx *gin.Context) {
	itemID, err := strconv.ParseInt(ctx.Param("itemId"), 10, 64)
	if err != nil {
		redirectWithError(ctx, "/cart", msgInvalidInput)
		return
	}

	s := c.backendSession(ctx)
	if _, err := c.api.Cart.Remove(ctx, s, itemID); err != nil {
		c.relay(ctx, s)
		redirectWithError(ctx, "/cart", userMessage(err, msgRemoveItemFailed))
		return
	}
	c.relay(ctx, s)
	ctx.Redirect(http.StatusSeeOther, "/cart")
}

func (c *CartController) ClearCart(ctx *gin.Context) {
	s := c.backendSession(ctx)
	if _, err := c.api.Cart.Clear(ctx, s); err != nil {
		c.relay(ctx, s)
		redirectWithError(ctx, "/cart", userMessage(err, msgCartClearFailed))
		return
	}
	c.relay(ctx, s)
	ctx.Redirect(http.StatusSeeOther, "/cart")
}

// ShowCheckout renders the checkout form with a fresh cart summary.
// An empty cart disables submission.
func (c *CartController) ShowCheckout(ctx *gin.Context) {
	if c.session.Current(ctx) == nil {
		redirectWithError(ctx, "/login", msgLoginRequired)
		return
	}

	data := c.page(ctx, "Checkout")

	s := c.backendSession(ctx)
	snapshot, err := c.api.Cart.Get(ctx, s)
	if err != nil {
		snapshot = &models.CartSnapshot{}
		data["Error"] = userMessage(err, msgCartLoadFailed)
	}
	c.relay(ctx, s)

	summary, renderErr := views.RenderCheckoutSummary(snapshot)
	if renderErr != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, renderErr.Error())
		return
	}

	data["Summary"] = summary
	data["Disabled"] = snapshot.Empty()
	ctx.HTML(http.StatusOK, "checkout.html", data)
}

// PlaceOrder converts the live cart into an order draft and submits it.
// The total is re-derived from a fresh cart fetch at submission time so
// the displayed and submitted totals cannot drift. On success the cart
// is cleared and the user lands on the order history.
func (c *CartController) PlaceOrder(ctx *gin.Context) {
	if c.session.Current(ctx) == nil {
		redirectWithError(ctx, "/login", msgLoginRequired)
		return
	}

	var form struct {
		DeliveryAddress     string `form:"deliveryAddress" binding:"required"`
		PaymentMethod       string `form:"paymentMethod" binding:"required"`
		SpecialInstructions string `form:"specialInstructions"`
	}
	if err := ctx.ShouldBind(&form); err != nil {
		redirectWithError(ctx, "/checkout", "Delivery address and payment method are required")
		return
	}

	s := c.backendSession(ctx)
	snapshot, err := c.api.Cart.Get(ctx, s)
	if err != nil {
		c.relay(ctx, s)
		redirectWithError(ctx, "/checkout", userMessage(err, msgCartLoadFailed))
		return
	}
	if snapshot.Empty() {
		c.relay(ctx, s)
		redirectWithError(ctx, "/cart", "Your cart is empty")
		return
	}

	draft := &models.OrderDraft{
		DeliveryAddress:     form.DeliveryAddress,
		PaymentMethod:       form.PaymentMethod,
		SpecialInstructions: form.SpecialInstructions,
		TotalAmount:         snapshot.ComputedTotal(),
	}
	for _, line := range snapshot.Items {
		draft.Items = append(draft.Items, models.OrderItem{
			MenuItemID:   line.MenuItemID,
			MenuItemName: line.MenuItem.Name,
			Quantity:     line.Quantity,
			Price:        line.MenuItem.Price,
		})
	}

	order, err := c.api.Orders.Create(ctx, s, draft)
	if err != nil {
		c.relay(ctx, s)
		redirectWithError(ctx, "/checkout", userMessage(err, msgOrderFailed))
		return
	}

	// Clear the cart after a successful order; a failure here is not
	// fatal to the flow, the next cart fetch self-corrects.
	if _, err := c.api.Cart.Clear(ctx, s); err != nil {
		_ = userMessage(err, msgCartClearFailed)
	}
	c.relay(ctx, s)

	redirectWithNotice(ctx, "/orders", "Order #"+strconv.FormatInt(order.ID, 10)+" placed successfully!")
}
