package controllers

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/bistrohq/bistro-web/api"
	"github.com/bistrohq/bistro-web/session"
	"github.com/gin-gonic/gin"
)

const (
	// Standard user-facing messages
	msgCartLoadFailed    = "Error loading cart from server. Please try again later."
	msgCartUpdateFailed  = "Failed to update cart. Please try again."
	msgCartClearFailed   = "Failed to clear cart. Please try again."
	msgRemoveItemFailed  = "Failed to remove item from cart. Please try again."
	msgOrderFailed       = "Failed to place order. Please try again."
	msgOrderCancelFailed = "Failed to cancel order."
	msgLoginRequired     = "Please login to checkout"
	msgInvalidInput      = "invalid input"
	msgLoginFailed       = "Login failed. Please try again."
	msgBadCredentials    = "Invalid username or password"
	msgLoggedOut         = "You have been logged out successfully"
	msgOrderCancelled    = "Order cancelled successfully"
	msgProfileSaved      = "Profile updated successfully"
	msgPasswordChanged   = "Password changed successfully"
)

// base carries the dependencies every controller shares. Controllers
// are constructed once at startup with validated handles; there is no
// lazy re-initialization at call sites.
type base struct {
	api     *api.Client
	session *session.Bridge
}

// backendSession starts a backend round trip scoped to this browser
// request, relaying the browser's backend cookies.
func (b *base) backendSession(ctx *gin.Context) *api.Session {
	return &api.Session{Cookies: session.BackendCookies(ctx)}
}

func (b *base) relay(ctx *gin.Context, s *api.Session) {
	session.RelayCookies(ctx, s.SetCookies)
}

// page assembles the common template data: the mirrored user, the live
// cart badge count, and any flash carried on the redirect query. The
// cart count is fetched fresh on every page view; nothing is cached.
func (b *base) page(ctx *gin.Context, title string) gin.H {
	data := gin.H{
		"Title":     title,
		"User":      b.session.Current(ctx),
		"Error":     ctx.Query("error"),
		"Notice":    ctx.Query("notice"),
		"CartCount": 0,
	}

	s := b.backendSession(ctx)
	snapshot, err := b.api.Cart.Get(ctx, s)
	b.relay(ctx, s)
	if err == nil {
		data["CartCount"] = snapshot.Count()
	}
	return data
}

func redirectWithNotice(ctx *gin.Context, path, notice string) {
	ctx.Redirect(http.StatusSeeOther, path+"?notice="+url.QueryEscape(notice))
}

func redirectWithError(ctx *gin.Context, path, message string) {
	ctx.Redirect(http.StatusSeeOther, path+"?error="+url.QueryEscape(message))
}

// userMessage maps an error to what the user sees: backend business
// messages verbatim, everything else the given fallback.
func userMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	log.Println(err)
	return fallback
}

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}
