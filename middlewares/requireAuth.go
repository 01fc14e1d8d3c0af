package middlewares

import (
	"net/http"
	"net/url"

	"github.com/bistrohq/bistro-web/session"
	"github.com/gin-gonic/gin"
)

// RequireAuth gates customer pages on the session mirror. Unauthenticated
// requests bounce to the login page with a redirect back.
func RequireAuth(bridge *session.Bridge) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if bridge.Current(ctx) == nil {
			ctx.Redirect(http.StatusSeeOther, "/login?redirect="+url.QueryEscape(ctx.Request.URL.Path))
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
