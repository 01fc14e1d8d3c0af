package middlewares

import (
	"net/http"

	"github.com/bistrohq/bistro-web/session"
	"github.com/gin-gonic/gin"
)

// RequireStaff gates the back office on the ADMIN or STAFF role. This
// is a UI gate only; the remote admin endpoints enforce authorization
// on their side as well.
func RequireStaff(bridge *session.Bridge) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		user := bridge.Current(ctx)
		if user == nil {
			ctx.Redirect(http.StatusSeeOther, "/login?redirect="+ctx.Request.URL.Path)
			ctx.Abort()
			return
		}
		if !user.HasStaffAccess() {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Staff access required"})
			return
		}
		ctx.Next()
	}
}
