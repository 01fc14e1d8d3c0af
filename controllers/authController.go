package controllers

import (
	"errors"
	"net/http"

	"github.com/bistrohq/bistro-web/api"
	"github.com/bistrohq/bistro-web/models"
	"github.com/bistrohq/bistro-web/session"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	base
}

func NewAuthController(apiClient *api.Client, bridge *session.Bridge) *AuthController {
	return &AuthController{base{api: apiClient, session: bridge}}
}

func (c *AuthController) ShowLogin(ctx *gin.Context) {
	data := c.page(ctx, "Login")
	data["Redirect"] = ctx.Query("redirect")
	ctx.HTML(http.StatusOK, "login.html", data)
}

func (c *AuthController) ShowRegister(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "register.html", c.page(ctx, "Register"))
}

// Login authenticates, mirrors the user locally, and re-associates any
// anonymous cart with the account. There is no offline fallback: a
// failed login is a failed login.
func (c *AuthController) Login(ctx *gin.Context) {
	var form struct {
		Username string `form:"username" binding:"required"`
		Password string `form:"password" binding:"required"`
		Redirect string `form:"redirect"`
	}
	if err := ctx.ShouldBind(&form); err != nil {
		redirectWithError(ctx, "/login", msgInvalidInput)
		return
	}

	s := c.backendSession(ctx)
	user, err := c.api.Auth.Login(ctx, s, models.LoginData{
		Username: form.Username,
		Password: form.Password,
	})
	if err != nil {
		c.relay(ctx, s)
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized {
			redirectWithError(ctx, "/login", msgBadCredentials)
			return
		}
		redirectWithError(ctx, "/login", userMessage(err, msgLoginFailed))
		return
	}

	// Mirror first, then sync: the mirror write is synchronous and the
	// nav state must reflect it even if the sync round trip fails.
	if err := c.session.Save(ctx, user); err != nil {
		c.relay(ctx, s)
		redirectWithError(ctx, "/login", msgLoginFailed)
		return
	}

	c.syncCart(ctx, s)
	c.relay(ctx, s)

	target := form.Redirect
	if target == "" {
		target = "/"
	}
	redirectWithNotice(ctx, target, "Welcome back, "+user.Username+"!")
}

// syncCart attributes a pre-login anonymous cart to the user. Only a
// non-empty cart triggers the sync call; failures are logged through
// userMessage and otherwise ignored, the cart stays anonymous.
func (c *AuthController) syncCart(ctx *gin.Context, s *api.Session) {
	snapshot, err := c.api.Cart.Get(ctx, s)
	if err != nil {
		_ = userMessage(err, msgCartLoadFailed)
		return
	}
	if snapshot.Empty() {
		return
	}
	if err := c.api.Cart.Sync(ctx, s, snapshot.Items); err != nil {
		_ = userMessage(err, msgCartUpdateFailed)
	}
}

func (c *AuthController) Register(ctx *gin.Context) {
	var form struct {
		Username        string `form:"username" binding:"required"`
		Email           string `form:"email" binding:"required,email"`
		Password        string `form:"password" binding:"required,min=6"`
		ConfirmPassword string `form:"confirmPassword" binding:"required"`
	}
	if err := ctx.ShouldBind(&form); err != nil {
		redirectWithError(ctx, "/register", msgInvalidInput)
		return
	}
	if form.Password != form.ConfirmPassword {
		redirectWithError(ctx, "/register", "Passwords do not match")
		return
	}

	s := c.backendSession(ctx)
	err := c.api.Auth.Register(ctx, s, models.RegisterData{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	})
	c.relay(ctx, s)
	if err != nil {
		// Duplicate-username and similar rejections surface verbatim.
		redirectWithError(ctx, "/register", userMessage(err, "Registration failed"))
		return
	}

	redirectWithNotice(ctx, "/login", "Your account has been created successfully. You can now log in.")
}

// Logout clears the mirror and arms the logout guard before the
// backend call, so the local state flips even if the network hangs.
func (c *AuthController) Logout(ctx *gin.Context) {
	c.session.Clear(ctx)

	s := c.backendSession(ctx)
	if err := c.api.Auth.Logout(ctx, s); err != nil {
		_ = userMessage(err, "logout call failed")
	}
	c.relay(ctx, s)

	redirectWithNotice(ctx, "/", msgLoggedOut)
}

// Check re-validates the mirror against the backend session. Inside the
// logout guard window the check is skipped entirely so a stale backend
// cookie cannot resurrect the session.
func (c *AuthController) Check(ctx *gin.Context) {
	if c.session.JustLoggedOut(ctx) {
		sendJSONResponse(ctx, http.StatusOK, gin.H{"authenticated": false})
		return
	}

	s := c.backendSession(ctx)
	user, err := c.api.Auth.Check(ctx, s)
	c.relay(ctx, s)
	if err != nil {
		c.session.DropMirror(ctx)
		sendJSONResponse(ctx, http.StatusOK, gin.H{"authenticated": false})
		return
	}

	if err := c.session.Save(ctx, user); err != nil {
		sendErrorResponse(ctx, http.StatusInternalServerError, "failed to refresh session mirror")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"authenticated": true, "user": user})
}
