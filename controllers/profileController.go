package controllers

import (
	"net/http"

	"github.com/bistrohq/bistro-web/api"
	"github.com/bistrohq/bistro-web/models"
	"github.com/bistrohq/bistro-web/session"
	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	base
}

func NewProfileController(apiClient *api.Client, bridge *session.Bridge) *ProfileController {
	return &ProfileController{base{api: apiClient, session: bridge}}
}

func (c *ProfileController) ShowProfile(ctx *gin.Context) {
	user := c.session.Current(ctx)
	data := c.page(ctx, "My Profile")

	s := c.backendSession(ctx)
	profile, err := c.api.Users.Get(ctx, s, user.ID)
	c.relay(ctx, s)
	if err != nil {
		// Fall back to the mirror so the page still renders.
		profile = user
		data["Error"] = userMessage(err, "Failed to load profile.")
	}

	data["Profile"] = profile
	ctx.HTML(http.StatusOK, "profile.html", data)
}

// UpdateProfile saves the form and refreshes the session mirror from
// the backend's response in the same turn.
func (c *ProfileController) UpdateProfile(ctx *gin.Context) {
	user := c.session.Current(ctx)

	var form struct {
		Email   string `form:"email" binding:"required,email"`
		Phone   string `form:"phone"`
		Address string `form:"address"`
	}
	if err := ctx.ShouldBind(&form); err != nil {
		redirectWithError(ctx, "/profile", msgInvalidInput)
		return
	}

	s := c.backendSession(ctx)
	updated, err := c.api.Users.Update(ctx, s, user.ID, models.ProfileUpdate{
		Email:   form.Email,
		Phone:   form.Phone,
		Address: form.Address,
	})
	c.relay(ctx, s)
	if err != nil {
		redirectWithError(ctx, "/profile", userMessage(err, "Failed to update profile."))
		return
	}

	if err := c.session.Save(ctx, updated); err != nil {
		redirectWithError(ctx, "/profile", "Profile saved but session refresh failed; please log in again.")
		return
	}
	redirectWithNotice(ctx, "/profile", msgProfileSaved)
}

func (c *ProfileController) ChangePassword(ctx *gin.Context) {
	user := c.session.Current(ctx)

	var form struct {
		CurrentPassword string `form:"currentPassword" binding:"required"`
		NewPassword     string `form:"newPassword" binding:"required,min=6"`
	}
	if err := ctx.ShouldBind(&form); err != nil {
		redirectWithError(ctx, "/profile", msgInvalidInput)
		return
	}

	s := c.backendSession(ctx)
	err := c.api.Users.ChangePassword(ctx, s, user.ID, models.PasswordChange{
		CurrentPassword: form.CurrentPassword,
		NewPassword:     form.NewPassword,
	})
	c.relay(ctx, s)
	if err != nil {
		redirectWithError(ctx, "/profile", userMessage(err, "Failed to change password."))
		return
	}

	redirectWithNotice(ctx, "/profile", msgPasswordChanged)
}
