package session

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/bistrohq/bistro-web/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	mirrorCookie      = "bistro_user"
	logoutGuardCookie = "bistro_logged_out"

	mirrorTTL = 24 * time.Hour

	// LogoutGuardWindow suppresses mirror re-validation right after a
	// logout, so a stale backend session cookie cannot silently log the
	// user back in on the next page load.
	LogoutGuardWindow = 5 * time.Second
)

// Bridge mirrors the authenticated user into a signed cookie. The
// mirror is a UI cache only; the backend session stays authoritative
// and the mirror is re-validated against it on page loads.
type Bridge struct {
	secret []byte
	now    func() time.Time
}

func NewBridge(secret string) (*Bridge, error) {
	if secret == "" {
		return nil, fmt.Errorf("session secret must not be empty")
	}
	return &Bridge{secret: []byte(secret), now: time.Now}, nil
}

// Save writes the user mirror cookie. Called synchronously on login,
// before any further network round trip.
func (b *Bridge) Save(ctx *gin.Context, user *models.SessionUser) error {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      strconv.FormatInt(user.ID, 10),
		"username": user.Username,
		"email":    user.Email,
		"role":     user.Role,
		"iat":      b.now().Unix(),
		"exp":      b.now().Add(mirrorTTL).Unix(),
	})

	signed, err := token.SignedString(b.secret)
	if err != nil {
		return fmt.Errorf("sign session mirror: %w", err)
	}

	ctx.SetCookie(mirrorCookie, signed, int(mirrorTTL.Seconds()), "/", "", false, true)
	return nil
}

// Current returns the mirrored user, or nil when logged out or when the
// cookie fails verification.
func (b *Bridge) Current(ctx *gin.Context) *models.SessionUser {
	raw, err := ctx.Cookie(mirrorCookie)
	if err != nil || raw == "" {
		return nil
	}

	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return b.secret, nil
	})
	if err != nil || !token.Valid {
		return nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}

	id, _ := strconv.ParseInt(stringClaim(claims, "sub"), 10, 64)
	return &models.SessionUser{
		ID:       id,
		Username: stringClaim(claims, "username"),
		Email:    stringClaim(claims, "email"),
		Role:     stringClaim(claims, "role"),
	}
}

// Clear removes the mirror and arms the logout guard, both in the same
// response, before any backend call is made.
func (b *Bridge) Clear(ctx *gin.Context) {
	ctx.SetCookie(mirrorCookie, "", -1, "/", "", false, true)
	stamp := strconv.FormatInt(b.now().UnixMilli(), 10)
	ctx.SetCookie(logoutGuardCookie, stamp, int(LogoutGuardWindow.Seconds()), "/", "", false, true)
}

// DropMirror removes the mirror without arming the logout guard, for
// when a server-side check shows the session is gone.
func (b *Bridge) DropMirror(ctx *gin.Context) {
	ctx.SetCookie(mirrorCookie, "", -1, "/", "", false, true)
}

// JustLoggedOut reports whether a logout happened within the guard
// window, in which case auth re-validation must be skipped.
func (b *Bridge) JustLoggedOut(ctx *gin.Context) bool {
	raw, err := ctx.Cookie(logoutGuardCookie)
	if err != nil || raw == "" {
		return false
	}
	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false
	}
	return b.now().Sub(time.UnixMilli(millis)) < LogoutGuardWindow
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}

// BackendCookies extracts the browser cookies to relay on backend
// calls, excluding the frontend's own cookies.
func BackendCookies(ctx *gin.Context) []*http.Cookie {
	var cookies []*http.Cookie
	for _, c := range ctx.Request.Cookies() {
		if c.Name == mirrorCookie || c.Name == logoutGuardCookie {
			continue
		}
		cookies = append(cookies, c)
	}
	return cookies
}

// RelayCookies forwards backend Set-Cookie headers to the browser.
func RelayCookies(ctx *gin.Context, cookies []*http.Cookie) {
	for _, c := range cookies {
		http.SetCookie(ctx.Writer, c)
	}
}
