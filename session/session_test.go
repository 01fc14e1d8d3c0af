package session

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/bistrohq/bistro-web/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext(cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		ctx.Request.AddCookie(c)
	}
	return ctx, w
}

func mirrorFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == mirrorCookie {
			return c
		}
	}
	t.Fatal("mirror cookie not set")
	return nil
}

func TestNewBridgeRequiresSecret(t *testing.T) {
	_, err := NewBridge("")
	require.Error(t, err)
}

// Save is synchronous: the mirror cookie is on the response before the
// handler does anything else, so the very next page load sees the user.
func TestSaveThenCurrent(t *testing.T) {
	bridge, err := NewBridge("test-secret")
	require.NoError(t, err)

	ctx, w := testContext()
	require.NoError(t, bridge.Save(ctx, &models.SessionUser{
		ID:       5,
		Username: "maria",
		Email:    "maria@example.com",
		Role:     models.RoleCustomer,
	}))

	cookie := mirrorFrom(t, w)
	assert.True(t, cookie.HttpOnly)

	ctx2, _ := testContext(cookie)
	user := bridge.Current(ctx2)
	require.NotNil(t, user)
	assert.Equal(t, int64(5), user.ID)
	assert.Equal(t, "maria", user.Username)
	assert.Equal(t, models.RoleCustomer, user.Role)
}

func TestCurrentRejectsTamperedMirror(t *testing.T) {
	bridge, err := NewBridge("test-secret")
	require.NoError(t, err)

	ctx, w := testContext()
	require.NoError(t, bridge.Save(ctx, &models.SessionUser{ID: 5, Username: "maria"}))
	cookie := mirrorFrom(t, w)
	cookie.Value += "x"

	ctx2, _ := testContext(cookie)
	assert.Nil(t, bridge.Current(ctx2))
}

func TestCurrentRejectsForeignSignature(t *testing.T) {
	signer, err := NewBridge("one-secret")
	require.NoError(t, err)
	verifier, err := NewBridge("other-secret")
	require.NoError(t, err)

	ctx, w := testContext()
	require.NoError(t, signer.Save(ctx, &models.SessionUser{ID: 5, Username: "maria"}))

	ctx2, _ := testContext(mirrorFrom(t, w))
	assert.Nil(t, verifier.Current(ctx2))
}

func TestClearRemovesMirrorAndArmsGuard(t *testing.T) {
	bridge, err := NewBridge("test-secret")
	require.NoError(t, err)

	ctx, w := testContext()
	bridge.Clear(ctx)

	var droppedMirror, guardArmed bool
	for _, c := range w.Result().Cookies() {
		switch c.Name {
		case mirrorCookie:
			droppedMirror = c.MaxAge < 0
		case logoutGuardCookie:
			guardArmed = c.Value != ""
		}
	}
	assert.True(t, droppedMirror)
	assert.True(t, guardArmed)
}

func TestDropMirrorLeavesGuardAlone(t *testing.T) {
	bridge, err := NewBridge("test-secret")
	require.NoError(t, err)

	ctx, w := testContext()
	bridge.DropMirror(ctx)

	for _, c := range w.Result().Cookies() {
		assert.NotEqual(t, logoutGuardCookie, c.Name)
	}
}

func TestJustLoggedOutWindow(t *testing.T) {
	bridge, err := NewBridge("test-secret")
	require.NoError(t, err)

	loggedOutAt := time.Now()
	stamp := strconv.FormatInt(loggedOutAt.UnixMilli(), 10)
	guard := &http.Cookie{Name: logoutGuardCookie, Value: stamp}

	bridge.now = func() time.Time { return loggedOutAt.Add(2 * time.Second) }
	ctx, _ := testContext(guard)
	assert.True(t, bridge.JustLoggedOut(ctx))

	bridge.now = func() time.Time { return loggedOutAt.Add(LogoutGuardWindow + time.Second) }
	ctx, _ = testContext(guard)
	assert.False(t, bridge.JustLoggedOut(ctx))

	ctx, _ = testContext(&http.Cookie{Name: logoutGuardCookie, Value: "garbage"})
	assert.False(t, bridge.JustLoggedOut(ctx))

	ctx, _ = testContext()
	assert.False(t, bridge.JustLoggedOut(ctx))
}

// Only foreign cookies travel to the backend; the frontend's own
// cookies stay on this side of the bridge.
func TestBackendCookiesFiltersOwnCookies(t *testing.T) {
	ctx, _ := testContext(
		&http.Cookie{Name: "JSESSIONID", Value: "abc"},
		&http.Cookie{Name: mirrorCookie, Value: "mirror"},
		&http.Cookie{Name: logoutGuardCookie, Value: "123"},
	)

	cookies := BackendCookies(ctx)
	require.Len(t, cookies, 1)
	assert.Equal(t, "JSESSIONID", cookies[0].Name)
}
