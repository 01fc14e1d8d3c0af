package controllers_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/bistrohq/bistro-web/api"
	"github.com/bistrohq/bistro-web/controllers"
	"github.com/bistrohq/bistro-web/models"
	"github.com/bistrohq/bistro-web/routes"
	"github.com/bistrohq/bistro-web/session"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mintMirror(t *testing.T, bridge *session.Bridge, user *models.SessionUser) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, bridge.Save(ctx, user))
	cookie := cookieByName(w, "bistro_user")
	require.NotNil(t, cookie)
	return cookie
}

func cartEngine(t *testing.T, backendURL string) (*gin.Engine, *http.Cookie) {
	t.Helper()
	bridge, err := session.NewBridge("test-secret")
	require.NoError(t, err)

	engine := gin.New()
	routes.CartRoutes(engine, controllers.NewCartController(api.New(backendURL, 2*time.Second), bridge), bridge)
	return engine, mintMirror(t, bridge, &models.SessionUser{ID: 5, Username: "maria", Role: models.RoleCustomer})
}

// The submitted draft carries the total re-derived from a fresh cart
// fetch, never the server's total field, and the cart is cleared after
// the order is accepted.
func TestPlaceOrderDerivesTotalAndClearsCart(t *testing.T) {
	var orderBody string
	var clears int

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/cart-service":
			// Bogus server total on purpose.
			writeJSON(w, http.StatusOK, `{"items":[{"menuItemId":7,"menuItem":{"id":7,"name":"Margherita","price":12.99},"quantity":2}],"total":999}`)
		case r.Method == http.MethodPost && r.URL.Path == "/api/orders":
			body, _ := io.ReadAll(r.Body)
			orderBody = string(body)
			writeJSON(w, http.StatusCreated, `{"message":"Order created","order":{"id":42,"status":"PENDING","totalAmount":25.98}}`)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/cart-service":
			clears++
			writeJSON(w, http.StatusOK, `{"items":[],"total":0}`)
		default:
			writeJSON(w, http.StatusNotFound, `{"message":"not found"}`)
		}
	}))
	defer backend.Close()

	engine, mirror := cartEngine(t, backend.URL)
	w := postForm(engine, "/checkout", url.Values{
		"deliveryAddress": {"12 Main St"},
		"paymentMethod":   {"CREDIT_CARD"},
	}, mirror)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/orders?notice=")
	assert.Contains(t, w.Header().Get("Location"), url.QueryEscape("Order #42"))

	assert.Contains(t, orderBody, `"totalAmount":25.98`)
	assert.Contains(t, orderBody, `"deliveryAddress":"12 Main St"`)
	assert.Contains(t, orderBody, `"paymentMethod":"CREDIT_CARD"`)
	assert.Contains(t, orderBody, `"menuItemName":"Margherita"`)
	assert.Contains(t, orderBody, `"quantity":2`)
	assert.Contains(t, orderBody, `"price":12.99`)

	assert.Equal(t, 1, clears, "cart must be cleared after a successful order")
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	var orderPosts int

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/cart-service":
			writeJSON(w, http.StatusOK, `{"items":[],"total":0}`)
		case r.Method == http.MethodPost && r.URL.Path == "/api/orders":
			orderPosts++
			writeJSON(w, http.StatusCreated, `{"order":{"id":42}}`)
		default:
			writeJSON(w, http.StatusNotFound, `{"message":"not found"}`)
		}
	}))
	defer backend.Close()

	engine, mirror := cartEngine(t, backend.URL)
	w := postForm(engine, "/checkout", url.Values{
		"deliveryAddress": {"12 Main St"},
		"paymentMethod":   {"CREDIT_CARD"},
	}, mirror)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/cart?error=")
	assert.Equal(t, 0, orderPosts, "no order may be created from an empty cart")
}

// Backend cookies ride back to the browser even when the cart fetch
// itself fails.
func TestCartFragmentRelaysCookiesOnFailure(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "rotated"})
		writeJSON(w, http.StatusInternalServerError, `{"message":"cart service down"}`)
	}))
	defer backend.Close()

	engine, _ := cartEngine(t, backend.URL)
	req := httptest.NewRequest(http.MethodGet, "/cart/fragment", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "cart service down")

	relayed := cookieByName(w, "JSESSIONID")
	require.NotNil(t, relayed)
	assert.Equal(t, "rotated", relayed.Value)
}
