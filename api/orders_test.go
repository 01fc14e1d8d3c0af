package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func orderJSON(total, status string) string {
	return fmt.Sprintf(`{"id":42,"status":%q,"totalAmount":%s,"paymentMethod":"CREDIT_CARD","orderItems":[]}`, status, total)
}

// The status endpoint is known to zero out totalAmount. The client must
// detect the loss on verification and put the original total back with
// exactly one corrective full-record update.
func TestUpdateStatusRepairsLostTotal(t *testing.T) {
	var gets, statusPuts, fullPuts int
	var statusBody, repairBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/orders/42":
			gets++
			if statusPuts > 0 && fullPuts == 0 {
				writeJSON(w, http.StatusOK, orderJSON("0", "PREPARING"))
				return
			}
			if fullPuts > 0 {
				writeJSON(w, http.StatusOK, orderJSON("25.98", "PREPARING"))
				return
			}
			writeJSON(w, http.StatusOK, orderJSON("25.98", "PENDING"))
		case r.Method == http.MethodPut && r.URL.Path == "/api/orders/42/status":
			statusPuts++
			body, _ := io.ReadAll(r.Body)
			statusBody = string(body)
			writeJSON(w, http.StatusOK, `{}`)
		case r.Method == http.MethodPut && r.URL.Path == "/api/orders/42":
			fullPuts++
			body, _ := io.ReadAll(r.Body)
			repairBody = string(body)
			writeJSON(w, http.StatusOK, `{}`)
		default:
			writeJSON(w, http.StatusNotFound, `{"message":"not found"}`)
		}
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)
	order, err := client.Orders.UpdateStatusWithRepair(context.Background(), &Session{}, 42, "PREPARING")
	require.NoError(t, err)

	assert.Equal(t, 1, statusPuts)
	assert.Equal(t, 1, fullPuts, "repair must fire exactly once")
	assert.Equal(t, 3, gets, "fetch, verify, re-fetch after repair")
	assert.Equal(t, 25.98, order.TotalAmount.Float64())

	// The status change carries the original total exactly as the
	// backend serialized it, plus the payment method.
	assert.Contains(t, statusBody, `"totalAmount":25.98`)
	assert.Contains(t, statusBody, `"paymentMethod":"CREDIT_CARD"`)
	assert.Contains(t, statusBody, `"status":"PREPARING"`)
	assert.Contains(t, repairBody, `"id":42`)
	assert.Contains(t, repairBody, `"totalAmount":25.98`)
}

// A total that comes back different but non-zero is a legitimate change
// and must be left alone.
func TestUpdateStatusAcceptsIntentionalTotalChange(t *testing.T) {
	var gets, fullPuts int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/orders/42":
			gets++
			if gets == 1 {
				writeJSON(w, http.StatusOK, orderJSON("25.98", "PENDING"))
				return
			}
			writeJSON(w, http.StatusOK, orderJSON("30.00", "PREPARING"))
		case r.Method == http.MethodPut && r.URL.Path == "/api/orders/42/status":
			writeJSON(w, http.StatusOK, `{}`)
		case r.Method == http.MethodPut && r.URL.Path == "/api/orders/42":
			fullPuts++
			writeJSON(w, http.StatusOK, `{}`)
		default:
			writeJSON(w, http.StatusNotFound, `{"message":"not found"}`)
		}
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)
	order, err := client.Orders.UpdateStatusWithRepair(context.Background(), &Session{}, 42, "PREPARING")
	require.NoError(t, err)

	assert.Equal(t, 0, fullPuts)
	assert.Equal(t, 30.00, order.TotalAmount.Float64())
}

// When the status endpoint itself rejects, the client falls back to one
// full-record update instead of failing the whole operation.
func TestUpdateStatusFallsBackOnStatusEndpointFailure(t *testing.T) {
	var fullPuts int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/orders/42":
			status := "PENDING"
			if fullPuts > 0 {
				status = "READY"
			}
			writeJSON(w, http.StatusOK, orderJSON("25.98", status))
		case r.Method == http.MethodPut && r.URL.Path == "/api/orders/42/status":
			writeJSON(w, http.StatusInternalServerError, `{"message":"status update unsupported"}`)
		case r.Method == http.MethodPut && r.URL.Path == "/api/orders/42":
			fullPuts++
			writeJSON(w, http.StatusOK, `{}`)
		default:
			writeJSON(w, http.StatusNotFound, `{"message":"not found"}`)
		}
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)
	order, err := client.Orders.UpdateStatusWithRepair(context.Background(), &Session{}, 42, "READY")
	require.NoError(t, err)

	assert.Equal(t, 1, fullPuts)
	assert.Equal(t, "READY", order.Status)
	assert.Equal(t, 25.98, order.TotalAmount.Float64())
}

// An order whose total was already zero gets no repair; there is
// nothing to restore.
func TestUpdateStatusSkipsRepairWhenOriginalAlreadyZero(t *testing.T) {
	var fullPuts int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/orders/42":
			writeJSON(w, http.StatusOK, orderJSON("0", "PENDING"))
		case r.Method == http.MethodPut && r.URL.Path == "/api/orders/42/status":
			writeJSON(w, http.StatusOK, `{}`)
		case r.Method == http.MethodPut && r.URL.Path == "/api/orders/42":
			fullPuts++
			writeJSON(w, http.StatusOK, `{}`)
		default:
			writeJSON(w, http.StatusNotFound, `{"message":"not found"}`)
		}
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)
	_, err := client.Orders.UpdateStatusWithRepair(context.Background(), &Session{}, 42, "PREPARING")
	require.NoError(t, err)
	assert.Equal(t, 0, fullPuts)
}

func TestCreateOrderUnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost && r.URL.Path == "/api/orders" {
			writeJSON(w, http.StatusCreated, `{"message":"Order created","order":`+orderJSON("25.98", "PENDING")+`}`)
			return
		}
		writeJSON(w, http.StatusNotFound, `{"message":"not found"}`)
	}))
	defer server.Close()

	client := New(server.URL, 5*time.Second)
	order, err := client.Orders.Create(context.Background(), &Session{}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(42), order.ID)
	assert.Equal(t, 25.98, order.TotalAmount.Float64())
}
