package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/boska/laundry-dash-api/models"
	"github.com/boska/laundry-dash-api/services"
	"github.com/boska/laundry-dash-api/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// newOrderRouter wires a cart, an order store and a slowed-down
// simulator so timers never fire during a test
func newOrderRouter() (*gin.Engine, *store.CartStore, *store.OrderStore) {
	cart := store.NewCartStore()
	orders := store.NewOrderStore()
	simulator := services.NewSimulatorService(orders)
	simulator.SetStepDelay(func() time.Duration { return time.Hour })

	ctl := NewOrderController(cart, orders, simulator)

	router := setupTestRouter()
	router.POST("/orders", ctl.CreateOrder)
	router.GET("/orders/current", ctl.GetCurrentOrder)
	router.PUT("/orders/current/status", ctl.AdvanceStatus)
	router.DELETE("/orders/current", ctl.ClearOrder)
	return router, cart, orders
}

func TestCreateOrderSnapshotsCart(t *testing.T) {
	router, cart, orders := newOrderRouter()

	w, response := doJSON(t, router, http.MethodPost, "/orders", nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, response["success"].(bool))

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "pick-up", data["status"])
	assert.Equal(t, 300.0, data["total"])
	assert.NotEmpty(t, data["id"])
	assert.Len(t, data["items"].([]interface{}), 2)

	// Cart edits after checkout must not leak into the snapshot
	cart.SetQuantity("1", models.ServiceBasic, 10)
	order, ok := orders.Current()
	assert.True(t, ok)
	assert.Equal(t, 1, order.Items[0].Quantity)
	assert.Equal(t, 300.0, order.Total)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	router, cart, _ := newOrderRouter()
	cart.Clear()

	w, response := doJSON(t, router, http.MethodPost, "/orders", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errorData := response["error"].(map[string]interface{})
	assert.Equal(t, "EMPTY_CART", errorData["code"])
}

func TestCreateOrderReplacesPrevious(t *testing.T) {
	router, _, orders := newOrderRouter()

	_, first := doJSON(t, router, http.MethodPost, "/orders", nil)
	firstID := first["data"].(map[string]interface{})["id"].(string)

	cancelled := false
	orders.AttachSimulator(func() { cancelled = true })

	_, second := doJSON(t, router, http.MethodPost, "/orders", nil)
	secondID := second["data"].(map[string]interface{})["id"].(string)

	assert.NotEqual(t, firstID, secondID)
	assert.True(t, cancelled, "Checkout must cancel the previous order's simulator")

	order, ok := orders.Current()
	assert.True(t, ok)
	assert.Equal(t, secondID, order.ID)
}

func TestGetCurrentOrder(t *testing.T) {
	router, _, _ := newOrderRouter()

	// No order yet
	w, response := doJSON(t, router, http.MethodGet, "/orders/current", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	errorData := response["error"].(map[string]interface{})
	assert.Equal(t, "ORDER_NOT_FOUND", errorData["code"])

	doJSON(t, router, http.MethodPost, "/orders", nil)

	w, response = doJSON(t, router, http.MethodGet, "/orders/current", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, 0.0, data["current_step"], "pick-up is step 0")
	assert.Len(t, data["steps"].([]interface{}), 6)
}

func TestAdvanceStatusEndpoint(t *testing.T) {
	tests := []struct {
		name           string
		status         string
		createFirst    bool
		expectedStatus int
		expectedError  string
	}{
		{"Forward step", "laundrying", true, http.StatusOK, ""},
		{"Backward jump allowed", "pick-up", true, http.StatusOK, ""},
		{"Straight to terminal", "completed", true, http.StatusOK, ""},
		{"Unknown status", "folded", true, http.StatusBadRequest, "INVALID_STATUS"},
		{"No current order", "laundrying", false, http.StatusNotFound, "ORDER_NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _, orders := newOrderRouter()
			if tt.createFirst {
				doJSON(t, router, http.MethodPost, "/orders", nil)
			}

			w, response := doJSON(t, router, http.MethodPut, "/orders/current/status", map[string]interface{}{
				"status": tt.status,
			})

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				errorData := response["error"].(map[string]interface{})
				assert.Equal(t, tt.expectedError, errorData["code"])
				return
			}

			data := response["data"].(map[string]interface{})
			assert.Equal(t, tt.status, data["status"])

			status, ok := orders.Status()
			assert.True(t, ok)
			assert.Equal(t, models.OrderStatus(tt.status), status)
		})
	}
}

func TestClearOrderEndpoint(t *testing.T) {
	router, _, orders := newOrderRouter()
	doJSON(t, router, http.MethodPost, "/orders", nil)

	w, response := doJSON(t, router, http.MethodDelete, "/orders/current", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, response["success"].(bool))

	_, ok := orders.Current()
	assert.False(t, ok)
}
