package controllers

import (
	"net/http"
	"time"

	"github.com/boska/laundry-dash-api/models"
	"github.com/boska/laundry-dash-api/services"
	"github.com/boska/laundry-dash-api/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EstimatedDeliveryWindow is how far out the checkout screen promises
// delivery
const EstimatedDeliveryWindow = 2 * time.Hour

// OrderController exposes checkout and the order status tracker
type OrderController struct {
	cart      *store.CartStore
	orders    *store.OrderStore
	simulator *services.SimulatorService
}

// NewOrderController creates an order controller
func NewOrderController(cart *store.CartStore, orders *store.OrderStore, simulator *services.SimulatorService) *OrderController {
	return &OrderController{cart: cart, orders: orders, simulator: simulator}
}

// AdvanceStatusRequest represents the request body for a status change
type AdvanceStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// CreateOrder handles POST /api/v1/orders - checkout. Snapshots the
// cart into a new current order at pick-up and starts the status
// simulator for it. An in-flight simulator for a previous order is
// cancelled by the store before the new chain starts.
func (ctl *OrderController) CreateOrder(c *gin.Context) {
	items := ctl.cart.Items()
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "EMPTY_CART",
				"message": "Cannot check out an empty cart",
			},
		})
		return
	}

	now := time.Now()
	order := models.Order{
		ID:                uuid.New().String(),
		Status:            models.StatusPickUp,
		Items:             items,
		Total:             ctl.cart.Total(),
		EstimatedDelivery: now.Add(EstimatedDeliveryWindow),
		CreatedAt:         now,
	}

	ctl.orders.Create(order)
	ctl.orders.AttachSimulator(ctl.simulator.Start())

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    order,
	})
}

// GetCurrentOrder handles GET /api/v1/orders/current
func (ctl *OrderController) GetCurrentOrder(c *gin.Context) {
	order, ok := ctl.orders.Current()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "No current order",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"order":        order,
			"current_step": order.Status.Index(),
			"steps":        models.StatusSequence,
		},
	})
}

// AdvanceStatus handles PUT /api/v1/orders/current/status. The tracker
// screen lets the user tap any step, so any of the six values is
// accepted, forward or backward; the simulator keeps moving forward
// from whatever the order now says.
func (ctl *OrderController) AdvanceStatus(c *gin.Context) {
	var req AdvanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "VALIDATION_ERROR",
				"message": "Invalid request data",
				"details": err.Error(),
			},
		})
		return
	}

	if !req.Status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_STATUS",
				"message": "Unknown order status",
			},
		})
		return
	}

	if !ctl.orders.AdvanceStatus(req.Status) {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "ORDER_NOT_FOUND",
				"message": "No current order",
			},
		})
		return
	}

	order, _ := ctl.orders.Current()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    order,
	})
}

// ClearOrder handles DELETE /api/v1/orders/current - drops the order
// and stops its simulator
func (ctl *OrderController) ClearOrder(c *gin.Context) {
	ctl.orders.Clear()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    nil,
	})
}
