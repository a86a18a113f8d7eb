package controllers

import (
	"net/http"

	"github.com/boska/laundry-dash-api/models"
	"github.com/boska/laundry-dash-api/store"
	"github.com/gin-gonic/gin"
)

// CartController exposes the laundry cart actions
type CartController struct {
	cart *store.CartStore
}

// NewCartController creates a cart controller over the given store
func NewCartController(cart *store.CartStore) *CartController {
	return &CartController{cart: cart}
}

// AddItemRequest represents the request body for adding a cart line
type AddItemRequest struct {
	ID          string             `json:"id" binding:"required"`
	Name        string             `json:"name" binding:"required"`
	Price       float64            `json:"price" binding:"required,gt=0"`
	Quantity    int                `json:"quantity" binding:"required,gt=0"`
	ServiceType models.ServiceType `json:"service_type" binding:"required"`
	Type        string             `json:"type"`
}

// SetQuantityRequest represents the request body for overwriting a
// line's quantity
type SetQuantityRequest struct {
	ID          string             `json:"id" binding:"required"`
	ServiceType models.ServiceType `json:"service_type" binding:"required"`
	Quantity    *int               `json:"quantity" binding:"required,gte=0"`
}

// RemoveItemRequest represents the request body for deleting a line
type RemoveItemRequest struct {
	ID          string             `json:"id" binding:"required"`
	ServiceType models.ServiceType `json:"service_type" binding:"required"`
}

// GetCart handles GET /api/v1/cart - returns the lines and total
func (ctl *CartController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items": ctl.cart.Items(),
			"total": ctl.cart.Total(),
		},
	})
}

// AddItem handles POST /api/v1/cart/items - merges or appends a line
func (ctl *CartController) AddItem(c *gin.Context) {
	var req AddItemRequest
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

	if !req.ServiceType.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error": gin.H{
				"code":    "INVALID_SERVICE_TYPE",
				"message": "Service type must be basic, premium or express",
			},
		})
		return
	}

	ctl.cart.AddItem(models.CartItem{
		ID:          req.ID,
		Name:        req.Name,
		Price:       req.Price,
		Quantity:    req.Quantity,
		ServiceType: req.ServiceType,
		Type:        req.Type,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items": ctl.cart.Items(),
			"total": ctl.cart.Total(),
		},
	})
}

// SetQuantity handles PUT /api/v1/cart/items - overwrites a line's
// quantity. Unknown (id, service type) pairs are a silent no-op, same
// as the client store.
func (ctl *CartController) SetQuantity(c *gin.Context) {
	var req SetQuantityRequest
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

	ctl.cart.SetQuantity(req.ID, req.ServiceType, *req.Quantity)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items": ctl.cart.Items(),
			"total": ctl.cart.Total(),
		},
	})
}

// RemoveItem handles DELETE /api/v1/cart/items - deletes a line
func (ctl *CartController) RemoveItem(c *gin.Context) {
	var req RemoveItemRequest
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

	ctl.cart.RemoveItem(req.ID, req.ServiceType)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items": ctl.cart.Items(),
			"total": ctl.cart.Total(),
		},
	})
}

// ClearCart handles DELETE /api/v1/cart - empties the cart
func (ctl *CartController) ClearCart(c *gin.Context) {
	ctl.cart.Clear()

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items": ctl.cart.Items(),
			"total": ctl.cart.Total(),
		},
	})
}
