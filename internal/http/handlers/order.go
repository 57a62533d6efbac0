package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zeon9405/unikraft/internal/http/response"
	"github.com/zeon9405/unikraft/internal/services"
)

type OrderHandler struct {
	checkoutService services.CheckoutService
}

func NewOrderHandler(checkoutService services.CheckoutService) *OrderHandler {
	return &OrderHandler{checkoutService: checkoutService}
}

// POST /api/orders
// body: { "product_id": "...", "count": 3 }
func (oh *OrderHandler) PlaceOrder(c *gin.Context) {
	var req struct {
		ProductID uuid.UUID `json:"product_id" binding:"required"`
		Count     int       `json:"count" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	orderID, err := oh.checkoutService.PlaceOrder(c.Request.Context(), req.ProductID, req.Count)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"order_id": orderID})
}

// GET /api/orders
func (oh *OrderHandler) MyOrders(c *gin.Context) {
	orders, err := oh.checkoutService.MyOrders(c.Request.Context())
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"orders": orders})
}

// GET /api/orders/:orderID
func (oh *OrderHandler) GetOrder(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("orderID"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_order_id", err)
		return
	}
	order, err := oh.checkoutService.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"order": order})
}
