package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/zeon9405/unikraft/internal/domain"
	"github.com/zeon9405/unikraft/internal/http/response"
	"github.com/zeon9405/unikraft/internal/services"
)

type CartHandler struct {
	cartService services.CartService
}

func NewCartHandler(cartService services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

func cartPayload(cart *types.Cart) gin.H {
	return gin.H{
		"cart":             cart,
		"total_price":      cart.TotalPrice(),
		"total_item_count": cart.TotalItemCount(),
	}
}

// GET /api/cart
func (ch *CartHandler) GetCart(c *gin.Context) {
	cart, err := ch.cartService.GetCart(c.Request.Context())
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, cartPayload(cart))
}

// POST /api/cart/items
func (ch *CartHandler) AddItem(c *gin.Context) {
	var req struct {
		ProductID uuid.UUID `json:"product_id" binding:"required"`
		Quantity  int       `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	cart, err := ch.cartService.AddItem(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, cartPayload(cart))
}

// PATCH /api/cart/items/:itemID
func (ch *CartHandler) ChangeQuantity(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("itemID"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_item_id", err)
		return
	}
	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	cart, err := ch.cartService.ChangeQuantity(c.Request.Context(), itemID, req.Quantity)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, cartPayload(cart))
}

// DELETE /api/cart/items/:itemID
func (ch *CartHandler) RemoveItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("itemID"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_item_id", err)
		return
	}
	cart, err := ch.cartService.RemoveItem(c.Request.Context(), itemID)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, cartPayload(cart))
}

// DELETE /api/cart/items
func (ch *CartHandler) Clear(c *gin.Context) {
	cart, err := ch.cartService.Clear(c.Request.Context())
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, cartPayload(cart))
}
