package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zeon9405/unikraft/internal/http/response"
	"github.com/zeon9405/unikraft/internal/services"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GET /api/products?category=TEA
func (ph *ProductHandler) List(c *gin.Context) {
	products, err := ph.productService.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"products": products})
}

// GET /api/products/:productID
func (ph *ProductHandler) Get(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_product_id", err)
		return
	}
	product, err := ph.productService.Get(c.Request.Context(), productID)
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"product": product})
}

// POST /api/products
func (ph *ProductHandler) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Price       int    `json:"price"`
		Description string `json:"description"`
		ImageURL    string `json:"image_url"`
		Category    string `json:"category" binding:"required"`
		StockQty    int    `json:"stock_quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	product, err := ph.productService.Create(c.Request.Context(), services.CreateProductInput{
		Name:         req.Name,
		Price:        req.Price,
		Description:  req.Description,
		ImageURL:     req.ImageURL,
		CategoryName: req.Category,
		StockQty:     req.StockQty,
	})
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"product": product})
}

// POST /api/products/:productID/stock
// body: { "quantity": 5 } to restock, { "quantity": -5 } to correct downwards
func (ph *ProductHandler) AdjustStock(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("productID"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_product_id", err)
		return
	}
	var req struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	if req.Quantity >= 0 {
		err = ph.productService.AddStock(c.Request.Context(), productID, req.Quantity)
	} else {
		err = ph.productService.RemoveStock(c.Request.Context(), productID, -req.Quantity)
	}
	if err != nil {
		response.RespondDomainError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
