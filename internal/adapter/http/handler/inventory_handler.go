package handler

import (
	"errors"
	"fmt"

	"chain-inventory-gateway/internal/adapter/http/dto"
	"chain-inventory-gateway/internal/core/domain"
	"chain-inventory-gateway/internal/core/ports"
	"chain-inventory-gateway/pkg/apperror"
	"chain-inventory-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// InventoryHandler handles the JSON endpoints used by the frontend UI.
type InventoryHandler struct {
	svc ports.InventoryService
}

// NewInventoryHandler creates a new InventoryHandler.
func NewInventoryHandler(svc ports.InventoryService) *InventoryHandler {
	return &InventoryHandler{svc: svc}
}

// Register handles POST /register.
func (h *InventoryHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrMissingFields())
		return
	}

	hash, err := h.svc.Register(c.Request.Context(), ports.RegisterParams{
		ID:              req.ID,
		Name:            req.Name,
		SKU:             req.SKU,
		BatchNo:         req.BatchNo,
		ExpiryDate:      req.ExpiryDate,
		Origin:          req.Origin,
		Location:        req.Location,
		UID:             req.UID,
		Category:        req.Category,
		QuantityInStock: *req.QuantityInStock,
		Status:          req.Status,
		Icon:            req.Icon,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Tx(c, hash)
}

// UpdateLocation handles POST /updateLocation.
func (h *InventoryHandler) UpdateLocation(c *gin.Context) {
	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrMissingFields())
		return
	}

	hash, err := h.svc.UpdateLocation(c.Request.Context(), ports.UpdateLocationParams{
		ID:       req.ProductID,
		Location: req.Location,
		Price:    *req.Price,
		Status:   req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Tx(c, hash)
}

// LogSale handles POST /logSale.
func (h *InventoryHandler) LogSale(c *gin.Context) {
	var req dto.LogSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.ErrMissingFields())
		return
	}

	hash, err := h.svc.LogSale(c.Request.Context(), ports.LogSaleParams{
		ID:       req.ProductID,
		SaleDate: req.SaleDate,
		Price:    *req.Price,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Tx(c, hash)
}

// Delete handles POST /deleteProduct.
func (h *InventoryHandler) Delete(c *gin.Context) {
	var req dto.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Missing productId"))
		return
	}

	hash, err := h.svc.Delete(c.Request.Context(), req.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Tx(c, hash)
}

// ListProducts handles GET /products. The body is the bare product array,
// as the frontend table expects.
func (h *InventoryHandler) ListProducts(c *gin.Context) {
	products, err := h.svc.ListProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, products)
}

// GetProduct handles GET /product/:productId. A missing product is a
// business outcome and rides on 200 with success:false.
func (h *InventoryHandler) GetProduct(c *gin.Context) {
	id := c.Param("productId")

	product, err := h.svc.GetProduct(c.Request.Context(), id)
	if errors.Is(err, domain.ErrProductNotFound) {
		response.NotFound(c, fmt.Sprintf("Product %s is not registered or has been deleted.", id))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, product)
}
