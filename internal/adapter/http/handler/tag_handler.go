package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"chain-inventory-gateway/internal/adapter/http/dto"
	"chain-inventory-gateway/internal/core/domain"
	"chain-inventory-gateway/internal/core/ports"
	"chain-inventory-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// TagHandler handles the GET endpoints hit by NFC scanner browsers. Input
// arrives as pipe-delimited tag text in query parameters; responses are
// self-contained HTML pages.
type TagHandler struct {
	svc   ports.InventoryService
	pages *PageRenderer
}

// NewTagHandler creates a new TagHandler.
func NewTagHandler(svc ports.InventoryService, pages *PageRenderer) *TagHandler {
	return &TagHandler{svc: svc, pages: pages}
}

// Register handles GET /register.
func (h *TagHandler) Register(c *gin.Context) {
	tagID := c.DefaultQuery("tagid", "none")
	text := c.Query("text")
	if text == "" {
		h.pages.Render(c, http.StatusBadRequest, Page{
			Title:   "Registration Failed",
			Message: "No text data found. Please ensure the NFC tag contains valid data.",
		})
		return
	}

	params, err := dto.ParseRegisterTag(text, tagID)
	if err != nil {
		h.renderError(c, "Registration Failed", err)
		return
	}

	hash, err := h.svc.Register(c.Request.Context(), params)
	if err != nil {
		h.renderError(c, "Registration Failed", fmt.Errorf("Error registering product: %w", err))
		return
	}

	// The registered state is fully known locally; no read-back needed.
	product := &domain.Product{
		ID:              params.ID,
		Name:            params.Name,
		SKU:             params.SKU,
		BatchNo:         params.BatchNo,
		ExpiryDate:      params.ExpiryDate,
		Origin:          params.Origin,
		Location:        params.Location,
		UID:             params.UID,
		Category:        params.Category,
		QuantityInStock: params.QuantityInStock,
		Status:          domain.StatusEnRoute,
		Icon:            params.Icon,
		Exists:          true,
	}
	h.pages.Render(c, http.StatusOK, Page{
		Title:   "Product Registered",
		Message: fmt.Sprintf("Product %s (%s) successfully registered via NFC.", params.ID, params.Name),
		Success: true,
		Product: product,
		TxHash:  hash,
	})
}

// UpdateLocation handles GET /updateLocation.
func (h *TagHandler) UpdateLocation(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		h.pages.Render(c, http.StatusBadRequest, Page{
			Title:   "Update Failed",
			Message: "No text data found. Please ensure the NFC tag contains valid data.",
		})
		return
	}

	params, err := dto.ParseLocationTag(text)
	if err != nil {
		h.renderError(c, "Update Failed", err)
		return
	}

	hash, err := h.svc.UpdateLocation(c.Request.Context(), params)
	if err != nil {
		h.renderError(c, "Update Failed", fmt.Errorf("Error updating location: %w", err))
		return
	}

	// Read back for the detail table; the write already invalidated the
	// cache, so this reflects the updated state.
	product, err := h.svc.GetProduct(c.Request.Context(), params.ID)
	if err != nil {
		h.renderError(c, "Update Failed", fmt.Errorf("Error updating location: %w", err))
		return
	}

	h.pages.Render(c, http.StatusOK, Page{
		Title:   "Location Updated",
		Message: fmt.Sprintf("Location updated for product %s to %s with status %s.", params.ID, params.Location, params.Status),
		Success: true,
		Product: product,
		TxHash:  hash,
	})
}

// LogSale handles GET /logSale.
func (h *TagHandler) LogSale(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		h.pages.Render(c, http.StatusBadRequest, Page{
			Title:   "Sale Failed",
			Message: "Missing text data. Please ensure the NFC tag contains valid data.",
		})
		return
	}

	params, err := dto.ParseSaleTag(text)
	if err != nil {
		h.renderError(c, "Sale Failed", err)
		return
	}

	hash, err := h.svc.LogSale(c.Request.Context(), params)
	if err != nil {
		h.renderError(c, "Sale Failed", fmt.Errorf("Error logging sale: %w", err))
		return
	}

	product, err := h.svc.GetProduct(c.Request.Context(), params.ID)
	if err != nil {
		h.renderError(c, "Sale Failed", fmt.Errorf("Error logging sale: %w", err))
		return
	}

	h.pages.Render(c, http.StatusOK, Page{
		Title:   "Sale Logged",
		Message: fmt.Sprintf("Sale logged for product %s on %s for %d units.", params.ID, params.SaleDate, params.Price),
		Success: true,
		Product: product,
		TxHash:  hash,
	})
}

// CheckStatus handles GET /checkProduct. The tag text is the bare product id.
func (h *TagHandler) CheckStatus(c *gin.Context) {
	text := c.Query("text")
	if text == "" {
		h.pages.Render(c, http.StatusBadRequest, Page{
			Title:   "Check Failed",
			Message: "Missing text parameter. Please ensure the NFC tag contains a valid product ID.",
		})
		return
	}
	id := strings.TrimSpace(text)
	if id == "" {
		h.pages.Render(c, http.StatusBadRequest, Page{
			Title:   "Check Failed",
			Message: "Invalid product ID in text.",
		})
		return
	}

	product, sentence, err := h.svc.CheckStatus(c.Request.Context(), id)
	if errors.Is(err, domain.ErrProductNotFound) {
		h.pages.Render(c, http.StatusOK, Page{
			Title:   "Check Failed",
			Message: fmt.Sprintf("Product %s is not registered or has been deleted.", id),
		})
		return
	}
	if err != nil {
		h.renderError(c, "Check Failed", fmt.Errorf("Error checking product: %w", err))
		return
	}

	h.pages.Render(c, http.StatusOK, Page{
		Title:   "Product Status",
		Message: sentence,
		Success: true,
		Product: product,
	})
}

// renderError maps an error to a failure page, using the AppError HTTP
// status when one is attached.
func (h *TagHandler) renderError(c *gin.Context, title string, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status = appErr.HTTPStatus
		// Keep any prefix from the wrapping fmt.Errorf, but swap the
		// AppError's verbose form for its message.
		message = strings.Replace(message, appErr.Error(), appErr.Message, 1)
	}

	h.pages.Render(c, status, Page{Title: title, Message: message})
}
