package dto

// RegisterRequest is the request body for UI-based product registration.
// Quantity uses a pointer so an explicit zero passes required validation.
type RegisterRequest struct {
	ID              string `json:"id" binding:"required"`
	Name            string `json:"name" binding:"required"`
	SKU             string `json:"sku" binding:"required"`
	BatchNo         string `json:"batchNo" binding:"required"`
	ExpiryDate      string `json:"expiryDate" binding:"required"`
	Origin          string `json:"origin" binding:"required"`
	Location        string `json:"location" binding:"required"`
	UID             string `json:"uid" binding:"required"`
	Category        string `json:"category" binding:"required"`
	QuantityInStock *int64 `json:"quantityInStock" binding:"required,gte=0"`
	Status          string `json:"status" binding:"required"`
	Icon            string `json:"icon" binding:"required"`
}

// UpdateLocationRequest is the request body for UI-based location updates.
type UpdateLocationRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Location  string `json:"location" binding:"required"`
	Price     *int64 `json:"price" binding:"required,gte=0"`
	Status    string `json:"status" binding:"required"`
}

// LogSaleRequest is the request body for UI-based sale logging.
type LogSaleRequest struct {
	ProductID string `json:"productId" binding:"required"`
	SaleDate  string `json:"saleDate" binding:"required"`
	Price     *int64 `json:"price" binding:"required,gte=0"`
}

// DeleteRequest is the request body for product deletion.
type DeleteRequest struct {
	ID string `json:"id" binding:"required"`
}
