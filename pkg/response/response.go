package response

import (
	"errors"
	"net/http"

	"chain-inventory-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// TxResponse acknowledges a confirmed ledger write.
type TxResponse struct {
	Success         bool   `json:"success"`
	TransactionHash string `json:"transactionHash"`
}

// FailureResponse is the error envelope for JSON endpoints.
type FailureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NotFoundResponse reports an absent product. It rides on HTTP 200 because
// a missing product is a business outcome, not a system fault.
type NotFoundResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Tx sends a 200 response carrying the transaction hash of a confirmed write.
func Tx(c *gin.Context, hash string) {
	c.JSON(http.StatusOK, TxResponse{Success: true, TransactionHash: hash})
}

// JSON sends a 200 response with the payload as-is (decoded product or
// product array — the body shapes are fixed by the frontend contract).
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// NotFound sends a 200 response with a success:false body.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusOK, NotFoundResponse{Success: false, Message: message})
}

// Error sends an error response. It maps *apperror.AppError to its HTTP
// status, anything else to 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, FailureResponse{Success: false, Error: appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, FailureResponse{Success: false, Error: err.Error()})
}
