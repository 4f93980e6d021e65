package delivery

import (
	"errors"
	"net/http"
	"strings"

	"storefront_service/internal/domain"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  string      `json:"Status"`
	Message string      `json:"Message"`
	Data    interface{} `json:"Data,omitempty"`
}

func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "Success",
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

// ToastResponse reports a recoverable rejection: the toast the storefront
// should flash rides along as the payload so the client knows both the text
// and how long to show it.
func ToastResponse(c *gin.Context, statusCode int, toast Toast) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: toast.Message,
		Data:    toast,
	})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound), errors.Is(err, domain.ErrNotInCart):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrStockCeiling), errors.Is(err, domain.ErrNotAwaitingConfirmation):
		return http.StatusConflict
	case errors.Is(err, domain.ErrEmptyProductName), errors.Is(err, domain.ErrEmptyCart):
		return http.StatusBadRequest
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "not found") {
		return http.StatusNotFound
	}
	if strings.Contains(errMsg, "invalid") || strings.Contains(errMsg, "cannot be empty") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
