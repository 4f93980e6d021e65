package delivery

import (
	"net/http"

	"storefront_service/internal/metrics"
	"storefront_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CheckoutHandler struct {
	checkout usecase.CheckoutUseCase
	notifier *Notifier
	log      *logrus.Logger
}

func NewCheckoutHandler(checkout usecase.CheckoutUseCase, notifier *Notifier, logger *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		notifier: notifier,
		log:      logger,
	}
}

func (h *CheckoutHandler) RegisterRoutes(router gin.IRouter) {
	checkout := router.Group("/checkout")
	{
		checkout.POST("", h.BeginCheckout)
		checkout.POST("/confirm", h.ConfirmOrder)
		checkout.POST("/cancel", h.CancelCheckout)
	}
}

// BeginCheckout opens the confirmation gate; an empty cart is rejected with a
// toast and the gate stays idle.
func (h *CheckoutHandler) BeginCheckout(c *gin.Context) {
	if err := h.checkout.Begin(); err != nil {
		h.log.Warnf("Checkout rejected: %v", err)
		toast := h.notifier.Push(err.Error(), DefaultToastDuration)
		ToastResponse(c, mapErrorToStatus(err), toast)
		return
	}

	SuccessResponse(c, http.StatusOK, "Awaiting order confirmation", gin.H{
		"state": h.checkout.State(),
	})
}

// ConfirmOrder places the order: the cart and its persisted state are cleared
// and an order reference is returned.
func (h *CheckoutHandler) ConfirmOrder(c *gin.Context) {
	orderRef, err := h.checkout.Confirm()
	if err != nil {
		h.log.Warnf("Order confirmation failed: %v", err)
		toast := h.notifier.Push(err.Error(), DefaultToastDuration)
		ToastResponse(c, mapErrorToStatus(err), toast)
		return
	}

	metrics.OrdersPlaced.Inc()
	toast := h.notifier.Push("Order placed successfully!", DefaultToastDuration)
	SuccessResponse(c, http.StatusOK, "Order placed successfully", gin.H{
		"order_reference": orderRef,
		"state":           h.checkout.State(),
		"toast":           toast,
	})
}

// CancelCheckout closes the gate without touching the cart.
func (h *CheckoutHandler) CancelCheckout(c *gin.Context) {
	h.checkout.Cancel()
	SuccessResponse(c, http.StatusOK, "Checkout cancelled", gin.H{
		"state": h.checkout.State(),
	})
}
