package delivery

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"storefront_service/internal/domain"
	"storefront_service/internal/metrics"
	"storefront_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CartHandler struct {
	cart     usecase.CartUseCase
	catalog  usecase.CatalogUseCase
	notifier *Notifier
	log      *logrus.Logger
}

func NewCartHandler(cart usecase.CartUseCase, catalog usecase.CatalogUseCase, notifier *Notifier, logger *logrus.Logger) *CartHandler {
	return &CartHandler{
		cart:     cart,
		catalog:  catalog,
		notifier: notifier,
		log:      logger,
	}
}

func (h *CartHandler) RegisterRoutes(router gin.IRouter) {
	cart := router.Group("/cart")
	{
		cart.GET("", h.GetCart)
		cart.DELETE("", h.ClearCart)
		cart.POST("/items", h.AddItem)
		cart.POST("/items/:name/increase", h.IncreaseItem)
		cart.POST("/items/:name/decrease", h.DecreaseItem)
		cart.DELETE("/items/:name", h.RemoveItem)
	}
}

// CartView is the cart panel payload: the ordered lines and the display total.
type CartView struct {
	Lines []domain.CartLine `json:"lines"`
	Total float64           `json:"total"`
}

type addItemRequest struct {
	Name string `json:"name"`
}

func (h *CartHandler) view() CartView {
	lines := h.cart.Lines()
	if lines == nil {
		lines = []domain.CartLine{}
	}
	return CartView{
		Lines: lines,
		Total: h.cart.Total(),
	}
}

// reject surfaces a recoverable cart failure as a transient toast. The store
// stays usable; nothing was mutated.
func (h *CartHandler) reject(c *gin.Context, operation string, err error, duration time.Duration) {
	metrics.CartOperations.WithLabelValues(operation, "rejected").Inc()
	h.log.Warnf("Cart %s rejected: %v", operation, err)
	toast := h.notifier.Push(err.Error(), duration)
	ToastResponse(c, mapErrorToStatus(err), toast)
}

func (h *CartHandler) GetCart(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Cart retrieved successfully", h.view())
}

func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Errorf("Failed to bind JSON for add to cart: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		h.reject(c, "add", domain.ErrEmptyProductName, DefaultToastDuration)
		return
	}

	product, err := h.catalog.ByName(req.Name)
	if err != nil {
		h.reject(c, "add", err, DefaultToastDuration)
		return
	}

	// The unit price captured on the line is the discounted price, not the
	// list price.
	unitPrice := usecase.DiscountPrice(product.Price)
	if err := h.cart.Add(*product, unitPrice); err != nil {
		h.reject(c, "add", err, DefaultToastDuration)
		return
	}

	metrics.CartOperations.WithLabelValues("add", "accepted").Inc()
	toast := h.notifier.Push(fmt.Sprintf("%s added to the cart!", product.Name), DefaultToastDuration)
	SuccessResponse(c, http.StatusCreated, "Product added to cart", gin.H{
		"toast": toast,
		"cart":  h.view(),
	})
}

func (h *CartHandler) IncreaseItem(c *gin.Context) {
	name := c.Param("name")
	if err := h.cart.Increase(name); err != nil {
		// The stock-ceiling toast on a quantity increase dismisses faster
		// than every other message.
		duration := DefaultToastDuration
		if errors.Is(err, domain.ErrStockCeiling) {
			duration = IncreaseCeilingToastDuration
		}
		h.reject(c, "increase", err, duration)
		return
	}

	metrics.CartOperations.WithLabelValues("increase", "accepted").Inc()
	SuccessResponse(c, http.StatusOK, "Quantity increased", h.view())
}

func (h *CartHandler) DecreaseItem(c *gin.Context) {
	name := c.Param("name")
	if err := h.cart.Decrease(name); err != nil {
		h.reject(c, "decrease", err, DefaultToastDuration)
		return
	}

	metrics.CartOperations.WithLabelValues("decrease", "accepted").Inc()
	SuccessResponse(c, http.StatusOK, "Quantity decreased", h.view())
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	name := c.Param("name")
	if err := h.cart.Remove(name); err != nil {
		h.reject(c, "remove", err, DefaultToastDuration)
		return
	}

	metrics.CartOperations.WithLabelValues("remove", "accepted").Inc()
	SuccessResponse(c, http.StatusOK, "Item removed from cart", h.view())
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.cart.Clear(); err != nil {
		metrics.CartOperations.WithLabelValues("clear", "rejected").Inc()
		h.log.Errorf("Failed to clear cart: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "Failed to clear cart: "+err.Error())
		return
	}

	metrics.CartOperations.WithLabelValues("clear", "accepted").Inc()
	SuccessResponse(c, http.StatusOK, "Cart cleared", h.view())
}
