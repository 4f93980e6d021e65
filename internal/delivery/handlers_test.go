package delivery_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"storefront_service/internal/delivery"
	"storefront_service/internal/domain"
	"storefront_service/internal/repository"
	"storefront_service/internal/usecase"

	"github.com/gin-gonic/gin"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type stubCatalogRepo struct {
	products []domain.Product
}

func (s *stubCatalogRepo) Load() ([]domain.Product, error) {
	return s.products, nil
}

type envelope struct {
	Status  string          `json:"Status"`
	Message string          `json:"Message"`
	Data    json.RawMessage `json:"Data"`
}

type storefront struct {
	router   *gin.Engine
	cartPath string
}

func newStorefront(t *testing.T, products ...domain.Product) *storefront {
	t.Helper()
	logger, _ := logtest.NewNullLogger()

	cartPath := filepath.Join(t.TempDir(), "cart.json")
	cartRepo := repository.NewFileCartRepository(cartPath, logger)

	catalogUseCase := usecase.NewCatalogUseCase(&stubCatalogRepo{products: products}, logger)
	cartUseCase := usecase.NewCartUseCase(cartRepo, catalogUseCase, logger)
	checkoutUseCase := usecase.NewCheckoutUseCase(cartUseCase, logger)

	notifier := delivery.NewNotifier()

	router := gin.New()
	delivery.NewProductHandler(catalogUseCase, logger).RegisterRoutes(router)
	delivery.NewCartHandler(cartUseCase, catalogUseCase, notifier, logger).RegisterRoutes(router)
	delivery.NewCheckoutHandler(checkoutUseCase, notifier, logger).RegisterRoutes(router)
	delivery.NewNotificationHandler(notifier, logger).RegisterRoutes(router)

	return &storefront{router: router, cartPath: cartPath}
}

func (s *storefront) do(t *testing.T, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func gridProducts() []domain.Product {
	return []domain.Product{
		{Name: "Floral Lip Gloss", Price: 18, Stock: 16, Image: "images/floral-lip-gloss.jpg", Popularity: 83},
		{Name: "Matte Lipstick", Price: 24, Stock: 18, Image: "images/matte-lipstick.jpg", Popularity: 88},
		{Name: "Brow Freeze Gel", Price: 55, Stock: 1, Image: "images/brow-freeze-gel.jpg", Popularity: 77},
	}
}

func TestListProductsAppliesCategoryAndSearch(t *testing.T) {
	s := newStorefront(t, gridProducts()...)

	w, env := s.do(t, http.MethodGet, "/products?category=lips&search=gloss", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var grid delivery.GridPage
	require.NoError(t, json.Unmarshal(env.Data, &grid))

	require.Len(t, grid.Items, 1)
	assert.Equal(t, "Floral Lip Gloss", grid.Items[0].Name)
	assert.Equal(t, 18.0, grid.Items[0].Price)
	assert.Equal(t, 18.0, grid.Items[0].DiscountPrice)
	assert.Contains(t, grid.Items[0].DetailLink, "name=Floral+Lip+Gloss")
	assert.Equal(t, "Page 1 of 1", grid.PageInfo)
}

func TestListProductsPaginatesAndClamps(t *testing.T) {
	products := make([]domain.Product, 25)
	for i := range products {
		products[i] = domain.Product{Name: fmt.Sprintf("Product %02d", i), Price: 10, Stock: 5}
	}
	s := newStorefront(t, products...)

	w, env := s.do(t, http.MethodGet, "/products?page=3", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var grid delivery.GridPage
	require.NoError(t, json.Unmarshal(env.Data, &grid))
	assert.Len(t, grid.Items, 1)
	assert.Equal(t, 3, grid.TotalPages)

	// A page past the end clamps to the last page instead of erroring.
	w, env = s.do(t, http.MethodGet, "/products?page=99", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &grid))
	assert.Equal(t, 3, grid.Page)
	// Navigation targets from the last page: back one, forward nowhere.
	assert.Equal(t, 2, grid.PrevPage)
	assert.Equal(t, 3, grid.NextPage)
}

func TestListProductsEmptyViewRendersPageOne(t *testing.T) {
	s := newStorefront(t, gridProducts()...)

	// An unknown category filters everything out; any requested page must
	// still render as page 1 of 0.
	w, env := s.do(t, http.MethodGet, "/products?category=nails&page=5", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var grid delivery.GridPage
	require.NoError(t, json.Unmarshal(env.Data, &grid))
	assert.Empty(t, grid.Items)
	assert.Equal(t, 1, grid.Page)
	assert.Equal(t, 0, grid.TotalPages)
	assert.Equal(t, 1, grid.PrevPage)
	assert.Equal(t, 1, grid.NextPage)
	assert.Equal(t, "Page 1 of 0", grid.PageInfo)
}

func TestListProductsRejectsInvalidSortKey(t *testing.T) {
	s := newStorefront(t, gridProducts()...)

	w, _ := s.do(t, http.MethodGet, "/products?sort=cheapest", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddToCartCapturesDiscountedUnitPrice(t *testing.T) {
	s := newStorefront(t, gridProducts()...)

	w, env := s.do(t, http.MethodPost, "/cart/items", map[string]string{"name": "Brow Freeze Gel"})
	require.Equal(t, http.StatusCreated, w.Code)

	var payload struct {
		Toast delivery.Toast    `json:"toast"`
		Cart  delivery.CartView `json:"cart"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))

	assert.Equal(t, "Brow Freeze Gel added to the cart!", payload.Toast.Message)
	assert.Equal(t, int64(3000), payload.Toast.DurationMS)
	require.Len(t, payload.Cart.Lines, 1)
	// List price 55 is above the bulk threshold: the captured unit price is
	// the 20%-off figure.
	assert.Equal(t, 44.0, payload.Cart.Lines[0].Price)
	assert.Equal(t, 44.0, payload.Cart.Total)
}

func TestAddUnknownProductRejected(t *testing.T) {
	s := newStorefront(t, gridProducts()...)

	w, env := s.do(t, http.MethodPost, "/cart/items", map[string]string{"name": "Nail Polish"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Fail", env.Status)
}

func TestAddBlankNameRejected(t *testing.T) {
	s := newStorefront(t, gridProducts()...)

	w, env := s.do(t, http.MethodPost, "/cart/items", map[string]string{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "product name is missing")
}

func TestIncreasePastStockCeilingUsesShortToast(t *testing.T) {
	s := newStorefront(t, gridProducts()...)

	w, _ := s.do(t, http.MethodPost, "/cart/items", map[string]string{"name": "Brow Freeze Gel"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := s.do(t, http.MethodPost, "/cart/items/Brow%20Freeze%20Gel/increase", nil)
	require.Equal(t, http.StatusConflict, w.Code)

	var toast delivery.Toast
	require.NoError(t, json.Unmarshal(env.Data, &toast))
	assert.Contains(t, toast.Message, "cannot add more than 1 of Brow Freeze Gel")
	assert.Equal(t, int64(2000), toast.DurationMS)
}

func TestDecreaseToZeroRemovesLine(t *testing.T) {
	s := newStorefront(t, gridProducts()...)

	w, _ := s.do(t, http.MethodPost, "/cart/items", map[string]string{"name": "Matte Lipstick"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := s.do(t, http.MethodPost, "/cart/items/Matte%20Lipstick/decrease", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var view delivery.CartView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Empty(t, view.Lines)
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	s := newStorefront(t, gridProducts()...)

	w, env := s.do(t, http.MethodPost, "/checkout", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Message, "cart is empty")
}

func TestCheckoutConfirmPlacesOrderAndClearsCart(t *testing.T) {
	s := newStorefront(t, gridProducts()...)

	w, _ := s.do(t, http.MethodPost, "/cart/items", map[string]string{"name": "Matte Lipstick"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = s.do(t, http.MethodPost, "/checkout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env := s.do(t, http.MethodPost, "/checkout/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		OrderReference string `json:"order_reference"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.NotEmpty(t, payload.OrderReference)

	w, env = s.do(t, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var view delivery.CartView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Empty(t, view.Lines)

	// The persisted cart is erased along with the in-memory lines.
	_, err := os.Stat(s.cartPath)
	assert.True(t, os.IsNotExist(err))
}

func TestConfirmWithoutPendingCheckoutRejected(t *testing.T) {
	s := newStorefront(t, gridProducts()...)

	w, _ := s.do(t, http.MethodPost, "/checkout/confirm", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCancelKeepsCartIntact(t *testing.T) {
	s := newStorefront(t, gridProducts()...)

	w, _ := s.do(t, http.MethodPost, "/cart/items", map[string]string{"name": "Matte Lipstick"})
	require.Equal(t, http.StatusCreated, w.Code)
	w, _ = s.do(t, http.MethodPost, "/checkout", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = s.do(t, http.MethodPost, "/checkout/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w, env := s.do(t, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var view delivery.CartView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Len(t, view.Lines, 1)
}

func TestNotificationShowsMostRecentToast(t *testing.T) {
	s := newStorefront(t, gridProducts()...)

	w, _ := s.do(t, http.MethodGet, "/notification", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w, _ = s.do(t, http.MethodPost, "/cart/items", map[string]string{"name": "Matte Lipstick"})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := s.do(t, http.MethodGet, "/notification", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var toast delivery.Toast
	require.NoError(t, json.Unmarshal(env.Data, &toast))
	assert.Equal(t, "Matte Lipstick added to the cart!", toast.Message)
}
