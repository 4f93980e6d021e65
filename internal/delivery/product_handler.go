package delivery

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"storefront_service/internal/domain"
	"storefront_service/internal/metrics"
	"storefront_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	catalog usecase.CatalogUseCase
	log     *logrus.Logger
}

func NewProductHandler(catalog usecase.CatalogUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/products", h.ListProducts)
}

// GridItem is one rendered product card.
type GridItem struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Shades        string  `json:"shades"`
	Stock         int     `json:"stock"`
	Price         float64 `json:"price"`
	DiscountPrice float64 `json:"discount_price"`
	Image         string  `json:"image"`
	DetailLink    string  `json:"detail_link"`
}

// GridPage is one page of the filtered, sorted product grid. PrevPage and
// NextPage are the pages the navigation controls target; at either edge they
// equal Page, which is how the controls know to disable themselves.
type GridPage struct {
	Items      []GridItem `json:"items"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
	PrevPage   int        `json:"prev_page"`
	NextPage   int        `json:"next_page"`
	PageInfo   string     `json:"page_info"`
}

// ListProducts renders the grid for the requested category, search term, sort
// key and page. Changing any filter control implies page 1, which is the
// query default.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	category := c.DefaultQuery("category", domain.CategoryAll)
	search := c.Query("search")

	sortKey := domain.SortKey(c.DefaultQuery("sort", string(domain.SortNone)))
	if !domain.IsValidSortKey(sortKey) {
		h.log.Warnf("Invalid sort key parameter: %s", sortKey)
		ErrorResponse(c, http.StatusBadRequest, "Invalid sort key")
		return
	}

	pageStr := c.DefaultQuery("page", "1")
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		h.log.Warnf("Invalid page parameter '%s', using page 1", pageStr)
		page = 1
	}

	filtered := h.catalog.Filtered(domain.FilterCriteria{
		Category:   category,
		SearchTerm: search,
		SortKey:    sortKey,
	})

	totalPages := h.catalog.TotalPages(len(filtered))
	page = h.catalog.ClampPage(page, totalPages)
	pageItems := h.catalog.Page(filtered, page)

	items := make([]GridItem, 0, len(pageItems))
	for _, p := range pageItems {
		items = append(items, GridItem{
			Name:          p.Name,
			Description:   p.Description,
			Shades:        p.Shades,
			Stock:         p.Stock,
			Price:         p.Price,
			DiscountPrice: usecase.DiscountPrice(p.Price),
			Image:         p.Image,
			DetailLink:    detailLink(p),
		})
	}

	metrics.GridRequests.Inc()
	h.log.Infof("Grid rendered: category=%s search=%q sort=%s page=%d/%d items=%d",
		category, search, sortKey, page, totalPages, len(items))

	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", GridPage{
		Items:      items,
		Page:       page,
		TotalPages: totalPages,
		PrevPage:   h.catalog.PrevPage(page),
		NextPage:   h.catalog.NextPage(page, totalPages),
		PageInfo:   fmt.Sprintf("Page %d of %d", page, totalPages),
	})
}

// detailLink is the hand-off to the product detail view, parameterized by
// name, list price and image as the grid anchor carries them.
func detailLink(p domain.Product) string {
	v := url.Values{}
	v.Set("name", p.Name)
	v.Set("price", strconv.FormatFloat(p.Price, 'f', -1, 64))
	v.Set("image", p.Image)
	return "/products/detail?" + v.Encode()
}
