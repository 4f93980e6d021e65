package usecase

import (
	"sort"
	"strings"

	"storefront_service/internal/domain"

	"github.com/sirupsen/logrus"
)

// ItemsPerPage is the fixed grid page size.
const ItemsPerPage = 12

// CatalogUseCase holds the product collection loaded once at startup and
// derives filtered, sorted, paginated views of it. The backing list is never
// mutated after load; view derivation always works on copies.
type CatalogUseCase interface {
	All() []domain.Product
	ByName(name string) (*domain.Product, error)
	StockFor(name string) (int, error)
	Filtered(criteria domain.FilterCriteria) []domain.Product
	Page(items []domain.Product, page int) []domain.Product
	TotalPages(itemCount int) int
	ClampPage(page, totalPages int) int
	NextPage(current, totalPages int) int
	PrevPage(current int) int
}

type catalogUseCase struct {
	products []domain.Product
	byName   map[string]int
	log      *logrus.Logger
}

// NewCatalogUseCase loads the catalog exactly once. A failed load is reported
// and leaves the catalog empty; the service keeps running with an empty grid.
func NewCatalogUseCase(repo domain.CatalogRepository, logger *logrus.Logger) CatalogUseCase {
	products, err := repo.Load()
	if err != nil {
		logger.Errorf("Use Case: Failed to load catalog, grid will stay empty: %v", err)
		products = nil
	} else {
		logger.Infof("Use Case: Catalog loaded with %d products", len(products))
	}

	byName := make(map[string]int, len(products))
	for i, p := range products {
		byName[p.Name] = i
	}

	return &catalogUseCase{
		products: products,
		byName:   byName,
		log:      logger,
	}
}

func (uc *catalogUseCase) All() []domain.Product {
	out := make([]domain.Product, len(uc.products))
	copy(out, uc.products)
	return out
}

func (uc *catalogUseCase) ByName(name string) (*domain.Product, error) {
	i, ok := uc.byName[name]
	if !ok {
		uc.log.Warnf("Use Case: Product '%s' not found in catalog", name)
		return nil, domain.ErrProductNotFound
	}
	p := uc.products[i]
	return &p, nil
}

// StockFor resolves the current stock ceiling for a product name. The catalog
// is immutable after load, so a single cached read is authoritative.
func (uc *catalogUseCase) StockFor(name string) (int, error) {
	i, ok := uc.byName[name]
	if !ok {
		return 0, domain.ErrProductNotFound
	}
	return uc.products[i].Stock, nil
}

// Filtered applies the category and search filters (intersected) and then the
// selected sort. Sorting operates on a fresh slice; catalog order is the
// fallback for SortNone and the tie-break for every stable sort.
func (uc *catalogUseCase) Filtered(criteria domain.FilterCriteria) []domain.Product {
	var members map[string]bool
	if criteria.Category != "" && criteria.Category != domain.CategoryAll {
		names, ok := domain.CategoryMembers(criteria.Category)
		if !ok {
			uc.log.Warnf("Use Case: Unknown category '%s', returning empty view", criteria.Category)
			return []domain.Product{}
		}
		members = make(map[string]bool, len(names))
		for _, n := range names {
			members[n] = true
		}
	}

	term := strings.ToLower(criteria.SearchTerm)

	filtered := make([]domain.Product, 0, len(uc.products))
	for _, p := range uc.products {
		if members != nil && !members[p.Name] {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(p.Name), term) {
			continue
		}
		filtered = append(filtered, p)
	}

	switch criteria.SortKey {
	case domain.SortPrice:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Price < filtered[j].Price
		})
	case domain.SortPopularity:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Popularity > filtered[j].Popularity
		})
	case domain.SortNewest:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].DateAdded.After(filtered[j].DateAdded.Time)
		})
	}

	return filtered
}

// TotalPages is ceil(itemCount / ItemsPerPage); an empty view has 0 pages.
func (uc *catalogUseCase) TotalPages(itemCount int) int {
	if itemCount <= 0 {
		return 0
	}
	return (itemCount + ItemsPerPage - 1) / ItemsPerPage
}

// Page slices one grid page out of items, clamped to what is available. The
// last page may hold fewer than ItemsPerPage entries and is never padded.
func (uc *catalogUseCase) Page(items []domain.Product, page int) []domain.Product {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * ItemsPerPage
	if start >= len(items) {
		return []domain.Product{}
	}
	end := start + ItemsPerPage
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// ClampPage forces a requested page into [1, max(totalPages, 1)]; a page
// against an empty view clamps to 1.
func (uc *catalogUseCase) ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// NextPage advances only while a next page exists; anything else is a no-op.
func (uc *catalogUseCase) NextPage(current, totalPages int) int {
	if current < totalPages {
		return current + 1
	}
	return current
}

// PrevPage steps back only from pages above 1; anything else is a no-op.
func (uc *catalogUseCase) PrevPage(current int) int {
	if current > 1 {
		return current - 1
	}
	return current
}
