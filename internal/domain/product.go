package domain

// CatalogRepository loads the product collection from its backing resource.
// The load happens once at startup; a failed load degrades to an empty catalog
// rather than taking the service down.
type CatalogRepository interface {
	Load() ([]Product, error)
}

// SortKey selects the comparator applied to a filtered product view.
type SortKey string

const (
	SortNone       SortKey = "none"
	SortPrice      SortKey = "price"      // price ascending
	SortPopularity SortKey = "popularity" // popularity descending
	SortNewest     SortKey = "newest"     // dateAdded descending
)

func IsValidSortKey(key SortKey) bool {
	switch key {
	case SortNone, SortPrice, SortPopularity, SortNewest:
		return true
	default:
		return false
	}
}

// FilterCriteria is the ephemeral view selection derived from the storefront
// controls. It is recomputed on every request, never stored.
type FilterCriteria struct {
	Category   string
	SearchTerm string
	SortKey    SortKey
}
