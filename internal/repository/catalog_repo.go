package repository

import (
	"encoding/json"
	"fmt"
	"os"

	"storefront_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type fileCatalogRepository struct {
	path string
	log  *logrus.Logger
}

// NewFileCatalogRepository reads the static product catalog from a JSON file.
// The file is the sole catalog source; it is read once per Load call and the
// service loads it exactly once at startup.
func NewFileCatalogRepository(path string, logger *logrus.Logger) domain.CatalogRepository {
	return &fileCatalogRepository{
		path: path,
		log:  logger,
	}
}

func (r *fileCatalogRepository) Load() ([]domain.Product, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		r.log.Errorf("Repository: Failed to read catalog file '%s': %v", r.path, err)
		return nil, fmt.Errorf("could not read catalog file: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		r.log.Errorf("Repository: Failed to parse catalog file '%s': %v", r.path, err)
		return nil, fmt.Errorf("could not parse catalog file: %w", err)
	}

	r.log.Infof("Repository: Loaded %d products from '%s'", len(products), r.path)
	return products, nil
}
