package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"storefront_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type fileCartRepository struct {
	path string
	log  *logrus.Logger
}

// NewFileCartRepository persists the cart as a JSON document on disk, the
// service-side stand-in for the browser's "cart" storage key. Loads are
// fail-open: a missing or unreadable document is an empty cart.
func NewFileCartRepository(path string, logger *logrus.Logger) domain.CartRepository {
	return &fileCartRepository{
		path: path,
		log:  logger,
	}
}

func (r *fileCartRepository) Load() ([]domain.CartLine, error) {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		r.log.Warnf("Repository: Could not read cart file '%s', treating as empty: %v", r.path, err)
		return nil, nil
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(data, &lines); err != nil {
		r.log.Warnf("Repository: Malformed cart file '%s', treating as empty: %v", r.path, err)
		return nil, nil
	}
	return lines, nil
}

// Save rewrites the whole cart on every mutation, via a temp file and rename
// so a crash mid-write cannot leave a half-written document behind.
func (r *fileCartRepository) Save(lines []domain.CartLine) error {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("could not serialize cart: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create cart directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, domain.CartStateKey+"-*.json")
	if err != nil {
		return fmt.Errorf("could not create cart temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("could not write cart temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not close cart temp file: %w", err)
	}
	if err := os.Rename(tmpName, r.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not replace cart file: %w", err)
	}
	return nil
}

func (r *fileCartRepository) Erase() error {
	err := os.Remove(r.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("could not erase cart file: %w", err)
	}
	return nil
}
