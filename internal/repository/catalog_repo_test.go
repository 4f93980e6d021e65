package repository

import (
	"os"
	"path/filepath"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalog(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "productlist.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestCatalogLoad(t *testing.T) {
	path := writeCatalog(t, `[
		{"name": "Lipstick", "price": 22, "stock": 20, "image": "images/lipstick.jpg",
		 "description": "Classic satin-finish lipstick.", "shades": "Ruby Red",
		 "popularity": 92, "dateAdded": "2024-03-03"},
		{"name": "Brush", "price": 14, "stock": 30, "image": "images/brush.jpg",
		 "description": "Dense synthetic buffing brush.", "shades": "N/A",
		 "popularity": 54, "dateAdded": "2024-01-08T10:30:00Z"}
	]`)
	logger, _ := logtest.NewNullLogger()
	repo := NewFileCatalogRepository(path, logger)

	products, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "Lipstick", products[0].Name)
	assert.Equal(t, 22.0, products[0].Price)
	assert.Equal(t, 20, products[0].Stock)
	assert.Equal(t, "2024-03-03", products[0].DateAdded.Format("2006-01-02"))

	// dateAdded accepts full timestamps too.
	assert.Equal(t, "2024-01-08", products[1].DateAdded.Format("2006-01-02"))
}

func TestCatalogLoadMissingFileFails(t *testing.T) {
	logger, _ := logtest.NewNullLogger()
	repo := NewFileCatalogRepository(filepath.Join(t.TempDir(), "absent.json"), logger)

	_, err := repo.Load()
	assert.Error(t, err)
}

func TestCatalogLoadMalformedFileFails(t *testing.T) {
	path := writeCatalog(t, `{"not": "a product array"}`)
	logger, _ := logtest.NewNullLogger()
	repo := NewFileCatalogRepository(path, logger)

	_, err := repo.Load()
	assert.Error(t, err)
}
