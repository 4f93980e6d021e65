package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"storefront_service/internal/domain"

	"github.com/sirupsen/logrus"
)

type postgresCartRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

// NewPostgresCartRepository persists the cart as a single JSON value keyed
// under the well-known cart identifier in the storefront_state table. Like
// the file store it fails open on load: no row or a malformed value is an
// empty cart.
func NewPostgresCartRepository(db *sql.DB, logger *logrus.Logger) (domain.CartRepository, error) {
	r := &postgresCartRepository{
		db:  db,
		log: logger,
	}
	if err := r.ensureSchema(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *postgresCartRepository) ensureSchema() error {
	query := `
        CREATE TABLE IF NOT EXISTS storefront_state (
            key   TEXT PRIMARY KEY,
            value JSONB NOT NULL
        )`
	if _, err := r.db.Exec(query); err != nil {
		r.log.Errorf("Repository: Failed to ensure storefront_state table: %v", err)
		return fmt.Errorf("could not ensure cart state table: %w", err)
	}
	return nil
}

func (r *postgresCartRepository) Load() ([]domain.CartLine, error) {
	query := `SELECT value FROM storefront_state WHERE key = $1`

	var raw []byte
	err := r.db.QueryRow(query, domain.CartStateKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Warnf("Repository: Could not read persisted cart, treating as empty: %v", err)
		return nil, nil
	}

	var lines []domain.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		r.log.Warnf("Repository: Malformed persisted cart, treating as empty: %v", err)
		return nil, nil
	}
	return lines, nil
}

func (r *postgresCartRepository) Save(lines []domain.CartLine) error {
	if lines == nil {
		lines = []domain.CartLine{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("could not serialize cart: %w", err)
	}

	query := `
        INSERT INTO storefront_state (key, value)
        VALUES ($1, $2)
        ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	if _, err := r.db.Exec(query, domain.CartStateKey, raw); err != nil {
		r.log.Errorf("Repository: Failed to persist cart: %v", err)
		return fmt.Errorf("could not persist cart: %w", err)
	}
	return nil
}

func (r *postgresCartRepository) Erase() error {
	query := `DELETE FROM storefront_state WHERE key = $1`
	if _, err := r.db.Exec(query, domain.CartStateKey); err != nil {
		r.log.Errorf("Repository: Failed to erase persisted cart: %v", err)
		return fmt.Errorf("could not erase persisted cart: %w", err)
	}
	return nil
}
