package domain

import (
	"strings"
	"time"
)

// Product is one catalog entry. The catalog is loaded once at startup and is
// read-only afterwards; nothing in the service mutates a Product.
type Product struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Shades      string  `json:"shades"`
	Popularity  int     `json:"popularity"`
	DateAdded   Date    `json:"dateAdded"`
}

// CartLine is one product's entry in the active cart. Price is the unit price
// captured when the line was created; it is never re-derived from the catalog.
type CartLine struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Image    string  `json:"image"`
	Quantity int     `json:"quantity"`
}

// Date wraps time.Time so catalog files can record dateAdded either as a bare
// date ("2024-06-01") or as a full RFC 3339 timestamp.
type Date struct {
	time.Time
}

const dateOnlyLayout = "2006-01-02"

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.Parse(dateOnlyLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateOnlyLayout) + `"`), nil
}
