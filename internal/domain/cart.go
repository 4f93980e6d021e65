package domain

// CartStateKey is the well-known identifier the serialized cart is stored
// under, in both the file and Postgres stores.
const CartStateKey = "cart"

// CartRepository durably stores the ordered cart line sequence. Load is
// fail-open: an absent or unreadable value comes back as an empty cart, never
// as an error the caller must handle specially.
type CartRepository interface {
	Load() ([]CartLine, error)
	Save(lines []CartLine) error
	Erase() error
}
