package domain

import "errors"

// Sentinel errors for the recoverable rejection classes. All of these are
// surfaced to the user as transient notifications, never as crashes; the
// stores stay usable after any of them.
var (
	ErrProductNotFound         = errors.New("product not found")
	ErrEmptyProductName        = errors.New("product name is missing, cannot add to cart")
	ErrStockCeiling            = errors.New("stock ceiling reached")
	ErrNotInCart               = errors.New("product is not in the cart")
	ErrEmptyCart               = errors.New("your cart is empty, please add products to your cart before checkout")
	ErrNotAwaitingConfirmation = errors.New("no order is awaiting confirmation")
)
