package usecase

import (
	"sync"

	"storefront_service/internal/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CheckoutState is the confirmation gate position. It lives in memory only;
// every session starts idle regardless of what the last one did.
type CheckoutState string

const (
	CheckoutIdle                 CheckoutState = "idle"
	CheckoutAwaitingConfirmation CheckoutState = "awaiting_confirmation"
)

// CheckoutUseCase is the two-state confirmation gate around clearing the cart
// on order placement.
type CheckoutUseCase interface {
	State() CheckoutState
	Begin() error
	Cancel()
	Confirm() (string, error)
}

type checkoutUseCase struct {
	mu    sync.Mutex
	state CheckoutState
	cart  CartUseCase
	log   *logrus.Logger
}

func NewCheckoutUseCase(cart CartUseCase, logger *logrus.Logger) CheckoutUseCase {
	return &checkoutUseCase{
		state: CheckoutIdle,
		cart:  cart,
		log:   logger,
	}
}

func (uc *checkoutUseCase) State() CheckoutState {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.state
}

// Begin opens the confirmation gate. An empty cart is rejected and the gate
// stays idle.
func (uc *checkoutUseCase) Begin() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if len(uc.cart.Lines()) == 0 {
		uc.log.Warn("Use Case: Checkout attempted with an empty cart")
		return domain.ErrEmptyCart
	}

	uc.state = CheckoutAwaitingConfirmation
	uc.log.Info("Use Case: Checkout awaiting confirmation")
	return nil
}

// Cancel closes the gate without touching the cart. Cancelling while idle is
// a no-op.
func (uc *checkoutUseCase) Cancel() {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.state == CheckoutAwaitingConfirmation {
		uc.log.Info("Use Case: Checkout cancelled")
	}
	uc.state = CheckoutIdle
}

// Confirm places the order: it clears the cart (including persisted state),
// returns the gate to idle and mints an order reference. Confirming without a
// pending confirmation is rejected.
func (uc *checkoutUseCase) Confirm() (string, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.state != CheckoutAwaitingConfirmation {
		uc.log.Warn("Use Case: Confirm attempted with no order awaiting confirmation")
		return "", domain.ErrNotAwaitingConfirmation
	}

	if err := uc.cart.Clear(); err != nil {
		uc.log.Errorf("Use Case: Failed to clear cart while placing order: %v", err)
		return "", err
	}

	uc.state = CheckoutIdle
	orderRef := uuid.NewString()
	uc.log.Infof("Use Case: Order %s placed successfully", orderRef)
	return orderRef, nil
}
