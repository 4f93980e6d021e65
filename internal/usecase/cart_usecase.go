package usecase

import (
	"fmt"
	"strings"
	"sync"

	"storefront_service/internal/domain"

	"github.com/sirupsen/logrus"
)

// CartUseCase owns the active cart: an ordered sequence of lines keyed by
// product name. Every accepted mutation is persisted before it becomes
// visible; rejected operations leave both memory and persistence untouched.
type CartUseCase interface {
	Lines() []domain.CartLine
	Add(product domain.Product, unitPrice float64) error
	Increase(name string) error
	Decrease(name string) error
	Remove(name string) error
	Clear() error
	Total() float64
}

type cartUseCase struct {
	mu      sync.Mutex
	lines   []domain.CartLine
	repo    domain.CartRepository
	catalog CatalogUseCase
	log     *logrus.Logger
}

// NewCartUseCase restores the persisted cart. The repository is fail-open, so
// an absent or broken stored cart starts the session empty rather than failing.
func NewCartUseCase(repo domain.CartRepository, catalog CatalogUseCase, logger *logrus.Logger) CartUseCase {
	lines, err := repo.Load()
	if err != nil {
		logger.Warnf("Use Case: Failed to restore persisted cart, starting empty: %v", err)
		lines = nil
	} else if len(lines) > 0 {
		logger.Infof("Use Case: Restored cart with %d lines", len(lines))
	}

	return &cartUseCase{
		lines:   lines,
		repo:    repo,
		catalog: catalog,
		log:     logger,
	}
}

func (uc *cartUseCase) Lines() []domain.CartLine {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]domain.CartLine, len(uc.lines))
	copy(out, uc.lines)
	return out
}

// Add puts one unit of product into the cart at unitPrice. The price is a
// snapshot taken now; later adds of the same product only raise the quantity
// and never touch the captured price.
func (uc *cartUseCase) Add(product domain.Product, unitPrice float64) error {
	if strings.TrimSpace(product.Name) == "" {
		uc.log.Warn("Use Case: Attempted to add a product with a blank name to the cart")
		return domain.ErrEmptyProductName
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := uc.copyLines()
	if i := lineIndex(next, product.Name); i >= 0 {
		if next[i].Quantity+1 > product.Stock {
			uc.log.Warnf("Use Case: Stock ceiling hit adding '%s' (quantity %d, stock %d)", product.Name, next[i].Quantity, product.Stock)
			return stockCeilingError(product.Stock, product.Name)
		}
		next[i].Quantity++
	} else {
		if product.Stock < 1 {
			uc.log.Warnf("Use Case: Attempted to add out-of-stock product '%s'", product.Name)
			return stockCeilingError(product.Stock, product.Name)
		}
		next = append(next, domain.CartLine{
			Name:     product.Name,
			Price:    unitPrice,
			Image:    product.Image,
			Quantity: 1,
		})
	}

	if err := uc.commit(next); err != nil {
		return err
	}
	uc.log.Infof("Use Case: Added '%s' to the cart", product.Name)
	return nil
}

// Increase raises a line's quantity by one, bounded by the product's current
// stock as the catalog reports it now.
func (uc *cartUseCase) Increase(name string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := uc.copyLines()
	i := lineIndex(next, name)
	if i < 0 {
		uc.log.Warnf("Use Case: Attempted to increase '%s', which is not in the cart", name)
		return domain.ErrNotInCart
	}

	stock, err := uc.catalog.StockFor(name)
	if err != nil {
		uc.log.Warnf("Use Case: Could not resolve stock for '%s': %v", name, err)
		return err
	}
	if next[i].Quantity >= stock {
		uc.log.Warnf("Use Case: Stock ceiling hit increasing '%s' (quantity %d, stock %d)", name, next[i].Quantity, stock)
		return stockCeilingError(stock, name)
	}

	next[i].Quantity++
	return uc.commit(next)
}

// Decrease lowers a line's quantity by one; a line at quantity 1 is removed
// entirely rather than kept at zero.
func (uc *cartUseCase) Decrease(name string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := uc.copyLines()
	i := lineIndex(next, name)
	if i < 0 {
		uc.log.Warnf("Use Case: Attempted to decrease '%s', which is not in the cart", name)
		return domain.ErrNotInCart
	}

	if next[i].Quantity > 1 {
		next[i].Quantity--
	} else {
		next = append(next[:i], next[i+1:]...)
		uc.log.Infof("Use Case: Removed '%s' from the cart (quantity reached zero)", name)
	}
	return uc.commit(next)
}

// Remove deletes a line unconditionally. Removing a name that is not in the
// cart is a no-op.
func (uc *cartUseCase) Remove(name string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next := uc.copyLines()
	i := lineIndex(next, name)
	if i < 0 {
		return nil
	}
	next = append(next[:i], next[i+1:]...)

	if err := uc.commit(next); err != nil {
		return err
	}
	uc.log.Infof("Use Case: Removed '%s' from the cart", name)
	return nil
}

// Clear empties the cart and erases the persisted state.
func (uc *cartUseCase) Clear() error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.repo.Erase(); err != nil {
		uc.log.Errorf("Use Case: Failed to erase persisted cart: %v", err)
		return fmt.Errorf("could not erase persisted cart: %w", err)
	}
	uc.lines = nil
	uc.log.Info("Use Case: Cart cleared")
	return nil
}

// Total sums unitPrice x quantity over all lines, rounded to two decimals.
func (uc *cartUseCase) Total() float64 {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	var total float64
	for _, l := range uc.lines {
		total += l.Price * float64(l.Quantity)
	}
	return roundCents(total)
}

// commit persists the candidate line sequence and only then makes it the
// visible cart, so a failed write never leaves memory ahead of storage.
func (uc *cartUseCase) commit(next []domain.CartLine) error {
	if err := uc.repo.Save(next); err != nil {
		uc.log.Errorf("Use Case: Failed to persist cart: %v", err)
		return fmt.Errorf("could not persist cart: %w", err)
	}
	uc.lines = next
	return nil
}

func (uc *cartUseCase) copyLines() []domain.CartLine {
	next := make([]domain.CartLine, len(uc.lines))
	copy(next, uc.lines)
	return next
}

func lineIndex(lines []domain.CartLine, name string) int {
	for i := range lines {
		if lines[i].Name == name {
			return i
		}
	}
	return -1
}

func stockCeilingError(stock int, name string) error {
	return fmt.Errorf("cannot add more than %d of %s: %w", stock, name, domain.ErrStockCeiling)
}
