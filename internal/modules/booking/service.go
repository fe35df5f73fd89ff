package booking

import (
	"context"
	"errors"
	"log"

	"hoodbook/internal/domain"
	"hoodbook/internal/repository"
)

type Service struct {
	cart   CartCheckout
	ledger *Ledger
}

func NewService(cart CartCheckout, ledger *Ledger) *Service {
	return &Service{cart: cart, ledger: ledger}
}

// Checkout records the current cart as paid bookings and empties the cart.
// A store outage is logged but does not undo the in-memory checkout; the
// returned error then wraps repository.ErrStoreUnavailable.
func (s *Service) Checkout(ctx context.Context) ([]domain.Booking, error) {
	snapshot, cartErr := s.cart.Checkout(ctx)
	if cartErr != nil && !errors.Is(cartErr, repository.ErrStoreUnavailable) {
		return nil, cartErr
	}
	if len(snapshot) == 0 {
		return nil, ErrEmptyCart
	}

	bookings, err := s.ledger.Confirm(ctx, snapshot)
	log.Printf("checkout_confirmed count=%d", len(bookings))
	return bookings, errors.Join(cartErr, err)
}

func (s *Service) Ledger() *Ledger { return s.ledger }
