package booking

import (
	"context"

	"hoodbook/internal/domain"
)

// CartCheckout takes a snapshot of the pending cart and clears it.
type CartCheckout interface {
	Checkout(ctx context.Context) ([]domain.CartItem, error)
}
