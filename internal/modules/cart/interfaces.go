package cart

import "hoodbook/internal/domain"

// Catalog is the subset of catalog lookups the cart needs.
type Catalog interface {
	Offering(id string) (domain.ClassOffering, bool)
	RoomName(id string) string
}

// ProfileSource supplies the customer name and phone stamped on new items.
type ProfileSource interface {
	Get() (domain.UserProfile, bool)
}
