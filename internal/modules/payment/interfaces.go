package payment

import "hoodbook/internal/domain"

type CartReader interface {
	Items() []domain.CartItem
}

type ProfileReader interface {
	Get() (domain.UserProfile, bool)
}

type SettingsReader interface {
	Get() domain.Settings
}
