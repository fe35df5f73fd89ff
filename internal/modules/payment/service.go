package payment

import "hoodbook/internal/domain"

// Service previews the handoff for the current cart without mutating it.
type Service struct {
	cart     CartReader
	profile  ProfileReader
	settings SettingsReader
}

func NewService(cart CartReader, profile ProfileReader, settings SettingsReader) *Service {
	return &Service{cart: cart, profile: profile, settings: settings}
}

func (s *Service) Preview() Handoff {
	var p *domain.UserProfile
	if v, ok := s.profile.Get(); ok {
		p = &v
	}
	return Compose(s.cart.Items(), p, s.settings.Get())
}
