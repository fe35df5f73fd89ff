package admin

import (
	"crypto/subtle"
	"fmt"
	"log"
	"time"

	"hoodbook/internal/domain"
	"hoodbook/internal/middleware"
	"hoodbook/internal/modules/catalog"
	"hoodbook/internal/pkg/jwt"
	"hoodbook/internal/pkg/money"
)

const adminSubject = "front-desk"

type LedgerReader interface {
	Totals() domain.LedgerTotals
	List() []domain.Booking
}

// Service gates the admin screens behind the shared PIN. The PIN is a
// convenience lock for the front desk, and the token it yields is no stronger.
type Service struct {
	pin     string
	jwt     *jwt.Service
	ledger  LedgerReader
	catalog *catalog.Service
	now     func() time.Time
}

func NewService(pin string, jwtService *jwt.Service, ledger LedgerReader, catalog *catalog.Service) *Service {
	return &Service{pin: pin, jwt: jwtService, ledger: ledger, catalog: catalog, now: time.Now}
}

func (s *Service) Unlock(pin string) (*UnlockResponse, error) {
	if subtle.ConstantTimeCompare([]byte(pin), []byte(s.pin)) != 1 {
		log.Printf("admin_unlock_failed")
		return nil, ErrInvalidPIN
	}

	token, err := s.jwt.GenerateToken(adminSubject, middleware.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("issue admin token: %w", err)
	}
	return &UnlockResponse{
		Token:     token,
		ExpiresAt: s.now().Add(s.jwt.TTL()).UTC(),
	}, nil
}

// Overview returns sales totals plus the weekly class template.
func (s *Service) Overview() OverviewResponse {
	totals := s.ledger.Totals()
	return OverviewResponse{
		Totals:         totals,
		GrossFormatted: money.FormatMYR(totals.Gross),
		Classes:        s.catalog.Views(s.catalog.Offerings()),
	}
}
