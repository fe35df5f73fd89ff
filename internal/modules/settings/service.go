package settings

import (
	"context"
	"strings"
	"sync"

	"hoodbook/internal/domain"
	"hoodbook/internal/repository"
)

// Service holds the checkout payment details. Stored values are merged over
// the academy defaults so a partially written document still renders.
type Service struct {
	mu      sync.Mutex
	doc     *repository.Document[domain.Settings]
	current domain.Settings
}

func NewService(ctx context.Context, state repository.StateStore) *Service {
	doc := repository.NewDocument[domain.Settings](state, repository.KeySettings)
	return &Service{doc: doc, current: merge(doc.Load(ctx, domain.DefaultSettings()))}
}

func (s *Service) Get() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Set replaces the settings. Blank fields fall back to defaults, except the
// optional payment QR image URL.
func (s *Service) Set(ctx context.Context, v domain.Settings) (domain.Settings, error) {
	v = merge(v)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = v
	return v, s.doc.Save(ctx, v)
}

// Reset restores the defaults.
func (s *Service) Reset(ctx context.Context) (domain.Settings, error) {
	return s.Set(ctx, domain.DefaultSettings())
}

func merge(v domain.Settings) domain.Settings {
	def := domain.DefaultSettings()
	pick := func(val, fallback string) string {
		if s := strings.TrimSpace(val); s != "" {
			return s
		}
		return fallback
	}
	return domain.Settings{
		WANumber:    pick(v.WANumber, def.WANumber),
		BankName:    pick(v.BankName, def.BankName),
		AccountName: pick(v.AccountName, def.AccountName),
		AccountNo:   pick(v.AccountNo, def.AccountNo),
		QRURL:       strings.TrimSpace(v.QRURL),
	}
}
