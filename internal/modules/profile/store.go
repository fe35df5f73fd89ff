package profile

import (
	"context"
	"strings"
	"sync"

	"hoodbook/internal/domain"
	"hoodbook/internal/pkg/validator"
	"hoodbook/internal/repository"
)

// Store holds the single local profile. A nil value means signed out.
type Store struct {
	mu      sync.Mutex
	doc     *repository.Document[*domain.UserProfile]
	current *domain.UserProfile
}

func NewStore(ctx context.Context, state repository.StateStore) *Store {
	doc := repository.NewDocument[*domain.UserProfile](state, repository.KeyUser)
	return &Store{doc: doc, current: doc.Load(ctx, nil)}
}

func (s *Store) Get() (domain.UserProfile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return domain.UserProfile{}, false
	}
	return *s.current, true
}

// Set replaces the profile. Partial profiles are accepted; see Missing.
// The in-memory value is kept even if persisting fails.
func (s *Store) Set(ctx context.Context, p domain.UserProfile) (domain.UserProfile, error) {
	p = normalize(p)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = &p
	return p, s.doc.Save(ctx, s.current)
}

// Clear signs the user out.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = nil
	return s.doc.Clear(ctx)
}

// Missing lists required fields that are still empty or invalid, by json name.
func Missing(p domain.UserProfile) []string {
	return validator.Fields(validator.Validate(p))
}

func normalize(p domain.UserProfile) domain.UserProfile {
	p.FullName = strings.TrimSpace(p.FullName)
	p.StageName = strings.TrimSpace(p.StageName)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Email = strings.TrimSpace(p.Email)
	p.Instagram = strings.TrimSpace(p.Instagram)
	p.EmergencyContact = strings.TrimSpace(p.EmergencyContact)
	return p
}
