package cart

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"hoodbook/internal/domain"
	"hoodbook/internal/monitoring"
	"hoodbook/internal/repository"
)

// Manager is the pending selection list. Items keep insertion order and are
// unique by id; every mutation is persisted under repository.KeyCart.
type Manager struct {
	mu      sync.Mutex
	doc     *repository.Document[[]domain.CartItem]
	items   []domain.CartItem
	catalog Catalog
	profile ProfileSource
	loc     *time.Location
}

func NewManager(ctx context.Context, state repository.StateStore, catalog Catalog, profile ProfileSource, loc *time.Location) *Manager {
	doc := repository.NewDocument[[]domain.CartItem](state, repository.KeyCart)
	return &Manager{
		doc:     doc,
		items:   doc.Load(ctx, nil),
		catalog: catalog,
		profile: profile,
		loc:     loc,
	}
}

// Add puts one session of o in the cart. The slot must be one of o's slots
// and date must fall on a weekday o recurs on. Adding an id that is already
// present returns the existing item with added=false.
func (m *Manager) Add(ctx context.Context, o domain.ClassOffering, date time.Time, slot string, profile *domain.UserProfile) (item domain.CartItem, added bool, err error) {
	if !o.HasSlot(slot) {
		monitoring.TrackCartOperation("add", "invalid")
		return domain.CartItem{}, false, fmt.Errorf("%w: %s has no slot %q", ErrInvalidSelection, o.ID, slot)
	}
	if !o.RecursOn(date.Weekday()) {
		monitoring.TrackCartOperation("add", "invalid")
		return domain.CartItem{}, false, fmt.Errorf("%w: %s does not run on %s", ErrInvalidSelection, o.ID, date.Weekday())
	}

	item = domain.CartItem{
		ID:       domain.CartItemID(o.ID, date, slot),
		ClassID:  o.ID,
		Title:    o.Title,
		Date:     date.Format(domain.DateLayout),
		Time:     slot,
		Price:    o.Price,
		RoomName: m.catalog.RoomName(o.RoomID),
	}
	if profile != nil {
		item.Customer = profile.FullName
		item.Phone = profile.Phone
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if i := m.indexOf(item.ID); i >= 0 {
		monitoring.TrackCartOperation("add", "duplicate")
		return m.items[i], false, nil
	}

	m.items = append(m.items, item)
	monitoring.TrackCartOperation("add", "added")
	return item, true, m.doc.Save(ctx, m.items)
}

// AddSelection resolves a (class, date, slot) triple from the API and adds
// it, stamping the current profile.
func (m *Manager) AddSelection(ctx context.Context, classID, date, slot string) (domain.CartItem, bool, error) {
	o, ok := m.catalog.Offering(classID)
	if !ok {
		monitoring.TrackCartOperation("add", "invalid")
		return domain.CartItem{}, false, fmt.Errorf("%w: %s", ErrClassNotFound, classID)
	}

	d, err := time.ParseInLocation(domain.DateLayout, strings.TrimSpace(date), m.loc)
	if err != nil {
		monitoring.TrackCartOperation("add", "invalid")
		return domain.CartItem{}, false, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	var profile *domain.UserProfile
	if m.profile != nil {
		if p, ok := m.profile.Get(); ok {
			profile = &p
		}
	}
	return m.Add(ctx, o, d, strings.TrimSpace(slot), profile)
}

// Remove deletes the item with id. Unknown ids are a no-op.
func (m *Manager) Remove(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.indexOf(id)
	if i < 0 {
		monitoring.TrackCartOperation("remove", "absent")
		return false, nil
	}
	m.items = slices.Delete(m.items, i, i+1)
	monitoring.TrackCartOperation("remove", "removed")
	return true, m.doc.Save(ctx, m.items)
}

func (m *Manager) Items() []domain.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.items)
}

func (m *Manager) Total() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return total(m.items)
}

// Checkout returns the current items in order and empties the cart in one
// step. The returned error only reports a failed persist of the empty cart.
func (m *Manager) Checkout(ctx context.Context) ([]domain.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := m.items
	m.items = nil
	if len(snapshot) == 0 {
		return nil, nil
	}
	monitoring.TrackCartOperation("checkout", "ok")
	return snapshot, m.doc.Save(ctx, m.items)
}

// Clear empties the cart without booking anything.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = nil
	return m.doc.Clear(ctx)
}

func (m *Manager) indexOf(id string) int {
	return slices.IndexFunc(m.items, func(it domain.CartItem) bool { return it.ID == id })
}

func total(items []domain.CartItem) int64 {
	var sum int64
	for _, it := range items {
		sum += it.Price
	}
	return sum
}
