package booking

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"hoodbook/internal/domain"
	"hoodbook/internal/monitoring"
	"hoodbook/internal/repository"
)

// Ledger is the durable list of confirmed bookings, most recent first.
// Bookings are never removed.
type Ledger struct {
	mu       sync.Mutex
	doc      *repository.Document[[]domain.Booking]
	bookings []domain.Booking
	now      func() time.Time
}

func NewLedger(ctx context.Context, state repository.StateStore) *Ledger {
	doc := repository.NewDocument[[]domain.Booking](state, repository.KeyBookings)
	return &Ledger{doc: doc, bookings: doc.Load(ctx, nil), now: time.Now}
}

// Confirm turns a cart snapshot into Paid bookings and prepends them in
// snapshot order. An item whose id is already in the ledger gets a random
// suffix so every QR payload resolves to exactly one booking.
func (l *Ledger) Confirm(ctx context.Context, snapshot []domain.CartItem) ([]domain.Booking, error) {
	if len(snapshot) == 0 {
		return nil, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	taken := make(map[string]bool, len(l.bookings)+len(snapshot))
	for _, b := range l.bookings {
		taken[b.ID] = true
	}

	createdAt := l.now().UTC()
	confirmed := make([]domain.Booking, 0, len(snapshot))
	for _, item := range snapshot {
		for taken[item.ID] {
			item.ID = uniqueID(item.ID)
		}
		taken[item.ID] = true

		confirmed = append(confirmed, domain.Booking{
			CartItem:  item,
			Status:    domain.BookingPaid,
			CheckedIn: false,
			CreatedAt: createdAt,
		})
	}

	l.bookings = append(slices.Clone(confirmed), l.bookings...)
	monitoring.TrackBookingsConfirmed(len(confirmed))
	return confirmed, l.doc.Save(ctx, l.bookings)
}

// CheckIn marks id as attended and refreshes its check-in time. found is
// false, and the ledger untouched, when id is unknown.
func (l *Ledger) CheckIn(ctx context.Context, id string) (b domain.Booking, found bool, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return domain.Booking{}, false, nil
	}

	at := l.now().UTC()
	l.bookings[i].CheckedIn = true
	l.bookings[i].CheckinAt = &at
	return l.bookings[i], true, l.doc.Save(ctx, l.bookings)
}

func (l *Ledger) Get(id string) (domain.Booking, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := l.indexOf(id)
	if i < 0 {
		return domain.Booking{}, false
	}
	return l.bookings[i], true
}

// List returns the bookings, most recent first.
func (l *Ledger) List() []domain.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.bookings)
}

func (l *Ledger) Totals() domain.LedgerTotals {
	l.mu.Lock()
	defer l.mu.Unlock()

	t := domain.LedgerTotals{Count: len(l.bookings)}
	for _, b := range l.bookings {
		t.Gross += b.Price
		if b.CheckedIn {
			t.CheckedIn++
		}
	}
	return t
}

func (l *Ledger) indexOf(id string) int {
	return slices.IndexFunc(l.bookings, func(b domain.Booking) bool { return b.ID == id })
}

func uniqueID(id string) string {
	base, _, _ := strings.Cut(id, "~")
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return base + "~" + suffix
}
