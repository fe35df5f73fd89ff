package domain

import "time"

// DateLayout is the calendar date format used in cart item ids and bookings.
const DateLayout = "2006-01-02"

type BookingStatus string

const (
	BookingPaid BookingStatus = "Paid"
)

// CartItem is a selected session pending checkout. Title, price, room and
// customer fields are copied from the catalog and profile when the item is added.
type CartItem struct {
	ID       string `json:"id"`
	ClassID  string `json:"class_id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Price    int64  `json:"price"`
	RoomName string `json:"room_name"`
	Customer string `json:"customer"`
	Phone    string `json:"phone"`
}

// CartItemID builds the deterministic item id {classId}_{date}_{slot}.
func CartItemID(classID string, date time.Time, slot string) string {
	return classID + "_" + date.Format(DateLayout) + "_" + slot
}

type Booking struct {
	CartItem

	Status    BookingStatus `json:"status"`
	CheckedIn bool          `json:"checked_in"`
	CreatedAt time.Time     `json:"created_at"`
	CheckinAt *time.Time    `json:"checkin_at,omitempty"`
}

type LedgerTotals struct {
	Count     int   `json:"count"`
	Gross     int64 `json:"gross"`
	CheckedIn int   `json:"checked_in"`
}
