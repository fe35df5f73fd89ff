// Package checkin turns scanned QR text into attendance on the booking ledger.
package checkin

import (
	"context"
	"errors"
	"log"

	"hoodbook/internal/domain"
	"hoodbook/internal/monitoring"
	"hoodbook/internal/pkg/qrcode"
	"hoodbook/internal/repository"
)

// Scan outcomes.
const (
	ResultApplied   = "applied"
	ResultIgnored   = "ignored"
	ResultMalformed = "malformed"
)

type Ledger interface {
	CheckIn(ctx context.Context, id string) (domain.Booking, bool, error)
}

type ScanResult struct {
	Result    string          `json:"result"`
	BookingID string          `json:"booking_id,omitempty"`
	Booking   *domain.Booking `json:"booking,omitempty"`
}

// Verifier handles one scan at a time; scans are independent of each other.
type Verifier struct {
	ledger Ledger
}

func NewVerifier(ledger Ledger) *Verifier {
	return &Verifier{ledger: ledger}
}

// Scan decodes text and checks the booking in. Unreadable payloads are
// reported as malformed and unknown ids as ignored; neither touches the ledger.
func (v *Verifier) Scan(ctx context.Context, text string) ScanResult {
	id, ok := qrcode.Decode(text)
	if !ok {
		monitoring.TrackScan(ResultMalformed)
		return ScanResult{Result: ResultMalformed}
	}

	b, found, err := v.ledger.CheckIn(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrStoreUnavailable) {
		log.Printf("checkin_failed booking_id=%s error=%q", id, err.Error())
	}
	if !found {
		monitoring.TrackScan(ResultIgnored)
		return ScanResult{Result: ResultIgnored, BookingID: id}
	}

	monitoring.TrackScan(ResultApplied)
	log.Printf("checkin_applied booking_id=%s", id)
	return ScanResult{Result: ResultApplied, BookingID: id, Booking: &b}
}
