package booking

import (
	"hoodbook/internal/domain"
	"hoodbook/internal/pkg/money"
	"hoodbook/internal/pkg/qrcode"
)

type BookingResponse struct {
	domain.Booking
	PriceFormatted string `json:"price_formatted"`
	QRPayload      string `json:"qr_payload"`
}

type BookingListResponse struct {
	Bookings []BookingResponse  `json:"bookings"`
	Totals   domain.LedgerTotals `json:"totals"`
}

type QRResponse struct {
	BookingID string `json:"booking_id"`
	Payload   string `json:"payload"`
}

func ToBookingResponse(b domain.Booking) BookingResponse {
	return BookingResponse{
		Booking:        b,
		PriceFormatted: money.FormatMYR(b.Price),
		QRPayload:      qrcode.Encode(b.ID),
	}
}

func ToBookingResponses(list []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, ToBookingResponse(b))
	}
	return out
}
