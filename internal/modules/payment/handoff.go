// Package payment composes the manual bank-transfer handoff: an itemized
// order summary sent to the academy over a WhatsApp deep link.
package payment

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"hoodbook/internal/domain"
	"hoodbook/internal/pkg/money"
)

const waBaseURL = "https://wa.me/"

type Line struct {
	ItemID string `json:"item_id"`
	Text   string `json:"text"`
	Price  int64  `json:"price"`
}

type BankDetails struct {
	BankName    string `json:"bank_name"`
	AccountName string `json:"account_name"`
	AccountNo   string `json:"account_no"`
	QRURL       string `json:"qr_url,omitempty"`
}

type Handoff struct {
	Lines          []Line      `json:"lines"`
	Total          int64       `json:"total"`
	TotalFormatted string      `json:"total_formatted"`
	Message        string      `json:"message"`
	WhatsAppURL    string      `json:"whatsapp_url"`
	Bank           BankDetails `json:"bank"`
}

// Compose builds the handoff for a cart snapshot. profile may be nil.
func Compose(snapshot []domain.CartItem, profile *domain.UserProfile, s domain.Settings) Handoff {
	lines := make([]Line, 0, len(snapshot))
	var total int64
	for _, it := range snapshot {
		total += it.Price
		lines = append(lines, Line{
			ItemID: it.ID,
			Text:   fmt.Sprintf("• %s — %s %s (%s) %s", it.Title, it.Date, it.Time, it.RoomName, money.FormatMYR(it.Price)),
			Price:  it.Price,
		})
	}

	msg := message(lines, total, profile)
	return Handoff{
		Lines:          lines,
		Total:          total,
		TotalFormatted: money.FormatMYR(total),
		Message:        msg,
		WhatsAppURL:    WhatsAppURL(s.WANumber, msg),
		Bank: BankDetails{
			BankName:    s.BankName,
			AccountName: s.AccountName,
			AccountNo:   s.AccountNo,
			QRURL:       s.QRURL,
		},
	}
}

func message(lines []Line, total int64, p *domain.UserProfile) string {
	if p == nil {
		p = &domain.UserProfile{}
	}

	var sb strings.Builder
	sb.WriteString("Hello THDA, I'd like to book:\n")
	for i, l := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(l.Text)
	}
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Total: %s\n", money.FormatMYR(total))
	fmt.Fprintf(&sb, "Name: %s\n", p.FullName)
	fmt.Fprintf(&sb, "Phone: %s\n", p.Phone)
	fmt.Fprintf(&sb, "Stage name: %s\n", orDash(p.StageName))
	fmt.Fprintf(&sb, "Email: %s\n", orDash(p.Email))
	fmt.Fprintf(&sb, "IG: %s\n", orDash(p.Instagram))
	fmt.Fprintf(&sb, "Emergency: %s", orDash(p.EmergencyContact))
	return sb.String()
}

// WhatsAppURL builds https://wa.me/{digits}?text={message}. wa.me only
// accepts the digits of the number, so "+" and separators are dropped.
func WhatsAppURL(number, text string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, number)
	return waBaseURL + digits + "?text=" + strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
