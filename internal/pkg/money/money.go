package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMYR renders a whole-ringgit amount as "RM1,234.00".
func FormatMYR(amount int64) string {
	return Format(decimal.NewFromInt(amount))
}

// Format renders d in ringgit rounded half away from zero to sen, e.g.
// "RM1,234.50".
func Format(d decimal.Decimal) string {
	d = d.Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}

	whole, frac, _ := strings.Cut(d.StringFixed(2), ".")
	return sign + "RM" + groupThousands(whole) + "." + frac
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}
