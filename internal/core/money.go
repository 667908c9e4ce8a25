package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// IVARate is the Chilean value-added tax rate applied to purchase orders.
var IVARate = decimal.NewFromFloat(0.19)

// ParseAmount converts user input to a monetary amount. Thousands dots are
// tolerated ("1.190.000" is how Chileans type pesos); anything unparseable
// comes back as zero, matching how the forms treat bad numeric input.
func ParseAmount(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// FormatCLP renders an amount as integer Chilean pesos with dot thousands
// separators: 1190000 → "$1.190.000". CLP has no decimal subunit.
func FormatCLP(d decimal.Decimal) string {
	neg := d.IsNegative()
	digits := d.Abs().Round(0).String()

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte('.')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte('.')
		}
	}
	return b.String()
}
