package recommendation

import (
	"strconv"
	"strings"
)

// RupeeSymbol prefixes every formatted amount.
const RupeeSymbol = "₹"

// FormatINR formats whole rupees with Indian digit grouping: the last three
// digits, then groups of two (₹12,34,567).
func FormatINR(rupees int64) string {
	sign := ""
	if rupees < 0 {
		sign = "-"
	}

	digits := strconv.FormatInt(rupees, 10)
	digits = strings.TrimPrefix(digits, "-")

	return sign + RupeeSymbol + groupIndian(digits)
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]

	var b strings.Builder
	lead := len(head) % 2
	if lead > 0 {
		b.WriteString(head[:lead])
	}
	for i := lead; i < len(head); i += 2 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(head[i : i+2])
	}
	b.WriteByte(',')
	b.WriteString(tail)
	return b.String()
}
