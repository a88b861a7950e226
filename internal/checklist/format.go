package checklist

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatWon renders a won amount with thousands separators, e.g.
// 1234567 -> "1,234,567원".
func FormatWon(amount int64) string {
	return humanize.Comma(amount) + "원"
}

// FormatWonRange renders a CostRange, e.g. "150,000원 ~ 300,000원".
func FormatWonRange(r CostRange) string {
	return fmt.Sprintf("%s ~ %s", FormatWon(r.Min), FormatWon(r.Max))
}
