package invoice

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const lakh = 100000

// FormatLakh renders an amount in lakh with one decimal, as on the summary
// cards: 3545000 -> "35.5L".
func FormatLakh(amount int64) string {
	return fmt.Sprintf("%.1fL", float64(amount)/lakh)
}

var indianEnglish = language.MustParse("en-IN")

// FormatRupees renders an amount with Indian digit grouping and the rupee
// sign.
func FormatRupees(amount int64) string {
	return "₹" + message.NewPrinter(indianEnglish).Sprint(number.Decimal(amount))
}
