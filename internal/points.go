package internal

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/DrGermanius/receipt-points/internal/model"
)

var descriptionFactor = decimal.New(2, -1)

// CalculatePoints sums the scoring rules over a receipt. Each rule is
// evaluated on its own; contributions are never negative. The receipt is
// assumed to be well formed, validation happens before it is built.
func CalculatePoints(r model.Receipt) int64 {
	var points int64

	// One point for every alphanumeric character in the retailer name.
	for _, c := range r.Retailer {
		if isAlphanumeric(c) {
			points++
		}
	}

	// 50 points if the total is a round dollar amount with no cents.
	if r.Total.IsWholeDollar() {
		points += 50
	}

	// 25 points if the total is a multiple of 0.25.
	if r.Total.IsQuarterMultiple() {
		points += 25
	}

	// 5 points for every two items on the receipt.
	points += int64(len(r.Items)/2) * 5

	// If the trimmed description length is a multiple of 3, the item earns
	// its price times 0.2, rounded up to the next integer.
	for _, i := range r.Items {
		trimmed := strings.TrimSpace(i.ShortDescription)
		if utf8.RuneCountInString(trimmed)%3 == 0 {
			points += i.Price.ScaledCeilingPoints(descriptionFactor)
		}
	}

	// 6 points if the day of the purchase date is odd.
	if r.PurchaseDate.Day()%2 == 1 {
		points += 6
	}

	// 10 points for purchases strictly between 14:00 and 16:00.
	h, m := r.PurchaseTime.Hour(), r.PurchaseTime.Minute()
	if (h == 14 && m > 0) || h == 15 {
		points += 10
	}

	return points
}

func isAlphanumeric(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
