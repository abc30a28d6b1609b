package booking

import (
	"strconv"
	"strings"
)

// NormalizePrice strips everything that is not a digit or a decimal point
// from a free-text price ("$1,250.50" → 1250.50) and parses the remainder.
// Input that strips to nothing yields ErrInvalidPrice.
func NormalizePrice(raw string) (float64, error) {
	var b strings.Builder
	for _, r := range raw {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}

	cleaned := b.String()
	if cleaned == "" {
		return 0, ErrInvalidPrice
	}

	price, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	return price, nil
}
