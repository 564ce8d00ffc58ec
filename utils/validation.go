// utils/validation.go
package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrPriceMissing = errors.New("price is required")

// ParsePrice parses a non-negative decimal price. When lenient is set, an
// empty or malformed value yields 0 instead of an error; a negative value is
// rejected either way.
func ParsePrice(raw string, lenient bool) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if lenient {
			return 0, nil
		}
		return 0, ErrPriceMissing
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		if lenient {
			return 0, nil
		}
		return 0, fmt.Errorf("price %q is not a number", raw)
	}
	if price < 0 {
		return 0, fmt.Errorf("price must not be negative")
	}
	return price, nil
}
