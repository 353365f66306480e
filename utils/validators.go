package utils

import (
	"fmt"
	"regexp"
	"strconv"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ParseCC validates an engine-displacement form value. Empty means the field
// was submitted blank.
func ParseCC(value string) (int, error) {
	cc, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("cc must be a whole number")
	}
	if cc < 0 {
		return 0, fmt.Errorf("cc must not be negative")
	}
	return cc, nil
}

// ParsePrice validates a price form value.
func ParsePrice(value string) (float64, error) {
	price, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("price must be a number")
	}
	if price < 0 {
		return 0, fmt.Errorf("price must not be negative")
	}
	return price, nil
}
