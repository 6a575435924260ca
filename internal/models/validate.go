package models

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// Accepted phone formats: international ("+12345678901") or
// dashed US-style ("123-456-7890").
var phonePattern = regexp.MustCompile(`^(\+\d{10,15}|\d{3}-\d{3}-\d{4})$`)

// ValidatePhone reports whether the phone number is acceptable.
// An empty phone is valid since the field is optional.
func ValidatePhone(phone string) bool {
	if phone == "" {
		return true
	}
	return phonePattern.MatchString(phone)
}

// ValidatePrice reports whether the price is strictly positive.
func ValidatePrice(price decimal.Decimal) bool {
	return price.IsPositive()
}

// ValidateStock reports whether the stock level is non-negative.
func ValidateStock(stock int) bool {
	return stock >= 0
}
