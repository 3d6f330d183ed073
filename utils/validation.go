package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidateRequired checks if a string field is not empty
func ValidateRequired(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(fmt.Sprintf("%s is required", fieldName))
	}
	return nil
}

// ValidatePositiveInt checks if an integer is at least 1
func ValidatePositiveInt(value int, fieldName string) error {
	if value <= 0 {
		return NewValidationError(fmt.Sprintf("%s must be positive", fieldName))
	}
	return nil
}

// ValidateNonNegative checks if a number is non-negative
func ValidateNonNegative(value float64, fieldName string) error {
	if value < 0 {
		return NewValidationError(fmt.Sprintf("%s cannot be negative", fieldName))
	}
	return nil
}

// ValidateNonNegativeDecimal checks if a money amount is non-negative
func ValidateNonNegativeDecimal(value decimal.Decimal, fieldName string) error {
	if value.IsNegative() {
		return NewValidationError(fmt.Sprintf("%s cannot be negative", fieldName))
	}
	return nil
}

// ValidateIndex checks that index addresses an element of a list of length n
func ValidateIndex(index, n int, fieldName string) error {
	if index < 0 || index >= n {
		return NewValidationError(fmt.Sprintf("%s %d out of range [0, %d)", fieldName, index, n))
	}
	return nil
}

// ValidateOneOf checks that value is one of the allowed options
func ValidateOneOf(value, fieldName string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return NewValidationError(fmt.Sprintf("%s must be one of %s", fieldName, strings.Join(allowed, ", ")))
}
