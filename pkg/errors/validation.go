package errors

// Numeric field validation helpers shared by the CLI, the HTTP API, and the
// calculation request types. Each returns an INVALID_INPUT error naming the
// offending field so messages stay consistent across entry points.

// ValidatePositive checks that value is strictly greater than zero.
func ValidatePositive(field string, value float64) error {
	if value <= 0 {
		return New(ErrCodeInvalidInput, "%s must be greater than 0, got %g", field, value)
	}
	return nil
}

// ValidateNonNegative checks that value is zero or greater.
func ValidateNonNegative(field string, value float64) error {
	if value < 0 {
		return New(ErrCodeInvalidInput, "%s must not be negative, got %g", field, value)
	}
	return nil
}

// ValidateRange checks that value lies within [min, max] inclusive.
func ValidateRange(field string, value, min, max float64) error {
	if value < min || value > max {
		return New(ErrCodeInvalidInput, "%s must be between %g and %g, got %g", field, min, max, value)
	}
	return nil
}
