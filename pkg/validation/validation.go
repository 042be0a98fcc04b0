package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var decimalRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// IsDecimalNumber reports whether s is a plain decimal number such as "-23.5" or "1e3".
// Hex floats, Inf and NaN are rejected.
func IsDecimalNumber(s string) bool {
	return decimalRegex.MatchString(strings.TrimSpace(s))
}

// ParseDecimal parses a decimal number string into a finite float64
func ParseDecimal(s string) (float64, bool) {
	if !IsDecimalNumber(s) {
		return 0, false
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, false
	}
	return value, true
}
