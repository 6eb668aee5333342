package validation

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// IsBlank reports whether s is empty or whitespace only
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ParseOptionalInt parses s as an integer. Unparsable or empty input yields
// nil instead of an error.
func ParseOptionalInt(s string) *int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return nil
	}
	return &v
}

// ParseOptionalDecimal parses s as a decimal number. Unparsable or empty
// input yields an invalid NullDecimal instead of an error.
func ParseOptionalDecimal(s string) decimal.NullDecimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
