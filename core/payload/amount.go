package payload

import (
	"fmt"
	"regexp"

	"golang.org/x/text/currency"
)

// Amount grammar: integer digits, decimal comma, exactly two fractional
// digits, no thousands separators.
var amountRe = regexp.MustCompile(`^[0-9]+,[0-9]{2}$`)

var currencyRe = regexp.MustCompile(`^[A-Z]{3}$`)

// SplitAmount decomposes a combined amount value like "RSD1000,00" into its
// currency code and numeric part, validating both. The currency must be a
// known uppercase ISO 4217 code; the numeric part must match the
// decimal-comma grammar.
func SplitAmount(value string) (code, amount string, err error) {
	if len(value) < 3 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidCurrency, value)
	}

	code, amount = value[:3], value[3:]
	if err := ValidateCurrency(code); err != nil {
		return "", "", err
	}
	if err := ValidateAmount(amount); err != nil {
		return "", "", err
	}

	return code, amount, nil
}

// ValidateCurrency checks that code is a three-letter uppercase ISO 4217
// currency code.
func ValidateCurrency(code string) error {
	if !currencyRe.MatchString(code) {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	if _, err := currency.ParseISO(code); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	return nil
}

// ValidateAmount checks the numeric part of an amount against the
// decimal-comma grammar.
func ValidateAmount(amount string) error {
	if !amountRe.MatchString(amount) {
		return fmt.Errorf("%w: %q", ErrInvalidAmountFormat, amount)
	}
	return nil
}
