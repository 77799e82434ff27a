package payload

import "errors"

var (
	// ErrMissingRequiredField is returned when a required field resolves to an
	// empty value. The wrapped message names the field key.
	ErrMissingRequiredField = errors.New("missing required field")

	// ErrInvalidAmountFormat is returned when an amount value does not match
	// the grammar: integer digits, a comma, exactly two fractional digits.
	ErrInvalidAmountFormat = errors.New("invalid amount format")

	// ErrInvalidCurrency is returned when the currency prefix of an amount is
	// not a known three-letter uppercase ISO 4217 code.
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrIllegalCharacter is returned when a resolved value contains a payload
	// delimiter. The grammar defines no escaping, so such values are rejected
	// rather than corrupted.
	ErrIllegalCharacter = errors.New("value contains payload delimiter")
)
