package kernel

import (
	"errors"
	"fmt"
	"regexp"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale is the baseline locale used by FormatAmount when no locale is
// supplied or when the supplied locale cannot be parsed.
const DefaultLocale = "en-US"

// currencyCodePattern matches ISO-4217-shaped codes: exactly three uppercase
// ASCII letters. Codes are not checked against a real-world currency registry.
var currencyCodePattern = regexp.MustCompile(`^[A-Z]{3}$`)

var (
	// ErrCurrencyCodeIsInvalid is returned when a currency code is not exactly
	// three uppercase letters.
	ErrCurrencyCodeIsInvalid = errors.New("currency code must be exactly 3 uppercase letters")

	// ErrCurrencyIsNotConstructed is returned when using an improperly
	// initialized Currency.
	ErrCurrencyIsNotConstructed = errs.NewValueIsRequiredError("currency must be created via NewCurrency constructor")
)

// Currency is an immutable value object holding a validated 3-letter currency
// code. Two currencies are equal when their codes are equal.
//
// The zero value of Currency is invalid and must be constructed via
// NewCurrency.
//
// Example:
//
//	usd, err := kernel.NewCurrency("USD")
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Println(usd) // Output: USD
type Currency struct {
	code  string
	guard guard.ConstructorGuard
}

// NewCurrency creates a Currency from a 3-letter uppercase alphabetic code.
// Only the shape of the code is validated; "ZZZ" is accepted even though no
// such real currency exists.
func NewCurrency(code string) (Currency, error) {
	if !currencyCodePattern.MatchString(code) {
		return Currency{}, fmt.Errorf("%w: %q", ErrCurrencyCodeIsInvalid, code)
	}

	return Currency{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Currency was properly constructed.
func (c Currency) Validate() error {
	return c.guard.Validate(ErrCurrencyIsNotConstructed)
}

// Code returns the bare 3-letter currency code.
func (c Currency) Code() string {
	return c.code
}

// String returns the bare code, implementing fmt.Stringer.
func (c Currency) String() string {
	return c.code
}

// IsEqual compares two currencies by code.
func (c Currency) IsEqual(other Currency) bool {
	return c.code == other.code
}

// FormatAmount renders the amount as a locale- and currency-aware display
// string. An empty or unparsable locale falls back to DefaultLocale. Codes
// that exist in the ISO registry render with their symbol (e.g. "$ 100.00"
// for USD under en-US); synthetic codes fall back to "CODE <amount>" with
// locale-aware number formatting.
//
// FormatAmount is a pure display helper with no side effects; it is not part
// of the domain's decision logic.
func (c Currency) FormatAmount(amount decimal.Decimal, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	printer := message.NewPrinter(tag)

	if unit, err := currency.ParseISO(c.code); err == nil {
		return printer.Sprintf("%v", currency.Symbol(unit.Amount(amount.InexactFloat64())))
	}

	return printer.Sprintf("%s %v", c.code, number.Decimal(
		amount.InexactFloat64(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
