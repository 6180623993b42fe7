package kernel

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrCurrencyMismatch is returned when arithmetic is attempted across two
	// different currencies. No implicit conversion is ever performed.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrMoneyIsNotConstructed is returned when using an improperly
	// initialized Money.
	ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or NewZeroMoney constructors")
)

// Money is an immutable value object binding a non-negative decimal amount to
// a Currency. Every arithmetic operation returns a new instance; an operation
// that would produce a negative amount or mix currencies fails instead.
//
// The zero value of Money is invalid and must be constructed via NewMoney or
// NewZeroMoney.
//
// Example:
//
//	usd, _ := kernel.NewCurrency("USD")
//	price, err := kernel.NewMoney(decimal.NewFromInt(100), usd)
//	if err != nil {
//	    // Handle validation error
//	}
//	total, _ := price.Multiply(decimal.NewFromInt(2))
//	fmt.Println(total) // Output: 200.00 USD
type Money struct {
	amount   decimal.Decimal
	currency Currency
	guard    guard.ConstructorGuard
}

// NewMoney creates a Money with the given amount and currency.
// The amount must not be negative and the currency must be a constructed
// Currency value.
func NewMoney(amount decimal.Decimal, cur Currency) (Money, error) {
	if err := cur.Validate(); err != nil {
		return Money{}, err
	}
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount),
		)
	}

	return Money{
		amount:   amount,
		currency: cur,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// NewZeroMoney creates a zero amount in the given currency.
// Useful as the seed of total-amount folds.
func NewZeroMoney(cur Currency) (Money, error) {
	return NewMoney(decimal.Zero, cur)
}

// Validate checks if the Money was properly constructed.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency the amount is bound to.
func (m Money) Currency() Currency {
	return m.currency
}

// Add returns a new Money with the summed amount.
// Both operands must be constructed and carry the same currency; otherwise
// the operation fails with ErrCurrencyMismatch and no value is produced.
func (m Money) Add(other Money) (Money, error) {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return Money{}, err
	}
	if !m.currency.IsEqual(other.currency) {
		return Money{}, fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.currency, other.currency)
	}

	return Money{
		amount:   m.amount.Add(other.amount),
		currency: m.currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Multiply returns a new Money with the amount scaled by factor, in the same
// currency. The factor must not be negative, keeping the non-negativity
// invariant intact.
func (m Money) Multiply(factor decimal.Decimal) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	if factor.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"factor",
			fmt.Errorf("%s is negative", factor),
		)
	}

	return Money{
		amount:   m.amount.Mul(factor),
		currency: m.currency,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// IsEqual compares two Money values by amount and currency.
func (m Money) IsEqual(other Money) bool {
	return m.currency.IsEqual(other.currency) && m.amount.Equal(other.amount)
}

// String returns a plain "123.45 CODE" rendering with two fraction digits.
// For locale-aware display use Format.
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(2), m.currency)
}

// Format renders the amount for the given locale via the currency's
// FormatAmount.
func (m Money) Format(locale string) string {
	return m.currency.FormatAmount(m.amount, locale)
}
