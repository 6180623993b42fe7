package kernel

import (
	"errors"
	"fmt"
	"time"

	"ordering/internal/pkg/clock"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var (
	// ErrDateTimeInFuture is returned when a supplied timestamp lies after the
	// injected clock's current instant.
	ErrDateTimeInFuture = errors.New("date-time must not be in the future")

	// ErrDateTimeIsNotConstructed is returned when using an improperly
	// initialized DateTime.
	ErrDateTimeIsNotConstructed = errs.NewValueIsRequiredError(
		"date-time must be created via NewDateTime, NewDateTimeNow, or DateTimeFromString constructors")
)

// DateTime is an immutable, validated point in time, normalized to UTC.
// Construction takes a clock.Clock so the not-in-the-future check stays
// deterministic under test.
//
// The zero value of DateTime is invalid and must be constructed via one of
// the constructor functions.
type DateTime struct {
	value time.Time
	guard guard.ConstructorGuard
}

// NewDateTime creates a DateTime from the given instant.
// Fails with ErrDateTimeInFuture when the instant lies after clk.Now().
func NewDateTime(value time.Time, clk clock.Clock) (DateTime, error) {
	if value.After(clk.Now()) {
		return DateTime{}, fmt.Errorf("%w: %s", ErrDateTimeInFuture, value.UTC().Format(time.RFC3339))
	}

	return DateTime{
		value: value.UTC(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// NewDateTimeNow creates a DateTime holding the clock's current instant.
// Covers callers that omit an explicit timestamp.
func NewDateTimeNow(clk clock.Clock) DateTime {
	return DateTime{
		value: clk.Now().UTC(),
		guard: guard.NewConstructorGuard(),
	}
}

// DateTimeFromString parses an RFC 3339 timestamp and validates it against
// the clock. Unparsable input fails with a ValueIsInvalidError.
func DateTimeFromString(value string, clk clock.Clock) (DateTime, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return DateTime{}, errs.NewValueIsInvalidErrorWithCause("date-time", err)
	}
	return NewDateTime(parsed, clk)
}

// Validate checks if the DateTime was properly constructed.
func (d DateTime) Validate() error {
	return d.guard.Validate(ErrDateTimeIsNotConstructed)
}

// Time returns the underlying UTC instant.
func (d DateTime) Time() time.Time {
	return d.value
}

// IsEqual compares two DateTimes by instant.
func (d DateTime) IsEqual(other DateTime) bool {
	return d.value.Equal(other.value)
}

// String returns the RFC 3339 rendering of the instant.
func (d DateTime) String() string {
	return d.value.Format(time.RFC3339)
}
