package order

import (
	"errors"
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions:
//
//	PENDING ──> CONFIRMED ──> SHIPPED
//	   │            │
//	   └────────────┴──────> CANCELED
//
// SHIPPED and CANCELED are terminal; no transition leaves them.
// Status is a value object that validates state transitions and provides
// string representations for display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created order.
	Pending

	// Confirmed indicates the order has been confirmed and may be shipped.
	Confirmed

	// Shipped indicates the order left fulfillment. Terminal.
	Shipped

	// Canceled indicates the order was canceled before shipping. Terminal.
	Canceled
)

var (
	// ErrInvalidStateTransition is the sentinel error for confirm/ship/cancel
	// attempted from a disallowed current status.
	ErrInvalidStateTransition = errors.New("invalid state transition")

	// ErrAddItemNotAllowed is the sentinel error for item addition attempted
	// while the order is no longer open.
	ErrAddItemNotAllowed = errors.New("cannot add item to a closed order")
)

// InvalidStateTransitionError reports a transition attempted from a status
// that does not allow it. The message names the offending current status.
type InvalidStateTransitionError struct {
	Operation string
	Current   Status
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError for
// the given operation and current status.
func NewInvalidStateTransitionError(operation string, current Status) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{
		Operation: operation,
		Current:   current,
	}
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s order in status %s", ErrInvalidStateTransition, e.Operation, e.Current)
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// AddItemNotAllowedError reports an item addition attempted while the order
// was in a terminal status.
type AddItemNotAllowedError struct {
	Current Status
}

// NewAddItemNotAllowedError creates an AddItemNotAllowedError carrying the
// offending current status.
func NewAddItemNotAllowedError(current Status) *AddItemNotAllowedError {
	return &AddItemNotAllowedError{
		Current: current,
	}
}

func (e *AddItemNotAllowedError) Error() string {
	return fmt.Sprintf("%s: order is %s", ErrAddItemNotAllowed, e.Current)
}

func (e *AddItemNotAllowedError) Unwrap() error {
	return ErrAddItemNotAllowed
}

// getStatusStrings returns a map of Status values to their string
// representations, including the Unknown guard value.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Shipped:   "SHIPPED",
		Canceled:  "CANCELED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "PENDING",
		Confirmed: "CONFIRMED",
		Shipped:   "SHIPPED",
		Canceled:  "CANCELED",
	}
}

// Validate checks if the Status value is one of the four defined states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the display name of the status ("PENDING", "CONFIRMED",
// "SHIPPED", or "CANCELED"), or "UNKNOWN" for invalid values.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsOpen reports whether the status still permits item addition.
// Open statuses are Pending and Confirmed.
func (s Status) IsOpen() bool {
	return s == Pending || s == Confirmed
}

// IsTerminal reports whether no further transition leaves the status.
// Terminal statuses are Shipped and Canceled.
func (s Status) IsTerminal() bool {
	return s == Shipped || s == Canceled
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed
//
// Returns (Unknown, *InvalidStateTransitionError) from any other status.
// The error message cites the current status.
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return Unknown, NewInvalidStateTransitionError("confirm", s)
	}
	return Confirmed, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Confirmed -> Shipped
//
// Returns (Unknown, *InvalidStateTransitionError) from any other status,
// including Pending: an order must be confirmed before it ships.
func (s Status) Ship() (Status, error) {
	if s != Confirmed {
		return Unknown, NewInvalidStateTransitionError("ship", s)
	}
	return Shipped, nil
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Pending -> Canceled
//   - Confirmed -> Canceled
//
// Shipped and Canceled orders cannot be canceled; the transition fails with
// *InvalidStateTransitionError citing the current status.
func (s Status) Cancel() (Status, error) {
	if !s.IsOpen() {
		return Unknown, NewInvalidStateTransitionError("cancel", s)
	}
	return Canceled, nil
}
