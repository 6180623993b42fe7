package order

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method. This ensures all orders
	// are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCustomerIDIsRequired is returned when the customer identity is blank.
	ErrCustomerIDIsRequired = errs.NewValueIsRequiredError("customerID")
)

// Order is the aggregate root tracking a purchase from creation through
// fulfillment or cancellation. It owns an ordered collection of line items
// priced in a single currency fixed at construction, and it is the sole
// mutator of its state and the sole assembler of line items.
//
// Order maintains these invariants:
//   - status only ever takes one of the four defined values, starting PENDING
//   - customerID is never blank
//   - currency never changes after construction; all items share it
//   - the items list only grows, and only while the order is open
//   - status transitions follow the state machine with no skipped or reverse
//     transitions
//
// Order has no delete operation; it becomes logically terminal at SHIPPED or
// CANCELED. A single Order instance assumes single-writer, in-process use:
// it performs no locking of its own.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID references the customer the order belongs to
	customerID string

	// items is the ordered line-item collection; insertion order is
	// significant for display, not for totals
	items []*LineItem

	// orderedAt is the validated instant the order was placed
	orderedAt kernel.DateTime

	// currency is fixed at construction and shared by all items
	currency kernel.Currency

	// status is the current state in the order lifecycle
	status Status

	// ids generates identities for line items added to this order
	ids kernel.IDGenerator

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order in PENDING status with zero items.
// This is the only way to create a valid Order.
//
// Parameters:
//   - id: Unique identifier for the order (must be a valid UUID)
//   - customerID: Opaque customer identity (must be non-blank)
//   - currency: Currency for all line items (must be constructed)
//   - orderedAt: Validated order timestamp (must be constructed)
//   - ids: Generator for line-item identities; nil selects the default
//     random generator
//
// Example:
//
//	usd, _ := kernel.NewCurrency("USD")
//	ord, err := order.NewOrder(
//	    kernel.NewUUID(),
//	    "cust-1",
//	    usd,
//	    kernel.NewDateTimeNow(clk),
//	    nil,
//	)
//	if err != nil {
//	    // Handle validation error
//	}
func NewOrder(
	id kernel.UUID,
	customerID string,
	currency kernel.Currency,
	orderedAt kernel.DateTime,
	ids kernel.IDGenerator,
) (*Order, error) {
	if ids == nil {
		ids = kernel.NewRandomIDGenerator()
	}

	order := &Order{
		status:        Pending,
		ids:           ids,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setCurrency(currency),
		order.setOrderedAt(orderedAt),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder. This prevents bypassing validation by directly instantiating the
// struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the opaque identity of the owning customer.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Items returns the line items in insertion order.
// The returned slice is a copy; the aggregate's own collection cannot be
// modified through it.
func (o *Order) Items() []*LineItem {
	items := make([]*LineItem, len(o.items))
	copy(items, o.items)
	return items
}

// OrderedAt returns the instant the order was placed.
func (o *Order) OrderedAt() kernel.DateTime {
	return o.orderedAt
}

// Currency returns the order's currency.
func (o *Order) Currency() kernel.Currency {
	return o.currency
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// AddItem constructs a line item from the product identity, quantity, and
// unit price amount, and appends it to the order.
//
// The unit price Money is built in the order's currency, and the item
// identity comes from the order's injected generator.
//
// Failure conditions, checked in this priority order:
//  1. status not open (PENDING or CONFIRMED) -> *AddItemNotAllowedError
//     carrying the current status
//  2. blank product identity -> ErrProductIDIsRequired
//  3. non-positive quantity -> ValueIsInvalidError
//  4. negative unit price amount -> ValueIsInvalidError
//
// On failure the items collection is left untouched.
func (o *Order) AddItem(productID string, quantity int, unitPriceAmount decimal.Decimal) error {
	if !o.status.IsOpen() {
		return NewAddItemNotAllowedError(o.status)
	}
	if strings.TrimSpace(productID) == "" {
		return ErrProductIDIsRequired
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	unitPrice, err := kernel.NewMoney(unitPriceAmount, o.currency)
	if err != nil {
		return err
	}

	item, err := NewLineItem(o.ids.NewID(), o.id, productID, quantity, unitPrice)
	if err != nil {
		return err
	}

	o.items = append(o.items, item)
	return nil
}

// Confirm moves the order from PENDING to CONFIRMED.
// Fails with *InvalidStateTransitionError from any other status, leaving the
// order unchanged.
func (o *Order) Confirm() error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Ship moves the order from CONFIRMED to SHIPPED, a terminal status.
// Fails with *InvalidStateTransitionError from any other status, leaving the
// order unchanged.
func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves the order from PENDING or CONFIRMED to CANCELED, a terminal
// status. Shipped and already-canceled orders cannot be canceled; the
// operation fails with *InvalidStateTransitionError, leaving the order
// unchanged.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// CalculateTotalAmount folds all line-item totals into a single Money value
// in the order's currency, starting from zero. Pure and side-effect-free;
// it never fails for a well-formed order because every item was built in the
// order's currency.
func (o *Order) CalculateTotalAmount() (kernel.Money, error) {
	total, err := kernel.NewZeroMoney(o.currency)
	if err != nil {
		return kernel.Money{}, err
	}

	for _, item := range o.items {
		itemTotal, err := item.CalculateItemTotal()
		if err != nil {
			return kernel.Money{}, err
		}
		total, err = total.Add(itemTotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return ErrCustomerIDIsRequired
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	o.currency = currency
	return nil
}

func (o *Order) setOrderedAt(orderedAt kernel.DateTime) error {
	if err := orderedAt.Validate(); err != nil {
		return err
	}
	o.orderedAt = orderedAt
	return nil
}
