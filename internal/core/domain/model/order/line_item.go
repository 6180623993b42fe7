package order

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrLineItemIsNotConstructed is returned when a LineItem was not created
	// through the NewLineItem factory method.
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

	// ErrProductIDIsRequired is returned when a product identity is blank.
	ErrProductIDIsRequired = errs.NewValueIsRequiredError("productID")
)

// LineItem is one product/quantity/price entry within an order.
// It is immutable after construction and never exists independent of the
// order identity captured at construction time: the owning Order is the only
// component that assembles line items.
//
// Invariants:
//   - quantity is strictly positive
//   - the item identity is generated once and never changes
//   - the derived total is unitPrice × quantity in the unit price's currency
type LineItem struct {
	// id uniquely identifies the line item
	id kernel.UUID

	// orderID references the owning order aggregate
	orderID kernel.UUID

	// productID is the opaque identity of the purchased product
	productID string

	// quantity is the number of units purchased (always > 0)
	quantity int

	// unitPrice is the price of a single unit
	unitPrice kernel.Money

	// guard ensures the line item was created via NewLineItem
	guard guard.ConstructorGuard
}

// NewLineItem creates a line item bound to its owning order.
// All parameters are validated; failures are aggregated into a single error.
//
// Parameters:
//   - id: Unique identity for the item, generated by the owning order
//   - orderID: Identity of the owning order
//   - productID: Opaque, non-blank product identity
//   - quantity: Number of units (must be greater than 0)
//   - unitPrice: Price of a single unit (must be a constructed Money)
func NewLineItem(
	id kernel.UUID,
	orderID kernel.UUID,
	productID string,
	quantity int,
	unitPrice kernel.Money,
) (*LineItem, error) {
	item := &LineItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderID(orderID),
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the LineItem was properly constructed through NewLineItem.
func (i *LineItem) Validate() error {
	if i == nil {
		return ErrLineItemIsNotConstructed
	}
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// IsEqual compares two line items by their unique identifiers.
func (i *LineItem) IsEqual(other *LineItem) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the line item's unique identifier.
func (i *LineItem) ID() kernel.UUID {
	return i.id
}

// OrderID returns the identity of the owning order.
func (i *LineItem) OrderID() kernel.UUID {
	return i.orderID
}

// ProductID returns the opaque product identity.
func (i *LineItem) ProductID() string {
	return i.productID
}

// Quantity returns the number of units purchased.
func (i *LineItem) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price of a single unit.
func (i *LineItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// CalculateItemTotal returns unitPrice × quantity in the unit price's
// currency. Pure and side-effect-free; never fails for a validly constructed
// item since quantity is always positive.
func (i *LineItem) CalculateItemTotal() (kernel.Money, error) {
	return i.unitPrice.Multiply(decimal.NewFromInt(int64(i.quantity)))
}

func (i *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *LineItem) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	i.orderID = orderID
	return nil
}

func (i *LineItem) setProductID(productID string) error {
	if strings.TrimSpace(productID) == "" {
		return ErrProductIDIsRequired
	}
	i.productID = productID
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
