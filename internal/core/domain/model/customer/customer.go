package customer

import (
	"errors"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

// Domain errors for customer operations.
var (
	// ErrIDIsRequired is returned when attempting to create a customer
	// without an identity.
	ErrIDIsRequired = errs.NewValueIsRequiredError("id")
	// ErrNameIsRequired is returned when attempting to create a customer
	// without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrCustomerIsNotConstructed is returned when using an improperly
	// initialized Customer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer is a named entity the ordering core references by identity only.
// Orders store the customer's opaque id and never reach into its fields;
// the one mutation a host workflow performs is recording the price of the
// customer's most recent order after checkout.
//
// There is no raw setter for the last order price: RecordOrderTotal is the
// only way to change it, keeping the mutation intention-revealing.
type Customer struct {
	// id is the opaque identity orders reference as customerID
	id string

	// name is the human-readable customer name
	name string

	// lastOrderPrice is the total of the most recent order, nil until one
	// has been recorded
	lastOrderPrice *kernel.Money

	// isConstructed ensures the customer was created via NewCustomer
	isConstructed bool
}

// NewCustomer creates a Customer with the given opaque identity and name.
// Both must be non-blank; validation failures are aggregated.
func NewCustomer(id string, name string) (*Customer, error) {
	customer := &Customer{
		isConstructed: true,
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// Validate ensures the Customer was properly constructed through NewCustomer.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// IsEqual compares two customers by identity.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id == other.id
}

// ID returns the customer's opaque identity.
func (c *Customer) ID() string {
	return c.id
}

// Name returns the customer's name.
func (c *Customer) Name() string {
	return c.name
}

// LastOrderPrice returns the total of the most recently recorded order.
// Returns nil until RecordOrderTotal has been called.
func (c *Customer) LastOrderPrice() *kernel.Money {
	if c.lastOrderPrice == nil {
		return nil
	}
	price := *c.lastOrderPrice
	return &price
}

// RecordOrderTotal stores the given order total as the customer's last order
// price, replacing any previously recorded value. The total must be a
// constructed Money.
func (c *Customer) RecordOrderTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}

	c.lastOrderPrice = &total
	return nil
}

func (c *Customer) setID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrIDIsRequired
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
