package services

import (
	"ordering/internal/core/domain/model/customer"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// CheckoutService is a domain service orchestrating the step that follows an
// order's lifecycle but belongs to neither aggregate: computing the order's
// total and recording it as the customer's last order price.
//
// The service holds no state and performs no locking; callers in a
// concurrent host must serialize access to the order and customer involved.
//
// Example usage:
//
//	checkout := services.NewCheckoutService()
//	total, err := checkout.RecordOrderTotal(ord, cust)
//	if err != nil {
//	    // Handle failure; neither order nor customer was mutated
//	}
//	fmt.Println(total.Format(kernel.DefaultLocale))
type CheckoutService struct{}

// NewCheckoutService creates a new CheckoutService instance.
func NewCheckoutService() CheckoutService {
	return CheckoutService{}
}

// RecordOrderTotal computes the order's total amount and stores it on the
// customer via Customer.RecordOrderTotal. Returns the computed total.
//
// Both the order and the customer must be properly constructed. The order is
// not mutated; on any failure the customer is left unchanged as well.
func (s CheckoutService) RecordOrderTotal(ord *order.Order, cust *customer.Customer) (kernel.Money, error) {
	if err := ord.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if err := cust.Validate(); err != nil {
		return kernel.Money{}, err
	}

	total, err := ord.CalculateTotalAmount()
	if err != nil {
		return kernel.Money{}, err
	}

	if err := cust.RecordOrderTotal(total); err != nil {
		return kernel.Money{}, err
	}

	return total, nil
}
