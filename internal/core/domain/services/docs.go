// Package services contains domain services of the ordering system:
// operations that span more than one aggregate and therefore belong to
// neither. CheckoutService records a finished order's total on its customer.
package services
