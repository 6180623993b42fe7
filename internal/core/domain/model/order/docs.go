// Package order provides the Order aggregate root of the ordering domain,
// its line items, and the lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root owning line items, a currency, a customer
//     reference, a timestamp, and a lifecycle status
//   - LineItem: an immutable product/quantity/price entry with a derived total
//   - Status: a state machine enforcing valid lifecycle transitions
//
// Key business rules:
//   - Orders start PENDING with zero items
//   - Status follows PENDING -> CONFIRMED -> SHIPPED, with cancellation
//     allowed from PENDING or CONFIRMED; SHIPPED and CANCELED are terminal
//   - Items can only be added while the order is open (PENDING or CONFIRMED)
//     and all items share the order's currency
//   - The total amount is a pure fold of line-item totals
//
// The package follows Domain-Driven Design principles: rich domain behavior,
// encapsulation through private fields, and constructor-enforced validation.
package order
