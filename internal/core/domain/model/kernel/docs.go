// Package kernel contains the shared value objects of the ordering domain:
// UUID identifiers and their generators, Currency, Money, and validated
// DateTime instants.
//
// All types in this package are immutable value objects constructed through
// factory functions that enforce their invariants:
//   - UUID: non-nil identifier wrapping github.com/google/uuid
//   - Currency: 3-letter uppercase code with locale-aware amount formatting
//   - Money: non-negative decimal amount bound to a Currency; arithmetic
//     composes only across equal currencies
//   - DateTime: UTC instant that must not lie in the future of the injected
//     clock
//
// Zero values of these types are invalid; every type exposes Validate to
// detect objects that bypassed their constructor.
package kernel
