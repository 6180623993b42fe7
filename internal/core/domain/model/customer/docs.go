// Package customer provides the Customer entity, an external collaborator of
// the order aggregate. Orders reference customers by opaque identity only;
// the single mutation is recording the total of the customer's most recent
// order through an intention-revealing method.
package customer
