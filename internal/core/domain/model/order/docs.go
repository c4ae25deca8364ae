// Package order provides domain entities and business logic for delivery
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid id, shop, destination, and non-negative payment amount
//   - Order status follows a strictly forward workflow: Pending -> Assigned -> Delivered
//   - Assignment records the courier and is allowed only while Pending
//   - Delivery confirmation is allowed only while Assigned; Delivered is terminal
//   - A courier reference exists exactly when the order is Assigned or Delivered
//
// Once a courier is dispatched, reverting state would misrepresent physical
// reality, so no backward transitions and no cancellation exist at the order
// level.
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
