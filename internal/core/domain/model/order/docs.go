// Package order contains the Order aggregate root, its OrderItem value object,
// and the Status state machine that governs the fulfillment lifecycle.
//
// The lifecycle is a fixed graph (see Status). All mutations go through the
// aggregate so the invariants hold: total amount derived from the items, the
// status history append-only with its last entry matching the current status,
// and status changes restricted to the allowed edges.
package order
