// Package shipment provides domain entities for parcels routed to carriers.
// It implements the Shipment aggregate root with the carrier status state
// machine and the carrier assignment used for authorization.
//
// The package includes:
//   - Shipment: The aggregate root owning status, tracking, and party snapshots
//   - Status: The carrier status vocabulary with strict parsing and terminal states
//   - Party: Immutable sender/recipient snapshots taken at routing time
//
// Key business rules:
//   - A shipment is created Pending when routed to a carrier
//   - Delivered, Failed, and Returned are terminal states
//   - Only the assigned carrier may mutate the shipment (enforced by the
//     application layer before any mutation)
//   - Status changes cascade into the owning order via the fulfillment
//     cascade domain service, atomically with the shipment's own update
package shipment
