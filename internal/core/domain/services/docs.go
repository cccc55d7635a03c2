// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the marketplace operations
// core. It implements workflows that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - FulfillmentCascade: applies a shipment status change and propagates it
//     deterministically into the owning order's status axes
//
// Domain services coordinate between aggregates, implementing business logic
// that spans aggregate boundaries following Domain-Driven Design principles.
package services
