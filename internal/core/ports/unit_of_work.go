package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
//
// Every state transition in the core is a read-check-write sequence inside
// one unit of work: the shipment mutation and its order cascade, or the shop
// decision and the owning account's role revert, commit or roll back
// together. Partial application is a correctness bug.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// AccountRepository returns an AccountRepository bound to the current transaction.
	AccountRepository() AccountRepository

	// ShopRepository returns a ShopRepository bound to the current transaction.
	ShopRepository() ShopRepository

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// ShipmentRepository returns a ShipmentRepository bound to the current transaction.
	ShipmentRepository() ShipmentRepository

	// ComplaintRepository returns a ComplaintRepository bound to the current transaction.
	ComplaintRepository() ComplaintRepository
}
