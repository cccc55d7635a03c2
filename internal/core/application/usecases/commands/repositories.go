// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// authorization, domain transition, and persistence.
package commands

import (
	"context"

	"marketplace/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// AccountRepoFactory provides access to the account repository within a transaction.
	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	// ShopRepoFactory provides access to the shop repository within a transaction.
	ShopRepoFactory interface {
		ShopRepository() ports.ShopRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// ComplaintRepoFactory provides access to the complaint repository within a transaction.
	ComplaintRepoFactory interface {
		ComplaintRepository() ports.ComplaintRepository
	}

	// AccountUoW manages transactions for account-only operations
	// (shipper enrollment review).
	AccountUoW interface {
		TxManager
		AccountRepoFactory
	}

	// AccountUoWFactory creates new account unit of work instances.
	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// ShopReviewUoW manages transactions spanning a shop and its owning
	// account. Used by the shop verification review: the shop decision and
	// the compensating role revert commit together.
	ShopReviewUoW interface {
		TxManager
		ShopRepoFactory
		AccountRepoFactory
	}

	// ShopReviewUoWFactory creates new shop review unit of work instances.
	ShopReviewUoWFactory interface {
		Create() ShopReviewUoW
	}

	// FulfillmentUoW manages transactions spanning a shipment, its owning
	// order, and the carrier account read for authorization. The shipment
	// mutation and the order cascade commit together.
	FulfillmentUoW interface {
		TxManager
		ShipmentRepoFactory
		OrderRepoFactory
		AccountRepoFactory
	}

	// FulfillmentUoWFactory creates new fulfillment unit of work instances.
	FulfillmentUoWFactory interface {
		Create() FulfillmentUoW
	}

	// ComplaintUoW manages transactions for complaint operations.
	ComplaintUoW interface {
		TxManager
		ComplaintRepoFactory
	}

	// ComplaintUoWFactory creates new complaint unit of work instances.
	ComplaintUoWFactory interface {
		Create() ComplaintUoW
	}
)
