// Package account provides domain entities and business logic for marketplace
// identities. It implements the Account aggregate root with the shipper
// approval gate and the compensating role transitions triggered by shop
// verification.
//
// The package includes:
//   - Account: The aggregate root that manages identity, role, and standing
//   - Role: The privilege level vocabulary (CUSTOMER, SELLER, SHIPPER, ADMIN)
//   - Status: The account standing vocabulary (ACTIVE, INACTIVE, BANNED)
//   - ApprovalStatus: The shipper enrollment state machine
//
// Key business rules:
//   - Approval status is meaningful only for the shipper role
//   - Shipper enrollment follows Pending -> Approved or Pending -> Rejected;
//     both outcomes are terminal
//   - Rejecting an enrollment reverts the role to customer and clears the
//     shipper-specific state
//   - A seller whose shop verification is rejected reverts to customer
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package account
