// Package shop provides domain entities and business logic for seller profiles
// on the marketplace. It implements the Shop aggregate root with the
// verification state machine.
//
// The package includes:
//   - Shop: The aggregate root that manages the seller profile and its review state
//   - VerificationStatus: A state machine enforcing the review workflow
//
// Key business rules:
//   - A shop owns exactly one account (1:1)
//   - Verification follows Unverified -> Pending -> Verified or Rejected
//   - Verified and Rejected are terminal states
//   - Rejecting a shop triggers a compensating role revert on the owning
//     account, coordinated by the application layer in the same transaction
package shop
