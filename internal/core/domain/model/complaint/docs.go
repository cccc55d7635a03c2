// Package complaint provides domain entities for dispute tracking.
// It implements the Complaint aggregate root with SLA deadline handling
// and the append-only message thread.
//
// The package includes:
//   - Complaint: The aggregate root owning status, SLA timestamps, and thread
//   - Message: An immutable thread entry with sender kind and attachments
//   - Category: The complaint classification that determines the SLA deadline
//   - Status: The lifecycle vocabulary with terminal states
//
// Key business rules:
//   - dueAt is fixed at creation as createdAt + SLA(category); unknown SLA
//     categories fall back to the documented 72h default
//   - The first admin message sets firstResponseAt exactly once
//   - Entering a terminal status sets resolvedAt if unset; reopening does
//     not clear it
//   - Overdue is derived on every read, never stored
package complaint
