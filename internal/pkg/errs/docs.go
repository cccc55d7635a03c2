// Package errs provides standardized error types for the marketplace operations core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines the error taxonomy surfaced to API callers:
//   - ObjectNotFoundError: the target aggregate does not exist
//   - InvalidTransitionError: a state transition is not legal from the current status
//   - ForbiddenError: an authorization, ownership, or role check failed
//   - ValueIsInvalidError / ValueIsRequiredError: malformed payloads and status literals
//   - ConcurrencyConflictError: a concurrent write was detected by the store
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// The HTTP adapter maps the sentinels to response codes and never collapses
// them into a generic failure. Errors that match no sentinel are treated as
// internal and not exposed to callers.
package errs
