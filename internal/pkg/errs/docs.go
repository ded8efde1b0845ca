// Package errs provides standardized error types for the parcel application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the four failure classes the domain distinguishes:
//   - ObjectNotFoundError: a shipment, payout, user, or status is absent when required
//   - ValueIsInvalidError / ValueIsRequiredError: the caller supplied bad input
//   - DomainViolationError: a business rule was broken (e.g. a courier-only
//     operation invoked against a non-courier user)
//   - ConfigurationError: a required baseline catalog row is missing, which is
//     a deployment defect rather than a request-time error
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is matches the sentinel
//
// The core performs no retries and never swallows failures; every error carries
// enough context (parameter name, identifier, attempted status name) to log and
// to construct an actionable message at the boundary layer.
package errs
