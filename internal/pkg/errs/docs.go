// Package errs provides the typed errors shared by the domain, application and adapter layers.
//
// Every error type follows the same shape:
//   - a sentinel (e.g. ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the details, reachable with errors.As
//   - a constructor with and without a cause
//   - Unwrap returning the sentinel
//
// Adapters map the sentinels to transport codes: ErrObjectNotFound to 404,
// ErrInvalidTransition and ErrObjectAlreadyExists to 409, the value errors to 400.
package errs
