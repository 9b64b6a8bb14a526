// Package errs provides standardized error types shared across the dispatch
// application.
//
// Each error type follows the same pattern: a sentinel error variable for
// classification with errors.Is, a struct carrying the error details, a pair
// of constructors (with and without a cause), an Error method producing a
// single-line message, and an Unwrap method returning the sentinel.
//
// Business-rule conflicts (order not pending, partner already active, and so
// on) are not defined here; they live as sentinel errors next to the domain
// model or command that owns the rule.
package errs
