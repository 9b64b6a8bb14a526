// Package order contains the Order aggregate and its lifecycle state machine.
// The aggregate enforces every per-order invariant: frozen pricing, legal
// status transitions, assignment consistency and the rating gate. Cross-order
// rules (the single-active-order admission constraint) are enforced by the
// accept command inside a store transaction.
package order
