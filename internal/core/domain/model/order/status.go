package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Accepted ──> PickedUp ──> Arrived ──> Completed
//	   ▲            │
//	   └────────────┘
//	       (decline clears the assignment)
//
// Pending is the only initial state; Completed is the sole terminal state.
// No transition may skip a state, and the decline shortcut is the only
// backwards move.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status; the order waits for a partner to accept it.
	Pending

	// Accepted means a partner has taken the order and is heading to pickup.
	Accepted

	// PickedUp means the partner holds the package.
	PickedUp

	// Arrived means the partner reached the drop location.
	Arrived

	// Completed is the terminal status; the wallet credit happens exactly on
	// the transition into it.
	Completed
)

func statusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Accepted:  "accepted",
		PickedUp:  "picked_up",
		Arrived:   "arrived",
		Completed: "completed",
	}
}

func validStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Accepted:  "accepted",
		PickedUp:  "picked_up",
		Arrived:   "arrived",
		Completed: "completed",
	}
}

// Validate rejects Unknown and any out-of-range value. Used when restoring
// statuses from persistence or external input.
func (s Status) Validate() error {
	if _, ok := validStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case status name. Implements fmt.Stringer and is
// safe on invalid values.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether the status counts against the single-active-order
// admission rule (accepted, picked_up or arrived).
func (s Status) IsActive() bool {
	return s == Accepted || s == PickedUp || s == Arrived
}

// Accept transitions Pending to Accepted.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, invalidTransition(s, Accepted)
	}
	return Accepted, nil
}

// PickUp transitions Accepted to PickedUp.
func (s Status) PickUp() (Status, error) {
	if s != Accepted {
		return 0, invalidTransition(s, PickedUp)
	}
	return PickedUp, nil
}

// Arrive transitions PickedUp to Arrived.
func (s Status) Arrive() (Status, error) {
	if s != PickedUp {
		return 0, invalidTransition(s, Arrived)
	}
	return Arrived, nil
}

// Complete transitions Arrived to Completed. Completed is final: completing an
// already completed order fails here, which is what keeps the wallet credit
// idempotent.
func (s Status) Complete() (Status, error) {
	if s != Arrived {
		return 0, invalidTransition(s, Completed)
	}
	return Completed, nil
}

// Decline transitions Accepted back to Pending. Declined is never a persisted
// status: the order simply returns to the pool with its assignment cleared.
func (s Status) Decline() (Status, error) {
	if s != Accepted {
		return 0, invalidTransition(s, Pending)
	}
	return Pending, nil
}

// ValidateCanHaveAssignment checks consistency between a status and the
// presence of a partner assignment. Pending orders must be unassigned; every
// other valid status requires an assigned partner.
func (s Status) ValidateCanHaveAssignment(assigned bool) error {
	if assigned && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order cannot have an assigned partner", s))
	}
	if !assigned && s != Pending {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order must have an assigned partner", s))
	}
	return nil
}

func invalidTransition(from, to Status) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
