package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Transition is a partner-requested move through the order lifecycle. It is
// the closed set of inputs the advance operation accepts; anything else is
// rejected before touching the aggregate.
type Transition int

const (
	// TransitionUnknown catches uninitialized Transition values.
	TransitionUnknown Transition = iota

	// TransitionPickUp moves an accepted order to picked_up.
	TransitionPickUp

	// TransitionArrive moves a picked_up order to arrived.
	TransitionArrive

	// TransitionComplete moves an arrived order to completed and triggers the
	// wallet credit.
	TransitionComplete

	// TransitionDecline returns an accepted order to pending and clears the
	// partner assignment.
	TransitionDecline
)

func transitionStrings() map[Transition]string {
	return map[Transition]string{
		TransitionPickUp:   "picked_up",
		TransitionArrive:   "arrived",
		TransitionComplete: "completed",
		TransitionDecline:  "declined",
	}
}

// ParseTransition maps the wire-level transition name to a Transition.
// Accepted inputs: "picked_up", "arrived", "completed", "declined".
func ParseTransition(s string) (Transition, error) {
	for t, name := range transitionStrings() {
		if name == s {
			return t, nil
		}
	}
	return TransitionUnknown, errs.NewValueIsInvalidErrorWithCause("transition",
		fmt.Errorf("%q is not a valid transition", s))
}

// Validate rejects TransitionUnknown and out-of-range values.
func (t Transition) Validate() error {
	if _, ok := transitionStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transition",
			fmt.Errorf("%d is not a valid transition", t))
	}
	return nil
}

// String returns the wire-level transition name.
func (t Transition) String() string {
	if str, ok := transitionStrings()[t]; ok {
		return str
	}
	return "unknown"
}
