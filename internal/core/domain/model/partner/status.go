package partner

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status is the approval state of a delivery partner. New registrations start
// pending and must be approved by an administrator before the partner can
// work orders.
type Status int

const (
	// StatusUnknown catches uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending means the partner awaits administrator approval.
	StatusPending

	// StatusActive means the partner is approved and may accept orders.
	StatusActive
)

func statusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		StatusPending: "pending",
		StatusActive:  "active",
	}
}

// Validate rejects StatusUnknown and out-of-range values.
func (s Status) Validate() error {
	if s != StatusPending && s != StatusActive {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid partner status", s))
	}
	return nil
}

// String returns the status name. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
