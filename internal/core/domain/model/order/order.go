package order

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderNotPending is returned when an accept attempt targets an order
	// that is no longer pending, typically because another partner won the race.
	ErrOrderNotPending = errors.New("order is not pending")

	// ErrNotOrderOwner is returned when the caller lacks authority over the
	// order: a partner advancing an order they do not hold, or a customer
	// rating an order they did not place.
	ErrNotOrderOwner = errors.New("caller does not own this order")

	// ErrInvalidTransition is returned for out-of-order or stale status
	// transition requests. The stored order is left untouched.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrOrderNotCompleted is returned when a rating is attempted before the
	// order reached completed.
	ErrOrderNotCompleted = errors.New("order is not completed")
)

// Order is the central aggregate of the dispatch core. It carries the
// customer's request, the pricing decided at creation time, the partner
// assignment and the lifecycle status.
//
// Invariants:
//   - amount and commission are frozen at construction and never recomputed
//   - commission never exceeds amount
//   - status only moves along the transitions defined on Status
//   - a pending order has no partner; any other status has exactly one
//   - the rating can only be set once the order is completed, by its customer
type Order struct {
	id            kernel.UUID
	customerID    kernel.UUID
	partnerID     *kernel.UUID
	pickupAreaID  kernel.UUID
	dropAreaID    kernel.UUID
	pickupAddress string
	dropAddress   string
	status        Status
	amount        kernel.Money
	commission    kernel.Money
	rating        *Rating
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a pending, unassigned order. The amount comes from the
// charge rule for the area pair and the commission from the platform rate at
// creation time; both are frozen here for the life of the order.
func NewOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	pickupAreaID kernel.UUID,
	dropAreaID kernel.UUID,
	pickupAddress string,
	dropAddress string,
	amount kernel.Money,
	commission kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setAreas(pickupAreaID, dropAreaID),
		o.setAddresses(pickupAddress, dropAddress),
		o.setPricing(amount, commission),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence. It re-checks the stored
// state against the aggregate invariants so corrupt rows surface as errors
// instead of invalid aggregates.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	partnerID *kernel.UUID,
	pickupAreaID kernel.UUID,
	dropAreaID kernel.UUID,
	pickupAddress string,
	dropAddress string,
	status Status,
	amount kernel.Money,
	commission kernel.Money,
	rating *Rating,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, customerID, pickupAreaID, dropAreaID,
		pickupAddress, dropAddress, amount, commission, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = status.ValidateCanHaveAssignment(partnerID != nil); err != nil {
		return nil, err
	}
	if partnerID != nil {
		if err = partnerID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.partnerID = partnerID
	o.rating = rating
	return o, nil
}

// Validate ensures the Order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// PartnerID returns the assigned partner, or nil while the order is pending.
func (o *Order) PartnerID() *kernel.UUID { return o.partnerID }

// PickupAreaID returns the pickup area.
func (o *Order) PickupAreaID() kernel.UUID { return o.pickupAreaID }

// DropAreaID returns the drop area.
func (o *Order) DropAreaID() kernel.UUID { return o.dropAreaID }

// PickupAddress returns the free-text pickup address.
func (o *Order) PickupAddress() string { return o.pickupAddress }

// DropAddress returns the free-text drop address.
func (o *Order) DropAddress() string { return o.dropAddress }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// Amount returns the charge frozen at creation.
func (o *Order) Amount() kernel.Money { return o.amount }

// Commission returns the platform cut frozen at creation.
func (o *Order) Commission() kernel.Money { return o.commission }

// Rating returns the customer rating, or nil when not rated yet.
func (o *Order) Rating() *Rating { return o.rating }

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Earning is the partner's payout on completion: amount minus commission.
func (o *Order) Earning() (kernel.Money, error) {
	return o.amount.Sub(o.commission)
}

// Accept assigns the order to a partner. Only pending orders can be accepted;
// a lost race surfaces as ErrOrderNotPending and leaves the order untouched.
//
// Accept validates the order state only. The single-active-order admission
// check needs repository data and belongs to the accept command, which must
// run both checks and this write inside one transaction.
func (o *Order) Accept(partnerID kernel.UUID) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return fmt.Errorf("%w: status is %s", ErrOrderNotPending, o.status)
	}

	o.status = newStatus
	o.partnerID = &partnerID
	return nil
}

// Advance applies a partner-requested transition. The requesting partner must
// be the assigned one, otherwise ErrNotOrderOwner is returned. Declining
// returns the order to pending and clears the assignment, making it
// acceptable again by any eligible partner.
func (o *Order) Advance(partnerID kernel.UUID, transition Transition) error {
	if err := transition.Validate(); err != nil {
		return err
	}
	if o.partnerID == nil || !o.partnerID.IsEqual(partnerID) {
		return ErrNotOrderOwner
	}

	var (
		newStatus Status
		err       error
	)
	switch transition {
	case TransitionPickUp:
		newStatus, err = o.status.PickUp()
	case TransitionArrive:
		newStatus, err = o.status.Arrive()
	case TransitionComplete:
		newStatus, err = o.status.Complete()
	case TransitionDecline:
		newStatus, err = o.status.Decline()
	default:
		return errs.NewValueIsInvalidError("transition")
	}
	if err != nil {
		return err
	}

	o.status = newStatus
	if transition == TransitionDecline {
		o.partnerID = nil
	}
	return nil
}

// Rate records the customer's rating. Only the order's own customer may rate,
// and only once the order is completed.
func (o *Order) Rate(customerID kernel.UUID, score int, comment string) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if !o.customerID.IsEqual(customerID) {
		return ErrNotOrderOwner
	}
	if o.status != Completed {
		return fmt.Errorf("%w: status is %s", ErrOrderNotCompleted, o.status)
	}

	rating, err := NewRating(score, comment)
	if err != nil {
		return err
	}

	o.rating = &rating
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setAreas(pickupAreaID, dropAreaID kernel.UUID) error {
	if err := pickupAreaID.Validate(); err != nil {
		return err
	}
	if err := dropAreaID.Validate(); err != nil {
		return err
	}
	o.pickupAreaID = pickupAreaID
	o.dropAreaID = dropAreaID
	return nil
}

func (o *Order) setAddresses(pickupAddress, dropAddress string) error {
	if pickupAddress == "" {
		return errs.NewValueIsRequiredError("pickupAddress")
	}
	if dropAddress == "" {
		return errs.NewValueIsRequiredError("dropAddress")
	}
	o.pickupAddress = pickupAddress
	o.dropAddress = dropAddress
	return nil
}

func (o *Order) setPricing(amount, commission kernel.Money) error {
	if commission.Amount() > amount.Amount() {
		return errs.NewValueIsInvalidErrorWithCause("commission",
			fmt.Errorf("commission %v exceeds amount %v", commission.Amount(), amount.Amount()))
	}
	o.amount = amount
	o.commission = commission
	return nil
}
