package partner

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrPartnerIsNotConstructed is returned when a Partner instance was not
	// created through NewPartner or RestorePartner.
	ErrPartnerIsNotConstructed = errors.New("Partner must be created via NewPartner or RestorePartner")

	// ErrPartnerNotApproved is returned when an operation requires an active
	// partner but the partner is still pending approval.
	ErrPartnerNotApproved = errors.New("partner is not approved")
)

// Partner is a delivery worker. The aggregate tracks approval status, the
// online flag, the area the partner currently serves and the wallet balance.
//
// The wallet balance is monotonically non-decreasing: the only mutation is
// Credit, called by the advance command when an order completes. The
// single-active-order rule is not stored here; it is derived from the orders
// table and enforced transactionally by the accept command.
type Partner struct {
	id            kernel.UUID
	name          string
	status        Status
	online        bool
	currentAreaID *kernel.UUID
	wallet        kernel.Money

	guard guard.ConstructorGuard
}

// NewPartner registers a partner awaiting approval: pending, offline, no
// area, empty wallet.
func NewPartner(id kernel.UUID, name string) (*Partner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return &Partner{
		id:     id,
		name:   name,
		status: StatusPending,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestorePartner rebuilds a partner from persistence, re-checking the stored
// state.
func RestorePartner(
	id kernel.UUID,
	name string,
	status Status,
	online bool,
	currentAreaID *kernel.UUID,
	wallet kernel.Money,
) (*Partner, error) {
	p, err := NewPartner(id, name)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if currentAreaID != nil {
		if err = currentAreaID.Validate(); err != nil {
			return nil, err
		}
	}

	p.status = status
	p.online = online
	p.currentAreaID = currentAreaID
	p.wallet = wallet
	return p, nil
}

// Validate ensures the Partner was built through a constructor.
func (p *Partner) Validate() error {
	if p == nil {
		return ErrPartnerIsNotConstructed
	}
	return p.guard.Validate(ErrPartnerIsNotConstructed)
}

// ID returns the partner identifier.
func (p *Partner) ID() kernel.UUID { return p.id }

// Name returns the partner's display name.
func (p *Partner) Name() string { return p.name }

// Status returns the approval status.
func (p *Partner) Status() Status { return p.status }

// IsApproved reports whether the partner may work orders.
func (p *Partner) IsApproved() bool { return p.status == StatusActive }

// IsOnline reports whether the partner is currently taking work.
func (p *Partner) IsOnline() bool { return p.online }

// CurrentAreaID returns the area the partner serves, or nil when unset.
func (p *Partner) CurrentAreaID() *kernel.UUID { return p.currentAreaID }

// Wallet returns the accumulated earnings balance.
func (p *Partner) Wallet() kernel.Money { return p.wallet }

// Approve activates a pending partner. Approving an already active partner is
// a no-op.
func (p *Partner) Approve() {
	p.status = StatusActive
}

// SetOnline flips the availability flag.
func (p *Partner) SetOnline(online bool) {
	p.online = online
}

// AssignArea sets the area the partner currently serves.
func (p *Partner) AssignArea(areaID kernel.UUID) error {
	if err := areaID.Validate(); err != nil {
		return err
	}
	p.currentAreaID = &areaID
	return nil
}

// Credit adds a completed order's earning to the wallet. Money is
// non-negative by construction, so the balance never decreases.
func (p *Partner) Credit(earning kernel.Money) {
	p.wallet = p.wallet.Add(earning)
}
