package partner_test

import (
	"testing"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/partner"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPartner(t *testing.T) {
	t.Run("starts pending, offline and broke", func(t *testing.T) {
		p, err := partner.NewPartner(kernel.NewUUID(), "Ravi")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, partner.StatusPending, p.Status())
		assert.False(t, p.IsApproved())
		assert.False(t, p.IsOnline())
		assert.Nil(t, p.CurrentAreaID())
		assert.InDelta(t, 0, p.Wallet().Amount(), 0)
	})

	t.Run("fails without a name", func(t *testing.T) {
		_, err := partner.NewPartner(kernel.NewUUID(), "")

		require.Error(t, err)
	})

	t.Run("fails with zero-value id", func(t *testing.T) {
		var id kernel.UUID
		_, err := partner.NewPartner(id, "Ravi")

		require.Error(t, err)
	})
}

func TestPartner_Approve(t *testing.T) {
	p, err := partner.NewPartner(kernel.NewUUID(), "Ravi")
	require.NoError(t, err)

	p.Approve()
	assert.True(t, p.IsApproved())

	// Idempotent.
	p.Approve()
	assert.Equal(t, partner.StatusActive, p.Status())
}

func TestPartner_SetOnline(t *testing.T) {
	p, err := partner.NewPartner(kernel.NewUUID(), "Ravi")
	require.NoError(t, err)

	p.SetOnline(true)
	assert.True(t, p.IsOnline())

	p.SetOnline(false)
	assert.False(t, p.IsOnline())
}

func TestPartner_AssignArea(t *testing.T) {
	p, err := partner.NewPartner(kernel.NewUUID(), "Ravi")
	require.NoError(t, err)

	areaID := kernel.NewUUID()
	require.NoError(t, p.AssignArea(areaID))
	assert.True(t, p.CurrentAreaID().IsEqual(areaID))

	var invalid kernel.UUID
	require.Error(t, p.AssignArea(invalid))
}

func TestPartner_Credit(t *testing.T) {
	p, err := partner.NewPartner(kernel.NewUUID(), "Ravi")
	require.NoError(t, err)

	forty, err := kernel.NewMoney(40)
	require.NoError(t, err)
	p.Credit(forty)
	assert.InDelta(t, 40, p.Wallet().Amount(), 0)

	p.Credit(forty)
	assert.InDelta(t, 80, p.Wallet().Amount(), 0)
}

func TestRestorePartner(t *testing.T) {
	t.Run("restores full state", func(t *testing.T) {
		id := kernel.NewUUID()
		areaID := kernel.NewUUID()
		wallet, err := kernel.NewMoney(120.5)
		require.NoError(t, err)

		p, err := partner.RestorePartner(id, "Ravi", partner.StatusActive, true, &areaID, wallet)

		require.NoError(t, err)
		assert.True(t, p.IsApproved())
		assert.True(t, p.IsOnline())
		assert.True(t, p.CurrentAreaID().IsEqual(areaID))
		assert.InDelta(t, 120.5, p.Wallet().Amount(), 0)
	})

	t.Run("rejects invalid stored status", func(t *testing.T) {
		_, err := partner.RestorePartner(
			kernel.NewUUID(), "Ravi", partner.Status(9), false, nil, kernel.Money{})

		require.Error(t, err)
	})
}

func TestPartner_Validate(t *testing.T) {
	var nilPartner *partner.Partner
	require.ErrorIs(t, nilPartner.Validate(), partner.ErrPartnerIsNotConstructed)
	require.ErrorIs(t, (&partner.Partner{}).Validate(), partner.ErrPartnerIsNotConstructed)
}
