// Package pricing contains the charge and commission model: ChargeRule (the
// directed per-area-pair delivery price) and CommissionRate (the platform
// percentage applied to every order at creation time).
package pricing
