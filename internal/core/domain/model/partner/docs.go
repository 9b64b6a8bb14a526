// Package partner contains the Partner aggregate: approval lifecycle, online
// availability, current service area and the wallet ledger balance.
package partner
