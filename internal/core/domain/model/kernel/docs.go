// Package kernel holds the shared value objects of the domain model: UUID
// identifiers and Money amounts. These types are immutable and safe for
// concurrent use.
package kernel
