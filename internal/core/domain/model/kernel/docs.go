// Package kernel contains the shared building blocks of the domain model:
// the ID identifier type used by every aggregate and the monetary rounding
// rules applied when commissions are settled. Keeping these in one place
// guarantees that all layers agree on identifier width and cent rounding.
package kernel
