// Package kernel contains shared value objects used across all aggregates:
// validated identifiers, tracking numbers, and courier grid locations.
// Everything in this package is immutable and safe for concurrent use.
package kernel
