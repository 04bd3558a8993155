// Package counter defines cumulative event counters used to instrument
// generator steps and sequence forces.
package counter

// Counter is a cumulative metric
type Counter interface {
	Value() int64
	RatePerSec() int64

	Add(n int64)
}
