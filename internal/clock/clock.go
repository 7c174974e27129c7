// Package clock supplies the current instant and the session-expiry
// arithmetic derived from it. Session validation never consults this
// clock: the expiry predicate runs inside Postgres so that the lookup
// and the comparison share a single instant on a single clock tier.
package clock

import "time"

// Clock yields wall-clock time in UTC and computes session expiries.
type Clock interface {
	Now() time.Time
	ExpiryFrom(now time.Time) time.Time
}

// System is the wall-clock implementation with a fixed session lifetime.
type System struct {
	ttl time.Duration
}

func NewSystem(ttl time.Duration) *System {
	return &System{ttl: ttl}
}

func (s *System) Now() time.Time {
	return time.Now().UTC()
}

func (s *System) ExpiryFrom(now time.Time) time.Time {
	return now.Add(s.ttl)
}

var _ Clock = (*System)(nil)
