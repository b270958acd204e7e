// Copyright 2026 The Surge Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import "time"

// Clock abstracts the time source for request signing. Production code
// injects Real(); tests inject Fixed() so that auth_timestamp — and
// therefore the request signature — is deterministic.
//
// The SDK core has no timers, tickers, or sleeps: every operation
// completes in bounded time, so Now is the only operation the
// abstraction needs.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// Real returns a Clock backed by the standard time package.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Fixed returns a Clock frozen at the given instant. Two signing calls
// against the same Fixed clock produce identical auth_timestamp values
// and identical signatures.
func Fixed(instant time.Time) Clock { return fixedClock{instant: instant} }

type fixedClock struct {
	instant time.Time
}

func (c fixedClock) Now() time.Time { return c.instant }
