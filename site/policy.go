// SPDX-License-Identifier: GPL-3.0-only

package site

import (
	"math"

	"mineeast-server/client"
)

// WaitlistState is what the visitor sees after submitting the form.
type WaitlistState struct {
	Count     int64
	Submitted bool
}

// Display maps a submission outcome to the visitor-facing state. A failed
// submission is shown as a success with the previous count bumped by one.
func Display(prev int64, o client.Outcome) WaitlistState {
	switch outcome := o.(type) {
	case client.Success:
		return WaitlistState{Count: outcome.Total, Submitted: true}
	default:
		if prev < math.MaxInt64 {
			prev++
		}
		return WaitlistState{Count: prev, Submitted: true}
	}
}
