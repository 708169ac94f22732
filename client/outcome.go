// SPDX-License-Identifier: GPL-3.0-only

package client

import "fmt"

// Outcome is the true result of a signup submission: Success or Failed.
type Outcome interface {
	outcome()
}

// Success carries the waitlist size reported by the API.
type Success struct {
	Total int64
}

// Failed covers non-2xx responses (Status set) and transport or decoding
// errors (Status zero).
type Failed struct {
	Status int
	Err    error
}

func (Success) outcome() {}
func (Failed) outcome()  {}

func (f Failed) Error() string {
	if f.Status == 0 {
		return fmt.Sprintf("signup failed: %v", f.Err)
	}
	return fmt.Sprintf("signup failed with status %d: %v", f.Status, f.Err)
}

func (f Failed) Unwrap() error {
	return f.Err
}
