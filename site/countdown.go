// SPDX-License-Identifier: GPL-3.0-only

package site

import "time"

// DefaultLaunchWindow is used when LAUNCH_AT is not configured.
const DefaultLaunchWindow = 30 * 24 * time.Hour

type Countdown struct {
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// Remaining splits the time left until launch into whole units. It is zero
// once launch has passed.
func Remaining(now, launch time.Time) Countdown {
	left := launch.Sub(now)
	if left <= 0 {
		return Countdown{}
	}
	total := int64(left / time.Second)
	return Countdown{
		Days:    total / 86400,
		Hours:   total % 86400 / 3600,
		Minutes: total % 3600 / 60,
		Seconds: total % 60,
	}
}

// LaunchInstant returns the configured launch time, or start plus the default
// window when none is set. The result is fixed for the life of the process.
func LaunchInstant(configured, start time.Time) time.Time {
	if !configured.IsZero() {
		return configured.UTC()
	}
	return start.Add(DefaultLaunchWindow).UTC()
}
