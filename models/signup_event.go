// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"github.com/google/uuid"
)

// SignupEvent is published on the message bus after a signup is committed.
type SignupEvent struct {
	// EID is the unique event identifier
	EID string `json:"eid"`
	// Email of the new waitlist member
	Email string `json:"email"`
	// Country is the ISO 3166-1 alpha-2 code stored with the signup
	Country string `json:"country"`
	// Currency is the ISO 4217 code the visitor saw prices in
	Currency string `json:"currency"`
	// SignupNumber is the waitlist size right after this signup
	SignupNumber int64 `json:"signup_number"`
	// Timestamp when the signup was stored
	CreatedAt time.Time `json:"created_at"`
}

// NewSignupEvent creates an event with a generated event ID.
func NewSignupEvent(signup Signup, signupNumber int64) *SignupEvent {
	event := &SignupEvent{
		EID:          uuid.New().String(),
		Email:        signup.Email,
		SignupNumber: signupNumber,
		CreatedAt:    signup.CreatedAt,
	}
	if signup.Country != nil {
		event.Country = *signup.Country
	}
	if signup.Currency != nil {
		event.Currency = *signup.Currency
	}
	return event
}
