// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"
)

var AllModels []any

// Signup is one waitlist entry.
type Signup struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"size:255;not null;uniqueIndex"`
	Country   *string   `gorm:"size:10;default:null"`
	Currency  *string   `gorm:"size:10;default:null"`
	CreatedAt time.Time `gorm:"index"`
}

// SignupRecord is the wire form of a Signup.
type SignupRecord struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Country   *string   `json:"country"`
	Currency  *string   `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

func (s Signup) Record() SignupRecord {
	return SignupRecord{
		ID:        s.ID,
		Email:     s.Email,
		Country:   s.Country,
		Currency:  s.Currency,
		CreatedAt: s.CreatedAt,
	}
}

func init() {
	AllModels = append(AllModels, &Signup{})
}
