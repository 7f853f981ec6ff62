package domain

import "time"

// Verification token purposes.
const (
	VerificationPurposeEmail = "email_verification"
)

// VerificationToken is a one-time token bound to an email and a purpose.
// Only the SHA-256 hash of the token value is stored. A token that is
// expired or already used must never authorize an action.
type VerificationToken struct {
	ID        string     `json:"id" db:"id"`
	Email     string     `json:"email" db:"email"`
	TokenHash string     `json:"-" db:"token_hash"`
	Purpose   string     `json:"purpose" db:"purpose"`
	ExpiresAt time.Time  `json:"expires_at" db:"expires_at"`
	UsedAt    *time.Time `json:"used_at" db:"used_at"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// Consumable reports whether the token can still be redeemed at t.
func (v *VerificationToken) Consumable(t time.Time) bool {
	return v.UsedAt == nil && t.Before(v.ExpiresAt)
}
