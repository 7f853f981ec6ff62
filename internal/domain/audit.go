package domain

import "time"

// Audit event names.
const (
	AuditUserRegistered       = "user.registered"
	AuditUserVerified         = "user.verified"
	AuditLoginFailed          = "login.failed"
	AuditLoginSucceeded       = "login.succeeded"
	AuditPaymentIntentCreated = "payment.intent_created"
)

// AuditLog is an append-only record of a security-relevant event.
// Records are never mutated after creation.
type AuditLog struct {
	ID        string            `json:"id" db:"id"`
	Event     string            `json:"event" db:"event"`
	UserID    *string           `json:"user_id" db:"user_id"`
	IPAddress *string           `json:"ip_address" db:"ip_address"`
	Metadata  map[string]string `json:"metadata" db:"metadata"`
	CreatedAt time.Time         `json:"created_at" db:"created_at"`
}
