package repository

import (
	"github.com/secureride/booking-service/pkg/database"
)

// Repositories holds all repository interfaces
type Repositories struct {
	User         UserRepository
	Token        TokenRepository
	Verification VerificationRepository
	Booking      BookingRepository
	Audit        AuditRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *database.Postgres) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Token:        NewTokenRepository(db),
		Verification: NewVerificationRepository(db),
		Booking:      NewBookingRepository(db),
		Audit:        NewAuditRepository(db),
	}
}
