package repository

import (
	"context"

	"github.com/secureride/booking-service/internal/domain"
)

// UserRepository defines methods for user operations
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ExistsByEmailOrPhone(ctx context.Context, email string, phone *string) (bool, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateLastLogin(ctx context.Context, userID string) error
}

// TokenRepository defines methods for refresh token operations
type TokenRepository interface {
	Create(ctx context.Context, token *domain.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context) error
}

// VerificationRepository defines methods for one-time verification tokens.
// ConsumeAndActivate marks the token used and activates the user in a single
// transaction so that neither write can land without the other.
type VerificationRepository interface {
	Create(ctx context.Context, token *domain.VerificationToken) error
	GetByTokenHash(ctx context.Context, tokenHash, purpose string) (*domain.VerificationToken, error)
	ConsumeAndActivate(ctx context.Context, tokenID, userID string) error
}

// BookingFilter narrows booking list queries.
type BookingFilter struct {
	// UserID scopes results to one owner; empty means all users.
	UserID string
	// Status filters by booking status when non-nil.
	Status *domain.BookingStatus
	Limit  int
	Offset int
}

// BookingRepository defines methods for booking operations
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context, filter BookingFilter) ([]*domain.Booking, error)
	Count(ctx context.Context, filter BookingFilter) (int, error)
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus, paymentIntentID *string) error
}

// AuditRepository defines methods for the append-only audit log
type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditLog) error
	ListRecent(ctx context.Context, limit, offset int) ([]*domain.AuditLog, error)
	Count(ctx context.Context) (int, error)
}
