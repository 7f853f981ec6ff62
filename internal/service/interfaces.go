package service

import (
	"context"

	"github.com/secureride/booking-service/internal/domain"
	"github.com/secureride/booking-service/internal/dto"
)

// AuthService defines methods for authentication and account lifecycle
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest, ip string) (*dto.UserResponse, string, error)
	VerifyEmail(ctx context.Context, token string) (*dto.UserResponse, error)
	ResendVerification(ctx context.Context, email string) (string, error)
	Login(ctx context.Context, req *dto.LoginRequest, ip string) (*AuthResponseWithRefreshToken, error)
	RefreshToken(ctx context.Context, refreshToken string) (*AuthResponseWithRefreshToken, error)
	Logout(ctx context.Context, userID, refreshToken string) error
	GetUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	ValidateToken(ctx context.Context, token string) (*domain.TokenClaims, error)
}

// BookingService defines methods for booking operations
type BookingService interface {
	CreateBooking(ctx context.Context, userID string, req *dto.CreateBookingRequest) (*domain.Booking, error)
	GetBooking(ctx context.Context, bookingID, userID string) (*domain.Booking, error)
	ListBookings(ctx context.Context, userID string, query *dto.ListBookingsQuery) (*dto.BookingListResponse, error)
	ListAllBookings(ctx context.Context, query *dto.ListBookingsQuery) (*dto.BookingListResponse, error)
}

// PaymentService defines methods for the payment intent bridge
type PaymentService interface {
	CreatePaymentIntent(ctx context.Context, userID, bookingID, ip string) (*dto.PaymentIntentResponse, error)
}

// AuditService exposes the append-only audit log
type AuditService interface {
	Record(ctx context.Context, event string, userID, ip *string, metadata map[string]string)
	List(ctx context.Context, page, limit int) (*dto.AuditLogListResponse, error)
}
