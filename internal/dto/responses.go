package dto

import "github.com/secureride/booking-service/internal/domain"

// AuthResponse represents an authentication response
type AuthResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	ExpiresIn   int      `json:"expires_in"`
	User        UserInfo `json:"user"`
}

// UserInfo represents user information in an auth response
type UserInfo struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Email  string            `json:"email"`
	Role   domain.Role       `json:"role"`
	Status domain.UserStatus `json:"status"`
}

// UserResponse represents a user profile response
type UserResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Phone           *string           `json:"phone"`
	Role            domain.Role       `json:"role"`
	Status          domain.UserStatus `json:"status"`
	EmailVerifiedAt *string           `json:"email_verified_at"`
	CreatedAt       string            `json:"created_at"`
	UpdatedAt       string            `json:"updated_at"`
	LastLoginAt     *string           `json:"last_login_at"`
}

// BookingListResponse pages through bookings
type BookingListResponse struct {
	Bookings []*domain.Booking `json:"bookings"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	Limit    int               `json:"limit"`
	Pages    int               `json:"pages"`
}

// PaymentIntentResponse carries the client secret for a created intent
type PaymentIntentResponse struct {
	BookingID    string               `json:"booking_id"`
	ClientSecret string               `json:"client_secret"`
	Amount       int64                `json:"amount"`
	Currency     string               `json:"currency"`
	Status       domain.BookingStatus `json:"status"`
}

// AuditLogListResponse pages through audit log entries
type AuditLogListResponse struct {
	Entries []*domain.AuditLog `json:"entries"`
	Total   int                `json:"total"`
	Page    int                `json:"page"`
	Limit   int                `json:"limit"`
	Pages   int                `json:"pages"`
}

// SuccessResponse represents a success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}
