package dto

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Name     string  `json:"name" binding:"required,min=2"`
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Phone    *string `json:"phone,omitempty" binding:"omitempty,min=7"`
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// VerifyEmailRequest carries a one-time email verification token
type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

// ResendVerificationRequest asks for a fresh verification token
type ResendVerificationRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// CreateBookingRequest represents a booking creation request. ServiceType,
// SecurityLevel and PickupTime are optional; defaults are applied server-side.
type CreateBookingRequest struct {
	ServiceType    string  `json:"service_type" binding:"omitempty,min=3"`
	PickupLocation string  `json:"pickup_location" binding:"required,min=3"`
	Destination    string  `json:"destination" binding:"required,min=3"`
	PickupTime     *string `json:"pickup_time,omitempty"`
	EstimatedPrice float64 `json:"estimated_price" binding:"required,gt=0"`
	SecurityLevel  string  `json:"security_level" binding:"omitempty,oneof=standard enhanced executive vip"`
}

// ListBookingsQuery represents booking list query parameters
type ListBookingsQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=pending processing completed cancelled"`
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=20"`
}

// CreateIntentRequest represents a payment intent creation request
type CreateIntentRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
}
